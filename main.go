package main

import "github.com/seahawk1986/yavdr-pulse-dbusctl/cmd"

func main() {
	cmd.Execute()
}
