package cmd

import (
	"fmt"

	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/control"
	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/pulse"
)

// withEngine connects to the audio server, runs fn against a fresh engine
// and tears everything down again. The inspection commands are one-shot,
// so each invocation gets its own connection.
func withEngine(fn func(*control.Engine) error) error {
	conn, err := pulse.Dial(cfg.Pulse.Server, cfg.Pulse.ClientName)
	if err != nil {
		return fmt.Errorf("failed to connect to audio server: %w", err)
	}

	engine := control.New(conn)
	defer engine.Close()

	return fn(engine)
}
