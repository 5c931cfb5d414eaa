package control

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/pulse"
)

// ErrClosed is returned for operations submitted after Close.
var ErrClosed = errors.New("control engine is closed")

// Engine runs the control operations against a single audio server
// connection. The connection is not safe for concurrent use, so a dedicated
// worker goroutine owns it exclusively: public methods enqueue a request and
// block until the worker has run it. Requests are served strictly in arrival
// order, and an operation that has started always runs to completion; there
// is no cancellation and no timeout around a hung connection.
type Engine struct {
	conn pulse.Conn

	requests chan request
	quit     chan struct{}
	done     chan struct{}

	closeOnce sync.Once
}

type request struct {
	op   string
	run  func() error
	resp chan error
}

// New starts the worker goroutine owning conn. Close releases it together
// with the connection.
func New(conn pulse.Conn) *Engine {
	e := &Engine{
		conn:     conn,
		requests: make(chan request),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go e.serve()
	return e
}

func (e *Engine) serve() {
	defer close(e.done)
	for {
		select {
		case req := <-e.requests:
			slog.Debug("Running engine operation", "op", req.op)
			req.resp <- req.run()
		case <-e.quit:
			return
		}
	}
}

// do hands fn to the worker and waits for its result. fn runs on the worker
// goroutine and is the only code that may touch e.conn.
func (e *Engine) do(op string, fn func() error) error {
	resp := make(chan error, 1)
	select {
	case e.requests <- request{op: op, run: fn, resp: resp}:
		return <-resp
	case <-e.quit:
		return ErrClosed
	}
}

// ServerInfo reports the audio server's identity and current default sink.
func (e *Engine) ServerInfo() (pulse.ServerInfo, error) {
	var info pulse.ServerInfo
	err := e.do("server_info", func() error {
		var err error
		info, err = e.conn.ServerInfo()
		return err
	})
	return info, err
}

// Close stops the worker and closes the underlying connection. Requests not
// yet accepted fail with ErrClosed; a request already running finishes first.
func (e *Engine) Close() error {
	e.closeOnce.Do(func() {
		close(e.quit)
	})
	<-e.done
	return e.conn.Close()
}
