package server

import (
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/control"
)

const (
	// InterfaceName is both the well-known bus name and the published interface.
	InterfaceName = "org.yavdr.PulseDBusCtl"
	// ObjectPath is where the interface lives on the bus.
	ObjectPath = dbus.ObjectPath("/org/yavdr/PulseDBusCtl")
)

// Server publishes the control engine on a message bus. The bus connection
// dispatches incoming method calls on its own goroutines; serialization
// against the audio server happens inside the engine, not here.
type Server struct {
	handler *Handler
	bus     string
	conn    *dbus.Conn
}

// New creates a server for the given bus, "system" (the usual deployment) or
// "session".
func New(engine *control.Engine, bus string) *Server {
	return &Server{handler: NewHandler(engine), bus: bus}
}

// Start connects to the bus, exports the control interface together with its
// introspection data and claims the well-known name. It returns once the name
// is held; calls are then served in the background until Stop.
func (s *Server) Start() error {
	conn, err := s.connect()
	if err != nil {
		return fmt.Errorf("connect to %s bus: %w", s.bus, err)
	}

	if err := conn.Export(s.handler, ObjectPath, InterfaceName); err != nil {
		conn.Close()
		return fmt.Errorf("export control interface: %w", err)
	}
	introspectable := introspect.NewIntrospectable(introspectNode())
	if err := conn.Export(introspectable, ObjectPath, "org.freedesktop.DBus.Introspectable"); err != nil {
		conn.Close()
		return fmt.Errorf("export introspection data: %w", err)
	}

	reply, err := conn.RequestName(InterfaceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return fmt.Errorf("request bus name %s: %w", InterfaceName, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		return fmt.Errorf("bus name %s is already taken", InterfaceName)
	}

	s.conn = conn
	slog.Info("Control interface published", "bus", s.bus, "name", InterfaceName, "path", string(ObjectPath))
	return nil
}

func (s *Server) connect() (*dbus.Conn, error) {
	if s.bus == "session" {
		return dbus.ConnectSessionBus()
	}
	return dbus.ConnectSystemBus()
}

// Stop releases the well-known name and closes the bus connection. Safe to
// call on a server that never started.
func (s *Server) Stop() error {
	if s.conn == nil {
		return nil
	}
	if _, err := s.conn.ReleaseName(InterfaceName); err != nil {
		slog.Warn("Releasing bus name failed", "name", InterfaceName, "error", err)
	}
	err := s.conn.Close()
	s.conn = nil
	slog.Info("Control interface withdrawn", "name", InterfaceName)
	return err
}

// introspectNode describes the exported object for
// org.freedesktop.DBus.Introspectable consumers.
func introspectNode() *introspect.Node {
	return &introspect.Node{
		Name: string(ObjectPath),
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name: InterfaceName,
				Methods: []introspect.Method{
					{
						Name: "ListOutputProfiles",
						Args: []introspect.Arg{
							{Name: "profiles", Type: "a(ssa(ss)s)", Direction: "out"},
						},
					},
					{
						Name: "SetProfile",
						Args: []introspect.Arg{
							{Name: "card_name", Type: "s", Direction: "in"},
							{Name: "profile_name", Type: "s", Direction: "in"},
							{Name: "success", Type: "b", Direction: "out"},
						},
					},
					{
						Name: "ListSinks",
						Args: []introspect.Arg{
							{Name: "sinks", Type: "a(ssixbiadsb)", Direction: "out"},
							{Name: "default_sink", Type: "s", Direction: "out"},
						},
					},
					{
						Name: "SetDefaultSink",
						Args: []introspect.Arg{
							{Name: "sink_name", Type: "s", Direction: "in"},
							{Name: "success", Type: "b", Direction: "out"},
						},
					},
				},
			},
		},
	}
}
