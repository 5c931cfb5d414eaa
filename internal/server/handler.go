package server

import (
	"log/slog"

	"github.com/godbus/dbus/v5"

	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/control"
)

// Handler carries the method implementations exported on the bus. Every
// exported method becomes callable, so it holds exactly the four control
// operations and nothing else.
type Handler struct {
	engine *control.Engine
}

func NewHandler(engine *control.Engine) *Handler {
	return &Handler{engine: engine}
}

// ListOutputProfiles returns the cards with their usable output profiles.
func (h *Handler) ListOutputProfiles() ([]CardEntry, *dbus.Error) {
	cards, err := h.engine.ListOutputProfiles()
	if err != nil {
		slog.Error("ListOutputProfiles failed", "error", err)
		return nil, dbus.MakeFailedError(err)
	}
	return cardEntries(cards), nil
}

// SetProfile activates a profile on a card. An unknown card or profile name
// yields false without a bus error; only server command failures do.
func (h *Handler) SetProfile(cardName, profileName string) (bool, *dbus.Error) {
	ok, err := h.engine.SetProfile(cardName, profileName)
	if err != nil {
		slog.Error("SetProfile failed", "card", cardName, "profile", profileName, "error", err)
		return false, dbus.MakeFailedError(err)
	}
	return ok, nil
}

// ListSinks returns all sinks plus the name of the current default sink.
func (h *Handler) ListSinks() ([]SinkEntry, string, *dbus.Error) {
	list, err := h.engine.ListSinks()
	if err != nil {
		slog.Error("ListSinks failed", "error", err)
		return nil, "", dbus.MakeFailedError(err)
	}
	return sinkEntries(list), list.DefaultSink, nil
}

// SetDefaultSink makes the named sink the default and migrates the running
// streams onto it. False reports an unknown sink or a failed default change;
// a bus error is raised only when the stream migration cannot start.
func (h *Handler) SetDefaultSink(sinkName string) (bool, *dbus.Error) {
	ok, err := h.engine.SetDefaultSink(sinkName)
	if err != nil {
		slog.Error("SetDefaultSink failed", "sink", sinkName, "error", err)
		return false, dbus.MakeFailedError(err)
	}
	return ok, nil
}
