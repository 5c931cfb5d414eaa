package server

import (
	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/control"
	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/pulse"
)

// The wire structs below marshal by field order, so the order is part of the
// published signature and must not change.

// ProfileEntry is one selectable profile, signature (ss).
type ProfileEntry struct {
	Name        string
	Description string
}

// CardEntry is one card with its output profiles, signature (ssa(ss)s).
type CardEntry struct {
	Name          string
	Description   string
	Profiles      []ProfileEntry
	ActiveProfile string
}

// SinkEntry is one sink, signature (ssixbiadsb). CardIndex is widened to 64
// bits so an unset card reads as 4294967295 instead of -1.
type SinkEntry struct {
	Name         string
	Description  string
	Index        int32
	CardIndex    int64
	Muted        bool
	ChannelCount int32
	Volumes      []float64
	PortState    string
	IsDefault    bool
}

func cardEntries(cards []control.CardProfiles) []CardEntry {
	entries := make([]CardEntry, 0, len(cards))
	for _, c := range cards {
		profiles := make([]ProfileEntry, 0, len(c.Profiles))
		for _, p := range c.Profiles {
			profiles = append(profiles, ProfileEntry{Name: p.Name, Description: p.Description})
		}
		entries = append(entries, CardEntry{
			Name:          c.Card,
			Description:   c.Description,
			Profiles:      profiles,
			ActiveProfile: c.ActiveProfile,
		})
	}
	return entries
}

func sinkEntries(list control.SinkList) []SinkEntry {
	entries := make([]SinkEntry, 0, len(list.Sinks))
	for _, s := range list.Sinks {
		entries = append(entries, SinkEntry{
			Name:         s.Name,
			Description:  s.Description,
			Index:        int32(s.Index),
			CardIndex:    int64(s.CardIndex),
			Muted:        s.Muted,
			ChannelCount: int32(len(s.Volumes)),
			Volumes:      append([]float64(nil), s.Volumes...),
			PortState:    portState(s.ActivePort),
			IsDefault:    s.Default,
		})
	}
	return entries
}

// portState flattens the active port to its availability, "unknown" when the
// sink has no ports at all.
func portState(port *pulse.SinkPort) string {
	if port == nil {
		return pulse.PortUnknown.String()
	}
	return port.Availability.String()
}
