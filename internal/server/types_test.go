package server

import (
	"testing"

	"github.com/godbus/dbus/v5"

	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/control"
	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/pulse"
)

// The marshaled signatures are the published interface; existing clients
// break if they ever change.

func TestCardEntrySignature(t *testing.T) {
	sig := dbus.SignatureOf(CardEntry{}).String()
	if sig != "(ssa(ss)s)" {
		t.Errorf("Expected card signature '(ssa(ss)s)', got %q", sig)
	}
}

func TestSinkEntrySignature(t *testing.T) {
	sig := dbus.SignatureOf(SinkEntry{}).String()
	if sig != "(ssixbiadsb)" {
		t.Errorf("Expected sink signature '(ssixbiadsb)', got %q", sig)
	}
}

func TestCardEntries(t *testing.T) {
	cards := []control.CardProfiles{
		{
			Card:        "alsa_card.pci-0000_00_1f.3",
			Description: "Built-in Audio",
			Profiles: []control.ProfileEntry{
				{Name: "output:analog-stereo", Description: "Analog Stereo Output"},
				{Name: "output:hdmi-stereo", Description: "Digital Stereo (HDMI) Output"},
			},
			ActiveProfile: "output:analog-stereo",
		},
		{
			Card:        "alsa_card.usb-Webcam",
			Description: "USB Webcam",
			Profiles:    nil,
		},
	}

	entries := cardEntries(cards)

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	first := entries[0]
	if first.Name != "alsa_card.pci-0000_00_1f.3" || first.Description != "Built-in Audio" {
		t.Errorf("Card entry incorrect: got %+v", first)
	}
	if first.ActiveProfile != "output:analog-stereo" {
		t.Errorf("Expected active profile to be carried, got %q", first.ActiveProfile)
	}
	if len(first.Profiles) != 2 || first.Profiles[1].Name != "output:hdmi-stereo" {
		t.Errorf("Profiles incorrect: got %+v", first.Profiles)
	}

	// A card without output profiles marshals as an empty array, not nil
	if entries[1].Profiles == nil || len(entries[1].Profiles) != 0 {
		t.Errorf("Expected empty profile list, got %+v", entries[1].Profiles)
	}
}

func TestSinkEntries(t *testing.T) {
	list := control.SinkList{
		DefaultSink: "alsa_output.hdmi",
		Sinks: []control.SinkStatus{
			{
				Sink: pulse.Sink{
					Index:       2,
					Name:        "alsa_output.hdmi",
					Description: "HDMI Output",
					CardIndex:   0,
					Muted:       false,
					Volumes:     []float64{1.0, 0.5},
					ActivePort: &pulse.SinkPort{
						Name:         "hdmi-output-0",
						Description:  "HDMI",
						Availability: pulse.PortYes,
					},
				},
				Default: true,
			},
			{
				Sink: pulse.Sink{
					Index:       7,
					Name:        "null-sink",
					Description: "Null Output",
					CardIndex:   0xffffffff,
					Muted:       true,
					Volumes:     []float64{1.0},
				},
				Default: false,
			},
		},
	}

	entries := sinkEntries(list)

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	hdmi := entries[0]
	if hdmi.Name != "alsa_output.hdmi" || hdmi.Description != "HDMI Output" {
		t.Errorf("Sink entry incorrect: got %+v", hdmi)
	}
	if hdmi.Index != 2 || hdmi.CardIndex != 0 {
		t.Errorf("Expected index 2 on card 0, got index %d card %d", hdmi.Index, hdmi.CardIndex)
	}
	if hdmi.ChannelCount != 2 {
		t.Errorf("Expected channel count 2, got %d", hdmi.ChannelCount)
	}
	if len(hdmi.Volumes) != 2 || hdmi.Volumes[0] != 1.0 || hdmi.Volumes[1] != 0.5 {
		t.Errorf("Volumes incorrect: got %v", hdmi.Volumes)
	}
	if hdmi.PortState != "yes" {
		t.Errorf("Expected port state 'yes', got %q", hdmi.PortState)
	}
	if !hdmi.IsDefault {
		t.Error("Expected hdmi sink to be marked default")
	}

	null := entries[1]
	if !null.Muted || null.IsDefault {
		t.Errorf("Null sink flags incorrect: got %+v", null)
	}
	// An unset card index is widened, never sign-extended
	if null.CardIndex != 4294967295 {
		t.Errorf("Expected card index 4294967295, got %d", null.CardIndex)
	}
	if null.PortState != "unknown" {
		t.Errorf("Expected port state 'unknown' for portless sink, got %q", null.PortState)
	}
	if null.ChannelCount != 1 {
		t.Errorf("Expected channel count 1, got %d", null.ChannelCount)
	}
}

func TestPortState(t *testing.T) {
	if got := portState(nil); got != "unknown" {
		t.Errorf("Expected 'unknown' for nil port, got %q", got)
	}
	if got := portState(&pulse.SinkPort{Availability: pulse.PortNo}); got != "no" {
		t.Errorf("Expected 'no', got %q", got)
	}
	if got := portState(&pulse.SinkPort{Availability: pulse.PortYes}); got != "yes" {
		t.Errorf("Expected 'yes', got %q", got)
	}
}
