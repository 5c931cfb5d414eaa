package pulse

import (
	"testing"

	"github.com/jfreymuth/pulse/proto"
)

func TestCardFromProto(t *testing.T) {
	info := &proto.GetCardInfoReply{
		CardIndex: 0,
		CardName:  "alsa_card.pci-0000_00_1f.3",
		Profiles: []struct {
			Name        string
			Description string
			NumSinks    uint32
			NumSources  uint32
			Priority    uint32
			Available   uint32 "29"
		}{
			{Name: "output:analog-stereo", Description: "Analog Stereo Output", NumSinks: 1, Priority: 6500, Available: 1},
			{Name: "output:hdmi-stereo", Description: "Digital Stereo (HDMI) Output", NumSinks: 1, Priority: 5900, Available: 0},
			{Name: "off", Description: "Off", Priority: 0, Available: 1},
		},
		ActiveProfileName: "output:analog-stereo",
		Properties: proto.PropList{
			"device.description": proto.PropListString("Built-in Audio"),
		},
	}

	card := cardFromProto(info)

	if card.Index != 0 || card.Name != "alsa_card.pci-0000_00_1f.3" {
		t.Errorf("Card identity incorrect: got %+v", card)
	}
	if card.Description != "Built-in Audio" {
		t.Errorf("Expected description 'Built-in Audio', got %q", card.Description)
	}
	if card.ActiveProfile != "output:analog-stereo" {
		t.Errorf("Expected active profile 'output:analog-stereo', got %q", card.ActiveProfile)
	}
	if len(card.Profiles) != 3 {
		t.Fatalf("Expected 3 profiles, got %d", len(card.Profiles))
	}

	analog := card.Profiles[0]
	if analog.Name != "output:analog-stereo" || analog.Sinks != 1 || !analog.Available {
		t.Errorf("Analog profile incorrect: got %+v", analog)
	}
	hdmi := card.Profiles[1]
	if hdmi.Available {
		t.Errorf("Expected hdmi profile to be unavailable, got %+v", hdmi)
	}
}

func TestCardFromProto_DescriptionFallback(t *testing.T) {
	info := &proto.GetCardInfoReply{
		CardIndex:  2,
		CardName:   "alsa_card.usb-Generic_USB_Audio",
		Properties: proto.PropList{},
	}

	card := cardFromProto(info)

	if card.Description != "alsa_card.usb-Generic_USB_Audio" {
		t.Errorf("Expected card name as description fallback, got %q", card.Description)
	}
}

func TestSinkFromProto(t *testing.T) {
	info := &proto.GetSinkInfoReply{
		SinkIndex:      1,
		SinkName:       "alsa_output.pci-0000_00_1f.3.analog-stereo",
		Device:         "Built-in Audio Analog Stereo",
		ChannelVolumes: proto.ChannelVolumes{0x10000, 0x8000},
		Mute:           true,
		CardIndex:      0,
		Ports: []struct {
			Name        string
			Description string
			Priority    uint32
			Available   uint32 "24"
		}{
			{Name: "analog-output-lineout", Description: "Line Out", Priority: 9900, Available: 0},
			{Name: "analog-output-headphones", Description: "Headphones", Priority: 9000, Available: 2},
		},
		ActivePortName: "analog-output-headphones",
	}

	sink := sinkFromProto(info)

	if sink.Index != 1 || sink.Name != "alsa_output.pci-0000_00_1f.3.analog-stereo" {
		t.Errorf("Sink identity incorrect: got %+v", sink)
	}
	if sink.Description != "Built-in Audio Analog Stereo" {
		t.Errorf("Expected device description, got %q", sink.Description)
	}
	if !sink.Muted {
		t.Error("Expected sink to be muted")
	}
	if sink.CardIndex != 0 {
		t.Errorf("Expected card index 0, got %d", sink.CardIndex)
	}

	if len(sink.Volumes) != 2 {
		t.Fatalf("Expected 2 channel volumes, got %d", len(sink.Volumes))
	}
	if sink.Volumes[0] != 1.0 {
		t.Errorf("Expected left volume 1.0, got %f", sink.Volumes[0])
	}
	if sink.Volumes[1] != 0.5 {
		t.Errorf("Expected right volume 0.5, got %f", sink.Volumes[1])
	}

	if sink.ActivePort == nil {
		t.Fatal("Expected active port to be resolved")
	}
	if sink.ActivePort.Name != "analog-output-headphones" {
		t.Errorf("Expected active port 'analog-output-headphones', got %q", sink.ActivePort.Name)
	}
	if sink.ActivePort.Availability != PortYes {
		t.Errorf("Expected port availability yes, got %v", sink.ActivePort.Availability)
	}
}

func TestSinkFromProto_NoPorts(t *testing.T) {
	info := &proto.GetSinkInfoReply{
		SinkIndex: 3,
		SinkName:  "null-sink",
		Device:    "Null Output",
	}

	sink := sinkFromProto(info)

	if sink.ActivePort != nil {
		t.Errorf("Expected no active port for portless sink, got %+v", sink.ActivePort)
	}
	if len(sink.Volumes) != 0 {
		t.Errorf("Expected no volumes, got %v", sink.Volumes)
	}
}

func TestSinkFromProto_ActivePortNotListed(t *testing.T) {
	info := &proto.GetSinkInfoReply{
		SinkIndex: 4,
		SinkName:  "alsa_output.usb",
		Ports: []struct {
			Name        string
			Description string
			Priority    uint32
			Available   uint32 "24"
		}{
			{Name: "analog-output", Description: "Analog Output", Priority: 9900, Available: 1},
		},
		ActivePortName: "iec958-stereo-output",
	}

	sink := sinkFromProto(info)

	if sink.ActivePort != nil {
		t.Errorf("Expected nil active port when name matches no port, got %+v", sink.ActivePort)
	}
}

func TestPortAvailability(t *testing.T) {
	tests := []struct {
		wire     uint32
		expected PortAvailability
	}{
		{0, PortUnknown},
		{1, PortNo},
		{2, PortYes},
		{7, PortUnknown},
	}

	for _, tt := range tests {
		if got := portAvailability(tt.wire); got != tt.expected {
			t.Errorf("portAvailability(%d) = %v, expected %v", tt.wire, got, tt.expected)
		}
	}
}

func TestPortAvailabilityString(t *testing.T) {
	tests := []struct {
		value    PortAvailability
		expected string
	}{
		{PortUnknown, "unknown"},
		{PortNo, "no"},
		{PortYes, "yes"},
		{PortAvailability(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.expected {
			t.Errorf("String(%d) = %q, expected %q", int(tt.value), got, tt.expected)
		}
	}
}
