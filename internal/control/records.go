package control

import "github.com/seahawk1986/yavdr-pulse-dbusctl/internal/pulse"

// ProfileEntry is one selectable output profile in a card listing.
type ProfileEntry struct {
	Name        string
	Description string
}

// CardProfiles is the per-card result of ListOutputProfiles. Profiles holds
// only the output-capable subset; ActiveProfile is whatever profile the card
// currently runs, filtered or not.
type CardProfiles struct {
	Card          string
	Description   string
	Profiles      []ProfileEntry
	ActiveProfile string
}

// SinkStatus is a sink plus its default flag, stamped at snapshot time.
type SinkStatus struct {
	pulse.Sink
	Default bool
}

// SinkList is a full sink snapshot: all sinks and the default sink name they
// were stamped against.
type SinkList struct {
	Sinks       []SinkStatus
	DefaultSink string
}
