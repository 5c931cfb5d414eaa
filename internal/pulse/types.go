package pulse

// ServerInfo describes the audio server end of the connection.
type ServerInfo struct {
	Name        string
	Version     string
	Username    string
	Hostname    string
	DefaultSink string
}

// Profile is one selectable operating mode of a Card. Sinks and Sources count
// the endpoints the profile would expose when active.
type Profile struct {
	Name        string
	Description string
	Sinks       uint32
	Sources     uint32
	Available   bool
}

// Card is a physical or logical audio device managed by the server. Profiles
// keeps the server-reported order.
type Card struct {
	Index         uint32
	Name          string
	Description   string
	Profiles      []Profile
	ActiveProfile string
}

// PortAvailability is the server's three-valued availability state of a port.
type PortAvailability int

const (
	PortUnknown PortAvailability = iota
	PortNo
	PortYes
)

func (a PortAvailability) String() string {
	switch a {
	case PortNo:
		return "no"
	case PortYes:
		return "yes"
	default:
		return "unknown"
	}
}

// SinkPort is the port a sink is currently using.
type SinkPort struct {
	Name         string
	Description  string
	Availability PortAvailability
}

// Sink is a playback endpoint. Volumes holds one normalized value per channel
// (1.0 = 100%) in channel order. ActivePort is nil when the sink has no
// active port.
type Sink struct {
	Index       uint32
	Name        string
	Description string
	CardIndex   uint32
	Muted       bool
	Volumes     []float64
	ActivePort  *SinkPort
}

// SinkInput is a live client stream currently routed to some sink.
type SinkInput struct {
	Index     uint32
	SinkIndex uint32
	Media     string
}
