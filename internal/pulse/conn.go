package pulse

import (
	"fmt"
	"net"
	"os"
	"path"
	"strconv"

	"github.com/jfreymuth/pulse/proto"
)

// volumeNorm is the server's 100% volume step (PA_VOLUME_NORM).
const volumeNorm = 0x10000

// Conn is the control connection to the audio server. Implementations are not
// safe for concurrent use; the control engine serializes all access through a
// single worker goroutine.
type Conn interface {
	ServerInfo() (ServerInfo, error)
	Cards() ([]Card, error)
	Sinks() ([]Sink, error)
	SinkInputs() ([]SinkInput, error)
	SetCardProfile(cardIndex uint32, profileName string) error
	SetDefaultSink(sinkName string) error
	MoveSinkInput(streamIndex, sinkIndex uint32) error
	Close() error
}

type protoConn struct {
	client *proto.Client
	conn   net.Conn
}

// Dial connects to the audio server's native protocol socket and registers
// the connection under clientName. An empty server uses the usual lookup
// (PULSE_SERVER, then the per-user socket).
func Dial(server, clientName string) (Conn, error) {
	client, conn, err := proto.Connect(server)
	if err != nil {
		return nil, fmt.Errorf("connect to audio server: %w", err)
	}

	props := proto.PropList{
		"application.name":           proto.PropListString(clientName),
		"application.process.id":     proto.PropListString(strconv.Itoa(os.Getpid())),
		"application.process.binary": proto.PropListString(path.Base(os.Args[0])),
	}
	if err := client.Request(&proto.SetClientName{Props: props}, &proto.SetClientNameReply{}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("register client name: %w", err)
	}

	return &protoConn{client: client, conn: conn}, nil
}

func (c *protoConn) ServerInfo() (ServerInfo, error) {
	var reply proto.GetServerInfoReply
	if err := c.client.Request(&proto.GetServerInfo{}, &reply); err != nil {
		return ServerInfo{}, fmt.Errorf("query server info: %w", err)
	}
	return ServerInfo{
		Name:        reply.PackageName,
		Version:     reply.PackageVersion,
		Username:    reply.Username,
		Hostname:    reply.Hostname,
		DefaultSink: reply.DefaultSinkName,
	}, nil
}

func (c *protoConn) Cards() ([]Card, error) {
	var reply proto.GetCardInfoListReply
	if err := c.client.Request(&proto.GetCardInfoList{}, &reply); err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	cards := make([]Card, 0, len(reply))
	for _, info := range reply {
		cards = append(cards, cardFromProto(info))
	}
	return cards, nil
}

func (c *protoConn) Sinks() ([]Sink, error) {
	var reply proto.GetSinkInfoListReply
	if err := c.client.Request(&proto.GetSinkInfoList{}, &reply); err != nil {
		return nil, fmt.Errorf("query sinks: %w", err)
	}
	sinks := make([]Sink, 0, len(reply))
	for _, info := range reply {
		sinks = append(sinks, sinkFromProto(info))
	}
	return sinks, nil
}

func (c *protoConn) SinkInputs() ([]SinkInput, error) {
	var reply proto.GetSinkInputInfoListReply
	if err := c.client.Request(&proto.GetSinkInputInfoList{}, &reply); err != nil {
		return nil, fmt.Errorf("query sink inputs: %w", err)
	}
	inputs := make([]SinkInput, 0, len(reply))
	for _, info := range reply {
		inputs = append(inputs, SinkInput{
			Index:     info.SinkInputIndex,
			SinkIndex: info.SinkIndex,
			Media:     info.MediaName,
		})
	}
	return inputs, nil
}

func (c *protoConn) SetCardProfile(cardIndex uint32, profileName string) error {
	req := proto.SetCardProfile{CardIndex: cardIndex, ProfileName: profileName}
	if err := c.client.Request(&req, nil); err != nil {
		return fmt.Errorf("set card profile: %w", err)
	}
	return nil
}

func (c *protoConn) SetDefaultSink(sinkName string) error {
	if err := c.client.Request(&proto.SetDefaultSink{SinkName: sinkName}, nil); err != nil {
		return fmt.Errorf("set default sink: %w", err)
	}
	return nil
}

func (c *protoConn) MoveSinkInput(streamIndex, sinkIndex uint32) error {
	req := proto.MoveSinkInput{SinkInputIndex: streamIndex, DeviceIndex: sinkIndex}
	if err := c.client.Request(&req, nil); err != nil {
		return fmt.Errorf("move sink input %d: %w", streamIndex, err)
	}
	return nil
}

func (c *protoConn) Close() error {
	return c.conn.Close()
}

func cardFromProto(info *proto.GetCardInfoReply) Card {
	card := Card{
		Index:         info.CardIndex,
		Name:          info.CardName,
		Description:   propString(info.Properties, "device.description"),
		Profiles:      make([]Profile, 0, len(info.Profiles)),
		ActiveProfile: info.ActiveProfileName,
	}
	if card.Description == "" {
		card.Description = info.CardName
	}
	for _, p := range info.Profiles {
		card.Profiles = append(card.Profiles, Profile{
			Name:        p.Name,
			Description: p.Description,
			Sinks:       p.NumSinks,
			Sources:     p.NumSources,
			Available:   p.Available != 0,
		})
	}
	return card
}

func sinkFromProto(info *proto.GetSinkInfoReply) Sink {
	sink := Sink{
		Index:       info.SinkIndex,
		Name:        info.SinkName,
		Description: info.Device,
		CardIndex:   info.CardIndex,
		Muted:       info.Mute,
		Volumes:     make([]float64, 0, len(info.ChannelVolumes)),
	}
	for _, v := range info.ChannelVolumes {
		sink.Volumes = append(sink.Volumes, float64(v)/volumeNorm)
	}
	for _, port := range info.Ports {
		if port.Name != info.ActivePortName {
			continue
		}
		sink.ActivePort = &SinkPort{
			Name:         port.Name,
			Description:  port.Description,
			Availability: portAvailability(port.Available),
		}
		break
	}
	return sink
}

// portAvailability maps the wire encoding (0 unknown, 1 no, 2 yes).
func portAvailability(v uint32) PortAvailability {
	switch v {
	case 1:
		return PortNo
	case 2:
		return PortYes
	default:
		return PortUnknown
	}
}

func propString(props proto.PropList, key string) string {
	entry, ok := props[key]
	if !ok {
		return ""
	}
	return entry.String()
}
