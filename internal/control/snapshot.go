package control

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/pulse"
)

// outputProfilePrefix marks profiles that drive playback hardware.
const outputProfilePrefix = "output:"

// ListOutputProfiles returns every card together with the subset of its
// profiles that are available, expose at least one sink and are
// output-directed. Cards whose profiles all fail the filter still appear,
// with an empty profile list. Card and profile order follow the server.
func (e *Engine) ListOutputProfiles() ([]CardProfiles, error) {
	var out []CardProfiles
	err := e.do("list_output_profiles", func() error {
		cards, err := e.conn.Cards()
		if err != nil {
			return fmt.Errorf("list output profiles: %w", err)
		}
		out = make([]CardProfiles, 0, len(cards))
		for _, card := range cards {
			entry := CardProfiles{
				Card:          card.Name,
				Description:   card.Description,
				ActiveProfile: card.ActiveProfile,
			}
			for _, p := range card.Profiles {
				if !isOutputProfile(p) {
					continue
				}
				entry.Profiles = append(entry.Profiles, ProfileEntry{
					Name:        p.Name,
					Description: p.Description,
				})
			}
			out = append(out, entry)
		}
		return nil
	})
	return out, err
}

func isOutputProfile(p pulse.Profile) bool {
	return p.Available && p.Sinks > 0 && strings.HasPrefix(p.Name, outputProfilePrefix)
}

// ListSinks returns all sinks and the server's default sink name. The default
// name is read once per call and each sink is stamped against that single
// read, so exactly one sink carries the flag whenever the server reports a
// valid default. Nothing is cached between calls.
func (e *Engine) ListSinks() (SinkList, error) {
	var out SinkList
	err := e.do("list_sinks", func() error {
		info, err := e.conn.ServerInfo()
		if err != nil {
			return fmt.Errorf("list sinks: %w", err)
		}
		sinks, err := e.conn.Sinks()
		if err != nil {
			return fmt.Errorf("list sinks: %w", err)
		}
		out.DefaultSink = info.DefaultSink
		out.Sinks = make([]SinkStatus, 0, len(sinks))
		for _, s := range sinks {
			out.Sinks = append(out.Sinks, SinkStatus{
				Sink:    s,
				Default: s.Name == info.DefaultSink,
			})
		}
		slog.Debug("Built sink snapshot", "sinks", len(out.Sinks), "default", out.DefaultSink)
		return nil
	})
	return out, err
}
