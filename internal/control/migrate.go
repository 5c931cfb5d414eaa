package control

import (
	"fmt"
	"log/slog"

	"github.com/seahawk1986/yavdr-pulse-dbusctl/internal/pulse"
)

// SetDefaultSink makes sinkName the server's default sink, then migrates
// every stream that was active at that moment onto it. The two phases differ
// in strictness: resolving the sink and issuing the default-set command are
// all-or-nothing (any failure returns false and no stream is touched), while
// the per-stream moves are best-effort (a failed move is logged and the
// remaining moves still run). The call reports true once the default-set
// command succeeded and every snapshotted stream had its move attempted;
// move outcomes are not verified afterwards. Streams that start during the
// migration follow the server's new default policy on their own.
func (e *Engine) SetDefaultSink(sinkName string) (bool, error) {
	var ok bool
	err := e.do("set_default_sink", func() error {
		sinks, err := e.conn.Sinks()
		if err != nil {
			slog.Error("Sink lookup failed", "sink", sinkName, "error", err)
			return nil
		}
		var target *pulse.Sink
		for i := range sinks {
			if sinks[i].Name == sinkName {
				target = &sinks[i]
				break
			}
		}
		if target == nil {
			slog.Warn("Sink not found", "sink", sinkName)
			return nil
		}

		if err := e.conn.SetDefaultSink(target.Name); err != nil {
			slog.Error("Setting default sink failed", "sink", sinkName, "error", err)
			return nil
		}

		streams, err := e.conn.SinkInputs()
		if err != nil {
			return fmt.Errorf("enumerate streams after default change: %w", err)
		}
		for _, stream := range streams {
			if err := e.conn.MoveSinkInput(stream.Index, target.Index); err != nil {
				slog.Warn("Stream not moved", "stream", stream.Index, "media", stream.Media, "error", err)
			}
		}

		slog.Info("Default sink changed", "sink", target.Name, "streams", len(streams))
		ok = true
		return nil
	})
	return ok, err
}
