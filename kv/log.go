package kv

import (
	"log/slog"
)

// logEntryLimit caps how many entries LogValue expands.
const logEntryLimit = 16

// LogValue implements [slog.LogValuer] so a sequence can be handed to a
// logger directly:
//
//	slog.Debug("chunked", "result", chunks)
func (s *Seq[V]) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", s.Kind().String()),
		slog.Int("len", s.Len()),
	}
	n := min(s.Len(), logEntryLimit)
	if n > 0 {
		entries := make([]any, 0, n)
		for i := 0; i < n; i++ {
			entries = append(entries, slog.Any(s.keys[i].String(), s.values[i]))
		}
		attrs = append(attrs, slog.Group("entries", entries...))
	}
	if s.Len() > n {
		attrs = append(attrs, slog.Int("truncated", s.Len()-n))
	}
	return slog.GroupValue(attrs...)
}
