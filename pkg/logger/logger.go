// Package logger provides structured logging for the project on top of
// log/slog, with leveled colorized terminal output for interactive use and
// JSON output for machine consumption.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// ANSI color codes for terminal level markers.
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// Options configures logger construction.
type Options struct {
	// Level is the minimum level to emit.
	Level slog.Level
	// Format selects the output encoding: "text" (default) or "json".
	Format string
	// Output is the destination writer. Defaults to os.Stderr.
	Output io.Writer
	// NoColor disables ANSI level coloring in text output.
	NoColor bool
}

// NewDefaultLogger creates a colorized text logger at the given level,
// writing to stderr.
func NewDefaultLogger(level slog.Level) *slog.Logger {
	return NewLogger(Options{Level: level})
}

// NewLogger creates a logger from the given options.
func NewLogger(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	if strings.EqualFold(opts.Format, "json") {
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: opts.Level}))
	}

	return slog.New(&textHandler{
		mu:    &sync.Mutex{},
		out:   out,
		level: opts.Level,
		color: !opts.NoColor,
	})
}

// textHandler renders records as "time [LEVEL] msg key=value ...", with the
// level marker colored unless coloring is disabled. The stdlib text handler
// escapes ANSI sequences, so coloring needs its own handler.
type textHandler struct {
	mu     *sync.Mutex
	out    io.Writer
	level  slog.Leveler
	color  bool
	attrs  []slog.Attr
	prefix string
}

func (h *textHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *textHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format(time.RFC3339))
		b.WriteByte(' ')
	}

	b.WriteByte('[')
	if h.color {
		b.WriteString(levelColor(r.Level))
	}
	b.WriteString(r.Level.String())
	if h.color {
		b.WriteString(colorReset)
	}
	b.WriteString("] ")
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		writeAttr(&b, "", attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, h.prefix, attr)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	h2.attrs = append(h2.attrs, h.attrs...)
	for _, attr := range attrs {
		attr.Key = h.prefix + attr.Key
		h2.attrs = append(h2.attrs, attr)
	}
	return &h2
}

func (h *textHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func writeAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		for _, member := range attr.Value.Group() {
			writeAttr(b, prefix+attr.Key+".", member)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(attr.Key)
	b.WriteByte('=')
	val := attr.Value.String()
	if strings.ContainsAny(val, " \t\n\"") {
		fmt.Fprintf(b, "%q", val)
	} else {
		b.WriteString(val)
	}
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return colorRed
	case level >= slog.LevelWarn:
		return colorYellow
	case level >= slog.LevelInfo:
		return colorGreen
	}
	return colorGray
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") into
// a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
