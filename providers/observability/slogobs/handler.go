package slogobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
)

const timeLayout = "2006-01-02 15:04:05"

// Handler is a slog.Handler that writes compact, pretty or JSON records.
// Handlers derived with WithAttrs and WithGroup share the parent's lock.
type Handler struct {
	format Format
	level  slog.Level
	output io.Writer
	colors bool
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string
}

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	Format Format
	Level  slog.Level
	// Output defaults to os.Stderr.
	Output io.Writer
	// Colors enables ANSI colors. They are also switched on automatically
	// when Output is a terminal and the format is not JSON.
	Colors bool
}

// NewHandler creates a Handler. A nil opts is allowed.
func NewHandler(opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	h := &Handler{
		format: opts.Format,
		level:  opts.Level,
		output: opts.Output,
		colors: opts.Colors,
		mu:     &sync.Mutex{},
	}
	if h.output == nil {
		h.output = os.Stderr
	}
	if h.format == "" {
		h.format = FormatCompact
	}
	if !h.colors && h.format != FormatJSON {
		if f, ok := h.output.(*os.File); ok {
			h.colors = isTerminal(f)
		}
	}
	return h
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	attrs := h.collectAttrs(r)

	var line []byte
	var err error
	switch h.format {
	case FormatPretty:
		line = h.pretty(r, attrs)
	case FormatJSON:
		line, err = h.json(r, attrs)
	default:
		line = h.compact(r, attrs)
	}
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.output.Write(line)
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func (h *Handler) compact(r slog.Record, attrs map[string]any) []byte {
	var b strings.Builder
	b.WriteString(r.Time.Format(timeLayout))
	b.WriteByte(' ')
	h.writeLevel(&b, r.Level, "%5s")
	b.WriteByte(' ')
	b.WriteString(r.Message)

	if len(attrs) > 0 {
		b.WriteString(" -> ")
		// encoding/json sorts map keys.
		data, err := json.Marshal(attrs)
		if err != nil {
			b.WriteString("[json-error]")
		} else {
			b.Write(data)
		}
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

func (h *Handler) pretty(r slog.Record, attrs map[string]any) []byte {
	var b strings.Builder
	b.WriteString(r.Time.Format(timeLayout))
	b.WriteByte(' ')
	h.writeLevel(&b, r.Level, "%-6s")
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteByte('\n')

	for _, key := range slices.Sorted(maps.Keys(attrs)) {
		fmt.Fprintf(&b, "    %s = %v\n", key, attrs[key])
	}
	return []byte(b.String())
}

func (h *Handler) json(r slog.Record, attrs map[string]any) ([]byte, error) {
	data := make(map[string]any, len(attrs)+3)
	for key, value := range attrs {
		data[key] = value
	}
	data["time"] = r.Time.Format("2006-01-02T15:04:05")
	data["level"] = levelString(r.Level)
	data["msg"] = r.Message

	line, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(line, '\n'), nil
}

func (h *Handler) writeLevel(b *strings.Builder, level slog.Level, layout string) {
	if h.colors {
		b.WriteString(colorForLevel(level))
		fmt.Fprintf(b, layout, levelString(level))
		b.WriteString(colorReset)
		return
	}
	fmt.Fprintf(b, layout, levelString(level))
}

// collectAttrs merges the handler's attributes with the record's. Record
// attributes win on key collisions.
func (h *Handler) collectAttrs(r slog.Record) map[string]any {
	attrs := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.Resolve().Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[h.prefix+a.Key] = a.Value.Resolve().Any()
		return true
	})
	return attrs
}

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

func colorForLevel(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return colorGray
	case level < slog.LevelInfo:
		return colorBlue
	case level < slog.LevelWarn:
		return colorGreen
	case level < slog.LevelError:
		return colorYellow
	default:
		return colorRed
	}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
