package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/pacdef/internal/ui/output"
	"go.trai.ch/pacdef/internal/ui/style"
)

// levelStyle is the glyph and colour a log line starts with.
type levelStyle struct {
	prefix string
	color  lipgloss.Color
}

func styleFor(level slog.Level) levelStyle {
	switch {
	case level >= slog.LevelError:
		return levelStyle{prefix: style.Cross + " ", color: style.Red}
	case level >= slog.LevelWarn:
		return levelStyle{prefix: style.Warning + " ", color: style.Yellow}
	case level >= slog.LevelInfo:
		return levelStyle{color: style.Slate}
	default:
		return levelStyle{prefix: "debug: ", color: style.Slate}
	}
}

// PrettyHandler is a slog.Handler that writes one coloured line per record.
// Attributes follow the message as "(key=value, ...)", the same shape error
// metadata takes in the "Caused by" list.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []string
	prefix string
}

// NewPrettyHandler creates a PrettyHandler writing to w. A nil writer means stderr.
// When opts.Level is a *slog.LevelVar it is shared, so later level changes apply.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	ls := styleFor(r.Level)

	parts := slices.Clip(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, attr)
		return true
	})

	msg := ls.prefix + r.Message
	if suffix := joinPairs(parts); suffix != "" {
		msg += " " + suffix
	}

	styled := h.out.String(msg).Foreground(termenv.RGBColor(string(ls.color)))
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns a new Handler with the given attributes appended. They
// keep the group prefix that is active now.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	parts := slices.Clone(h.attrs)
	for _, attr := range attrs {
		parts = appendAttr(parts, h.prefix, attr)
	}

	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		attrs:  parts,
		prefix: h.prefix,
	}
}

// WithGroup returns a new Handler qualifying later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		attrs:  h.attrs,
		prefix: h.prefix + name + ".",
	}
}

// appendAttr formats attr as key=value under prefix. Group values are
// flattened into dotted keys and empty attributes are dropped.
func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}

	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			parts = appendAttr(parts, prefix, member)
		}
		return parts
	}

	return append(parts, prefix+attr.Key+"="+attr.Value.String())
}
