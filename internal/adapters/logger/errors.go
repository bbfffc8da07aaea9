package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager is implemented by zerr.Error and yields the message without its cause.
type messager interface {
	Message() string
}

// metadater is implemented by zerr.Error.
type metadater interface {
	Metadata() map[string]any
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries flattens an error chain into one entry per layer.
// Joined errors contribute each of their members in order. zerr layers with an
// empty message only carry metadata, which is folded into the next entry.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	var walk func(error)
	walk = func(current error) {
		for current != nil {
			if joined, ok := current.(interface{ Unwrap() []error }); ok {
				for _, member := range joined.Unwrap() {
					walk(member)
				}
				return
			}

			m, ok := current.(messager)
			if !ok {
				entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
				pending = nil
				return
			}

			var md map[string]any
			if withMD, ok := current.(metadater); ok {
				md = withMD.Metadata()
			}

			if m.Message() == "" {
				if len(md) > 0 {
					if pending == nil {
						pending = map[string]any{}
					}
					maps.Copy(pending, md)
				}
			} else {
				if len(pending) > 0 {
					if md == nil {
						md = map[string]any{}
					}
					maps.Copy(md, pending)
					pending = nil
				}
				entries = append(entries, errorEntry{message: m.Message(), metadata: md})
			}
			current = errors.Unwrap(current)
		}
	}
	walk(err)

	if len(pending) > 0 && len(entries) > 0 {
		last := &entries[len(entries)-1]
		if last.metadata == nil {
			last.metadata = map[string]any{}
		}
		maps.Copy(last.metadata, pending)
	}

	return entries
}

// formatErrorEntries renders the entries as a headline plus a "Caused by" list.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")
		if suffix := formatMetadata(entry.metadata); suffix != "" {
			msgLines[0] += " " + suffix
		}

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(md map[string]any) string {
	if len(md) == 0 {
		return ""
	}

	parts := make([]string, 0, len(md))
	for _, key := range slices.Sorted(maps.Keys(md)) {
		parts = append(parts, fmt.Sprintf("%s=%v", key, md[key]))
	}

	return joinPairs(parts)
}

// joinPairs renders key=value pairs the way log lines and error causes share.
func joinPairs(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
