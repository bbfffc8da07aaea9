package telemetry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pacdef/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor by logging finished spans at debug level.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its duration, attributes and failure if any.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}
	b.logger.Debug(formatSpan(s.Name(), s.EndTime().Sub(s.StartTime()), s.Attributes(), s.Status().Code, s.Status().Description))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

func formatSpan(name string, d time.Duration, attrs []attribute.KeyValue, code codes.Code, desc string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "span %s took %s", name, d.Round(time.Millisecond))

	sorted := slices.Clone(attrs)
	slices.SortFunc(sorted, func(a, b attribute.KeyValue) int {
		return strings.Compare(string(a.Key), string(b.Key))
	})
	for _, kv := range sorted {
		fmt.Fprintf(&sb, " %s=%s", kv.Key, kv.Value.Emit())
	}

	if code == codes.Error {
		sb.WriteString(" failed: " + desc)
	}
	return sb.String()
}
