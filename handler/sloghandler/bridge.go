package sloghandler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/philipp01105/nlog/core"
	"github.com/philipp01105/nlog/logger"
)

// BridgeHandler is a slog.Handler that emits through a registry Logger.
// Attributes are rendered as key=value pairs appended to the message; an
// attribute holding an error becomes the record's failure payload.
type BridgeHandler struct {
	logger *logger.Logger
	attrs  []slog.Attr
	group  string
}

// Bridge creates a slog.Handler backed by l.
func Bridge(l *logger.Logger) *BridgeHandler {
	return &BridgeHandler{logger: l}
}

// Enabled reports whether l accepts records at the given level.
func (b *BridgeHandler) Enabled(_ context.Context, level slog.Level) bool {
	return b.logger.Enabled(FromSlog(level))
}

// Handle converts r to a core.Record and emits it.
func (b *BridgeHandler) Handle(_ context.Context, r slog.Record) error {
	var (
		sb  strings.Builder
		err error
	)
	sb.WriteString(r.Message)

	add := func(prefix string, a slog.Attr) {
		a.Value = a.Value.Resolve()
		if a.Equal(slog.Attr{}) {
			return
		}
		if a.Value.Kind() == slog.KindAny && err == nil {
			if e, ok := a.Value.Any().(error); ok {
				err = e
				return
			}
		}
		if a.Value.Kind() == slog.KindGroup && len(a.Value.Group()) == 0 {
			return
		}
		sb.WriteByte(' ')
		appendAttr(&sb, prefix, a)
	}
	// Attrs from WithAttrs already carry their group prefix.
	for _, a := range b.attrs {
		add("", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		add(b.group, a)
		return true
	})

	b.logger.Emit(core.NewRecord(r.Time, FromSlog(r.Level), b.logger.Name(), sb.String(), err))
	return nil
}

// WithAttrs returns a new BridgeHandler with additional attributes.
func (b *BridgeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(b.attrs), len(b.attrs)+len(attrs))
	copy(newAttrs, b.attrs)
	for _, a := range attrs {
		if b.group != "" {
			a.Key = b.group + "." + a.Key
		}
		newAttrs = append(newAttrs, a)
	}
	return &BridgeHandler{
		logger: b.logger,
		attrs:  newAttrs,
		group:  b.group,
	}
}

// WithGroup returns a new BridgeHandler with the given group name.
func (b *BridgeHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return b
	}
	newGroup := name
	if b.group != "" {
		newGroup = b.group + "." + name
	}
	return &BridgeHandler{
		logger: b.logger,
		attrs:  b.attrs,
		group:  newGroup,
	}
}

// appendAttr writes a as key=value, flattening groups with dotted keys.
func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key == "" {
			key = prefix
		}
		for i, ga := range a.Value.Group() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			appendAttr(sb, key, ga)
		}
		return
	}
	sb.WriteString(key)
	sb.WriteByte('=')
	fmt.Fprint(sb, a.Value.Any())
}
