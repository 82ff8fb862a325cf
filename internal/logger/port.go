package logger

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/kindred/internal/ports"
)

// PortAdapter exposes a Logger through the context-aware ports.Logger
// contract, adding correlation_id when the context carries one.
type PortAdapter struct {
	base zerolog.Logger
}

var _ ports.Logger = (*PortAdapter)(nil)

// Port wraps l for infrastructure and application layers. A nil Logger yields
// an adapter that discards everything.
func (l *Logger) Port(component string) *PortAdapter {
	if l == nil {
		return &PortAdapter{base: zerolog.Nop()}
	}
	base := l.base
	if component != "" {
		base = base.With().Str("component", component).Logger()
	}
	return &PortAdapter{base: base}
}

func (a *PortAdapter) Debug(ctx context.Context, msg string, fields ...interface{}) {
	a.emit(ctx, a.base.Debug(), msg, fields)
}

func (a *PortAdapter) Info(ctx context.Context, msg string, fields ...interface{}) {
	a.emit(ctx, a.base.Info(), msg, fields)
}

func (a *PortAdapter) Warn(ctx context.Context, msg string, fields ...interface{}) {
	a.emit(ctx, a.base.Warn(), msg, fields)
}

func (a *PortAdapter) Error(ctx context.Context, msg string, fields ...interface{}) {
	a.emit(ctx, a.base.Error(), msg, fields)
}

// With returns a derived adapter that always writes the supplied pairs.
func (a *PortAdapter) With(fields ...interface{}) ports.Logger {
	builder := a.base.With()
	for i := 0; i < len(fields); i += 2 {
		key, value := pair(fields, i)
		if err, ok := value.(error); ok {
			builder = builder.AnErr(key, err)
			continue
		}
		builder = builder.Interface(key, value)
	}
	return &PortAdapter{base: builder.Logger()}
}

func (a *PortAdapter) emit(ctx context.Context, event *zerolog.Event, msg string, fields []interface{}) {
	if event == nil {
		return
	}
	if id := ports.GetCorrelationID(ctx); id != "" {
		event = event.Str("correlation_id", id)
	}
	for i := 0; i < len(fields); i += 2 {
		key, value := pair(fields, i)
		if err, ok := value.(error); ok {
			event = event.AnErr(key, err)
			continue
		}
		event = event.Interface(key, value)
	}
	event.Msg(msg)
}

func pair(fields []interface{}, i int) (string, interface{}) {
	key, ok := fields[i].(string)
	if !ok {
		key = fmt.Sprint(fields[i])
	}
	if i+1 >= len(fields) {
		return key, "(MISSING)"
	}
	return key, fields[i+1]
}
