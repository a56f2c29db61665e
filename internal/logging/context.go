package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context. Without one it returns a
// disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithPreset tags the logger with the preset and its resolution target.
func WithPreset(ctx context.Context, name, mode, accent string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().
		Str("preset", name).
		Str("mode", mode).
		Str("accent", accent).
		Logger()
	return WithContext(ctx, childLogger)
}
