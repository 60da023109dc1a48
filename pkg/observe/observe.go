// Package observe bridges shape events and analysis runs to zap.
package observe

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chazu/solids/pkg/shape"
)

// Logger is a shape.Observer that writes each event as a structured log
// entry. Creations and mutations log at debug, rejections at warn.
type Logger struct {
	log *zap.Logger
}

var _ shape.Observer = (*Logger)(nil)

// New returns an observer logging to l under the "shape" name.
// A nil l yields a no-op logger.
func New(l *zap.Logger) *Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &Logger{log: l.Named("shape")}
}

// OnEvent implements shape.Observer.
func (o *Logger) OnEvent(e shape.Event) {
	fields := []zap.Field{
		zap.Stringer("kind", e.Kind),
		zap.String("name", e.Name),
	}
	if e.Field != "" {
		fields = append(fields, zap.String("field", e.Field))
	}

	switch e.Type {
	case shape.EventCreated:
		o.log.Debug("shape created", append(fields, zap.String("description", e.Description))...)
	case shape.EventMutated:
		o.log.Debug("shape mutated", append(fields, zap.Any("old", e.Old), zap.Any("new", e.New))...)
	case shape.EventRejected:
		fields = append(fields, zap.Any("value", e.New))
		if e.Err != nil {
			fields = append(fields, zap.Error(e.Err))
		}
		o.log.Warn("shape input rejected", fields...)
	}
}

// NewLogger builds the process logger from a level name. Development mode
// switches to the console encoder. Output goes to stderr.
func NewLogger(level string, development bool) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
