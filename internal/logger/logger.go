package logger

import (
	"fmt"
	"io"

	"github.com/rogerio-castellano/inventory-store/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger to provide application-specific logging
type Logger struct {
	*zap.SugaredLogger
}

// New creates a logger writing to out. The console format prefixes each
// line with a timestamp and level; the json format emits one object per line.
func New(cfg config.LoggerConfig, out io.Writer) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "json":
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	case "console", "":
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05,000")
		encCfg.ConsoleSeparator = " - "
		encCfg.CallerKey = zapcore.OmitKey
		encCfg.NameKey = zapcore.OmitKey
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("invalid log format: %q", cfg.Format)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), zap.NewAtomicLevelAt(level))

	return &Logger{
		SugaredLogger: zap.New(core).Sugar(),
	}, nil
}

// WithComponent adds a component field to the logger
func (l *Logger) WithComponent(component string) *zap.SugaredLogger {
	return l.SugaredLogger.With("component", component)
}

// Close flushes any buffered log entries
func (l *Logger) Close() error {
	return l.SugaredLogger.Sync()
}
