// Package util provides common utilities including logging helpers,
// file system paths, and small conversion functions.
package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig selects the level, encoding and destination of the application log.
type LogConfig struct {
	Level    string
	Encoding string
	// File is the log destination. Empty discards output.
	File string
}

// NewLogger builds a zap.Logger tagged with a fresh session id. The terminal
// belongs to the UI, so output goes to a file rather than stdout.
func NewLogger(cfg LogConfig) (*zap.Logger, func() error, error) {
	if strings.TrimSpace(cfg.File) == "" {
		return zap.NewNop(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(cfg, f).With(zap.String("session", uuid.NewString())), f.Close, nil
}

func newLogger(cfg LogConfig, w io.Writer) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	default:
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core, zap.AddCaller())
}

// LogError logs an error with context if it is non-nil.
func LogError(log *zap.Logger, context string, err error) {
	if err != nil && log != nil {
		log.Error(context, zap.Error(err))
	}
}
