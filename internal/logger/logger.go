// Package logger builds the zap logger shared by the server and CLI.
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production (JSON) logger for "prod"/"production" and a
// development (console) logger otherwise.
func New(mode string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// NewQuiet is New for commands whose stdout is the product: only warnings
// and above, written to stderr.
func NewQuiet(mode string) (*zap.Logger, error) {
	l, err := New(mode)
	if err != nil {
		return nil, err
	}
	return l.WithOptions(zap.IncreaseLevel(zap.WarnLevel)), nil
}
