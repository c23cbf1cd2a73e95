// Package obs contains observability utilities: logging and metrics.
package obs

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// NewLogger builds the process logger. JSON output uses zap's production
// encoder; otherwise a human-readable console encoder is used.
func NewLogger(level string, json bool) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	cfg := zap.NewProductionConfig()
	if !json {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}

// InitLogger builds the logger and installs it as the zap global, which the
// resolvers and loaders log through.
func InitLogger(level string, json bool) (*zap.Logger, error) {
	logger, err := NewLogger(level, json)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
