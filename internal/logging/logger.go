// Package logging builds the zap loggers used by hexprime.
// All output goes to standard error; standard output is reserved for the
// verdict symbol.
package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hexprime/internal/config"
)

// Category names the component a log entry comes from.
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup, config loading
	CategoryIO        Category = "io"        // Reading input, writing the verdict
	CategoryDecode    Category = "decode"    // Hex decoding
	CategoryPrimality Category = "primality" // Probabilistic test
)

// New builds a logger from cfg. verbose forces the debug level.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc, err := buildConfig(cfg, verbose)
	if err != nil {
		return nil, err
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// buildConfig maps cfg onto a zap.Config. The format only picks the encoder;
// both formats run in production mode without stack traces.
func buildConfig(cfg config.LoggingConfig, verbose bool) (zap.Config, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("failed to parse log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	switch cfg.Format {
	case "json":
	case "console", "":
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	default:
		return zap.Config{}, fmt.Errorf("unknown log format: %s", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Development = false
	zc.DisableStacktrace = true
	zc.Sampling = nil
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc, nil
}

// For returns a child logger named after category.
func For(logger *zap.Logger, category Category) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.Named(string(category))
}

// WithRun tags every entry of logger with a fresh run_id.
func WithRun(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger.With(zap.String("run_id", uuid.NewString()))
}
