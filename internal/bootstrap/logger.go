package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/bmb/internal/config"
	"github.com/bnema/bmb/internal/logging"
)

// NewLogger builds the process logger from the logging section. When file
// logging is enabled events are also written to a rotated file in LogDir;
// the returned cleanup closes it.
func NewLogger(cfg config.LoggingConfig, fileName string) (zerolog.Logger, func(), error) {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.Level)
	if cfg.Format == "json" || cfg.Format == "console" {
		lc.Format = cfg.Format
	}
	lc.TimeFormat = "15:04:05"

	cleanup := func() {}
	if cfg.EnableFileLog && cfg.LogDir != "" {
		rotator, err := logging.NewLogRotator(logging.RotatorOptions{
			Dir:        cfg.LogDir,
			Name:       fileName,
			MaxSizeMB:  cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAgeDays: cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		if err != nil {
			return logging.New(lc), cleanup, fmt.Errorf("open log file: %w", err)
		}
		lc.FileWriter = rotator
		cleanup = func() { _ = rotator.Close() }
	}
	return logging.New(lc), cleanup, nil
}

// NewContext returns a context carrying a logger for cfg. A failing log
// file is reported on the returned logger and otherwise ignored.
func NewContext(ctx context.Context, cfg config.LoggingConfig, fileName string) (context.Context, func()) {
	logger, cleanup, err := NewLogger(cfg, fileName)
	if err != nil {
		logger.Warn().Err(err).Msg("file logging disabled")
	}
	return logging.WithContext(ctx, logger), cleanup
}
