package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bmb/internal/config"
	"github.com/bnema/bmb/internal/logging"
)

func TestNewLogger_Level(t *testing.T) {
	logger, cleanup, err := NewLogger(config.LoggingConfig{Level: "debug", Format: "json"}, "test.log")
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNewLogger_FileOutput(t *testing.T) {
	dir := t.TempDir()
	logger, cleanup, err := NewLogger(config.LoggingConfig{
		Level:         "info",
		Format:        "json",
		EnableFileLog: true,
		LogDir:        dir,
		MaxSize:       1,
		MaxBackups:    1,
		MaxAge:        1,
	}, "test.log")
	require.NoError(t, err)

	logger.Info().Str("profile", "user1").Msg("hello file")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello file"`)
	assert.Contains(t, string(data), `"profile":"user1"`)
}

func TestNewContext_AttachesLogger(t *testing.T) {
	ctx, cleanup := NewContext(context.Background(), config.LoggingConfig{Level: "warn"}, "test.log")
	defer cleanup()

	assert.Equal(t, zerolog.WarnLevel, logging.FromContext(ctx).GetLevel())
}
