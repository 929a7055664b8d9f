package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// GenerateRunID creates an identifier for one browser process.
// Format: YYYYMMDD_HHMMSS_xxxx, e.g. 20251217_205106_a7b3.
func GenerateRunID() string {
	now := time.Now()
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return now.Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// ShortRunID returns the random suffix of a run ID.
func ShortRunID(runID string) string {
	if len(runID) < 4 {
		return runID
	}
	return runID[len(runID)-4:]
}

// WithRun tags every log line with the short form of runID, so lines from
// windows of different profiles sharing one log file can be told apart.
func WithRun(ctx context.Context, runID string) context.Context {
	logger := FromContext(ctx).With().Str("run", ShortRunID(runID)).Logger()
	return WithContext(ctx, logger)
}
