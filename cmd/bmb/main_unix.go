//go:build linux || darwin

package main

import (
	"context"
	"runtime/debug"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/bnema/bmb/internal/logging"
)

// raisedLimits are lifted to their hard maximum at startup.
var raisedLimits = []struct {
	name     string
	resource int
}{
	{"core", unix.RLIMIT_CORE},
	{"nofile", unix.RLIMIT_NOFILE},
}

func enableCrashForensics() {
	debug.SetTraceback("crash")

	for _, l := range raisedLimits {
		var limit unix.Rlimit
		if err := unix.Getrlimit(l.resource, &limit); err != nil || limit.Cur >= limit.Max {
			continue
		}
		limit.Cur = limit.Max
		_ = unix.Setrlimit(l.resource, &limit)
	}
}

func logResourceLimits(ctx context.Context) {
	log := logging.FromContext(ctx)
	for _, l := range raisedLimits {
		var limit unix.Rlimit
		if err := unix.Getrlimit(l.resource, &limit); err != nil {
			log.Debug().Err(err).Str("limit", l.name).Msg("failed to read rlimit")
			continue
		}
		log.Debug().
			Str("limit", l.name).
			Str("soft", formatRlimit(limit.Cur)).
			Str("hard", formatRlimit(limit.Max)).
			Msg("resource limits")
	}
}

func formatRlimit(value uint64) string {
	if value == unix.RLIM_INFINITY {
		return "infinity"
	}
	return strconv.FormatUint(value, 10)
}
