// Package sqlite stores per-profile browsing history in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver (pure Go)
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite WASM binary

	"github.com/bnema/bmb/internal/logging"
)

const (
	// DefaultBusyTimeout is how long a statement waits on a locked database.
	DefaultBusyTimeout = 5 * time.Second
	// InteractiveBusyTimeout bounds the wait for connections used on the GTK main loop.
	InteractiveBusyTimeout = 100 * time.Millisecond
)

// NewConnection opens the database at dbPath, applies pragmas and migrations.
// It creates the database directory if it doesn't exist. A busyTimeout <= 0
// means DefaultBusyTimeout.
func NewConnection(ctx context.Context, dbPath string, busyTimeout time.Duration) (*sql.DB, error) {
	const dbDirPerm = 0o700
	log := logging.FromContext(ctx)

	if dbPath == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool (must be done before any queries)
	configurePool(db)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if busyTimeout <= 0 {
		busyTimeout = DefaultBusyTimeout
	}
	if err := applyPragmas(ctx, db, busyTimeout); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Debug().Str("path", dbPath).Dur("busy_timeout", busyTimeout).Msg("history database opened")

	return db, nil
}

// applyPragmas configures SQLite for a small single-writer database.
func applyPragmas(ctx context.Context, db *sql.DB, busyTimeout time.Duration) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",   // readers (bmb history) never block the browser
		"PRAGMA synchronous = NORMAL", // Safe in WAL mode
		"PRAGMA temp_store = MEMORY",
		fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds()),
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}
	return nil
}

// configurePool sets connection pool parameters for SQLite.
// SQLite only supports one writer at a time, so we limit connections.
func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)
}
