package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/domain/entity"
	"github.com/bnema/bmb/internal/logging"
)

const logURLMaxLen = 60

const (
	upsertHistorySQL = `
INSERT INTO history (url, title, visit_count, last_visited, created_at)
VALUES (?, ?, 1, ?, ?)
ON CONFLICT (url) DO UPDATE SET
    visit_count  = history.visit_count + 1,
    last_visited = excluded.last_visited,
    title        = CASE WHEN excluded.title <> '' THEN excluded.title ELSE history.title END`

	updateTitleSQL = `UPDATE history SET title = ? WHERE url = ?`

	recentHistorySQL = `
SELECT id, url, title, visit_count, last_visited, created_at
FROM history
ORDER BY last_visited DESC, id DESC
LIMIT ?`

	clearHistorySQL = `DELETE FROM history`

	statsHistorySQL = `SELECT COUNT(*), COALESCE(SUM(visit_count), 0) FROM history`
)

// HistoryStore is a history database of one profile.
type HistoryStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewHistoryStore wraps an open, migrated database.
func NewHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{db: db, now: time.Now}
}

// OpenHistoryStore opens (and migrates) the database at path.
func OpenHistoryStore(ctx context.Context, path string, busyTimeout time.Duration) (*HistoryStore, error) {
	db, err := NewConnection(ctx, path, busyTimeout)
	if err != nil {
		return nil, err
	}
	return NewHistoryStore(db), nil
}

func (s *HistoryStore) Record(ctx context.Context, url, title string) error {
	logging.FromContext(ctx).Debug().
		Str("url", logging.TruncateURL(url, logURLMaxLen)).
		Msg("saving history entry")

	now := s.now().UnixMilli()
	if _, err := s.db.ExecContext(ctx, upsertHistorySQL, url, title, now, now); err != nil {
		return fmt.Errorf("upsert history: %w", err)
	}
	return nil
}

func (s *HistoryStore) UpdateTitle(ctx context.Context, url, title string) error {
	if _, err := s.db.ExecContext(ctx, updateTitleSQL, title, url); err != nil {
		return fmt.Errorf("update history title: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, most recent first. limit <= 0 returns everything.
func (s *HistoryStore) Recent(ctx context.Context, limit int) ([]*entity.HistoryEntry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx, recentHistorySQL, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []*entity.HistoryEntry
	for rows.Next() {
		var (
			e                    entity.HistoryEntry
			lastVisited, created int64
		)
		if err := rows.Scan(&e.ID, &e.URL, &e.Title, &e.VisitCount, &lastVisited, &created); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.LastVisited = time.UnixMilli(lastVisited)
		e.CreatedAt = time.UnixMilli(created)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}

func (s *HistoryStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, clearHistorySQL); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *HistoryStore) Stats(ctx context.Context) (*entity.HistoryStats, error) {
	var stats entity.HistoryStats
	if err := s.db.QueryRowContext(ctx, statsHistorySQL).Scan(&stats.TotalEntries, &stats.TotalVisits); err != nil {
		return nil, fmt.Errorf("history stats: %w", err)
	}
	return &stats, nil
}

// Close closes the database connection gracefully.
func (s *HistoryStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Opener implements port.HistoryOpener.
type Opener struct {
	// BusyTimeout is passed to NewConnection; zero means DefaultBusyTimeout.
	BusyTimeout time.Duration
}

// OpenHistory implements port.HistoryOpener.
func (o Opener) OpenHistory(ctx context.Context, path string) (port.HistoryStore, error) {
	store, err := OpenHistoryStore(ctx, path, o.BusyTimeout)
	if err != nil {
		return nil, err
	}
	return store, nil
}

var (
	_ port.HistoryStore  = (*HistoryStore)(nil)
	_ port.HistoryOpener = Opener{}
)
