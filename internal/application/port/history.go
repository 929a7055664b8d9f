package port

import (
	"context"

	"github.com/bnema/bmb/internal/domain/entity"
)

//go:generate mockgen -source=history.go -destination=mocks/mock_history.go -package=mocks

// HistoryRepository persists visited addresses of one profile.
type HistoryRepository interface {
	// Record upserts url, bumping its visit count.
	Record(ctx context.Context, url, title string) error
	UpdateTitle(ctx context.Context, url, title string) error
	Recent(ctx context.Context, limit int) ([]*entity.HistoryEntry, error)
	Clear(ctx context.Context) error
	Stats(ctx context.Context) (*entity.HistoryStats, error)
}

// HistoryStore is an open history database.
type HistoryStore interface {
	HistoryRepository
	Close() error
}

// HistoryOpener opens the history database at path, creating and migrating it.
type HistoryOpener interface {
	OpenHistory(ctx context.Context, path string) (HistoryStore, error)
}
