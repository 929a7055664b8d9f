package port

import (
	"context"
	"os"
)

//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks

// FileSystem provides file system operations for the application layer.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	IsDirectory(ctx context.Context, path string) (bool, error)
	GetSize(ctx context.Context, path string) (int64, error)
	MkdirAll(ctx context.Context, path string, perm os.FileMode) error
	RemoveAll(ctx context.Context, path string) error
}
