package port

import (
	"context"
	"io"
)

//go:generate mockgen -source=profile.go -destination=mocks/mock_profile.go -package=mocks

// ProfileLocker grants exclusive use of a profile directory across processes.
type ProfileLocker interface {
	// Acquire takes the lock at path without blocking.
	// It returns profile.ErrProfileInUse when another process holds it.
	Acquire(ctx context.Context, path string) (io.Closer, error)
	// Held reports whether some process currently holds the lock.
	Held(ctx context.Context, path string) (bool, error)
}
