// Package lock implements profile exclusivity with advisory flock(2) locks.
package lock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/domain/profile"
	"github.com/bnema/bmb/internal/logging"
)

const (
	lockDirPerm  = 0o700
	lockFilePerm = 0o600
)

// FileLocker takes non-blocking exclusive locks on lock files.
// The kernel drops the lock when the process dies.
type FileLocker struct{}

// NewFileLocker creates a new FileLocker.
func NewFileLocker() *FileLocker {
	return &FileLocker{}
}

// Acquire implements port.ProfileLocker.
func (*FileLocker) Acquire(ctx context.Context, path string) (io.Closer, error) {
	if path == "" {
		return nil, errors.New("lock path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), lockDirPerm); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, lockFilePerm)
	if err != nil {
		return nil, err
	}

	locked, err := tryLock(f, unix.LOCK_EX)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("flock %s: %w", path, err)
	}
	if !locked {
		_ = f.Close()
		return nil, profile.ErrProfileInUse
	}

	// The pid is informational only; the flock is what counts.
	if err := f.Truncate(0); err == nil {
		_, _ = f.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}

	logging.FromContext(ctx).Debug().Str("path", path).Msg("profile lock acquired")
	return &heldLock{f: f}, nil
}

// Held implements port.ProfileLocker.
func (*FileLocker) Held(_ context.Context, path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	locked, err := tryLock(f, unix.LOCK_SH)
	if err != nil {
		return false, err
	}
	if !locked {
		return true, nil
	}
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
	return false, nil
}

func tryLock(f *os.File, how int) (bool, error) {
	err := unix.Flock(int(f.Fd()), how|unix.LOCK_NB)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, unix.EWOULDBLOCK) {
		return false, nil
	}
	return false, err
}

type heldLock struct {
	f *os.File
}

func (l *heldLock) Close() error {
	if l.f == nil {
		return nil
	}
	_ = unix.Flock(int(l.f.Fd()), unix.LOCK_UN)
	err := l.f.Close()
	l.f = nil
	return err
}

var _ port.ProfileLocker = (*FileLocker)(nil)
