package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/domain/profile"
	"github.com/bnema/bmb/internal/logging"
)

const profileDirPerm = 0o700

// OpenProfileInput selects the identity to open.
type OpenProfileInput struct {
	Root           string
	Identity       profile.Identity
	HistoryEnabled bool
}

// OpenedProfile is a profile in use by one window. Close releases it.
type OpenedProfile struct {
	Storage profile.Storage
	// History is nil for ephemeral profiles or when the database could not be opened.
	History port.HistoryRepository

	closers []io.Closer
}

// Close releases the history database and the profile lock.
func (p *OpenedProfile) Close() error {
	if p == nil {
		return nil
	}
	var errs []error
	// Release in reverse acquisition order so the lock goes last.
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	p.closers = nil
	return errors.Join(errs...)
}

// OpenProfileUseCase prepares an identity's storage for a browser window.
type OpenProfileUseCase struct {
	fs      port.FileSystem
	locker  port.ProfileLocker
	history port.HistoryOpener
}

// NewOpenProfileUseCase creates a new OpenProfileUseCase.
// A nil history opener disables history.
func NewOpenProfileUseCase(fs port.FileSystem, locker port.ProfileLocker, history port.HistoryOpener) *OpenProfileUseCase {
	return &OpenProfileUseCase{fs: fs, locker: locker, history: history}
}

// Execute creates the profile directories, locks the profile and opens its history.
// Ephemeral identities get an OpenedProfile without anything on disk.
func (u *OpenProfileUseCase) Execute(ctx context.Context, input OpenProfileInput) (*OpenedProfile, error) {
	log := logging.FromContext(ctx).With().Str("profile", input.Identity.Name).Logger()

	storage, err := profile.Resolve(input.Root, input.Identity)
	if err != nil {
		return nil, fmt.Errorf("resolve profile storage: %w", err)
	}

	opened := &OpenedProfile{Storage: storage}
	if storage.Ephemeral() {
		log.Info().Msg("ephemeral profile, nothing written to disk")
		return opened, nil
	}

	for _, dir := range []string{storage.DataDir, storage.CacheDir} {
		if err := u.fs.MkdirAll(ctx, dir, profileDirPerm); err != nil {
			return nil, fmt.Errorf("create profile directory %s: %w", dir, err)
		}
	}

	lock, err := u.locker.Acquire(ctx, storage.LockPath())
	if err != nil {
		return nil, fmt.Errorf("lock profile %s: %w", input.Identity.Name, err)
	}
	opened.closers = append(opened.closers, lock)

	if input.HistoryEnabled && u.history != nil {
		store, err := u.history.OpenHistory(ctx, storage.HistoryPath())
		if err != nil {
			// History is optional; browsing continues without it.
			log.Warn().Err(err).Str("path", storage.HistoryPath()).Msg("history disabled")
		} else {
			opened.History = store
			opened.closers = append(opened.closers, store)
		}
	}

	log.Info().
		Str("data_dir", storage.DataDir).
		Str("cache_dir", storage.CacheDir).
		Bool("history", opened.History != nil).
		Msg("profile opened")

	return opened, nil
}
