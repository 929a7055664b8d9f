package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/domain/profile"
	"github.com/bnema/bmb/internal/logging"
)

// ErrEphemeralProfile is returned when a disk operation targets an ephemeral identity.
var ErrEphemeralProfile = errors.New("profile is ephemeral")

// ProfileInfo describes one identity and its storage on disk.
type ProfileInfo struct {
	Identity  profile.Identity
	Storage   profile.Storage
	Exists    bool
	SizeBytes int64
	Locked    bool
}

// ManageProfilesUseCase lists and purges profile storage.
type ManageProfilesUseCase struct {
	fs     port.FileSystem
	locker port.ProfileLocker
}

// NewManageProfilesUseCase creates a new ManageProfilesUseCase.
func NewManageProfilesUseCase(fs port.FileSystem, locker port.ProfileLocker) *ManageProfilesUseCase {
	return &ManageProfilesUseCase{fs: fs, locker: locker}
}

// List reports every identity in set order.
func (u *ManageProfilesUseCase) List(ctx context.Context, root string, set *profile.Set) ([]ProfileInfo, error) {
	infos := make([]ProfileInfo, 0, len(set.All()))
	for _, id := range set.All() {
		storage, err := profile.Resolve(root, id)
		if err != nil {
			return nil, err
		}
		info := ProfileInfo{Identity: id, Storage: storage}
		if !storage.Ephemeral() {
			if info.Exists, err = u.fs.Exists(ctx, storage.DataDir); err != nil {
				return nil, fmt.Errorf("stat %s: %w", storage.DataDir, err)
			}
			if info.Exists {
				if info.SizeBytes, err = u.fs.GetSize(ctx, storage.DataDir); err != nil {
					return nil, fmt.Errorf("size of %s: %w", storage.DataDir, err)
				}
				if info.Locked, err = u.locker.Held(ctx, storage.LockPath()); err != nil {
					return nil, fmt.Errorf("check lock %s: %w", storage.LockPath(), err)
				}
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Purge deletes the storage of a persistent identity that no window is using.
func (u *ManageProfilesUseCase) Purge(ctx context.Context, root string, id profile.Identity) error {
	storage, err := profile.Resolve(root, id)
	if err != nil {
		return err
	}
	if storage.Ephemeral() {
		return fmt.Errorf("purge %s: %w", id.Name, ErrEphemeralProfile)
	}

	exists, err := u.fs.Exists(ctx, storage.DataDir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", storage.DataDir, err)
	}
	if !exists {
		return nil
	}

	// Holding the lock during removal keeps a starting window out.
	lock, err := u.locker.Acquire(ctx, storage.LockPath())
	if err != nil {
		return fmt.Errorf("purge %s: %w", id.Name, err)
	}
	defer lock.Close()

	if err := u.fs.RemoveAll(ctx, storage.DataDir); err != nil {
		return fmt.Errorf("remove %s: %w", storage.DataDir, err)
	}

	logging.FromContext(ctx).Info().
		Str("profile", id.Name).
		Str("path", storage.DataDir).
		Msg("profile purged")
	return nil
}
