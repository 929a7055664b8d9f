package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/bmb/internal/application/port/mocks"
	"github.com/bnema/bmb/internal/domain/profile"
)

func TestManageProfilesUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	fs := mocks.NewMockFileSystem(ctrl)
	locker := mocks.NewMockProfileLocker(ctrl)

	set, err := profile.NewSet([]string{"work", "fresh", "ghost"}, []string{"ghost"})
	require.NoError(t, err)

	fs.EXPECT().Exists(gomock.Any(), "/p/work").Return(true, nil)
	fs.EXPECT().GetSize(gomock.Any(), "/p/work").Return(int64(4096), nil)
	locker.EXPECT().Held(gomock.Any(), "/p/work/.lock").Return(true, nil)
	fs.EXPECT().Exists(gomock.Any(), "/p/fresh").Return(false, nil)

	infos, err := NewManageProfilesUseCase(fs, locker).List(context.Background(), "/p", set)
	require.NoError(t, err)
	require.Len(t, infos, 3)

	assert.Equal(t, "work", infos[0].Identity.Name)
	assert.True(t, infos[0].Exists)
	assert.True(t, infos[0].Locked)
	assert.Equal(t, int64(4096), infos[0].SizeBytes)

	assert.False(t, infos[1].Exists)
	assert.Zero(t, infos[1].SizeBytes)

	assert.True(t, infos[2].Storage.Ephemeral())
	assert.Empty(t, infos[2].Storage.DataDir)
}

func TestManageProfilesUseCase_Purge(t *testing.T) {
	ctx := context.Background()

	t.Run("removes unlocked profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fs := mocks.NewMockFileSystem(ctrl)
		locker := mocks.NewMockProfileLocker(ctrl)
		var order []string

		fs.EXPECT().Exists(gomock.Any(), "/p/work").Return(true, nil)
		locker.EXPECT().Acquire(gomock.Any(), "/p/work/.lock").Return(&closeRecorder{name: "lock", order: &order}, nil)
		fs.EXPECT().RemoveAll(gomock.Any(), "/p/work").Return(nil)

		err := NewManageProfilesUseCase(fs, locker).Purge(ctx, "/p", profile.Identity{Name: "work"})
		require.NoError(t, err)
		assert.Equal(t, []string{"lock"}, order)
	})

	t.Run("refuses locked profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fs := mocks.NewMockFileSystem(ctrl)
		locker := mocks.NewMockProfileLocker(ctrl)

		fs.EXPECT().Exists(gomock.Any(), "/p/work").Return(true, nil)
		locker.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(nil, profile.ErrProfileInUse)

		err := NewManageProfilesUseCase(fs, locker).Purge(ctx, "/p", profile.Identity{Name: "work"})
		assert.ErrorIs(t, err, profile.ErrProfileInUse)
	})

	t.Run("refuses ephemeral profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		err := NewManageProfilesUseCase(mocks.NewMockFileSystem(ctrl), mocks.NewMockProfileLocker(ctrl)).
			Purge(ctx, "/p", profile.Identity{Name: "indigo", Ephemeral: true})
		assert.ErrorIs(t, err, ErrEphemeralProfile)
	})

	t.Run("missing directory is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fs := mocks.NewMockFileSystem(ctrl)
		fs.EXPECT().Exists(gomock.Any(), "/p/work").Return(false, nil)

		err := NewManageProfilesUseCase(fs, mocks.NewMockProfileLocker(ctrl)).Purge(ctx, "/p", profile.Identity{Name: "work"})
		assert.NoError(t, err)
	})
}
