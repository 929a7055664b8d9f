package lock

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bmb/internal/domain/profile"
)

func TestFileLocker_SecondAcquireFails(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "user1", ".lock")
	locker := NewFileLocker()

	first, err := locker.Acquire(ctx, path)
	require.NoError(t, err)

	_, err = locker.Acquire(ctx, path)
	assert.ErrorIs(t, err, profile.ErrProfileInUse)

	require.NoError(t, first.Close())

	again, err := locker.Acquire(ctx, path)
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestFileLocker_Held(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), ".lock")
	locker := NewFileLocker()

	held, err := locker.Held(ctx, path)
	require.NoError(t, err)
	assert.False(t, held, "missing lock file is not held")

	l, err := locker.Acquire(ctx, path)
	require.NoError(t, err)

	held, err = locker.Held(ctx, path)
	require.NoError(t, err)
	assert.True(t, held)

	require.NoError(t, l.Close())

	held, err = locker.Held(ctx, path)
	require.NoError(t, err)
	assert.False(t, held)
}

func TestFileLocker_WritesPid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".lock")
	l, err := NewFileLocker().Acquire(context.Background(), path)
	require.NoError(t, err)
	defer l.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(data)))
}

func TestFileLocker_CloseTwice(t *testing.T) {
	l, err := NewFileLocker().Acquire(context.Background(), filepath.Join(t.TempDir(), ".lock"))
	require.NoError(t, err)
	require.NoError(t, l.Close())
	assert.NoError(t, l.Close())
}

func TestFileLocker_EmptyPath(t *testing.T) {
	_, err := NewFileLocker().Acquire(context.Background(), "")
	assert.Error(t, err)
}
