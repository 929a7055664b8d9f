package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_ExistsAndIsDirectory(t *testing.T) {
	ctx := context.Background()
	a := New()
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	ok, err := a.Exists(ctx, file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Exists(ctx, filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)

	isDir, err := a.IsDirectory(ctx, dir)
	require.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = a.IsDirectory(ctx, file)
	require.NoError(t, err)
	assert.False(t, isDir)
}

func TestAdapter_GetSize(t *testing.T) {
	ctx := context.Background()
	a := New()
	dir := t.TempDir()

	require.NoError(t, a.MkdirAll(ctx, filepath.Join(dir, "cache", "deep"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), make([]byte, 100), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cache", "deep", "b"), make([]byte, 23), 0o600))

	size, err := a.GetSize(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, int64(123), size)

	size, err = a.GetSize(ctx, filepath.Join(dir, "a"))
	require.NoError(t, err)
	assert.Equal(t, int64(100), size)

	size, err = a.GetSize(ctx, filepath.Join(dir, "nope"))
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestAdapter_RemoveAll(t *testing.T) {
	ctx := context.Background()
	a := New()
	dir := filepath.Join(t.TempDir(), "profile")
	require.NoError(t, a.MkdirAll(ctx, filepath.Join(dir, "cache"), 0o700))

	require.NoError(t, a.RemoveAll(ctx, dir))

	ok, err := a.Exists(ctx, dir)
	require.NoError(t, err)
	assert.False(t, ok)
}
