package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializePages_WritesBundledPages(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pages")

	paths, err := MaterializePages(dir)
	require.NoError(t, err)

	for _, name := range []string{HomePage, MiniGamePage} {
		path, ok := paths[name]
		require.True(t, ok, name)
		assert.Equal(t, filepath.Join(dir, name), path)

		want, err := Pages.ReadFile("pages/" + name)
		require.NoError(t, err)
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestMaterializePages_LeavesIdenticalFilesAlone(t *testing.T) {
	dir := t.TempDir()
	_, err := MaterializePages(dir)
	require.NoError(t, err)

	home := filepath.Join(dir, HomePage)
	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(home, old, old))

	_, err = MaterializePages(dir)
	require.NoError(t, err)

	info, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "unchanged page was rewritten")
}

func TestMaterializePages_RepairsModifiedFiles(t *testing.T) {
	dir := t.TempDir()
	home := filepath.Join(dir, HomePage)
	require.NoError(t, os.WriteFile(home, []byte("stale"), 0o644))

	_, err := MaterializePages(dir)
	require.NoError(t, err)

	got, err := os.ReadFile(home)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(got))
	assert.NoFileExists(t, home+".tmp")
}
