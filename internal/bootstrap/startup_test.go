package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bmb/internal/application/usecase"
	"github.com/bnema/bmb/internal/config"
	"github.com/bnema/bmb/internal/domain/profile"
	"github.com/bnema/bmb/internal/infrastructure/filesystem"
	"github.com/bnema/bmb/internal/infrastructure/lock"
)

func testInput(t *testing.T, id *profile.Identity) StartupInput {
	t.Helper()
	root := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Profiles.Root = filepath.Join(root, "profiles")
	cfg.History.Enabled = false
	return StartupInput{
		Config:   cfg,
		PagesDir: filepath.Join(root, "pages"),
		Identity: id,
		OpenUC:   usecase.NewOpenProfileUseCase(filesystem.New(), lock.NewFileLocker(), nil),
	}
}

func TestRunParallelInit_PagesOnly(t *testing.T) {
	input := testInput(t, nil)

	res, err := RunParallelInit(context.Background(), input, NewStartupTimer())
	require.NoError(t, err)

	assert.Nil(t, res.Profile)
	assert.Equal(t, "file://"+filepath.Join(input.PagesDir, "home.html"), res.Pages.HomeURI)
	assert.Equal(t, "file://"+filepath.Join(input.PagesDir, "snake.html"), res.Pages.MiniGameURI)
}

func TestRunParallelInit_OpensProfile(t *testing.T) {
	id := profile.Identity{Name: "user1"}
	input := testInput(t, &id)
	timer := NewStartupTimer()

	res, err := RunParallelInit(context.Background(), input, timer)
	require.NoError(t, err)
	require.NotNil(t, res.Profile)
	t.Cleanup(func() { _ = res.Profile.Close() })

	assert.Equal(t, filepath.Join(input.Config.Profiles.Root, "user1"), res.Profile.Storage.DataDir)
	assert.DirExists(t, res.Profile.Storage.CacheDir)

	_, ok := timer.Phase("profile")
	assert.True(t, ok)
	_, ok = timer.Phase("pages")
	assert.True(t, ok)
}

func TestRunParallelInit_ProfileInUse(t *testing.T) {
	id := profile.Identity{Name: "user2"}
	input := testInput(t, &id)

	first, err := RunParallelInit(context.Background(), input, NewStartupTimer())
	require.NoError(t, err)
	t.Cleanup(func() { _ = first.Profile.Close() })

	second, err := RunParallelInit(context.Background(), input, NewStartupTimer())
	require.ErrorIs(t, err, profile.ErrProfileInUse)
	assert.Nil(t, second)
}

func TestRunParallelInit_EphemeralProfile(t *testing.T) {
	id := profile.Identity{Name: "indigo", Ephemeral: true}
	input := testInput(t, &id)

	res, err := RunParallelInit(context.Background(), input, NewStartupTimer())
	require.NoError(t, err)
	require.NotNil(t, res.Profile)

	assert.True(t, res.Profile.Storage.Ephemeral())
	assert.NoDirExists(t, filepath.Join(input.Config.Profiles.Root, "indigo"))
}

func TestPreparePages_Overrides(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "start.html")
	require.NoError(t, os.WriteFile(custom, []byte("<p>hi</p>"), 0o644))

	pages, err := PreparePages(filepath.Join(dir, "pages"), config.PagesConfig{
		Home:     custom,
		MiniGame: "https://example.com/game",
	})
	require.NoError(t, err)

	assert.Equal(t, "file://"+custom, pages.HomeURI)
	assert.Equal(t, "https://example.com/game", pages.MiniGameURI)
}

func TestPreparePages_MissingOverride(t *testing.T) {
	dir := t.TempDir()

	_, err := PreparePages(filepath.Join(dir, "pages"), config.PagesConfig{
		Home: filepath.Join(dir, "nope.html"),
	})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "home page:"))
}
