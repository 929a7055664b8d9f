package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bmb/internal/application/usecase"
	"github.com/bnema/bmb/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	t.Setenv("ENV", "")
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	a, err := NewAppWithManager(config.NewManagerWithDir(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestNewAppWithManager_DefaultIdentities(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, config.DefaultIdentities(), a.Identities.Names())
	assert.NotNil(t, a.Theme)
	assert.NotNil(t, a.ProfilesUC)
	assert.NotNil(t, a.Ctx())
}

func TestOpenHistory_NoDatabaseYet(t *testing.T) {
	a := newTestApp(t)

	_, err := a.OpenHistory(a.Ctx(), "user1")
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestOpenHistory_EphemeralHasNone(t *testing.T) {
	a := newTestApp(t)

	_, err := a.OpenHistory(a.Ctx(), "indigo")
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestOpenHistory_UnknownProfile(t *testing.T) {
	a := newTestApp(t)

	_, err := a.OpenHistory(a.Ctx(), "nobody")
	assert.Error(t, err)
}

func TestOpenHistory_ReadsWhatTheBrowserRecorded(t *testing.T) {
	a := newTestApp(t)
	ctx := a.Ctx()

	id, err := a.Identities.Lookup("user2")
	require.NoError(t, err)
	opened, err := a.OpenProfileUseCase().Execute(ctx, usecase.OpenProfileInput{
		Root:           a.Config.Profiles.Root,
		Identity:       id,
		HistoryEnabled: true,
	})
	require.NoError(t, err)
	require.NotNil(t, opened.History)
	require.NoError(t, opened.History.Record(ctx, "https://example.com/", "Example"))
	require.NoError(t, opened.Close())

	store, err := a.OpenHistory(ctx, "user2")
	require.NoError(t, err)
	defer store.Close()

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://example.com/", entries[0].URL)
	assert.Equal(t, "Example", entries[0].Title)
}
