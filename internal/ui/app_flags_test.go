package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bmb/internal/application/usecase"
	"github.com/bnema/bmb/internal/config"
	"github.com/bnema/bmb/internal/domain/profile"
)

func TestGTKApplicationFlags_AreNonUnique(t *testing.T) {
	flags := gtkApplicationFlags()

	assert.Equal(t, gio.ApplicationNonUnique, flags)
	assert.NotEqual(t, gio.ApplicationFlagsNone, flags)
}

func TestWindowOptions(t *testing.T) {
	cfg := config.DefaultConfig()

	opts := windowOptions(cfg, profile.Identity{Name: "user3"})
	assert.Equal(t, "BMB PRO 3.1 — Profile: user3", opts.Title)
	assert.Equal(t, 1200, opts.Width)
	assert.Equal(t, 800, opts.Height)

	opts = windowOptions(cfg, profile.Identity{Name: "indigo", Ephemeral: true})
	assert.Equal(t, "BMB PRO 3.1 — Indigo (Incognito)", opts.Title)
}

func TestDependencies_Validate(t *testing.T) {
	set, err := profile.NewSet(config.DefaultIdentities(), []string{"indigo"})
	require.NoError(t, err)

	deps := &Dependencies{
		Ctx:           context.Background(),
		Config:        config.DefaultConfig(),
		Identities:    set,
		OpenProfileUC: usecase.NewOpenProfileUseCase(nil, nil, nil),
	}
	require.NoError(t, deps.Validate())

	deps.OpenProfileUC = nil
	err = deps.Validate()
	var depErr DependencyError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, "OpenProfileUC", depErr.Name)

	deps.Profile = &usecase.OpenedProfile{}
	assert.NoError(t, deps.Validate(), "an opened profile needs no opener")

	deps.Config = nil
	assert.EqualError(t, deps.Validate(), "missing required dependency: Config")
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, 0, exitCodeFor(nil))
	assert.Equal(t, 1, exitCodeFor(profile.ErrProfileInUse))
}
