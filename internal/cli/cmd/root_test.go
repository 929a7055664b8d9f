package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bmb/internal/application/usecase"
	"github.com/bnema/bmb/internal/cli"
	"github.com/bnema/bmb/internal/domain/build"
	"github.com/bnema/bmb/internal/domain/profile"
)

type recordingRunner struct {
	calls []GUIOptions
	code  int
}

func (r *recordingRunner) run(_ context.Context, _ *cli.App, opts GUIOptions) int {
	r.calls = append(r.calls, opts)
	return r.code
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	rootProfile, rootURL, chooseURL = "", "", ""
	historyLimit, historyClear, purgeYes, versionShort = 0, false, false, false
	t.Cleanup(func() { guiRunner = nil })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_RunsGUIWithFlags(t *testing.T) {
	isolate(t)
	r := &recordingRunner{}
	SetGUIRunner(r.run)

	_, err := execute(t, "-p", "user2", "--url", "example.com")
	require.NoError(t, err)

	require.Len(t, r.calls, 1)
	assert.Equal(t, GUIOptions{Profile: "user2", URL: "example.com"}, r.calls[0])
}

func TestRoot_NoProfileLeavesChoiceToGUI(t *testing.T) {
	isolate(t)
	r := &recordingRunner{}
	SetGUIRunner(r.run)

	_, err := execute(t)
	require.NoError(t, err)
	require.Len(t, r.calls, 1)
	assert.Empty(t, r.calls[0].Profile)
}

func TestRoot_UnknownProfileNeverStartsGUI(t *testing.T) {
	isolate(t)
	r := &recordingRunner{}
	SetGUIRunner(r.run)

	_, err := execute(t, "-p", "nobody")
	assert.ErrorIs(t, err, profile.ErrUnknownIdentity)
	assert.Empty(t, r.calls)
}

func TestRoot_GUIExitCodePropagates(t *testing.T) {
	isolate(t)
	r := &recordingRunner{code: 1}
	SetGUIRunner(r.run)

	_, err := execute(t)
	var exitErr ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
}

func TestProfiles_ListsEveryIdentity(t *testing.T) {
	isolate(t)

	out, err := execute(t, "profiles")
	require.NoError(t, err)
	for _, name := range []string{"user1", "user2", "user3", "user4", "indigo"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "ephemeral")
}

func TestProfilesPurge_RequiresYes(t *testing.T) {
	isolate(t)

	_, err := execute(t, "profiles", "purge", "user1")
	assert.ErrorContains(t, err, "--yes")
}

func TestProfilesPurge_Ephemeral(t *testing.T) {
	isolate(t)

	out, err := execute(t, "profiles", "purge", "indigo", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "keeps nothing on disk")
}

func TestHistory_EmptyProfile(t *testing.T) {
	isolate(t)

	out, err := execute(t, "history", "user1")
	require.NoError(t, err)
	assert.Contains(t, out, "No history recorded for user1")
}

func TestProfileChoices_KeepsOrderAndFlags(t *testing.T) {
	infos := []usecase.ProfileInfo{
		{Identity: profile.Identity{Name: "user1"}, Locked: true},
		{Identity: profile.Identity{Name: "indigo", Ephemeral: true}},
	}

	choices := profileChoices(infos)
	require.Len(t, choices, 2)
	assert.Equal(t, "user1", choices[0].Name)
	assert.True(t, choices[0].Locked)
	assert.True(t, choices[1].Ephemeral)
}

func TestVersion_Short(t *testing.T) {
	isolate(t)
	SetBuildInfo(build.Info{Version: "1.2.3"})

	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "bmb 1.2.3\n", out)
}
