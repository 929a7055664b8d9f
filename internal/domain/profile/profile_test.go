package profile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultNames = []string{"user1", "user2", "user3", "user4", "indigo"}

func TestNewSet_KeepsOrderAndEphemeral(t *testing.T) {
	set, err := NewSet(defaultNames, []string{"indigo"})
	require.NoError(t, err)

	assert.Equal(t, defaultNames, set.Names())

	all := set.All()
	require.Len(t, all, 5)
	for _, id := range all[:4] {
		assert.False(t, id.Ephemeral, id.Name)
	}
	assert.True(t, all[4].Ephemeral)
}

func TestNewSet_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		names []string
	}{
		{"empty", nil},
		{"duplicate", []string{"a", "a"}},
		{"separator", []string{"a/b"}},
		{"backslash", []string{`a\b`}},
		{"dot", []string{"."}},
		{"dotdot", []string{".."}},
		{"blank", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSet(tt.names, nil)
			assert.ErrorIs(t, err, ErrInvalidIdentity)
		})
	}
}

func TestSet_Lookup(t *testing.T) {
	set, err := NewSet(defaultNames, []string{"indigo"})
	require.NoError(t, err)

	id, err := set.Lookup("user3")
	require.NoError(t, err)
	assert.Equal(t, Identity{Name: "user3"}, id)

	_, err = set.Lookup("nobody")
	assert.ErrorIs(t, err, ErrUnknownIdentity)
}

func TestResolve_DistinctPathsPerIdentity(t *testing.T) {
	root := t.TempDir()
	set, err := NewSet(defaultNames, []string{"indigo"})
	require.NoError(t, err)

	seen := map[string]string{}
	for _, id := range set.All() {
		st, err := Resolve(root, id)
		require.NoError(t, err)

		if id.Ephemeral {
			assert.True(t, st.Ephemeral())
			assert.Empty(t, st.DataDir)
			assert.Empty(t, st.CacheDir)
			assert.Empty(t, st.LockPath())
			assert.Empty(t, st.HistoryPath())
			continue
		}

		assert.Equal(t, filepath.Join(root, id.Name), st.DataDir)
		assert.Equal(t, filepath.Join(root, id.Name, "cache"), st.CacheDir)
		assert.Equal(t, filepath.Join(root, id.Name, ".lock"), st.LockPath())
		assert.Equal(t, filepath.Join(root, id.Name, "history.sqlite"), st.HistoryPath())

		other, dup := seen[st.DataDir]
		assert.False(t, dup, "%s shares storage with %s", id.Name, other)
		seen[st.DataDir] = id.Name
	}
	assert.Len(t, seen, 4)
}

func TestResolve_Errors(t *testing.T) {
	_, err := Resolve("", Identity{Name: "user1"})
	assert.Error(t, err)

	_, err = Resolve(t.TempDir(), Identity{Name: "../escape"})
	assert.ErrorIs(t, err, ErrInvalidIdentity)

	st, err := Resolve("", Identity{Name: "indigo", Ephemeral: true})
	require.NoError(t, err)
	assert.True(t, st.Ephemeral())
}

func TestWindowTitle(t *testing.T) {
	assert.Equal(t, "BMB PRO 3.1 — Profile: user2", WindowTitle("BMB PRO 3.1", Identity{Name: "user2"}))
	assert.Equal(t, "BMB PRO 3.1 — Indigo (Incognito)", WindowTitle("BMB PRO 3.1", Identity{Name: "indigo", Ephemeral: true}))
	assert.Equal(t, "BMB PRO 3.1 — Choose Profile", ChooserTitle("BMB PRO 3.1"))
}
