package chooser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bmb/internal/domain/profile"
)

func TestSelection_FirstChoiceWins(t *testing.T) {
	var s selection

	assert.True(t, s.choose(profile.Identity{Name: "user2"}))
	assert.False(t, s.choose(profile.Identity{Name: "indigo", Ephemeral: true}))

	require.NotNil(t, s.chosen)
	assert.Equal(t, "user2", s.chosen.Name)
}
