package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList(ids ...TabID) *TabList {
	tl := NewTabList()
	for _, id := range ids {
		tl.Add(NewTab(id, TabKindPage))
	}
	return tl
}

func TestNewTab_Labels(t *testing.T) {
	assert.Equal(t, "Tab", NewTab("a", TabKindPage).DisplayLabel())
	assert.Equal(t, "Snake", NewTab("b", TabKindMiniGame).DisplayLabel())
}

func TestTab_DisplayLabelFollowsTitle(t *testing.T) {
	tab := NewTab("a", TabKindPage)

	tab.Title = "Example Domain"
	assert.Equal(t, "Example Domain", tab.DisplayLabel())

	tab.Title = strings.Repeat("é", 30)
	label := tab.DisplayLabel()
	assert.Equal(t, MaxLabelRunes, len([]rune(label)))
	assert.True(t, strings.HasSuffix(label, "…"))
}

func TestTabList_AddActivatesFirst(t *testing.T) {
	tl := newList("a", "b")

	assert.Equal(t, TabID("a"), tl.ActiveTabID)
	assert.Equal(t, 2, tl.Count())
	assert.Equal(t, 1, tl.Find("b").Position)
}

func TestTabList_RemoveNeverBelowOne(t *testing.T) {
	tl := newList("only")

	assert.False(t, tl.Remove("only"))
	assert.Equal(t, 1, tl.Count())
	assert.Equal(t, TabID("only"), tl.ActiveTabID)
}

func TestTabList_RemoveReindexesAndMovesActive(t *testing.T) {
	tests := []struct {
		name       string
		active     TabID
		remove     TabID
		wantActive TabID
	}{
		{name: "active middle picks next", active: "b", remove: "b", wantActive: "c"},
		{name: "active last picks previous", active: "c", remove: "c", wantActive: "b"},
		{name: "background keeps active", active: "a", remove: "b", wantActive: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := newList("a", "b", "c")
			require.True(t, tl.SetActive(tt.active))

			require.True(t, tl.Remove(tt.remove))
			assert.Equal(t, tt.wantActive, tl.ActiveTabID)
			assert.Equal(t, 2, tl.Count())
			for i, tab := range tl.Tabs {
				assert.Equal(t, i, tab.Position)
			}
		})
	}
}

func TestTabList_RemoveUnknown(t *testing.T) {
	tl := newList("a", "b")
	assert.False(t, tl.Remove("zzz"))
	assert.Equal(t, 2, tl.Count())
}

func TestTabList_Lookup(t *testing.T) {
	tl := newList("a", "b")

	assert.Equal(t, TabID("b"), tl.At(1).ID)
	assert.Nil(t, tl.At(2))
	assert.Nil(t, tl.At(-1))
	assert.Equal(t, 1, tl.IndexOf("b"))
	assert.Equal(t, -1, tl.IndexOf("z"))

	assert.False(t, tl.SetActive("z"))
	assert.True(t, tl.SetActive("b"))
	assert.True(t, tl.IsActive("b"))
	assert.False(t, tl.IsActive(""))
	assert.Equal(t, TabID("b"), tl.ActiveTab().ID)
}
