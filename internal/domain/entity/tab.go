package entity

import (
	"time"
	"unicode/utf8"
)

// TabID uniquely identifies a tab.
type TabID string

// TabKind tells which page a tab was opened with.
type TabKind int

const (
	// TabKindPage is a regular tab opened on the home page.
	TabKindPage TabKind = iota
	// TabKindMiniGame is a tab opened on the bundled mini-game.
	TabKindMiniGame
)

// Default tab labels shown until the page reports a title.
const (
	DefaultTabLabel      = "Tab"
	DefaultMiniGameLabel = "Snake"
	// MaxLabelRunes bounds the label shown in the tab strip.
	MaxLabelRunes = 24
)

// Tab represents one browser tab: a rendering surface and its last committed address.
type Tab struct {
	ID        TabID
	Kind      TabKind
	Label     string // Fallback label until a title arrives
	Title     string // Page title reported by the engine
	Address   string // Last committed URI
	Position  int    // Position in the tab bar (0-indexed)
	CreatedAt time.Time
}

// NewTab creates a new tab of the given kind.
func NewTab(id TabID, kind TabKind) *Tab {
	label := DefaultTabLabel
	if kind == TabKindMiniGame {
		label = DefaultMiniGameLabel
	}
	return &Tab{
		ID:        id,
		Kind:      kind,
		Label:     label,
		CreatedAt: time.Now(),
	}
}

// DisplayLabel returns the label for the tab strip.
// Uses the page title truncated to MaxLabelRunes, falling back to Label.
func (t *Tab) DisplayLabel() string {
	if t.Title == "" {
		return t.Label
	}
	if utf8.RuneCountInString(t.Title) <= MaxLabelRunes {
		return t.Title
	}
	runes := []rune(t.Title)
	return string(runes[:MaxLabelRunes-1]) + "…"
}

// TabList manages an ordered collection of tabs.
type TabList struct {
	Tabs        []*Tab
	ActiveTabID TabID
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{
		Tabs: make([]*Tab, 0),
	}
}

// Add appends a tab to the list.
func (tl *TabList) Add(tab *Tab) {
	tab.Position = len(tl.Tabs)
	tl.Tabs = append(tl.Tabs, tab)
	if tl.ActiveTabID == "" {
		tl.ActiveTabID = tab.ID
	}
}

// Remove removes a tab by ID and reindexes positions.
// The last remaining tab is never removed.
func (tl *TabList) Remove(id TabID) bool {
	if len(tl.Tabs) <= 1 {
		return false
	}
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
			// Reindex positions
			for j := i; j < len(tl.Tabs); j++ {
				tl.Tabs[j].Position = j
			}
			// Update active tab if needed
			if tl.ActiveTabID == id {
				if i < len(tl.Tabs) {
					tl.ActiveTabID = tl.Tabs[i].ID
				} else {
					tl.ActiveTabID = tl.Tabs[len(tl.Tabs)-1].ID
				}
			}
			return true
		}
	}
	return false
}

// Find returns a tab by ID.
func (tl *TabList) Find(id TabID) *Tab {
	for _, tab := range tl.Tabs {
		if tab.ID == id {
			return tab
		}
	}
	return nil
}

// At returns the tab at index, or nil when out of range.
func (tl *TabList) At(index int) *Tab {
	if index < 0 || index >= len(tl.Tabs) {
		return nil
	}
	return tl.Tabs[index]
}

// IndexOf returns the position of the tab, or -1.
func (tl *TabList) IndexOf(id TabID) int {
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// SetActive marks the tab active. Unknown IDs are ignored.
func (tl *TabList) SetActive(id TabID) bool {
	if tl.Find(id) == nil {
		return false
	}
	tl.ActiveTabID = id
	return true
}

// IsActive reports whether id is the active tab.
func (tl *TabList) IsActive(id TabID) bool {
	return id != "" && tl.ActiveTabID == id
}

// ActiveTab returns the currently active tab.
func (tl *TabList) ActiveTab() *Tab {
	return tl.Find(tl.ActiveTabID)
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}
