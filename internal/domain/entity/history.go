package entity

import "time"

// HistoryEntry is one visited address of a profile.
type HistoryEntry struct {
	ID          int64
	URL         string
	Title       string
	VisitCount  int64
	LastVisited time.Time
	CreatedAt   time.Time
}

// DisplayTitle returns the page title, or the URL for untitled pages.
func (h *HistoryEntry) DisplayTitle() string {
	if h.Title != "" {
		return h.Title
	}
	return h.URL
}

// HistoryStats summarises a profile's history.
type HistoryStats struct {
	TotalEntries int64
	TotalVisits  int64
}
