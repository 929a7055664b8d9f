package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryEntry_DisplayTitle(t *testing.T) {
	assert.Equal(t, "Example", (&HistoryEntry{URL: "https://example.com/", Title: "Example"}).DisplayTitle())
	assert.Equal(t, "https://example.com/", (&HistoryEntry{URL: "https://example.com/"}).DisplayTitle())
}
