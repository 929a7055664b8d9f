package styles

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/bmb/internal/application/usecase"
	"github.com/bnema/bmb/internal/domain/build"
	"github.com/bnema/bmb/internal/domain/entity"
	"github.com/bnema/bmb/internal/domain/profile"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.in))
	}
}

func TestRelativeTo(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{2 * 24 * time.Hour, "2d ago"},
		{14 * 24 * time.Hour, "2w ago"},
		{60 * 24 * time.Hour, "2mo ago"},
		{800 * 24 * time.Hour, "2y ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, relativeTo(now, now.Add(-tt.ago)), tt.ago.String())
	}
	assert.Equal(t, "never", relativeTo(now, time.Time{}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "éé", Truncate("ééé", 2))
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "0", formatInt(0))
	assert.Equal(t, "999", formatInt(999))
	assert.Equal(t, "1.5K", formatInt(1500))
	assert.Equal(t, "2M", formatInt(2000000))
}

func TestProfileRow(t *testing.T) {
	persistent := usecase.ProfileInfo{
		Identity:  profile.Identity{Name: "user1"},
		Storage:   profile.Storage{DataDir: "/p/user1"},
		Exists:    true,
		SizeBytes: 2048,
		Locked:    true,
	}
	assert.Equal(t, []string{"user1", "persistent", "/p/user1", "2.0 KB", "yes"}, ProfileRow(persistent))

	missing := usecase.ProfileInfo{
		Identity: profile.Identity{Name: "user2"},
		Storage:  profile.Storage{DataDir: "/p/user2"},
	}
	assert.Equal(t, []string{"user2", "persistent", "/p/user2 (not created)", "-", "no"}, ProfileRow(missing))

	ephemeral := usecase.ProfileInfo{Identity: profile.Identity{Name: "indigo", Ephemeral: true}}
	assert.Equal(t, []string{"indigo", "ephemeral", "(memory)", "-", "no"}, ProfileRow(ephemeral))
}

func TestRenderTables(t *testing.T) {
	theme := NewTheme()

	out := RenderProfiles(theme, []usecase.ProfileInfo{
		{Identity: profile.Identity{Name: "user1"}, Storage: profile.Storage{DataDir: "/p/user1"}},
	})
	assert.Contains(t, out, "Profile")
	assert.Contains(t, out, "user1")

	out = RenderHistory(theme, []*entity.HistoryEntry{
		{URL: "https://example.com/", VisitCount: 3, LastVisited: time.Now()},
	})
	assert.Contains(t, out, "https://example.com/")

	assert.Equal(t, "1.2K addresses, 3 visits", RenderHistoryStats(theme, &entity.HistoryStats{TotalEntries: 1200, TotalVisits: 3}))
}

func TestAboutRenderer(t *testing.T) {
	out := NewAboutRenderer(NewTheme()).Render(build.Info{Version: "1.2.3"})
	assert.Contains(t, out, "1.2.3")
	assert.True(t, strings.Contains(out, build.RepoURL()))
}
