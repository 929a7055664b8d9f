package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/bmb/internal/application/usecase"
	"github.com/bnema/bmb/internal/domain/entity"
)

const (
	historyTitleWidth = 40
	historyURLWidth   = 60
)

// NewStyledTable creates a themed, rounded-border table.
func NewStyledTable(theme *Theme, headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.TableHeader
			}
			return theme.TableCell
		})
}

// ProfileTableHeaders returns the column titles of `bmb profiles`.
func ProfileTableHeaders() []string {
	return []string{"Profile", "Kind", "Path", "Size", "Locked"}
}

// ProfileRow converts one profile report to table cells.
func ProfileRow(info usecase.ProfileInfo) []string {
	kind, path, size, locked := "persistent", info.Storage.DataDir, "-", "no"
	switch {
	case info.Identity.Ephemeral:
		kind, path = "ephemeral", "(memory)"
	case !info.Exists:
		path += " (not created)"
	default:
		size = FormatSize(info.SizeBytes)
	}
	if info.Locked {
		locked = "yes"
	}
	return []string{info.Identity.Name, kind, path, size, locked}
}

// RenderProfiles renders the profile report as a table.
func RenderProfiles(theme *Theme, infos []usecase.ProfileInfo) string {
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, ProfileRow(info))
	}
	return NewStyledTable(theme, ProfileTableHeaders(), rows).String()
}

// HistoryTableHeaders returns the column titles of `bmb history`.
func HistoryTableHeaders() []string {
	return []string{"Title", "URL", "Visits", "Last Visit"}
}

// HistoryRow converts one history entry to table cells.
func HistoryRow(e *entity.HistoryEntry) []string {
	return []string{
		Truncate(e.DisplayTitle(), historyTitleWidth),
		Truncate(e.URL, historyURLWidth),
		formatInt(e.VisitCount),
		RelativeTime(e.LastVisited),
	}
}

// RenderHistory renders history entries as a table.
func RenderHistory(theme *Theme, entries []*entity.HistoryEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, HistoryRow(e))
	}
	return NewStyledTable(theme, HistoryTableHeaders(), rows).String()
}

// RenderHistoryStats renders the one-line summary under the history table.
func RenderHistoryStats(theme *Theme, stats *entity.HistoryStats) string {
	return theme.Subtle.Render(formatInt(stats.TotalEntries) + " addresses, " + formatInt(stats.TotalVisits) + " visits")
}

// formatInt formats a count for display.
func formatInt(n int64) string {
	switch {
	case n >= 1000000:
		return formatFloat(float64(n)/1000000) + "M"
	case n >= 1000:
		return formatFloat(float64(n)/1000) + "K"
	default:
		return intToString(n)
	}
}

// formatFloat formats a float with one decimal.
func formatFloat(f float64) string {
	i := int64(f * 10)
	whole := i / 10
	dec := i % 10
	if dec == 0 {
		return intToString(whole)
	}
	return intToString(whole) + "." + intToString(dec)
}

func intToString(n int64) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + intToString(-n)
	}

	digits := make([]byte, 0, 20)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
