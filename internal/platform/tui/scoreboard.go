package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappypac/internal/storage"
)

var (
	scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreboardFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))
)

// RenderScoreboard formats a leaderboard as a static table for printing
// after the game exits. The row at highlight (or none for -1) is selected.
func RenderScoreboard(title string, entries []storage.ScoreEntry, highlight int) string {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: storage.MaxNameLen},
		{Title: "Score", Width: 8},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{fmt.Sprintf("#%d", i+1), e.Name, fmt.Sprintf("%d", e.Score)}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+3), // Header and its border take two rows
		table.WithFocused(highlight >= 0),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	if highlight >= 0 {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetCursor(highlight)
	} else {
		s.Selected = s.Cell
	}
	t.SetStyles(s)

	var b strings.Builder
	b.WriteString(scoreboardTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(scoreboardFrameStyle.Render(t.View()))
	return b.String()
}
