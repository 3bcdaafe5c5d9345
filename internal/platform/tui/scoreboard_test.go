package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flappypac/internal/storage"
)

func TestRenderScoreboard(t *testing.T) {
	entries := []storage.ScoreEntry{
		{Name: "ann", Score: 120},
		{Name: "pac", Score: 30},
	}

	out := RenderScoreboard("SCOREBOARD", entries, 1)

	for _, want := range []string{"SCOREBOARD", "Rank", "ann", "120", "#2", "pac"} {
		if !strings.Contains(out, want) {
			t.Errorf("Scoreboard missing %q:\n%s", want, out)
		}
	}
}

func TestRenderScoreboardEmpty(t *testing.T) {
	out := RenderScoreboard("SCOREBOARD", nil, -1)
	if !strings.Contains(out, "Name") {
		t.Errorf("Empty scoreboard should still show the header:\n%s", out)
	}
}
