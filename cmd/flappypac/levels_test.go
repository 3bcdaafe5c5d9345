package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappypac/internal/games/flappypac"
)

func TestFormatLevelsText(t *testing.T) {
	var buf bytes.Buffer
	if err := formatLevels(&buf, "text"); err != nil {
		t.Fatalf("formatLevels: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != flappypac.LevelCount()+1 {
		t.Fatalf("Got %d lines, expected header plus %d levels", len(lines), flappypac.LevelCount())
	}
	if !strings.HasPrefix(lines[0], "#") {
		t.Errorf("Header = %q", lines[0])
	}
	if !strings.Contains(lines[2], "lime") || !strings.Contains(lines[2], "true") {
		t.Errorf("Level 2 line = %q, expected lime and oscillating", lines[2])
	}
}

func TestFormatLevelsYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := formatLevels(&buf, "yaml"); err != nil {
		t.Fatalf("formatLevels: %v", err)
	}

	var doc struct {
		Levels []levelDoc `yaml:"levels"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}

	if len(doc.Levels) != flappypac.LevelCount() {
		t.Fatalf("Got %d levels, expected %d", len(doc.Levels), flappypac.LevelCount())
	}
	first := doc.Levels[0]
	if first.Number != 1 || first.Obstacles != 5 || first.GapSize != 160 || first.Color != "skyblue" {
		t.Errorf("Level 1 = %+v", first)
	}
	if doc.Levels[0].Oscillating || !doc.Levels[1].Oscillating {
		t.Error("Only level 2 should oscillate")
	}
}

func TestFormatLevelsUnknown(t *testing.T) {
	var buf bytes.Buffer
	if err := formatLevels(&buf, "xml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}
