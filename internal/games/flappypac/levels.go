package flappypac

import (
	"fmt"

	"github.com/vovakirdan/flappypac/internal/core"
)

// LevelSpec defines the difficulty parameters of one level.
type LevelSpec struct {
	Name          string
	ObstacleCount int
	Speed         float64 // Horizontal scroll per tick
	GapSize       float64 // Vertical opening of every slot
	Gravity       float64 // Velocity added per tick
	Color         core.Color
	Oscillating   bool // Gaps move on a sine wave
}

// levels is the fixed level table.
var levels = []LevelSpec{
	{Name: "Warm-up", ObstacleCount: 5, Speed: 3.0, GapSize: 160, Gravity: 0.4, Color: core.ColorSkyBlue},
	{Name: "Moving Pipes", ObstacleCount: 10, Speed: 3.5, GapSize: 150, Gravity: 0.45, Color: core.ColorLime, Oscillating: true},
}

// LevelCount returns the number of levels.
func LevelCount() int {
	return len(levels)
}

// Level returns the level at the given index (0-based).
// Panics if index is out of range; callers bound it by LevelCount.
func Level(index int) LevelSpec {
	if index < 0 || index >= len(levels) {
		panic(fmt.Sprintf("flappypac: level index %d out of range [0, %d)", index, len(levels)))
	}
	return levels[index]
}

// Levels returns a copy of the level table.
func Levels() []LevelSpec {
	out := make([]LevelSpec, len(levels))
	copy(out, levels)
	return out
}
