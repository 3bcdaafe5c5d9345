package flappypac

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappypac/internal/core"
)

// RandSource produces pseudo-random integers in [0, n).
// *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Slot is one obstacle pair with its gap and pickup.
type Slot struct {
	X              float64 // Left edge
	GapTopY        float64 // Top of the gap
	InitialGapTopY float64 // Anchor for oscillation
	Passed         bool
	Collected      bool    // Pickup taken
	PickupRelY     float64 // Pickup center offset from GapTopY
}

// TopRect returns the collision rectangle of the upper obstacle.
func (s Slot) TopRect() core.Rect {
	return core.NewRect(s.X, 0, ObstacleWidth, s.GapTopY)
}

// BottomRect returns the collision rectangle of the lower obstacle.
func (s Slot) BottomRect(gapSize float64) core.Rect {
	bottomY := s.GapTopY + gapSize
	return core.NewRect(s.X, bottomY, ObstacleWidth, ScreenHeight-bottomY)
}

// PickupRect returns the pickup hitbox centered in the slot.
func (s Slot) PickupRect() core.Rect {
	cx, cy := s.PickupCenter()
	return core.NewRect(cx-PickupSize/2, cy-PickupSize/2, PickupSize, PickupSize)
}

// PickupCenter returns the pickup center point.
func (s Slot) PickupCenter() (float64, float64) {
	return s.X + ObstacleWidth/2, s.GapTopY + s.PickupRelY
}

// TrailingEdge returns the x-coordinate of the right edge.
func (s Slot) TrailingEdge() float64 {
	return s.X + ObstacleWidth
}

// Visible reports whether any part of the slot is on screen.
func (s Slot) Visible() bool {
	return s.X > -ObstacleWidth && s.X < ScreenWidth
}

// Field holds the obstacle slots of the active level.
// The backing array is reused across levels; slots are never recycled
// within a level.
type Field struct {
	spec  LevelSpec
	slots []Slot
}

// NewField creates an empty field with room for capacity slots.
func NewField(capacity int) *Field {
	return &Field{slots: make([]Slot, 0, capacity)}
}

// Generate rebuilds every slot for the given level.
func (f *Field) Generate(spec LevelSpec, rng RandSource) {
	f.spec = spec
	if cap(f.slots) < spec.ObstacleCount {
		f.slots = make([]Slot, spec.ObstacleCount)
	} else {
		f.slots = f.slots[:spec.ObstacleCount]
	}

	minGap := MinMargin
	maxGap := int(ScreenHeight) - MinMargin - int(spec.GapSize)
	if maxGap <= minGap {
		maxGap = minGap + RangeSafety
	}

	for i := range f.slots {
		gapY := float64(minGap + rng.Intn(maxGap-minGap))

		relY := spec.GapSize / 2
		if safe := int(spec.GapSize) - 2*PickupPadding; safe > 0 {
			relY = float64(PickupPadding + rng.Intn(safe))
		}

		f.slots[i] = Slot{
			X:              ScreenWidth + LeadDistance + float64(i)*SlotSpacing,
			GapTopY:        gapY,
			InitialGapTopY: gapY,
			PickupRelY:     relY,
		}
	}
}

// Advance moves every slot one tick. elapsed is wall-clock seconds and
// drives the oscillation on levels that have it.
func (f *Field) Advance(elapsed float64) {
	for i := range f.slots {
		f.advanceSlot(i, elapsed)
	}
}

func (f *Field) advanceSlot(i int, elapsed float64) {
	s := &f.slots[i]
	s.X -= f.spec.Speed
	if f.spec.Oscillating {
		// Phase offset by index so neighbors do not move in unison
		s.GapTopY = s.InitialGapTopY + math.Sin(elapsed*OscFrequency+float64(i))*OscAmplitude
	}
}

// Spec returns the level the field was generated for.
func (f *Field) Spec() LevelSpec {
	return f.spec
}

// Len returns the number of slots.
func (f *Field) Len() int {
	return len(f.slots)
}

// Slot returns the slot at index i. Panics if i is out of range.
func (f *Field) Slot(i int) Slot {
	return *f.at(i)
}

func (f *Field) at(i int) *Slot {
	if i < 0 || i >= len(f.slots) {
		panic(fmt.Sprintf("flappypac: slot index %d out of range [0, %d)", i, len(f.slots)))
	}
	return &f.slots[i]
}

// Slots returns the live slot slice. Callers must not modify it.
func (f *Field) Slots() []Slot {
	return f.slots
}

// PassedCount returns how many slots have been passed.
func (f *Field) PassedCount() int {
	n := 0
	for _, s := range f.slots {
		if s.Passed {
			n++
		}
	}
	return n
}

// AllPassed reports the level-clear condition.
func (f *Field) AllPassed() bool {
	return len(f.slots) > 0 && f.PassedCount() == len(f.slots)
}
