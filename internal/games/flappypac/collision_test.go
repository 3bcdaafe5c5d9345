package flappypac

import "testing"

// fieldWith builds a level 0 field holding the given slots.
func fieldWith(slots ...Slot) *Field {
	return &Field{spec: Level(0), slots: slots}
}

func TestCheckInsideGapSurvives(t *testing.T) {
	// Hitbox spans y [210, 240]; gap spans [150, 310]
	a := Avatar{Y: 225}
	f := fieldWith(Slot{X: 180, GapTopY: 150, InitialGapTopY: 150, PickupRelY: 150})

	res := Check(a, f)

	if res.Died {
		t.Error("Hitbox fully inside the gap should not die")
	}
	if len(res.Pickups) != 0 || len(res.Passed) != 0 {
		t.Errorf("Unexpected events: %+v", res)
	}
}

func TestCheckObstacleOverlapDies(t *testing.T) {
	tests := []struct {
		name string
		slot Slot
	}{
		{"top obstacle", Slot{X: 180, GapTopY: 220, PickupRelY: 150}},
		{"bottom obstacle", Slot{X: 180, GapTopY: 60, PickupRelY: 20}},
		{"leading edge", Slot{X: 214, GapTopY: 0, PickupRelY: 20}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Check(Avatar{Y: 225}, fieldWith(tc.slot))
			if !res.Died {
				t.Error("Overlap with an obstacle should die")
			}
		})
	}
}

func TestCheckNoHorizontalOverlapSurvives(t *testing.T) {
	// Top obstacle spans the whole height of the avatar, but sits to the right
	res := Check(Avatar{Y: 225}, fieldWith(Slot{X: 216, GapTopY: 300, PickupRelY: 20}))
	if res.Died {
		t.Error("Obstacle right of the hitbox should not kill")
	}
}

func TestCheckPickupCollectedOnce(t *testing.T) {
	// Pickup centered at (200, 225): inside the hitbox
	f := fieldWith(Slot{X: 165, GapTopY: 150, PickupRelY: 75})
	a := Avatar{Y: 225}

	first := Check(a, f)
	if first.Died {
		t.Fatal("Pickup should not kill")
	}
	if len(first.Pickups) != 1 || first.Pickups[0] != 0 {
		t.Fatalf("Pickups = %v, expected [0]", first.Pickups)
	}
	if !f.Slot(0).Collected {
		t.Error("Slot should be marked collected")
	}

	second := Check(a, f)
	if len(second.Pickups) != 0 {
		t.Errorf("Pickup collected twice: %v", second.Pickups)
	}
	if first.Points() != PickupReward || second.Points() != 0 {
		t.Errorf("Points = %d then %d, expected %d then 0", first.Points(), second.Points(), PickupReward)
	}
}

func TestCheckPassedExactlyOnce(t *testing.T) {
	// Trailing edge at 170, left of AvatarX (200)
	f := fieldWith(Slot{X: 100, GapTopY: 150, PickupRelY: 75})
	a := Avatar{Y: 225}

	first := Check(a, f)
	if len(first.Passed) != 1 {
		t.Fatalf("Passed = %v, expected [0]", first.Passed)
	}

	f.Advance(0)
	second := Check(a, f)
	if len(second.Passed) != 0 {
		t.Errorf("Slot passed twice: %v", second.Passed)
	}

	if first.Points()+second.Points() != PassReward {
		t.Errorf("Total points = %d, expected %d", first.Points()+second.Points(), PassReward)
	}
	if !f.AllPassed() {
		t.Error("Single passed slot should clear the field")
	}
}

func TestCheckTrailingEdgeAtAvatarNotPassed(t *testing.T) {
	f := fieldWith(Slot{X: AvatarX - ObstacleWidth, GapTopY: 150, PickupRelY: 75})
	if res := Check(Avatar{Y: 225}, f); len(res.Passed) != 0 {
		t.Error("Trailing edge exactly at the avatar should not count as passed")
	}
}

func TestCheckSkipsOffscreenSlots(t *testing.T) {
	f := fieldWith(
		Slot{X: -ObstacleWidth - 1, GapTopY: 0, PickupRelY: 20},
		Slot{X: ScreenWidth, GapTopY: 0, PickupRelY: 20},
	)

	res := Check(Avatar{Y: 225}, f)
	if res.Died || len(res.Passed) != 0 || len(res.Pickups) != 0 {
		t.Errorf("Off-screen slots should be ignored, got %+v", res)
	}
}

func TestCollisionPointsAreAdditive(t *testing.T) {
	res := CollisionResult{Passed: []int{0, 1}, Pickups: []int{1}}
	if got, want := res.Points(), 2*PassReward+PickupReward; got != want {
		t.Errorf("Points() = %d, expected %d", got, want)
	}
}
