package flappypac

// CollisionResult reports what happened during one collision pass.
type CollisionResult struct {
	Died    bool  // Hitbox overlapped an obstacle
	Pickups []int // Slot indices whose pickup was collected this tick
	Passed  []int // Slot indices passed this tick
}

// Points returns the score earned by this result.
func (r CollisionResult) Points() int {
	return len(r.Passed)*PassReward + len(r.Pickups)*PickupReward
}

// Check tests the avatar against every slot near the screen, marking
// pickups collected and slots passed. Each slot is passed and each pickup
// collected at most once. Boundary checks are the caller's concern.
func Check(a Avatar, f *Field) CollisionResult {
	var res CollisionResult
	hitbox := a.Hitbox()
	gap := f.spec.GapSize

	for i := range f.slots {
		s := f.at(i)
		if s.TrailingEdge() <= 0 || s.X >= ScreenWidth {
			continue
		}

		if hitbox.Intersects(s.TopRect()) || hitbox.Intersects(s.BottomRect(gap)) {
			res.Died = true
		}

		if !s.Collected && hitbox.Intersects(s.PickupRect()) {
			s.Collected = true
			res.Pickups = append(res.Pickups, i)
		}

		if !s.Passed && s.TrailingEdge() < AvatarX {
			s.Passed = true
			res.Passed = append(res.Passed, i)
		}
	}
	return res
}
