package flappypac

import "testing"

func TestLevelCatalog(t *testing.T) {
	if LevelCount() != 2 {
		t.Fatalf("LevelCount() = %d, expected 2", LevelCount())
	}

	l0 := Level(0)
	if l0.ObstacleCount != 5 || l0.Speed != 3.0 || l0.GapSize != 160 || l0.Gravity != 0.4 {
		t.Errorf("Level 0 = %+v, unexpected parameters", l0)
	}
	if l0.Oscillating {
		t.Error("Level 0 should not oscillate")
	}

	l1 := Level(1)
	if !l1.Oscillating {
		t.Error("Level 1 should oscillate")
	}
	if l1.Speed <= l0.Speed || l1.Gravity <= l0.Gravity {
		t.Error("Level 1 should be faster with stronger gravity than level 0")
	}
}

func TestLevelGapLeavesRoom(t *testing.T) {
	for i, l := range Levels() {
		if l.ObstacleCount <= 0 || l.Speed <= 0 || l.Gravity <= 0 || l.GapSize <= 0 {
			t.Errorf("Level %d has non-positive parameters: %+v", i, l)
		}
		if l.GapSize >= ScreenHeight-2*MinMargin {
			t.Errorf("Level %d gap %v leaves no room within margins", i, l.GapSize)
		}
	}
}

func TestLevelOutOfRangePanics(t *testing.T) {
	for _, idx := range []int{-1, LevelCount()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Level(%d) should panic", idx)
				}
			}()
			Level(idx)
		}()
	}
}

func TestLevelsReturnsCopy(t *testing.T) {
	ls := Levels()
	ls[0].Speed = 99

	if Level(0).Speed == 99 {
		t.Error("Mutating Levels() result should not change the catalog")
	}
}
