package storage

import (
	"fmt"
	"testing"
)

func TestLeaderboardSortedDescending(t *testing.T) {
	lb := NewLeaderboard(10)

	for _, s := range []int{50, 80, 30} {
		if !lb.Insert(fmt.Sprintf("p%d", s), s) {
			t.Fatalf("Insert(%d) should be stored", s)
		}
	}

	entries := lb.Entries()
	want := []int{80, 50, 30}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i].Score != w {
			t.Errorf("entries[%d].Score = %d, expected %d", i, entries[i].Score, w)
		}
	}
}

func TestLeaderboardStableTies(t *testing.T) {
	lb := NewLeaderboard(10)

	lb.Insert("first", 50)
	lb.Insert("early80", 80)
	lb.Insert("third", 30)
	lb.Insert("late80", 80)

	entries := lb.Entries()
	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(entries))
	}

	wantScores := []int{80, 80, 50, 30}
	for i, w := range wantScores {
		if entries[i].Score != w {
			t.Errorf("entries[%d].Score = %d, expected %d", i, entries[i].Score, w)
		}
	}

	// Earlier-inserted 80 stays first
	if entries[0].Name != "early80" || entries[1].Name != "late80" {
		t.Errorf("Ties should keep insertion order, got %q then %q", entries[0].Name, entries[1].Name)
	}
}

func TestLeaderboardCapacityDropsNewEntries(t *testing.T) {
	lb := NewLeaderboard(3)

	lb.Insert("a", 10)
	lb.Insert("b", 20)
	lb.Insert("c", 30)

	// Board is full; a higher score is still dropped
	if lb.Insert("d", 1000) {
		t.Error("Insert into a full board should report false")
	}

	if lb.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", lb.Len())
	}
	if lb.Rank("d", 1000) != -1 {
		t.Error("Dropped entry should not be on the board")
	}
	if lb.Entries()[0].Score != 30 {
		t.Errorf("Top score should remain 30, got %d", lb.Entries()[0].Score)
	}
}

func TestLeaderboardDefaultsAndNames(t *testing.T) {
	lb := NewLeaderboard(0)
	if lb.Cap() != DefaultCapacity {
		t.Errorf("Cap() = %d, expected %d", lb.Cap(), DefaultCapacity)
	}

	lb.Insert("averyveryverylongname", 5)
	name := lb.Entries()[0].Name
	if len(name) != MaxNameLen {
		t.Errorf("Name should be truncated to %d bytes, got %q", MaxNameLen, name)
	}
}

func TestLeaderboardEntriesIsCopy(t *testing.T) {
	lb := NewLeaderboard(5)
	lb.Insert("pac", 42)

	entries := lb.Entries()
	entries[0].Score = 0

	if lb.Entries()[0].Score != 42 {
		t.Error("Mutating Entries() result should not change the board")
	}
}

func TestLeaderboardRank(t *testing.T) {
	lb := NewLeaderboard(5)
	lb.Insert("ann", 10)
	lb.Insert("bob", 40)
	lb.Insert("ann", 40)

	if r := lb.Rank("ann", 40); r != 1 {
		t.Errorf("Rank(ann, 40) = %d, expected 1", r)
	}
	if r := lb.Rank("ann", 10); r != 2 {
		t.Errorf("Rank(ann, 10) = %d, expected 2", r)
	}
	if r := lb.Rank("zed", 10); r != -1 {
		t.Errorf("Rank(zed, 10) = %d, expected -1", r)
	}
}
