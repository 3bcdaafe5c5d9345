// Package storage provides the in-memory leaderboard for finished sessions.
// Entries live for the lifetime of the process only.
package storage

import (
	"sort"
)

// DefaultCapacity is the number of entries a leaderboard holds.
const DefaultCapacity = 10

// MaxNameLen is the longest name stored with an entry, in bytes.
const MaxNameLen = 15

// ScoreEntry represents a single leaderboard record.
type ScoreEntry struct {
	Name  string
	Score int
}

// Leaderboard is a bounded sequence of entries ordered by score descending.
// Equal scores keep their insertion order.
type Leaderboard struct {
	entries  []ScoreEntry
	capacity int
}

// NewLeaderboard creates an empty leaderboard holding at most capacity entries.
// A non-positive capacity falls back to DefaultCapacity.
func NewLeaderboard(capacity int) *Leaderboard {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Leaderboard{
		entries:  make([]ScoreEntry, 0, capacity),
		capacity: capacity,
	}
}

// Insert records a finished session and re-sorts the board.
// Once the board is full new entries are dropped, even if they would
// outrank the current worst entry. Returns whether the entry was stored.
func (lb *Leaderboard) Insert(name string, score int) bool {
	stored := false
	if len(lb.entries) < lb.capacity {
		if len(name) > MaxNameLen {
			name = name[:MaxNameLen]
		}
		lb.entries = append(lb.entries, ScoreEntry{Name: name, Score: score})
		stored = true
	}

	sort.SliceStable(lb.entries, func(i, j int) bool {
		return lb.entries[i].Score > lb.entries[j].Score
	})
	return stored
}

// Entries returns a copy of the board in rank order.
func (lb *Leaderboard) Entries() []ScoreEntry {
	out := make([]ScoreEntry, len(lb.entries))
	copy(out, lb.entries)
	return out
}

// Rank returns the index of the first entry matching name and score, or -1.
func (lb *Leaderboard) Rank(name string, score int) int {
	for i, e := range lb.entries {
		if e.Name == name && e.Score == score {
			return i
		}
	}
	return -1
}

// Len returns the number of stored entries.
func (lb *Leaderboard) Len() int {
	return len(lb.entries)
}

// Cap returns the maximum number of entries.
func (lb *Leaderboard) Cap() int {
	return lb.capacity
}
