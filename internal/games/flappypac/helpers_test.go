package flappypac

import (
	"math/rand"

	"github.com/vovakirdan/flappypac/internal/core"
	"github.com/vovakirdan/flappypac/internal/storage"
)

// fixedRand always returns the same value, clamped into range.
type fixedRand struct {
	v     int
	calls []int // n of every call
}

func (r *fixedRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	if r.v >= n {
		return n - 1
	}
	return r.v
}

func newTestSession(opts ...Option) *Session {
	return NewSession(rand.New(rand.NewSource(7)), storage.NewLeaderboard(storage.DefaultCapacity), opts...)
}

// frameClock hands out input frames with advancing timing.
type frameClock struct {
	elapsed float64
}

func (c *frameClock) frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	c.elapsed += 1.0 / TargetFPS
	in.Elapsed = c.elapsed
	in.Delta = 1.0 / TargetFPS
	return in
}

func (c *frameClock) typed(text string) core.InputFrame {
	in := c.frame()
	for _, r := range text {
		in.Type(r)
	}
	return in
}

// enterPlaying drives a fresh named session into the Playing state.
func enterPlaying(s *Session, clk *frameClock) {
	s.Update(clk.typed("pac"))
	s.Update(clk.frame(core.ActionConfirm))
	s.Update(clk.frame(core.ActionJump))
}
