package flappypac

import (
	"math"

	"github.com/vovakirdan/flappypac/internal/core"
)

// Avatar is the player-controlled Pac-Man. Only its vertical motion is
// simulated; it stays at AvatarX.
type Avatar struct {
	Y          float64 // Center
	Velocity   float64 // Positive = down
	MouthPhase float64

	jumpImpulse float64
}

// NewAvatar creates an avatar centered vertically.
func NewAvatar(jumpImpulse float64) Avatar {
	a := Avatar{jumpImpulse: jumpImpulse}
	a.Reset()
	return a
}

// Reset puts the avatar back at the start position at rest.
func (a *Avatar) Reset() {
	a.Y = ScreenHeight / 2
	a.Velocity = 0
	a.MouthPhase = 0
}

// Jump sets velocity to the jump impulse, discarding the old velocity.
func (a *Avatar) Jump() {
	a.Velocity = a.jumpImpulse
}

// Integrate advances the avatar one tick. Gravity is per tick, already
// scaled for the fixed frame rate; dt only drives the mouth animation.
func (a *Avatar) Integrate(spec LevelSpec, jump bool, dt float64) {
	a.Velocity += spec.Gravity
	if jump {
		a.Jump()
	}
	a.Y += a.Velocity
	a.MouthPhase += dt * AnimationRate
}

// MouthAngle returns the half-opening of the mouth in degrees.
func (a Avatar) MouthAngle() float64 {
	return MouthBase + MouthAmplitude*math.Sin(a.MouthPhase)
}

// Tilt returns the render rotation in degrees derived from velocity.
func (a Avatar) Tilt() float64 {
	return core.ClampF(a.Velocity*TiltGain, TiltMin, TiltMax)
}

// OutOfBounds reports whether the avatar touches the top or bottom edge.
func (a Avatar) OutOfBounds() bool {
	return a.Y-AvatarRadius <= 0 || a.Y+AvatarRadius >= ScreenHeight
}

// Hitbox returns the collision square, inset from the drawn circle.
func (a Avatar) Hitbox() core.Rect {
	box := core.NewRect(AvatarX-AvatarRadius, a.Y-AvatarRadius, 2*AvatarRadius, 2*AvatarRadius)
	return box.Inset(HitboxInset)
}
