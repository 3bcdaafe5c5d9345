package flappypac

// World dimensions. All simulation math is in these units; platforms
// scale them onto whatever surface they draw to.
const (
	ScreenWidth  = 800.0
	ScreenHeight = 450.0
	TargetFPS    = 60
)

// Avatar tuning
const (
	AvatarRadius       = 20.0
	AvatarX            = ScreenWidth / 4 // Fixed horizontal position
	JumpImpulse        = -6.0            // Negative = up; overrides velocity
	ClassicJumpImpulse = -5.0
	HitboxInset        = 5.0 // Hitbox is smaller than the drawn circle

	MouthBase      = 25.0 // Degrees
	MouthAmplitude = 20.0
	AnimationRate  = 10.0 // Mouth phase per second

	TiltGain = 3.0
	TiltMin  = -25.0 // Looking up
	TiltMax  = 35.0  // Looking down
)

// Obstacle field tuning
const (
	ObstacleWidth = 70.0
	LeadDistance  = 300.0 // Gap between the right screen edge and the first slot
	SlotSpacing   = 300.0
	MinMargin     = 50  // Minimum gap distance from top and bottom edges
	RangeSafety   = 10  // Widening applied to an inverted gap range
	PickupPadding = 20  // Keeps pickups off the walls
	PickupSize    = 10.0

	OscFrequency = 3.0
	OscAmplitude = 50.0
)

// Scoring
const (
	PassReward   = 1
	PickupReward = 5
)

// Name entry
const (
	NameMaxLen    = 15
	nameFirstChar = 32
	nameLastChar  = 125
)
