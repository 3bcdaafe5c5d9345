package flappypac

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappypac/internal/core"
)

// Text sizes in world units
const (
	titleSize = 40.0
	largeSize = 30.0
	textSize  = 20.0

	pipeBorder   = 4.0
	pickupRadius = 5.0
)

// Render draws the session. It only reads state.
func Render(c core.Canvas, s *Session, elapsed float64) {
	switch s.State() {
	case StateNamingPlayer:
		drawNameEntry(c, s, elapsed)
	case StateVictory:
		drawVictory(c, s)
	default:
		drawPlayfield(c, s)
		drawOverlay(c, s)
	}
}

func drawPlayfield(c core.Canvas, s *Session) {
	spec := s.LevelSpec()
	for _, slot := range s.Field().Slots() {
		if slot.Visible() {
			drawSlot(c, slot, spec)
		}
	}

	a := s.Avatar()
	mouth := a.MouthAngle()
	tilt := a.Tilt()
	c.FillCircleSector(AvatarX, a.Y, AvatarRadius, mouth+tilt, 360-mouth+tilt, core.ColorYellow)

	c.DrawText(fmt.Sprintf("Score: %d", s.Score()), 10, 10, textSize, core.ColorWhite)
	c.DrawText(fmt.Sprintf("Level: %d", s.Level()+1), 10, 35, textSize, spec.Color)
}

// drawSlot draws both pipes as outlines in the level color, plus the orb.
func drawSlot(c core.Canvas, slot Slot, spec LevelSpec) {
	top := slot.TopRect()
	c.FillRect(top, spec.Color)
	c.FillRect(core.NewRect(top.X+pipeBorder, 0, top.W-2*pipeBorder, top.H-pipeBorder), core.ColorBlack)

	bottom := slot.BottomRect(spec.GapSize)
	c.FillRect(bottom, spec.Color)
	c.FillRect(core.NewRect(bottom.X+pipeBorder, bottom.Y+pipeBorder, bottom.W-2*pipeBorder, bottom.H-pipeBorder), core.ColorBlack)

	if !slot.Collected {
		x, y := slot.PickupCenter()
		c.FillCircle(x, y, pickupRadius, core.ColorWhite)
	}
}

func drawOverlay(c core.Canvas, s *Session) {
	switch s.State() {
	case StateDead:
		centered(c, "GAME OVER", 200, titleSize, core.ColorRed)
		centered(c, "Press SPACE to Retry Level", 250, textSize, core.ColorWhite)
	case StateLevelCleared:
		centered(c, "LEVEL COMPLETE!", 200, titleSize, core.ColorGreen)
		centered(c, "Press SPACE for Next Level", 250, textSize, core.ColorWhite)
	case StateLevelIntro:
		centered(c, fmt.Sprintf("LEVEL %d", s.Level()+1), 180, largeSize, s.LevelSpec().Color)
		centered(c, "Press SPACE to Fly", 230, textSize, core.ColorWhite)
	}
}

func drawNameEntry(c core.Canvas, s *Session, elapsed float64) {
	centered(c, "WELCOME TO FLAPPY PACMAN", 100, largeSize, core.ColorYellow)
	centered(c, "Enter your name:", 200, textSize, core.ColorWhite)

	// Input box outline
	box := core.NewRect(250, 230, 300, 40)
	c.FillRect(box, core.ColorWhite)
	c.FillRect(box.Inset(1), core.ColorBlack)

	name := s.Name()
	c.DrawText(name, 260, 240, textSize, core.ColorYellow)
	if int(math.Floor(elapsed*2))%2 == 0 {
		c.DrawText("_", 260+c.MeasureText(name, textSize), 240, textSize, core.ColorYellow)
	}

	centered(c, "Press ENTER to Start", 300, textSize, core.ColorDarkGray)
}

func drawVictory(c core.Canvas, s *Session) {
	if s.Classic() {
		centered(c, "YOU WIN!", 180, titleSize, core.ColorGold)
		centered(c, fmt.Sprintf("Score: %d", s.Score()), 230, textSize, core.ColorYellow)
		centered(c, "Press SPACE to Restart Game", 270, textSize, core.ColorWhite)
		return
	}

	centered(c, "YOU WIN!", 50, titleSize, core.ColorGold)

	board := s.Leaderboard()
	centered(c, fmt.Sprintf("SCOREBOARD (Top %d)", board.Cap()), 120, textSize, core.ColorWhite)
	c.FillRect(core.NewRect(280, 145, 240, 1), core.ColorWhite)

	mine := board.Rank(s.Name(), s.Score())
	for i, e := range board.Entries() {
		color := core.ColorWhite
		if i == mine {
			color = core.ColorYellow
		}
		y := 160 + float64(i)*30
		c.DrawText(fmt.Sprintf("%d. %s", i+1, e.Name), 280, y, textSize, color)
		c.DrawText(fmt.Sprintf("%d", e.Score), 480, y, textSize, color)
	}

	centered(c, "Press SPACE to Play Again", 420, textSize, core.ColorDarkGray)
}

// centered draws text horizontally centered on the world.
func centered(c core.Canvas, text string, y, size float64, color core.Color) {
	x := (ScreenWidth - c.MeasureText(text, size)) / 2
	c.DrawText(text, x, y, size, color)
}
