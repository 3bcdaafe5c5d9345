package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/flappypac/internal/core"
)

const fillRune = '█'

// CellCanvas rasterizes world-unit drawing onto a Screen.
// A cell is covered when its center lies inside the shape.
type CellCanvas struct {
	screen         *core.Screen
	worldW, worldH float64
	sx, sy         float64 // Cells per world unit
}

// NewCellCanvas creates a canvas mapping a worldW x worldH world onto s.
// Dimensions below one unit are raised to one.
func NewCellCanvas(s *core.Screen, worldW, worldH float64) *CellCanvas {
	c := &CellCanvas{screen: s, worldW: max(worldW, 1), worldH: max(worldH, 1)}
	c.Fit()
	return c
}

// Fit recomputes the scale after the screen was resized. An empty screen
// is scaled as one cell so measurements stay finite.
func (c *CellCanvas) Fit() {
	c.sx = float64(max(c.screen.Width(), 1)) / c.worldW
	c.sy = float64(max(c.screen.Height(), 1)) / c.worldH
}

// Screen returns the target buffer.
func (c *CellCanvas) Screen() *core.Screen {
	return c.screen
}

// center returns the world coordinates of the middle of cell (x, y).
func (c *CellCanvas) center(x, y int) (float64, float64) {
	return (float64(x) + 0.5) / c.sx, (float64(y) + 0.5) / c.sy
}

// cellRange returns the cells overlapped by [lo, hi) on one axis.
func cellRange(lo, hi, scale float64, limit int) (int, int) {
	first := core.Clamp(int(math.Floor(lo*scale)), 0, limit)
	last := core.Clamp(int(math.Ceil(hi*scale)), 0, limit)
	return first, last
}

// plot paints one cell. Black erases so outlines can be hollowed out.
func (c *CellCanvas) plot(x, y int, col core.Color) {
	if col == core.ColorBlack {
		c.screen.Set(x, y, ' ', core.ColorDefault)
		return
	}
	c.screen.Set(x, y, fillRune, col)
}

// FillRect fills every cell whose center lies in r.
func (c *CellCanvas) FillRect(r core.Rect, col core.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0, x1 := cellRange(r.X, r.Right(), c.sx, c.screen.Width())
	y0, y1 := cellRange(r.Y, r.Bottom(), c.sy, c.screen.Height())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if r.Contains(c.center(x, y)) {
				c.plot(x, y, col)
			}
		}
	}
}

// FillCircle fills a full circle.
func (c *CellCanvas) FillCircle(cx, cy, radius float64, col core.Color) {
	c.FillCircleSector(cx, cy, radius, 0, 360, col)
}

// FillCircleSector fills the slice of the circle between the two angles.
// Circles smaller than a cell still mark the cell holding their center.
func (c *CellCanvas) FillCircleSector(cx, cy, radius, startDeg, endDeg float64, col core.Color) {
	x0, x1 := cellRange(cx-radius, cx+radius, c.sx, c.screen.Width())
	y0, y1 := cellRange(cy-radius, cy+radius, c.sy, c.screen.Height())

	hit := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px, py := c.center(x, y)
			dx, dy := px-cx, py-cy
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			if !inSector(dx, dy, startDeg, endDeg) {
				continue
			}
			c.plot(x, y, col)
			hit = true
		}
	}

	if !hit {
		c.plot(int(math.Floor(cx*c.sx)), int(math.Floor(cy*c.sy)), col)
	}
}

// inSector reports whether direction (dx, dy) falls between the angles,
// sweeping clockwise on screen from start to end.
func inSector(dx, dy, startDeg, endDeg float64) bool {
	span := endDeg - startDeg
	if span >= 360 {
		return true
	}
	if dx == 0 && dy == 0 {
		return true
	}
	angle := math.Atan2(dy, dx) * 180 / math.Pi
	rel := math.Mod(angle-startDeg, 360)
	if rel < 0 {
		rel += 360
	}
	return rel <= span
}

// DrawText writes text one rune per cell, vertically centered on the
// line height.
func (c *CellCanvas) DrawText(text string, x, y, size float64, col core.Color) {
	cx := int(math.Round(x * c.sx))
	cy := int(math.Floor((y + size/2) * c.sy))
	c.screen.DrawText(cx, cy, text, col)
}

// MeasureText returns the world width taken by text at one rune per cell.
func (c *CellCanvas) MeasureText(text string, _ float64) float64 {
	return float64(utf8.RuneCountInString(text)) / c.sx
}
