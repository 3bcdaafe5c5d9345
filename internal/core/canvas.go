package core

// Canvas is the write-only drawing surface games render into.
// Coordinates and sizes are in world units; angles are in degrees,
// measured clockwise from the positive x axis (screen y grows downward).
type Canvas interface {
	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c Color)

	// FillCircle fills a full circle.
	FillCircle(cx, cy, radius float64, c Color)

	// FillCircleSector fills the circle slice from startDeg to endDeg.
	FillCircleSector(cx, cy, radius, startDeg, endDeg float64, c Color)

	// DrawText draws text with its top-left corner at (x, y).
	DrawText(text string, x, y, size float64, c Color)

	// MeasureText returns the width text would occupy at the given size.
	MeasureText(text string, size float64) float64
}
