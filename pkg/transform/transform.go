// Package transform implements the 2D viewport transform used to map
// floor-plan content coordinates to screen coordinates.
package transform

import "math"

// Point represents a 2D point in either content or screen space.
type Point struct {
	X, Y float64
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Dist returns the distance between two points.
func (p Point) Dist(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Mid returns the midpoint of two points.
func (p Point) Mid(other Point) Point {
	return Point{(p.X + other.X) / 2, (p.Y + other.Y) / 2}
}

// Transform is a uniform scale plus translation mapping content space to
// screen space: screen = content*Scale + (TX, TY).
type Transform struct {
	Scale float64
	TX    float64
	TY    float64
}

// Identity returns the default transform (scale 1, no translation).
func Identity() Transform {
	return Transform{Scale: 1}
}

// Apply maps a content-space point to screen space.
func (t Transform) Apply(p Point) Point {
	return Point{p.X*t.Scale + t.TX, p.Y*t.Scale + t.TY}
}

// Invert maps a screen-space point back to content space.
// A zero scale inverts as identity scale to avoid dividing by zero.
func (t Transform) Invert(p Point) Point {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	return Point{(p.X - t.TX) / s, (p.Y - t.TY) / s}
}

// Translate returns the transform shifted by (dx, dy) in screen space.
func (t Transform) Translate(dx, dy float64) Transform {
	return Transform{Scale: t.Scale, TX: t.TX + dx, TY: t.TY + dy}
}

// ClampScale bounds a scale factor to [min, max].
func ClampScale(s, min, max float64) float64 {
	if s < min {
		return min
	}
	if s > max {
		return max
	}
	return s
}

// ZoomAt rescales t by factor (clamped to [min, max]) while keeping the
// content point currently under the screen point focal fixed on screen.
// When clamping leaves the scale unchanged the input transform is returned
// as-is, so callers can use equality for change detection.
func ZoomAt(t Transform, factor float64, focal Point, min, max float64) Transform {
	newScale := ClampScale(t.Scale*factor, min, max)
	if newScale == t.Scale {
		return t
	}

	// Solve the translation so that the content point under focal before
	// the rescale reprojects to the same screen coordinate after it.
	content := t.Invert(focal)
	return Transform{
		Scale: newScale,
		TX:    focal.X - content.X*newScale,
		TY:    focal.Y - content.Y*newScale,
	}
}
