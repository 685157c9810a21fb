// Package gesture classifies raw pointer and wheel input into pan and zoom
// updates to the viewport transform. The controller is an explicit state
// machine over pointer identities so the 1->2->1 pointer transitions stay
// testable without any GUI attached.
package gesture

import "floorview/pkg/transform"

// Mode is the current gesture classification.
type Mode int

const (
	ModeIdle Mode = iota
	ModePanning
	ModePinching
)

// WheelStep is the multiplicative zoom applied per wheel tick.
const WheelStep = 1.2

// Controller turns pointer/wheel events into transform updates.
type Controller struct {
	cur      transform.Transform
	minScale float64
	maxScale float64

	pointers map[int]transform.Point
	mode     Mode

	// Panning state.
	panID    int
	panStart transform.Point

	// Pinching state. The content-space midpoint is captured once at pinch
	// start and held fixed under the moving screen midpoint.
	pinchIDs  [2]int
	pinchDist float64
	pinchMid  transform.Point

	// Transform at gesture start; pan and pinch both derive from it.
	origin transform.Transform

	// OnChange is invoked after every transform change.
	OnChange func(transform.Transform)
}

// NewController creates a controller with the given scale bounds.
func NewController(minScale, maxScale float64) *Controller {
	return &Controller{
		cur:      transform.Identity(),
		minScale: minScale,
		maxScale: maxScale,
		pointers: make(map[int]transform.Point),
	}
}

// Transform returns the current viewport transform.
func (c *Controller) Transform() transform.Transform {
	return c.cur
}

// Mode returns the current gesture mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Reset restores the identity transform and drops any gesture in progress.
func (c *Controller) Reset() {
	c.mode = ModeIdle
	c.pointers = make(map[int]transform.Point)
	c.set(transform.Identity())
}

// SetTransform replaces the transform outright (used on scene mount).
func (c *Controller) SetTransform(t transform.Transform) {
	c.set(t)
}

// PointerDown registers a new pointer. The first pointer starts a pan; a
// second pointer while panning upgrades to a pinch and discards pan state.
func (c *Controller) PointerDown(id int, p transform.Point) {
	c.pointers[id] = p

	switch c.mode {
	case ModeIdle:
		c.mode = ModePanning
		c.panID = id
		c.panStart = p
		c.origin = c.cur

	case ModePanning:
		if id == c.panID {
			return
		}
		first, ok := c.pointers[c.panID]
		if !ok {
			return
		}
		c.mode = ModePinching
		c.pinchIDs = [2]int{c.panID, id}
		c.pinchDist = first.Dist(p)
		c.origin = c.cur
		c.pinchMid = c.origin.Invert(first.Mid(p))
	}
	// Additional pointers during a pinch are tracked but take no part in
	// the gesture.
}

// PointerMove updates a tracked pointer and applies the resulting pan or
// pinch transform.
func (c *Controller) PointerMove(id int, p transform.Point) {
	if _, ok := c.pointers[id]; !ok {
		return
	}
	c.pointers[id] = p

	switch c.mode {
	case ModePanning:
		if id != c.panID {
			return
		}
		delta := p.Sub(c.panStart)
		c.set(c.origin.Translate(delta.X, delta.Y))

	case ModePinching:
		if id != c.pinchIDs[0] && id != c.pinchIDs[1] {
			return
		}
		a, okA := c.pointers[c.pinchIDs[0]]
		b, okB := c.pointers[c.pinchIDs[1]]
		if !okA || !okB {
			return
		}
		if c.pinchDist == 0 {
			// Undefined ratio; skip this frame.
			return
		}
		scale := transform.ClampScale(c.origin.Scale*a.Dist(b)/c.pinchDist, c.minScale, c.maxScale)
		mid := a.Mid(b)
		c.set(transform.Transform{
			Scale: scale,
			TX:    mid.X - c.pinchMid.X*scale,
			TY:    mid.Y - c.pinchMid.Y*scale,
		})
	}
}

// PointerUp removes a pointer (up, cancel, and leave are equivalent).
// Losing the pan pointer clears the pan; dropping below two pointers clears
// the pinch. A 2->1 transition never resumes panning on its own - a fresh
// pointer-down is required.
func (c *Controller) PointerUp(id int) {
	if _, ok := c.pointers[id]; !ok {
		return
	}
	delete(c.pointers, id)

	switch c.mode {
	case ModePanning:
		if id == c.panID {
			c.mode = ModeIdle
		}
	case ModePinching:
		if id == c.pinchIDs[0] || id == c.pinchIDs[1] {
			c.mode = ModeIdle
		}
	}
}

// Wheel zooms by one fixed step per tick, focused at the cursor position.
// Positive deltas zoom in.
func (c *Controller) Wheel(delta float64, at transform.Point) {
	if delta == 0 {
		return
	}
	factor := WheelStep
	if delta < 0 {
		factor = 1 / WheelStep
	}
	c.ZoomAt(factor, at)
}

// ZoomIn applies one zoom step centered on the given point.
func (c *Controller) ZoomIn(center transform.Point) {
	c.ZoomAt(WheelStep, center)
}

// ZoomOut applies one inverse zoom step centered on the given point.
func (c *Controller) ZoomOut(center transform.Point) {
	c.ZoomAt(1/WheelStep, center)
}

// ZoomAt rescales around a screen-space focal point.
func (c *Controller) ZoomAt(factor float64, focal transform.Point) {
	c.set(transform.ZoomAt(c.cur, factor, focal, c.minScale, c.maxScale))
}

func (c *Controller) set(t transform.Transform) {
	if t == c.cur {
		return
	}
	c.cur = t
	if c.OnChange != nil {
		c.OnChange(t)
	}
}
