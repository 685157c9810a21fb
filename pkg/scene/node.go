// Package scene loads a floor's vector markup into an id-indexed node tree.
// The markup is treated as an opaque document: unknown tags and attributes
// are carried through untouched, and only enough geometry is extracted to
// answer bounding-box and containment queries.
package scene

import (
	"math"
	"strings"

	"floorview/pkg/transform"
)

// Rect is an axis-aligned bounding box in content space.
type Rect struct {
	X, Y, Width, Height float64
}

// Valid reports whether the rect has finite, positive dimensions.
func (r Rect) Valid() bool {
	return !math.IsNaN(r.Width) && !math.IsInf(r.Width, 0) &&
		!math.IsNaN(r.Height) && !math.IsInf(r.Height, 0) &&
		r.Width > 0 && r.Height > 0
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(p transform.Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center returns the centroid of the rect.
func (r Rect) Center() transform.Point {
	return transform.Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(other Rect) Rect {
	if !r.Valid() {
		return other
	}
	if !other.Valid() {
		return r
	}
	x1 := math.Min(r.X, other.X)
	y1 := math.Min(r.Y, other.Y)
	x2 := math.Max(r.X+r.Width, other.X+other.Width)
	y2 := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Node is one element of the scene tree.
type Node struct {
	Tag   string
	ID    string
	Attrs map[string]string

	Parent   *Node
	Children []*Node

	// Bounds is the content-space bounding box; zero when the element
	// carries no readable geometry.
	Bounds Rect

	// Outline holds polygon/polyline vertices for exact containment;
	// empty for elements tested against Bounds alone.
	Outline []transform.Point
}

// Attr returns the named attribute or "".
func (n *Node) Attr(name string) string {
	return n.Attrs[name]
}

// Contains reports whether the content-space point hits this element. A
// polygon outline of at least three vertices is tested by ray casting;
// everything else falls back to the bounding box.
func (n *Node) Contains(p transform.Point) bool {
	if len(n.Outline) >= 3 {
		return pointInPolygon(p, n.Outline)
	}
	return n.Bounds.Valid() && n.Bounds.Contains(p)
}

// NearestID walks up from the node to the nearest ancestor-or-self that
// carries an identifier, or nil when none does.
func (n *Node) NearestID() *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.ID != "" {
			return cur
		}
	}
	return nil
}

// pointInPolygon is the standard ray casting test.
func pointInPolygon(p transform.Point, poly []transform.Point) bool {
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y
		if (yi > p.Y) != (yj > p.Y) && p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Document is one parsed floor scene.
type Document struct {
	Root *Node

	byID  map[string]*Node
	order []*Node // depth-first document order; later nodes draw on top
}

// ByID returns the first element with the given id, or nil.
func (d *Document) ByID(id string) *Node {
	return d.byID[id]
}

// Nodes returns every element in document order.
func (d *Document) Nodes() []*Node {
	return d.order
}

// HitTest returns the topmost element containing the content-space point.
// Later document order paints on top, so the scan runs back to front. The
// root itself is never returned.
func (d *Document) HitTest(p transform.Point) *Node {
	for i := len(d.order) - 1; i >= 0; i-- {
		n := d.order[i]
		if n == d.Root {
			continue
		}
		if n.Contains(p) {
			return n
		}
	}
	return nil
}

// ContentBounds returns the scene's declared viewBox, falling back to the
// union of element bounds when the root declares none.
func (d *Document) ContentBounds() Rect {
	if d.Root != nil {
		if vb, ok := parseViewBox(d.Root.Attr("viewBox")); ok {
			return vb
		}
	}
	var union Rect
	for _, n := range d.order {
		if n == d.Root {
			continue
		}
		union = union.Union(n.Bounds)
	}
	return union
}

// Container-wrapper ids denote structural grouping (the floor layer itself)
// and are never selectable regions.
const reservedContainerID = "background"

// IsContainerID reports whether an id names a structural wrapper rather
// than a selectable region.
func IsContainerID(id string) bool {
	lower := strings.ToLower(id)
	return strings.HasPrefix(lower, "floor") ||
		strings.HasPrefix(lower, "layer") ||
		lower == reservedContainerID
}
