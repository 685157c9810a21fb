package scene

import (
	"encoding/xml"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"floorview/pkg/transform"
)

// Parse reads vector markup into a Document. The parser is deliberately
// permissive: unknown elements are kept as plain nodes, unreadable geometry
// leaves a node without bounds, and a decode error after the root element
// has appeared yields the partial tree instead of failing.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	doc := &Document{byID: make(map[string]*Node)}
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF || doc.Root != nil {
				break
			}
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{
				Tag:   t.Name.Local,
				Attrs: make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				n.Attrs[a.Name.Local] = a.Value
			}
			n.ID = n.Attrs["id"]

			applyGeometry(n)

			if len(stack) == 0 {
				if doc.Root != nil {
					// Trailing siblings of the root are ignored.
					_ = dec.Skip()
					continue
				}
				doc.Root = n
			} else {
				parent := stack[len(stack)-1]
				n.Parent = parent
				parent.Children = append(parent.Children, n)
			}
			if n.ID != "" {
				if _, dup := doc.byID[n.ID]; !dup {
					doc.byID[n.ID] = n
				}
			}
			doc.order = append(doc.order, n)
			stack = append(stack, n)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if doc.Root == nil {
		return nil, errors.New("scene: no root element")
	}

	propagateBounds(doc.Root)
	return doc, nil
}

// applyGeometry extracts a bounding box (and polygon outline when
// available) from the shape attributes the viewer understands. Elements
// with unreadable or missing geometry simply end up without bounds.
func applyGeometry(n *Node) {
	switch n.Tag {
	case "rect", "image":
		x := attrFloat(n, "x")
		y := attrFloat(n, "y")
		w := attrFloat(n, "width")
		h := attrFloat(n, "height")
		n.Bounds = Rect{X: x, Y: y, Width: w, Height: h}

	case "circle":
		cx := attrFloat(n, "cx")
		cy := attrFloat(n, "cy")
		r := attrFloat(n, "r")
		n.Bounds = Rect{X: cx - r, Y: cy - r, Width: 2 * r, Height: 2 * r}

	case "ellipse":
		cx := attrFloat(n, "cx")
		cy := attrFloat(n, "cy")
		rx := attrFloat(n, "rx")
		ry := attrFloat(n, "ry")
		n.Bounds = Rect{X: cx - rx, Y: cy - ry, Width: 2 * rx, Height: 2 * ry}

	case "line":
		x1 := attrFloat(n, "x1")
		y1 := attrFloat(n, "y1")
		x2 := attrFloat(n, "x2")
		y2 := attrFloat(n, "y2")
		n.Bounds = rectFromCorners(x1, y1, x2, y2)

	case "polygon", "polyline":
		pts := parsePoints(n.Attr("points"))
		if len(pts) >= 2 {
			n.Outline = pts
			n.Bounds = boundsOf(pts)
		}

	case "path":
		if b, ok := PathBounds(n.Attr("d")); ok {
			n.Bounds = b
		}
	}
}

// propagateBounds gives grouping elements the union of their children so
// hit testing and labeling can treat a multi-shape region as one box.
func propagateBounds(n *Node) Rect {
	union := n.Bounds
	for _, c := range n.Children {
		union = union.Union(propagateBounds(c))
	}
	if !n.Bounds.Valid() && union.Valid() {
		n.Bounds = union
	}
	return union
}

func attrFloat(n *Node, name string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(n.Attr(name)), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func rectFromCorners(x1, y1, x2, y2 float64) Rect {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// parsePoints reads a "points" attribute: coordinate pairs separated by
// whitespace and/or commas. Trailing odd values are dropped.
func parsePoints(s string) []transform.Point {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	pts := make([]transform.Point, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		x, errX := strconv.ParseFloat(fields[i], 64)
		y, errY := strconv.ParseFloat(fields[i+1], 64)
		if errX != nil || errY != nil {
			return nil
		}
		pts = append(pts, transform.Point{X: x, Y: y})
	}
	return pts
}

func boundsOf(pts []transform.Point) Rect {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// parseViewBox reads "minX minY width height".
func parseViewBox(s string) (Rect, bool) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 4 {
		return Rect{}, false
	}
	vals := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Rect{}, false
		}
		vals[i] = v
	}
	return Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, true
}
