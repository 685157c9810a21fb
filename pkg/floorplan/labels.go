package floorplan

import (
	"math"
	"strings"

	"floorview/pkg/transform"
)

// Label fitting constants. Sizes are in content-space units.
const (
	labelFontCap       = 28.0
	labelFontPreferred = 16.0
	labelFontMin       = 7.0
	labelFontStep      = 1.0

	// A label must fit within 90% of the box width and the box must be at
	// least 1.1x the font size tall to center cleanly.
	labelWidthRatio  = 0.90
	labelHeightRatio = 1.1

	// The candidate font size never exceeds 60% of the box height.
	labelBoxHeightRatio = 0.60

	// Regions in this category never receive a label.
	labelSkipCategory = "bathroom"
)

// Label is one fitted text label, centered on its region's centroid.
type Label struct {
	ID   string
	Text string
	Size float64
	At   transform.Point
}

// TextMeasurer reports the rendered width of a string at a font size.
type TextMeasurer interface {
	Width(text string, size float64) float64
}

// BuildLabels synthesizes a label for every interactive region of the
// mount that has metadata, skipping regions whose box cannot hold a
// legible label. The result replaces any previous label set wholesale.
func BuildLabels(m *Mount, store *Store, measure TextMeasurer) []Label {
	if m == nil || measure == nil {
		return nil
	}

	var out []Label
	for _, id := range m.RegionIDs() {
		r, ok := store.Get(id)
		if !ok {
			continue
		}
		if r.HasCategory(labelSkipCategory) {
			continue
		}

		node := m.Region(id)
		box := node.Bounds
		if !validBox(box.Width, box.Height) {
			continue
		}

		text := r.DisplayName()
		size, ok := fitLabel(text, box.Width, box.Height, measure)
		if !ok {
			continue
		}
		out = append(out, Label{ID: id, Text: text, Size: size, At: box.Center()})
	}
	return out
}

// fitLabel picks the largest font size that fits the box, stepping down
// from the preferred size. Returns ok=false when nothing legible fits.
func fitLabel(text string, boxW, boxH float64, measure TextMeasurer) (float64, bool) {
	if strings.TrimSpace(text) == "" {
		return 0, false
	}

	max := math.Min(labelFontCap, boxH*labelBoxHeightRatio)
	if max < labelFontMin {
		return 0, false
	}

	for size := math.Min(labelFontPreferred, max); size >= labelFontMin; size -= labelFontStep {
		if measure.Width(text, size) <= boxW*labelWidthRatio {
			if boxH < labelHeightRatio*size {
				return 0, false
			}
			return size, true
		}
	}
	return 0, false
}

func validBox(w, h float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w > 0 &&
		!math.IsNaN(h) && !math.IsInf(h, 0) && h > 0
}
