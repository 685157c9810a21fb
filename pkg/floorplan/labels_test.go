package floorplan

import (
	"strings"
	"testing"

	"floorview/pkg/scene"
)

// charMeasurer approximates text width as 0.6 units per character per unit
// of font size, which is close to real proportional faces.
type charMeasurer struct{}

func (charMeasurer) Width(text string, size float64) float64 {
	return 0.6 * size * float64(len(text))
}

func labelMount(t *testing.T, markup string, store *Store) *Mount {
	t.Helper()
	doc, err := scene.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return NewMount(1, doc, store)
}

func TestBuildLabelsCentersOnBox(t *testing.T) {
	store := NewStore([]Region{{ID: "room", Name: "Lab"}})
	m := labelMount(t, `<svg><rect id="room" x="100" y="100" width="200" height="100"/></svg>`, store)

	labels := BuildLabels(m, store, charMeasurer{})
	if len(labels) != 1 {
		t.Fatalf("labels = %+v, want one", labels)
	}
	l := labels[0]
	if l.Text != "Lab" {
		t.Errorf("text = %q, want Lab", l.Text)
	}
	if l.At.X != 200 || l.At.Y != 150 {
		t.Errorf("at = %+v, want centroid (200,150)", l.At)
	}
	// "Lab" at the preferred size fits easily, so size stays at 16.
	if l.Size != labelFontPreferred {
		t.Errorf("size = %v, want %v", l.Size, labelFontPreferred)
	}
}

func TestBuildLabelsStepsDownToFit(t *testing.T) {
	store := NewStore([]Region{{ID: "room", Name: "Conference Center"}})
	// 17 chars * 0.6 * 16 = 163.2 > 90, so the size steps down until
	// 17 * 0.6 * size <= 0.9 * 100 -> size <= 8.82 -> 8 after 1.0 steps
	// from 16.
	m := labelMount(t, `<svg><rect id="room" x="0" y="0" width="100" height="60"/></svg>`, store)

	labels := BuildLabels(m, store, charMeasurer{})
	if len(labels) != 1 {
		t.Fatalf("labels = %+v, want one", labels)
	}
	if labels[0].Size != 8 {
		t.Errorf("size = %v, want 8", labels[0].Size)
	}
}

func TestBuildLabelsSkipsShortBox(t *testing.T) {
	store := NewStore([]Region{{ID: "sliver", Name: "S"}})
	// Height 5: candidate max = min(28, 3) is below the minimum legible
	// size, so no label is produced.
	m := labelMount(t, `<svg><rect id="sliver" x="0" y="0" width="400" height="5"/></svg>`, store)

	if labels := BuildLabels(m, store, charMeasurer{}); len(labels) != 0 {
		t.Errorf("labels = %+v, want none for a 5-unit-tall box", labels)
	}
}

func TestBuildLabelsSkipsWhenNothingFits(t *testing.T) {
	store := NewStore([]Region{{ID: "room", Name: "An Unreasonably Long Region Name"}})
	m := labelMount(t, `<svg><rect id="room" x="0" y="0" width="40" height="40"/></svg>`, store)

	if labels := BuildLabels(m, store, charMeasurer{}); len(labels) != 0 {
		t.Errorf("labels = %+v, want none when no size in range fits", labels)
	}
}

func TestBuildLabelsSkipsBathroomCategory(t *testing.T) {
	store := NewStore([]Region{{ID: "wc", Name: "Restroom", Category: "Bathroom"}})
	m := labelMount(t, `<svg><rect id="wc" x="0" y="0" width="300" height="200"/></svg>`, store)

	if labels := BuildLabels(m, store, charMeasurer{}); len(labels) != 0 {
		t.Errorf("labels = %+v, want none for bathroom category", labels)
	}
}

func TestBuildLabelsSkipsMissingMetadataAndDecorative(t *testing.T) {
	store := NewStore([]Region{{ID: "art", Decorative: true}})
	m := labelMount(t, `<svg>
		<rect id="art" x="0" y="0" width="300" height="200"/>
		<rect id="nometa" x="0" y="300" width="300" height="200"/>
	</svg>`, store)

	if labels := BuildLabels(m, store, charMeasurer{}); len(labels) != 0 {
		t.Errorf("labels = %+v, want none", labels)
	}
}

func TestBuildLabelsUsesIDWhenNameBlank(t *testing.T) {
	store := NewStore([]Region{{ID: "B12", Name: "   "}})
	m := labelMount(t, `<svg><rect id="B12" x="0" y="0" width="200" height="100"/></svg>`, store)

	labels := BuildLabels(m, store, charMeasurer{})
	if len(labels) != 1 || labels[0].Text != "B12" {
		t.Errorf("labels = %+v, want one with id fallback text", labels)
	}
}

func TestBuildLabelsSkipsUnreadableGeometry(t *testing.T) {
	store := NewStore([]Region{{ID: "ghost", Name: "Ghost"}})
	m := labelMount(t, `<svg><rect id="ghost" x="0" y="0" width="oops" height="50"/></svg>`, store)

	if labels := BuildLabels(m, store, charMeasurer{}); len(labels) != 0 {
		t.Errorf("labels = %+v, want none for non-finite box", labels)
	}
}

func TestGoFontMeasurerMonotonic(t *testing.T) {
	m := NewGoFontMeasurer()
	small := m.Width("Meeting Room", 8)
	large := m.Width("Meeting Room", 16)
	if small <= 0 || large <= small {
		t.Errorf("widths = %v, %v; want positive and increasing with size", small, large)
	}
}
