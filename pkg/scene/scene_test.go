package scene

import (
	"math"
	"strings"
	"testing"

	"floorview/pkg/transform"
)

const sampleScene = `<svg viewBox="0 0 800 600">
  <g id="floor1">
    <rect id="background" x="0" y="0" width="800" height="600"/>
    <rect id="UCC146" x="100" y="100" width="120" height="80"/>
    <polygon id="UCC100" points="300,100 420,100 420,220 360,260 300,220"/>
    <path id="UCC210" d="M500 100 L620 100 L620 180 L500 180 Z"/>
    <circle id="pillar-a" cx="700" cy="300" r="10"/>
    <g id="UCC300">
      <rect x="100" y="300" width="60" height="60"/>
      <rect x="160" y="300" width="60" height="60"/>
    </g>
  </g>
</svg>`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(sampleScene))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestParseIndexesIDs(t *testing.T) {
	doc := parseSample(t)

	for _, id := range []string{"floor1", "UCC146", "UCC100", "UCC210", "UCC300"} {
		if doc.ByID(id) == nil {
			t.Errorf("ByID(%q) = nil", id)
		}
	}
	if doc.ByID("nope") != nil {
		t.Error("unknown id resolved")
	}
}

func TestRectGeometry(t *testing.T) {
	doc := parseSample(t)
	n := doc.ByID("UCC146")

	want := Rect{X: 100, Y: 100, Width: 120, Height: 80}
	if n.Bounds != want {
		t.Errorf("bounds = %+v, want %+v", n.Bounds, want)
	}
	if !n.Contains(transform.Point{X: 150, Y: 140}) {
		t.Error("interior point missed")
	}
	if n.Contains(transform.Point{X: 99, Y: 140}) {
		t.Error("exterior point hit")
	}
}

func TestPolygonContainment(t *testing.T) {
	doc := parseSample(t)
	n := doc.ByID("UCC100")

	if !n.Contains(transform.Point{X: 360, Y: 150}) {
		t.Error("point inside polygon missed")
	}
	// Inside the bounding box but outside the clipped corner.
	if n.Contains(transform.Point{X: 305, Y: 255}) {
		t.Error("bounding-box corner outside polygon hit")
	}
}

func TestGroupBoundsUnion(t *testing.T) {
	doc := parseSample(t)
	n := doc.ByID("UCC300")

	want := Rect{X: 100, Y: 300, Width: 120, Height: 60}
	if n.Bounds != want {
		t.Errorf("group bounds = %+v, want %+v", n.Bounds, want)
	}
}

func TestHitTestTopmost(t *testing.T) {
	doc := parseSample(t)

	// The background rect covers everything; regions painted later win.
	hit := doc.HitTest(transform.Point{X: 150, Y: 140})
	if hit == nil || hit.NearestID() == nil || hit.NearestID().ID != "UCC146" {
		t.Errorf("hit = %v, want UCC146", hit)
	}

	// Empty area resolves to the background.
	hit = doc.HitTest(transform.Point{X: 50, Y: 50})
	if hit == nil || hit.ID != "background" {
		t.Errorf("hit = %v, want background", hit)
	}
}

func TestNearestIDWalksUp(t *testing.T) {
	doc := parseSample(t)
	group := doc.ByID("UCC300")
	child := group.Children[0]

	if child.ID != "" {
		t.Fatal("test expects anonymous child")
	}
	if got := child.NearestID(); got == nil || got.ID != "UCC300" {
		t.Errorf("NearestID = %v, want UCC300", got)
	}
}

func TestContentBoundsFromViewBox(t *testing.T) {
	doc := parseSample(t)
	want := Rect{X: 0, Y: 0, Width: 800, Height: 600}
	if got := doc.ContentBounds(); got != want {
		t.Errorf("content bounds = %+v, want %+v", got, want)
	}
}

func TestIsContainerID(t *testing.T) {
	cases := map[string]bool{
		"floor1":     true,
		"Floor2":     true,
		"layer-base": true,
		"background": true,
		"UCC146":     false,
		"lobby":      false,
	}
	for id, want := range cases {
		if got := IsContainerID(id); got != want {
			t.Errorf("IsContainerID(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestParseToleratesMalformedGeometry(t *testing.T) {
	doc, err := Parse(strings.NewReader(
		`<svg><rect id="bad" x="ten" y="0" width="nan" height="5"/><rect id="ok" x="0" y="0" width="10" height="10"/></svg>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	bad := doc.ByID("bad")
	if bad == nil {
		t.Fatal("malformed element dropped entirely")
	}
	if bad.Bounds.Valid() {
		t.Error("unreadable geometry produced valid bounds")
	}
	if ok := doc.ByID("ok"); ok == nil || !ok.Bounds.Valid() {
		t.Error("well-formed sibling lost")
	}
}

func TestParseTruncatedDocument(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<svg><rect id="a" x="0" y="0" width="5" height="5">`))
	if err != nil {
		t.Fatalf("parse truncated: %v", err)
	}
	if doc.ByID("a") == nil {
		t.Error("element before truncation lost")
	}
}

func TestParseNoRoot(t *testing.T) {
	if _, err := Parse(strings.NewReader("   ")); err == nil {
		t.Error("expected error for empty document")
	}
}

func TestPathBounds(t *testing.T) {
	cases := []struct {
		name string
		d    string
		want Rect
	}{
		{"absolute lines", "M10 10 L110 10 L110 60 Z", Rect{10, 10, 100, 50}},
		{"relative lines", "m10 10 l100 0 l0 50 z", Rect{10, 10, 100, 50}},
		{"horizontal vertical", "M0 0 H40 V30", Rect{0, 0, 40, 30}},
		{"cubic control points", "M0 0 C0 20 40 20 40 0", Rect{0, 0, 40, 20}},
		{"implicit lineto after move", "M5 5 15 5 15 25", Rect{5, 5, 10, 20}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PathBounds(tc.d)
			if !ok {
				t.Fatal("PathBounds not ok")
			}
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 ||
				math.Abs(got.Width-tc.want.Width) > 1e-9 || math.Abs(got.Height-tc.want.Height) > 1e-9 {
				t.Errorf("bounds = %+v, want %+v", got, tc.want)
			}
		})
	}

	if _, ok := PathBounds(""); ok {
		t.Error("empty path produced bounds")
	}
	if _, ok := PathBounds("not a path"); ok {
		t.Error("junk path produced bounds")
	}
}
