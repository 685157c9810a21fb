package gui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"floorview/pkg/floorplan"
	"floorview/pkg/gesture"
	"floorview/pkg/render"
	"floorview/pkg/scene"
	"floorview/pkg/transform"
)

var (
	selectedFill  = color.NRGBA{R: 0x1e, G: 0x66, B: 0xd0, A: 0x60}
	selectedLine  = color.NRGBA{R: 0x1e, G: 0x66, B: 0xd0, A: 0xff}
	hoverFill     = color.NRGBA{R: 0x1e, G: 0x66, B: 0xd0, A: 0x30}
	hoverLine     = color.NRGBA{R: 0x1e, G: 0x66, B: 0xd0, A: 0x90}
	highlightFill = color.NRGBA{R: 0xf2, G: 0xa5, B: 0x1a, A: 0x50}
	highlightLine = color.NRGBA{R: 0xf2, G: 0xa5, B: 0x1a, A: 0xff}
	labelColor    = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

// markBox pairs a marker rectangle with the content-space box it covers.
type markBox struct {
	rect *canvas.Rectangle
	box  scene.Rect
}

// labelText pairs a text object with its content-space anchor and size.
type labelText struct {
	text *canvas.Text
	at   transform.Point
	size float64
}

// Viewer is a custom widget for viewing a floor plan with pan/zoom. The
// base image and all overlays live in content space; the renderer places
// them on screen through the current viewport transform.
type Viewer struct {
	widget.BaseWidget

	ctrl     *floorplan.Controller
	gestures *gesture.Controller

	base    *canvas.Image
	content scene.Rect

	marks  []markBox
	labels []labelText

	// Dragging state
	dragging bool

	// OnTransform fires after every camera change.
	OnTransform func(transform.Transform)
}

// NewViewer creates a new floor plan viewer widget.
func NewViewer(ctrl *floorplan.Controller, gestures *gesture.Controller) *Viewer {
	v := &Viewer{
		ctrl:     ctrl,
		gestures: gestures,
	}
	v.ExtendBaseWidget(v)

	v.base = canvas.NewImageFromImage(render.Placeholder(1, 1))
	v.base.FillMode = canvas.ImageFillStretch
	v.base.ScaleMode = canvas.ImageScaleSmooth

	gestures.OnChange = func(t transform.Transform) {
		v.Refresh()
		if v.OnTransform != nil {
			v.OnTransform(t)
		}
	}
	return v
}

// SetMount installs a newly mounted floor (or nil while one is loading),
// rasterizes its scene, and resets the camera.
func (v *Viewer) SetMount(m *floorplan.Mount) {
	v.dragging = false
	v.gestures.Reset()

	if m == nil {
		v.base.Image = render.Placeholder(1, 1)
		v.content = scene.Rect{}
		v.marks = nil
		v.labels = nil
		v.Refresh()
		return
	}

	v.content = m.Doc.ContentBounds()
	w, h := rasterSize(v.content)
	img, err := render.Document(m.Raw, w, h)
	if err != nil {
		// The scene stays interactive over a blank base.
		img = render.Placeholder(w, h)
	}
	v.base.Image = img
	v.RefreshState(m)
}

// RefreshState rebuilds the marker and label overlays from the mount.
func (v *Viewer) RefreshState(m *floorplan.Mount) {
	v.marks = v.marks[:0]
	v.labels = v.labels[:0]

	if m != nil {
		for _, id := range m.RegionIDs() {
			mark := m.Mark(id)
			if mark == 0 {
				continue
			}
			node := m.Region(id)
			if !node.Bounds.Valid() {
				continue
			}
			r := canvas.NewRectangle(markFill(mark))
			r.StrokeColor = markStroke(mark)
			r.StrokeWidth = 2
			v.marks = append(v.marks, markBox{rect: r, box: node.Bounds})
		}
		for _, l := range m.Labels() {
			t := canvas.NewText(l.Text, labelColor)
			t.Alignment = fyne.TextAlignCenter
			v.labels = append(v.labels, labelText{text: t, at: l.At, size: l.Size})
		}
	}
	v.Refresh()
}

// markFill picks the marker fill; selection outranks hover outranks
// highlight when marks combine.
func markFill(m floorplan.Mark) color.Color {
	switch {
	case m&floorplan.MarkSelected != 0:
		return selectedFill
	case m&floorplan.MarkHover != 0:
		return hoverFill
	default:
		return highlightFill
	}
}

func markStroke(m floorplan.Mark) color.Color {
	switch {
	case m&floorplan.MarkSelected != 0:
		return selectedLine
	case m&floorplan.MarkHover != 0:
		return hoverLine
	default:
		return highlightLine
	}
}

// rasterSize picks the pixel size of the base image: the content box
// scaled so the longer edge lands near 2048px.
func rasterSize(b scene.Rect) (int, int) {
	if !b.Valid() {
		return 1, 1
	}
	const target = 2048.0
	scale := target / math.Max(b.Width, b.Height)
	if scale > 4 {
		scale = 4
	}
	w := int(b.Width*scale + 0.5)
	h := int(b.Height*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// CreateRenderer creates the renderer for this widget.
func (v *Viewer) CreateRenderer() fyne.WidgetRenderer {
	return &viewerRenderer{viewer: v}
}

// Tapped resolves a click through the hit resolver.
func (v *Viewer) Tapped(e *fyne.PointEvent) {
	v.ctrl.ClickAt(v.toContent(e.Position))
}

// Dragged feeds the pan gesture.
func (v *Viewer) Dragged(e *fyne.DragEvent) {
	if !v.dragging {
		v.dragging = true
		start := fyne.NewPos(e.Position.X-e.Dragged.DX, e.Position.Y-e.Dragged.DY)
		v.gestures.PointerDown(0, toPoint(start))
	}
	v.gestures.PointerMove(0, toPoint(e.Position))
}

// DragEnd releases the pan pointer.
func (v *Viewer) DragEnd() {
	v.dragging = false
	v.gestures.PointerUp(0)
}

// Scrolled zooms by wheel ticks focused at the cursor.
func (v *Viewer) Scrolled(e *fyne.ScrollEvent) {
	v.gestures.Wheel(float64(e.Scrolled.DY), toPoint(e.Position))
}

// MouseIn updates hover state as the pointer enters.
func (v *Viewer) MouseIn(e *desktop.MouseEvent) {
	v.ctrl.HoverAt(v.toContent(e.Position))
}

// MouseMoved updates hover state as the pointer moves.
func (v *Viewer) MouseMoved(e *desktop.MouseEvent) {
	v.ctrl.HoverAt(v.toContent(e.Position))
}

// MouseOut clears hover state when the pointer leaves.
func (v *Viewer) MouseOut() {
	v.ctrl.ClearHover()
}

// ZoomIn applies one zoom step centered on the widget.
func (v *Viewer) ZoomIn() {
	v.gestures.ZoomIn(v.center())
}

// ZoomOut applies one inverse zoom step centered on the widget.
func (v *Viewer) ZoomOut() {
	v.gestures.ZoomOut(v.center())
}

// ResetView restores the identity camera.
func (v *Viewer) ResetView() {
	v.dragging = false
	v.gestures.Reset()
}

func (v *Viewer) center() transform.Point {
	s := v.Size()
	return transform.Point{X: float64(s.Width) / 2, Y: float64(s.Height) / 2}
}

func (v *Viewer) toContent(pos fyne.Position) transform.Point {
	return v.gestures.Transform().Invert(toPoint(pos))
}

func toPoint(pos fyne.Position) transform.Point {
	return transform.Point{X: float64(pos.X), Y: float64(pos.Y)}
}

// viewerRenderer places the base image and overlays per the transform.
type viewerRenderer struct {
	viewer *Viewer
}

func (r *viewerRenderer) Layout(fyne.Size) {
	t := r.viewer.gestures.Transform()

	if b := r.viewer.content; b.Valid() {
		min := t.Apply(transform.Point{X: b.X, Y: b.Y})
		r.viewer.base.Move(fyne.NewPos(float32(min.X), float32(min.Y)))
		r.viewer.base.Resize(fyne.NewSize(float32(b.Width*t.Scale), float32(b.Height*t.Scale)))
	}

	for _, m := range r.viewer.marks {
		min := t.Apply(transform.Point{X: m.box.X, Y: m.box.Y})
		m.rect.Move(fyne.NewPos(float32(min.X), float32(min.Y)))
		m.rect.Resize(fyne.NewSize(float32(m.box.Width*t.Scale), float32(m.box.Height*t.Scale)))
	}

	for _, l := range r.viewer.labels {
		l.text.TextSize = float32(l.size * t.Scale)
		ts := fyne.MeasureText(l.text.Text, l.text.TextSize, l.text.TextStyle)
		at := t.Apply(l.at)
		l.text.Move(fyne.NewPos(float32(at.X)-ts.Width/2, float32(at.Y)-ts.Height/2))
		l.text.Resize(ts)
	}
}

func (r *viewerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *viewerRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, 1+len(r.viewer.marks)+len(r.viewer.labels))
	objs = append(objs, r.viewer.base)
	for _, m := range r.viewer.marks {
		objs = append(objs, m.rect)
	}
	for _, l := range r.viewer.labels {
		objs = append(objs, l.text)
	}
	return objs
}

func (r *viewerRenderer) Refresh() {
	r.Layout(r.viewer.Size())
	r.viewer.base.Refresh()
	for _, m := range r.viewer.marks {
		m.rect.Refresh()
	}
	for _, l := range r.viewer.labels {
		l.text.Refresh()
	}
}

func (r *viewerRenderer) Destroy() {}
