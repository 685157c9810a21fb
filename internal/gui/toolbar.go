package gui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar provides floor and zoom controls.
type Toolbar struct {
	container *fyne.Container

	// Callbacks
	OnFloor   func(floor int)
	OnZoomIn  func()
	OnZoomOut func()
	OnReset   func()

	floorSelect *widget.Select
	updating    bool
}

// NewToolbar creates a toolbar offering floors 1..floors.
func NewToolbar(floors int) *Toolbar {
	t := &Toolbar{}
	t.build(floors)
	return t
}

func (t *Toolbar) build(floors int) {
	options := make([]string, floors)
	for i := range options {
		options[i] = fmt.Sprintf("Floor %d", i+1)
	}

	t.floorSelect = widget.NewSelect(options, func(string) {
		if t.updating {
			return
		}
		if t.OnFloor != nil {
			t.OnFloor(t.floorSelect.SelectedIndex() + 1)
		}
	})

	zoomOutBtn := widget.NewButtonWithIcon("", theme.ZoomOutIcon(), func() {
		if t.OnZoomOut != nil {
			t.OnZoomOut()
		}
	})

	zoomInBtn := widget.NewButtonWithIcon("", theme.ZoomInIcon(), func() {
		if t.OnZoomIn != nil {
			t.OnZoomIn()
		}
	})

	resetBtn := widget.NewButtonWithIcon("Reset", theme.ViewRestoreIcon(), func() {
		if t.OnReset != nil {
			t.OnReset()
		}
	})

	t.container = container.NewHBox(
		t.floorSelect,
		widget.NewSeparator(),
		zoomOutBtn,
		widget.NewLabel("Zoom"),
		zoomInBtn,
		widget.NewSeparator(),
		resetBtn,
	)
}

// Container returns the toolbar container.
func (t *Toolbar) Container() *fyne.Container {
	return t.container
}

// SetFloor reflects the active floor without firing the callback.
func (t *Toolbar) SetFloor(floor int) {
	t.updating = true
	t.floorSelect.SetSelectedIndex(floor - 1)
	t.updating = false
}

// StatusBar shows the hovered region and the zoom level.
type StatusBar struct {
	container *fyne.Container
	label     *widget.Label
	zoomLabel *widget.Label
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		label:     widget.NewLabel("Ready"),
		zoomLabel: widget.NewLabel("100%"),
	}

	s.container = container.NewHBox(
		s.label,
		widget.NewSeparator(),
		s.zoomLabel,
	)

	return s
}

// Container returns the status bar container.
func (s *StatusBar) Container() *fyne.Container {
	return s.container
}

// SetStatus sets the status message.
func (s *StatusBar) SetStatus(msg string) {
	s.label.SetText(msg)
}

// SetZoom sets the zoom percentage display.
func (s *StatusBar) SetZoom(percent int) {
	s.zoomLabel.SetText(strconv.Itoa(percent) + "%")
}
