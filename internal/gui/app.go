// Package gui provides the native desktop floor-plan viewer using Fyne.
package gui

import (
	"fmt"
	"log/slog"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"floorview/internal/config"
	"floorview/pkg/floorplan"
	"floorview/pkg/gesture"
	"floorview/pkg/transform"
)

// App represents the floor-plan viewer application.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	cfg     *config.Config

	ctrl     *floorplan.Controller
	gestures *gesture.Controller

	// UI components
	viewer  *Viewer
	toolbar *Toolbar
	status  *StatusBar
	search  *SearchEntry

	suggestList *widget.List
	suggestions []floorplan.Suggestion

	historyList *widget.List
	history     []floorplan.HistoryEntry

	categoryBox  *fyne.Container
	categoryTags []string
}

// NewApp creates the viewer application for a configuration.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	a := &App{
		fyneApp: app.New(),
		cfg:     cfg,
	}

	a.fyneApp.Settings().SetTheme(theme.DarkTheme())
	a.window = a.fyneApp.NewWindow(cfg.Window.Title)
	a.window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	a.ctrl = floorplan.NewController(
		floorplan.NewFetcher(cfg.Assets),
		floorplan.NewGoFontMeasurer(),
		logger,
	)
	a.ctrl.Spawn = func(f func()) { go f() }

	a.gestures = gesture.NewController(cfg.View.MinScale, cfg.View.MaxScale)

	return a
}

// Run starts the application on floor 1.
func (a *App) Run() {
	a.buildUI()
	a.wire()

	a.ctrl.LoadMetadata()
	a.ctrl.SetFloor(1)

	a.window.ShowAndRun()
}

// buildUI constructs the user interface.
func (a *App) buildUI() {
	a.viewer = NewViewer(a.ctrl, a.gestures)
	a.toolbar = NewToolbar(a.cfg.Floors)
	a.status = NewStatusBar()
	a.search = NewSearchEntry()
	a.categoryBox = container.NewVBox()

	a.suggestList = widget.NewList(
		func() int { return len(a.suggestions) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			s := a.suggestions[i]
			o.(*widget.Label).SetText(fmt.Sprintf("%s (%s)", s.Name, s.ID))
		},
	)
	a.suggestList.OnSelected = func(i widget.ListItemID) {
		id := a.suggestions[i].ID
		a.suggestList.Unselect(i)
		a.search.Dismiss()
		a.ctrl.Navigate(id, floorplan.NavigateOptions{UpdateSearch: true, ClearCategory: true})
	}

	a.historyList = widget.NewList(
		func() int { return len(a.history) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(a.history[i].Name)
		},
	)
	a.historyList.OnSelected = func(i widget.ListItemID) {
		id := a.history[i].ID
		a.historyList.Unselect(i)
		a.ctrl.Navigate(id, floorplan.NavigateOptions{})
	}

	side := container.NewBorder(
		container.NewVBox(
			a.search,
			widget.NewLabel("Categories"),
			a.categoryBox,
		),
		nil, nil, nil,
		container.NewVSplit(
			container.NewBorder(widget.NewLabel("Suggestions"), nil, nil, nil, a.suggestList),
			container.NewBorder(widget.NewLabel("Recent"), nil, nil, nil, a.historyList),
		),
	)

	content := container.NewBorder(
		container.NewPadded(a.toolbar.Container()), // Top
		a.status.Container(),                      // Bottom
		nil,                                       // Left
		side,                                      // Right
		a.viewer,                                  // Center
	)

	a.window.SetContent(content)
}

// wire connects the engine callbacks to the UI.
func (a *App) wire() {
	a.ctrl.OnMount = func(m *floorplan.Mount) {
		a.viewer.SetMount(m)
		if m == nil {
			a.status.SetStatus("Loading...")
		} else {
			a.status.SetStatus("Ready")
		}
	}
	a.ctrl.OnState = func() {
		a.viewer.RefreshState(a.ctrl.Mount())
		a.refreshHistory()
		a.refreshCategories()
		a.refreshStatus()
	}
	a.ctrl.OnSelect = func(e floorplan.HistoryEntry) {
		a.status.SetStatus("Selected " + e.Name)
	}
	a.ctrl.OnFloor = func(n int) {
		a.toolbar.SetFloor(n)
	}
	a.ctrl.OnSearch = func(s string) {
		a.search.SetTextSilently(s)
	}

	a.search.Source = a.ctrl.Suggest
	a.search.Exact = func(text string) (string, bool) {
		r, ok := a.ctrl.Store().ExactMatch(text)
		if !ok {
			return "", false
		}
		return r.ID, true
	}
	a.search.OnNavigate = func(id string) {
		a.ctrl.Navigate(id, floorplan.NavigateOptions{UpdateSearch: true, ClearCategory: true})
	}
	a.search.OnSuggestions = func(s []floorplan.Suggestion, focused int) {
		a.suggestions = s
		a.suggestList.Refresh()
		if focused >= 0 {
			a.suggestList.Select(focused)
		} else {
			a.suggestList.UnselectAll()
		}
	}

	a.toolbar.OnFloor = a.ctrl.SetFloor
	a.toolbar.OnZoomIn = a.viewer.ZoomIn
	a.toolbar.OnZoomOut = a.viewer.ZoomOut
	a.toolbar.OnReset = a.viewer.ResetView

	a.viewer.OnTransform = func(t transform.Transform) {
		a.status.SetZoom(int(t.Scale*100 + 0.5))
	}
}

func (a *App) refreshHistory() {
	a.history = a.ctrl.History().Entries()
	a.historyList.Refresh()
}

func (a *App) refreshStatus() {
	m := a.ctrl.Mount()
	if m == nil {
		return
	}
	if id := m.HoverID(); id != "" {
		name := id
		if r, ok := a.ctrl.Store().Get(id); ok {
			name = r.DisplayName()
		}
		a.status.SetStatus(name)
	}
}

// refreshCategories rebuilds the category toggle buttons when the tag set
// changes and restyles them to show the active filter.
func (a *App) refreshCategories() {
	tags := a.collectCategories()

	if !equalStrings(tags, a.categoryTags) {
		a.categoryTags = tags
		a.categoryBox.Objects = nil
		for _, tag := range tags {
			tag := tag
			a.categoryBox.Add(widget.NewButton(tag, func() {
				a.ctrl.ToggleCategory(tag)
			}))
		}
	}

	active := a.ctrl.Category()
	for i, obj := range a.categoryBox.Objects {
		btn := obj.(*widget.Button)
		if a.categoryTags[i] == active {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
	a.categoryBox.Refresh()
}

func (a *App) collectCategories() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, r := range a.ctrl.Store().Regions() {
		if r.Decorative {
			continue
		}
		for _, tag := range r.Categories() {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
