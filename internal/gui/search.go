package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"floorview/pkg/floorplan"
)

// SearchEntry is the region search box. It re-ranks suggestions on every
// keystroke and handles keyboard navigation of the suggestion list: arrows
// cycle, Enter commits (focused suggestion, else the top one, else an
// exact id match), Escape dismisses.
type SearchEntry struct {
	widget.Entry

	// Source ranks suggestions for the current text.
	Source func(string) []floorplan.Suggestion
	// Exact resolves committed text to a region id when no suggestion
	// is available.
	Exact func(string) (string, bool)
	// OnNavigate commits a chosen region id.
	OnNavigate func(id string)
	// OnSuggestions reports the current list and focused index (-1 none).
	OnSuggestions func([]floorplan.Suggestion, int)

	suggestions []floorplan.Suggestion
	focused     int
}

// NewSearchEntry creates the search box.
func NewSearchEntry() *SearchEntry {
	e := &SearchEntry{focused: -1}
	e.ExtendBaseWidget(e)
	e.SetPlaceHolder("Search regions")
	e.OnChanged = e.textChanged
	return e
}

// SetTextSilently replaces the text without re-ranking, used when
// navigation writes the canonical id back into the box.
func (e *SearchEntry) SetTextSilently(text string) {
	changed := e.OnChanged
	e.OnChanged = nil
	e.SetText(text)
	e.OnChanged = changed
}

// Dismiss drops the suggestion list.
func (e *SearchEntry) Dismiss() {
	e.suggestions = nil
	e.focused = -1
	e.notify()
}

// TypedKey handles suggestion-list keyboard navigation; everything else
// goes to the plain entry.
func (e *SearchEntry) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyDown:
		if len(e.suggestions) == 0 {
			return
		}
		e.focused = (e.focused + 1) % len(e.suggestions)
		e.notify()
	case fyne.KeyUp:
		if len(e.suggestions) == 0 {
			return
		}
		if e.focused <= 0 {
			e.focused = len(e.suggestions) - 1
		} else {
			e.focused--
		}
		e.notify()
	case fyne.KeyReturn, fyne.KeyEnter:
		e.commit()
	case fyne.KeyEscape:
		e.Dismiss()
	default:
		e.Entry.TypedKey(key)
	}
}

func (e *SearchEntry) textChanged(text string) {
	e.suggestions = nil
	if e.Source != nil {
		e.suggestions = e.Source(text)
	}
	e.focused = -1
	e.notify()
}

func (e *SearchEntry) commit() {
	var id string
	switch {
	case e.focused >= 0 && e.focused < len(e.suggestions):
		id = e.suggestions[e.focused].ID
	case len(e.suggestions) > 0:
		id = e.suggestions[0].ID
	default:
		if e.Exact != nil {
			if match, ok := e.Exact(e.Text); ok {
				id = match
			}
		}
	}
	if id == "" {
		return
	}
	e.Dismiss()
	if e.OnNavigate != nil {
		e.OnNavigate(id)
	}
}

func (e *SearchEntry) notify() {
	if e.OnSuggestions != nil {
		e.OnSuggestions(e.suggestions, e.focused)
	}
}
