package floorplan

import (
	"bytes"
	"log/slog"

	"floorview/pkg/scene"
	"floorview/pkg/transform"
)

// NavigateOptions adjusts programmatic navigation (e.g. from the search
// box).
type NavigateOptions struct {
	// UpdateSearch replaces the search text with the canonical region id.
	UpdateSearch bool
	// ClearCategory drops the active category filter.
	ClearCategory bool
	// Recompute forces a highlight recompute even when neither filter
	// changed.
	Recompute bool
}

// Controller owns the viewer's interaction state: the metadata table, the
// current mount, the active filters, the selection history, and the
// pending cross-floor selection. All methods must be called from the one
// event-driven thread of control; asynchronous loads hand their results
// back through Dispatch.
type Controller struct {
	fetch   Fetcher
	measure TextMeasurer
	log     *slog.Logger

	store   *Store
	history *History

	floor   int
	mount   *Mount
	loadGen uint64

	search   string
	category string
	pending  string

	// Spawn runs the blocking part of a load; Dispatch hands the
	// completion back to the owner's thread of control. Both default to
	// synchronous calls so headless use and tests stay deterministic;
	// the GUI installs a goroutine spawn.
	Spawn    func(func())
	Dispatch func(func())

	// Observers. All optional.
	OnMount    func(*Mount)       // mount replaced (nil while loading)
	OnState    func()             // marks, labels, filters, or history changed
	OnSelect   func(HistoryEntry) // a region was selected
	OnFloor    func(int)          // active floor changed
	OnSearch   func(string)       // search text replaced programmatically
	OnCategory func(string)       // active category changed
}

// NewController creates a controller with an empty metadata table.
func NewController(fetch Fetcher, measure TextMeasurer, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		fetch:    fetch,
		measure:  measure,
		log:      logger,
		store:    EmptyStore(),
		history:  NewHistory(HistoryLimit),
		Spawn:    func(f func()) { f() },
		Dispatch: func(f func()) { f() },
	}
}

// Store returns the metadata table.
func (c *Controller) Store() *Store { return c.store }

// Mount returns the current mount, or nil while no scene is loaded.
func (c *Controller) Mount() *Mount { return c.mount }

// Floor returns the active floor number.
func (c *Controller) Floor() int { return c.floor }

// Search returns the current search text.
func (c *Controller) Search() string { return c.search }

// Category returns the active category tag, or "".
func (c *Controller) Category() string { return c.category }

// History returns the recent-selection list.
func (c *Controller) History() *History { return c.history }

// LoadMetadata fetches and installs the metadata document. A failed load
// is logged and leaves an empty table; the viewer stays usable without
// interactivity. If a scene is already mounted it is reclassified against
// the new table.
func (c *Controller) LoadMetadata() {
	c.Spawn(func() {
		data, err := c.fetch.Metadata()
		c.Dispatch(func() {
			if err != nil {
				c.log.Warn("metadata load failed", "err", err)
				c.store = EmptyStore()
			} else if store, perr := ParseMetadata(data); perr != nil {
				c.log.Warn("metadata decode failed", "err", perr)
				c.store = EmptyStore()
			} else {
				c.store = store
			}
			if c.mount != nil {
				raw := c.mount.Raw
				c.mount = NewMount(c.mount.Floor, c.mount.Doc, c.store)
				c.mount.Raw = raw
				c.recompute()
				c.notifyMount()
			}
			c.notifyState()
		})
	})
}

// SetFloor switches the active floor: the previous mount is torn down
// immediately, selection history is cleared, and the floor's scene is
// fetched. A load superseded by a newer floor switch is discarded when it
// completes.
func (c *Controller) SetFloor(n int) {
	if n == c.floor && c.mount != nil {
		return
	}
	c.floor = n
	c.loadGen++
	gen := c.loadGen

	c.history.Clear()
	c.mount = nil
	if c.OnFloor != nil {
		c.OnFloor(n)
	}
	c.notifyMount()
	c.notifyState()

	c.Spawn(func() {
		data, err := c.fetch.Scene(n)
		c.Dispatch(func() {
			c.completeLoad(gen, n, data, err)
		})
	})
}

func (c *Controller) completeLoad(gen uint64, floor int, data []byte, err error) {
	if gen != c.loadGen {
		// A newer floor switch began while this load was in flight.
		return
	}
	if err != nil {
		c.log.Warn("scene load failed", "floor", floor, "err", err)
		c.pending = ""
		return
	}
	doc, perr := scene.Parse(bytes.NewReader(data))
	if perr != nil {
		c.log.Warn("scene parse failed", "floor", floor, "err", perr)
		c.pending = ""
		return
	}

	c.mount = NewMount(floor, doc, c.store)
	c.mount.Raw = data
	c.recompute()

	// Replay at most one pending cross-floor selection; if the target is
	// still absent it is dropped, not queued again.
	if id := c.pending; id != "" {
		c.pending = ""
		if c.mount.Region(id) != nil {
			c.selectRegion(id)
		}
	}

	c.notifyMount()
	c.notifyState()
}

// ClickAt handles a click at a content-space point. A region click selects
// it; a background click clears the selection marker without touching
// history.
func (c *Controller) ClickAt(p transform.Point) {
	if c.mount == nil {
		return
	}
	node := c.mount.RegionAt(p, c.store)
	if node == nil {
		if c.mount.setSelected("") {
			c.notifyState()
		}
		return
	}
	c.selectRegion(node.ID)
}

func (c *Controller) selectRegion(id string) {
	c.mount.setSelected(id)

	entry := HistoryEntry{ID: id, Name: id}
	if r, ok := c.store.Get(id); ok {
		entry.Name = r.DisplayName()
		entry.Link = r.Link
		entry.Description = r.Description
	}
	c.history.Push(entry)

	if c.OnSelect != nil {
		c.OnSelect(entry)
	}
	c.notifyState()
}

// HoverAt updates the transient hover marker for a content-space point;
// pointing at the background clears it.
func (c *Controller) HoverAt(p transform.Point) {
	if c.mount == nil {
		return
	}
	id := ""
	if node := c.mount.RegionAt(p, c.store); node != nil {
		id = node.ID
	}
	if c.mount.setHover(id) {
		c.notifyState()
	}
}

// ClearHover drops the hover marker (pointer left the scene).
func (c *Controller) ClearHover() {
	if c.mount != nil && c.mount.setHover("") {
		c.notifyState()
	}
}

// SetSearch updates the search text and recomputes highlights.
func (c *Controller) SetSearch(s string) {
	if s == c.search {
		return
	}
	c.search = s
	c.recomputeHighlights()
	c.notifyState()
}

// ToggleCategory activates a category tag, or clears it when the tag is
// already active. At most one category is active at a time.
func (c *Controller) ToggleCategory(tag string) {
	if c.category == tag {
		c.category = ""
	} else {
		c.category = tag
	}
	if c.OnCategory != nil {
		c.OnCategory(c.category)
	}
	c.recomputeHighlights()
	c.notifyState()
}

// Suggest ranks search-box candidates for a query.
func (c *Controller) Suggest(query string) []Suggestion {
	return c.store.Suggest(query)
}

// Navigate selects a region programmatically. Unknown and decorative ids
// are a no-op. When the region declares a different floor the switch
// happens first and the selection is applied once that floor's scene
// mounts; if the target element never appears it is dropped silently.
func (c *Controller) Navigate(id string, opts NavigateOptions) {
	r, ok := c.store.Get(id)
	if !ok || r.Decorative {
		return
	}

	if opts.UpdateSearch {
		c.search = r.ID
		if c.OnSearch != nil {
			c.OnSearch(r.ID)
		}
	}
	if opts.ClearCategory && c.category != "" {
		c.category = ""
		if c.OnCategory != nil {
			c.OnCategory("")
		}
	}

	if r.Floor != 0 && r.Floor != c.floor {
		c.pending = id
		c.SetFloor(r.Floor)
	} else if c.mount != nil && c.mount.Region(id) != nil {
		c.selectRegion(id)
	}

	if opts.Recompute || opts.UpdateSearch || opts.ClearCategory {
		c.recomputeHighlights()
		c.notifyState()
	}
}

// recompute rebuilds everything derived from the mount: the label overlay
// and the highlight set. Runs on mount and metadata changes.
func (c *Controller) recompute() {
	if c.mount == nil {
		return
	}
	c.mount.labels = BuildLabels(c.mount, c.store, c.measure)
	c.recomputeHighlights()
}

func (c *Controller) recomputeHighlights() {
	if c.mount == nil {
		return
	}
	c.mount.applyHighlights(Highlights(c.store, c.search, c.category))
}

func (c *Controller) notifyMount() {
	if c.OnMount != nil {
		c.OnMount(c.mount)
	}
}

func (c *Controller) notifyState() {
	if c.OnState != nil {
		c.OnState()
	}
}
