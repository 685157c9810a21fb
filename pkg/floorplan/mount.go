package floorplan

import (
	"floorview/pkg/scene"
	"floorview/pkg/transform"
)

// Mark is the visual marker state carried by a mounted region.
type Mark uint8

const (
	MarkHover Mark = 1 << iota
	MarkSelected
	MarkHighlight
)

// Mount is one floor's loaded scene plus every piece of state derived from
// it. A mount is torn down and rebuilt wholesale on floor change; nothing
// in it survives across floors.
type Mount struct {
	Floor int
	Doc   *scene.Document

	// Raw is the scene document as fetched, kept for rasterization.
	Raw []byte

	regions   map[string]*scene.Node
	regionIDs []string // document order

	marks      map[string]Mark
	hoverID    string
	selectedID string

	labels []Label
}

// NewMount classifies the parsed document against the metadata table:
// identified elements that are neither the root, a container wrapper, nor
// flagged decorative become the interactive region set.
func NewMount(floor int, doc *scene.Document, store *Store) *Mount {
	m := &Mount{
		Floor:   floor,
		Doc:     doc,
		regions: make(map[string]*scene.Node),
		marks:   make(map[string]Mark),
	}
	for _, n := range doc.Nodes() {
		if n == doc.Root || n.ID == "" {
			continue
		}
		if scene.IsContainerID(n.ID) || store.Decorative(n.ID) {
			continue
		}
		if _, dup := m.regions[n.ID]; dup {
			continue
		}
		m.regions[n.ID] = n
		m.regionIDs = append(m.regionIDs, n.ID)
	}
	return m
}

// Region returns the interactive element for an id, or nil.
func (m *Mount) Region(id string) *scene.Node {
	return m.regions[id]
}

// RegionIDs returns the interactive ids in document order.
func (m *Mount) RegionIDs() []string {
	return m.regionIDs
}

// Mark returns the current marker state for an id.
func (m *Mount) Mark(id string) Mark {
	return m.marks[id]
}

// SelectedID returns the currently selected region id, or "".
func (m *Mount) SelectedID() string {
	return m.selectedID
}

// HoverID returns the currently hovered region id, or "".
func (m *Mount) HoverID() string {
	return m.hoverID
}

// Labels returns the current fitted label set.
func (m *Mount) Labels() []Label {
	return m.labels
}

// RegionAt resolves the content-space point to the selectable region under
// it: hit the topmost element, walk up to the nearest identified
// ancestor-or-self, and reject the root, container wrappers, and
// decorative regions. Returns nil for background hits.
func (m *Mount) RegionAt(p transform.Point, store *Store) *scene.Node {
	raw := m.Doc.HitTest(p)
	if raw == nil {
		return nil
	}
	return m.Resolve(raw, store)
}

// Resolve maps a raw event target to its selectable region, or nil.
func (m *Mount) Resolve(raw *scene.Node, store *Store) *scene.Node {
	target := raw.NearestID()
	if target == nil {
		// No identified ancestor: fall back to the element itself, which
		// then fails the id checks below.
		target = raw
	}
	if target == m.Doc.Root || target.ID == "" {
		return nil
	}
	if scene.IsContainerID(target.ID) || store.Decorative(target.ID) {
		return nil
	}
	return target
}

// setSelected moves the selection marker. Reapplying the current selection
// is a no-op; the previous selection's marker is always cleared first.
// Reports whether anything changed.
func (m *Mount) setSelected(id string) bool {
	if m.selectedID == id {
		return false
	}
	if m.selectedID != "" {
		m.clearMark(m.selectedID, MarkSelected)
	}
	m.selectedID = id
	if id != "" {
		m.setMark(id, MarkSelected)
	}
	return true
}

// setHover moves the transient hover marker, symmetric to setSelected.
func (m *Mount) setHover(id string) bool {
	if m.hoverID == id {
		return false
	}
	if m.hoverID != "" {
		m.clearMark(m.hoverID, MarkHover)
	}
	m.hoverID = id
	if id != "" {
		m.setMark(id, MarkHover)
	}
	return true
}

// applyHighlights clears all prior highlight markers and applies the new
// set. Ids with no mounted element are silently skipped.
func (m *Mount) applyHighlights(ids map[string]struct{}) {
	for id, mark := range m.marks {
		if mark&MarkHighlight != 0 {
			m.clearMark(id, MarkHighlight)
		}
	}
	for id := range ids {
		if _, ok := m.regions[id]; !ok {
			continue
		}
		m.setMark(id, MarkHighlight)
	}
}

func (m *Mount) setMark(id string, mark Mark) {
	m.marks[id] |= mark
}

func (m *Mount) clearMark(id string, mark Mark) {
	next := m.marks[id] &^ mark
	if next == 0 {
		delete(m.marks, id)
	} else {
		m.marks[id] = next
	}
}
