package floorplan

// HistoryLimit is the maximum number of recent selections kept.
const HistoryLimit = 5

// HistoryEntry is a snapshot of a region taken at selection time. Later
// metadata edits do not change entries already captured.
type HistoryEntry struct {
	ID          string
	Name        string
	Link        string
	Description string
}

// History is a bounded most-recently-used list of selected regions,
// newest first, deduplicated by id.
type History struct {
	entries []HistoryEntry
	limit   int
}

// NewHistory creates a history with the given capacity; values below one
// fall back to HistoryLimit.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = HistoryLimit
	}
	return &History{limit: limit}
}

// Push records a selection. Reselecting an id moves its existing entry to
// the front rather than duplicating it; the oldest entry is evicted once
// the cap is reached.
func (h *History) Push(e HistoryEntry) {
	for i, cur := range h.entries {
		if cur.ID == e.ID {
			copy(h.entries[1:i+1], h.entries[:i])
			h.entries[0] = e
			return
		}
	}
	h.entries = append([]HistoryEntry{e}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

// Entries returns a copy of the history, newest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clear drops all entries (floor change).
func (h *History) Clear() {
	h.entries = h.entries[:0]
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}
