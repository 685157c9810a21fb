package floorplan

import "testing"

func TestHistoryDedupAndCap(t *testing.T) {
	h := NewHistory(5)
	for _, id := range []string{"A", "B", "A", "C", "D", "E"} {
		h.Push(HistoryEntry{ID: id, Name: id})
	}

	got := h.Entries()
	want := []string{"E", "D", "C", "A", "B"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("entries[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestHistoryEviction(t *testing.T) {
	h := NewHistory(5)
	for _, id := range []string{"A", "B", "C", "D", "E", "F"} {
		h.Push(HistoryEntry{ID: id})
	}
	got := h.Entries()
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got[len(got)-1].ID != "B" {
		t.Errorf("oldest = %q, want B (A evicted)", got[len(got)-1].ID)
	}
}

func TestHistorySnapshotNotLive(t *testing.T) {
	h := NewHistory(5)
	h.Push(HistoryEntry{ID: "A", Name: "Old Name"})

	entries := h.Entries()
	entries[0].Name = "mutated"
	if h.Entries()[0].Name != "Old Name" {
		t.Error("Entries returned a live reference")
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(5)
	h.Push(HistoryEntry{ID: "A"})
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("len after clear = %d, want 0", h.Len())
	}
}

func TestHistoryMoveToFrontKeepsLatestSnapshot(t *testing.T) {
	h := NewHistory(5)
	h.Push(HistoryEntry{ID: "A", Name: "v1"})
	h.Push(HistoryEntry{ID: "B"})
	h.Push(HistoryEntry{ID: "A", Name: "v2"})

	got := h.Entries()
	if got[0].ID != "A" || got[0].Name != "v2" {
		t.Errorf("front = %+v, want A with refreshed snapshot", got[0])
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2 (no duplicate A)", len(got))
	}
}
