package floorplan

import "testing"

func TestParseMetadataDiscardsBlankIDs(t *testing.T) {
	data := []byte(`[
		{"id": "UCC146", "name": "Meeting Room"},
		{"id": "", "name": "orphan"},
		{"name": "also orphan"},
		{"id": "  ", "name": "whitespace orphan"},
		{"id": "UCC100", "name": "UCC Lab"}
	]`)

	store, err := ParseMetadata(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if store.Len() != 2 {
		t.Errorf("len = %d, want 2", store.Len())
	}
	if _, ok := store.Get("UCC146"); !ok {
		t.Error("UCC146 missing")
	}
}

func TestParseMetadataError(t *testing.T) {
	if _, err := ParseMetadata([]byte("{not json")); err == nil {
		t.Error("expected decode error")
	}
}

func TestStoreDuplicateFirstWins(t *testing.T) {
	store := NewStore([]Region{
		{ID: "A", Name: "first"},
		{ID: "A", Name: "second"},
	})
	r, _ := store.Get("A")
	if r.Name != "first" {
		t.Errorf("name = %q, want first record kept", r.Name)
	}
}

func TestDisplayNameFallback(t *testing.T) {
	cases := []struct {
		region Region
		want   string
	}{
		{Region{ID: "X", Name: "Lobby"}, "Lobby"},
		{Region{ID: "X", Name: "  Lobby  "}, "Lobby"},
		{Region{ID: "X", Name: ""}, "X"},
		{Region{ID: "X", Name: "   "}, "X"},
	}
	for _, tc := range cases {
		if got := tc.region.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.region.Name, got, tc.want)
		}
	}
}

func TestCategoriesMergeAndNormalize(t *testing.T) {
	r := Region{ID: "X", Category: "Office", CategoryTag: []string{"LAB", " quiet "}}

	got := r.Categories()
	want := []string{"office", "lab", "quiet"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("categories[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if !r.HasCategory("Lab") {
		t.Error("HasCategory is not case-insensitive")
	}
	if r.HasCategory("") {
		t.Error("empty tag matched")
	}
}

func TestDecorativeLookup(t *testing.T) {
	store := NewStore([]Region{
		{ID: "deco", Decorative: true},
		{ID: "room"},
	})
	if !store.Decorative("deco") {
		t.Error("decorative flag lost")
	}
	if store.Decorative("room") || store.Decorative("unknown") {
		t.Error("non-decorative id reported decorative")
	}
}

func TestStoreIDCaseSensitive(t *testing.T) {
	store := NewStore([]Region{{ID: "Room1"}})
	if _, ok := store.Get("room1"); ok {
		t.Error("id lookup should be case-sensitive")
	}
}
