// Package floorplan implements the interaction engine of the floor-plan
// viewer: the metadata table, the per-floor scene mount with its derived
// hover/selection/highlight state, label fitting, suggestion ranking, and
// the controller that ties floor switching and navigation together.
package floorplan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Region is one metadata record describing a selectable area of the plan.
type Region struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Link        string   `json:"link,omitempty"`
	Floor       int      `json:"floor,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	CategoryTag []string `json:"categories,omitempty"`
	Decorative  bool     `json:"decorative,omitempty"`
}

// DisplayName returns the trimmed human-readable name, falling back to the
// id when the name is absent or blank.
func (r *Region) DisplayName() string {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return r.ID
	}
	return name
}

// Categories merges the singular and plural category fields, lower-cased
// for matching.
func (r *Region) Categories() []string {
	out := make([]string, 0, len(r.CategoryTag)+1)
	if tag := strings.ToLower(strings.TrimSpace(r.Category)); tag != "" {
		out = append(out, tag)
	}
	for _, tag := range r.CategoryTag {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// HasCategory reports whether the region carries the given tag
// (case-insensitive).
func (r *Region) HasCategory(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return false
	}
	for _, c := range r.Categories() {
		if c == tag {
			return true
		}
	}
	return false
}

// Store is the in-memory metadata table, keyed by region id. Lookups are
// case-sensitive on id.
type Store struct {
	byID  map[string]*Region
	order []string
}

// NewStore builds a store from a record list. Records with a blank id are
// discarded; on duplicate ids the first record wins.
func NewStore(regions []Region) *Store {
	s := &Store{byID: make(map[string]*Region, len(regions))}
	for i := range regions {
		r := regions[i]
		r.ID = strings.TrimSpace(r.ID)
		if r.ID == "" {
			continue
		}
		if _, dup := s.byID[r.ID]; dup {
			continue
		}
		keep := r
		s.byID[r.ID] = &keep
		s.order = append(s.order, r.ID)
	}
	return s
}

// EmptyStore returns a store with no records, used when the metadata
// document cannot be loaded.
func EmptyStore() *Store {
	return NewStore(nil)
}

// ParseMetadata decodes the metadata document: a JSON array of region
// records.
func ParseMetadata(data []byte) (*Store, error) {
	var regions []Region
	if err := json.Unmarshal(data, &regions); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return NewStore(regions), nil
}

// Get returns the record for an id.
func (s *Store) Get(id string) (*Region, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// Decorative reports whether the id is flagged decorative. Unknown ids are
// not decorative.
func (s *Store) Decorative(id string) bool {
	r, ok := s.byID[id]
	return ok && r.Decorative
}

// Regions returns all records in document order.
func (s *Store) Regions() []*Region {
	out := make([]*Region, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.order)
}
