package floorplan

import (
	"sort"
	"strings"
)

// MaxSuggestions caps the suggestion list returned for a query.
const MaxSuggestions = 8

// Suggestion is one ranked search-box candidate.
type Suggestion struct {
	ID    string
	Name  string
	Score int
}

// Suggestion scores, checked in priority order; the first applicable wins.
const (
	scoreExactID     = 100
	scoreIDPrefix    = 90
	scoreNamePrefix  = 80
	scoreIDSubstring = 60
	scoreNameSubstr  = 50
)

// Suggest ranks non-decorative regions against a query and returns at most
// MaxSuggestions results, highest score first, ties broken by ascending id.
func (s *Store) Suggest(query string) []Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []Suggestion
	for _, r := range s.Regions() {
		if r.Decorative {
			continue
		}
		score := scoreRegion(r, q)
		if score == 0 {
			continue
		}
		out = append(out, Suggestion{ID: r.ID, Name: r.DisplayName(), Score: score})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

func scoreRegion(r *Region, q string) int {
	id := strings.ToLower(r.ID)
	name := strings.ToLower(r.DisplayName())
	switch {
	case id == q:
		return scoreExactID
	case strings.HasPrefix(id, q):
		return scoreIDPrefix
	case strings.HasPrefix(name, q):
		return scoreNamePrefix
	case strings.Contains(id, q):
		return scoreIDSubstring
	case strings.Contains(name, q):
		return scoreNameSubstr
	}
	return 0
}

// ExactMatch looks up a non-decorative region by case-insensitive id
// equality, used when a plain Enter commits the search box with no
// suggestion focused.
func (s *Store) ExactMatch(query string) (*Region, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, false
	}
	for _, r := range s.Regions() {
		if r.Decorative {
			continue
		}
		if strings.ToLower(r.ID) == q {
			return r, true
		}
	}
	return nil, false
}
