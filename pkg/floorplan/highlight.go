package floorplan

import "strings"

// Highlights computes the id set that should carry the highlight marker:
// the union of search matches and category matches over non-decorative
// regions. Search matches by case-insensitive substring of id or name and
// applies only when the trimmed search text is non-empty; category matches
// against the merged, normalized category set and applies only when a
// category is active.
func Highlights(store *Store, search, category string) map[string]struct{} {
	out := make(map[string]struct{})

	q := strings.ToLower(strings.TrimSpace(search))
	tag := strings.ToLower(strings.TrimSpace(category))
	if q == "" && tag == "" {
		return out
	}

	for _, r := range store.Regions() {
		if r.Decorative {
			continue
		}
		if q != "" {
			if strings.Contains(strings.ToLower(r.ID), q) ||
				strings.Contains(strings.ToLower(r.DisplayName()), q) {
				out[r.ID] = struct{}{}
				continue
			}
		}
		if tag != "" && r.HasCategory(tag) {
			out[r.ID] = struct{}{}
		}
	}
	return out
}
