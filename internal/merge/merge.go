// Package merge reconciles a baseline deal collection with newly fetched
// candidates. Baseline entries always win: the engine only ever appends.
package merge

import (
	"sort"

	"dealsync/internal/model"
	"dealsync/internal/normalize"
)

// Merge combines the baseline deals with candidates, in candidate input
// order. A candidate is skipped when its non-empty ID is already present, or
// when its normalized title matches an absorbed deal - the latter catches
// the same deal arriving again with a re-synthesized ID or a different
// captured price. Candidates with an empty ID are appended but never
// indexed, so they deduplicate by title alone.
//
// The merged result is baseline plus appended candidates, sorted by PubDate
// descending with undated deals last; added holds just the appended ones in
// input order. Merge is idempotent: Merge(Merge(a, b), b) == Merge(a, b).
func Merge(baseline []model.Deal, candidates []model.Deal) (merged, added []model.Deal) {
	byID := make(map[string]struct{}, len(baseline))
	byTitle := make(map[string]struct{}, len(baseline))
	for _, d := range baseline {
		if d.ID != "" {
			byID[d.ID] = struct{}{}
		}
		byTitle[normalize.TitleKey(d.Title)] = struct{}{}
	}

	merged = make([]model.Deal, len(baseline), len(baseline)+len(candidates))
	copy(merged, baseline)

	for _, c := range candidates {
		if c.ID != "" {
			if _, ok := byID[c.ID]; ok {
				continue
			}
		}
		key := normalize.TitleKey(c.Title)
		if _, ok := byTitle[key]; ok {
			continue
		}
		if c.ID != "" {
			byID[c.ID] = struct{}{}
		}
		byTitle[key] = struct{}{}
		merged = append(merged, c)
		added = append(added, c)
	}

	// ISO-8601 strings order lexicographically; empty PubDate sorts last.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PubDate > merged[j].PubDate
	})
	return merged, added
}
