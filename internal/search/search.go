// Package search implements the ranking half of spec.md's prefix
// search and ranking engine: given a candidate set already selected by
// prefix (the namespace's job, since it owns the lock and the
// insertion-ordered container), sort it by (when DESC, count DESC)
// with remaining ties broken stably, then truncate to a limit and an
// optional "newer than" cursor.
//
// This package is deliberately decoupled from internal/store's Entry
// type so it can be unit tested without constructing a namespace —
// the store package converts to/from Candidate at its boundary.
package search

import "sort"

// Candidate is one entry eligible for ranking.
type Candidate struct {
	NKey  string
	ID    string
	When  int64
	Count int64
	Data  *string
}

// Rank sorts candidates by (When DESC, Count DESC), stopping once
// limit entries have been emitted or the first candidate with
// When <= tsFloor is reached (when tsFloor > 0). candidates is not
// mutated; the returned slice is a new, ranked, truncated copy.
func Rank(candidates []Candidate, limit int, tsFloor int64) []Candidate {
	if limit <= 0 {
		return []Candidate{}
	}

	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].When != sorted[j].When {
			return sorted[i].When > sorted[j].When
		}
		return sorted[i].Count > sorted[j].Count
	})

	out := make([]Candidate, 0, limit)
	for _, c := range sorted {
		if len(out) >= limit {
			break
		}
		if tsFloor > 0 && c.When <= tsFloor {
			break
		}
		out = append(out, c)
	}
	return out
}
