package recommendations

import (
	"sort"

	"skincare-recommender/internal/catalog"
	"skincare-recommender/internal/profile"
)

// Rank evaluates every catalog service for p and returns the qualifying ones
// (not disqualified, score above zero) ordered by score descending, ties
// broken by catalog load order. It never mutates its inputs and is safe to
// call concurrently against a shared catalog.
func Rank(cat *catalog.Catalog, p profile.Profile, pol Policy) []Match {
	out := make([]Match, 0, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		svc := cat.At(i)
		v := Evaluate(p, svc, pol)
		if v.Disqualified || v.Score <= 0 {
			continue
		}
		criteria := make([]Criterion, len(v.Criteria))
		copy(criteria, v.Criteria[:])
		out = append(out, Match{Service: svc, Score: v.Score, Criteria: criteria})
	}
	sortMatches(out)
	return out
}

func sortMatches(items []Match) {
	sort.Slice(items, func(i, j int) bool {
		a := items[i]
		b := items[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Service.Position < b.Service.Position
	})
}
