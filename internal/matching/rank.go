package matching

import (
	"sort"

	"github.com/lenslink/lenslink/model"
)

// Rank scores every candidate in the pool against the filters, discards
// hard-filter failures, and returns the survivors ordered by descending
// score. Equal scores order by creator ID ascending so identical inputs
// always produce identical output.
//
// The pool is a fully materialized in-memory slice; Rank performs no I/O
// and keeps no state between invocations.
func Rank(pool []model.Candidate, f model.QueryFilters) []model.ScoredCreator {
	out := make([]model.ScoredCreator, 0, len(pool))
	for _, c := range pool {
		scored := ScoreCreator(c, f)
		if !scored.PassesHardFilters {
			continue
		}
		out = append(out, scored)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		return out[i].ID < out[j].ID
	})
	return out
}
