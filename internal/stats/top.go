package stats

import (
	"sort"

	"github.com/verte-zerg/parley/internal/model"
)

// RankExercises orders exercise ids by attempt count, most practised first.
// Ties are broken by id.
func RankExercises(all map[string]model.ExerciseStats) []string {
	if len(all) == 0 {
		return nil
	}
	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ci, cj := all[ids[i]].Count, all[ids[j]].Count
		if ci == cj {
			return ids[i] < ids[j]
		}
		return ci > cj
	})
	return ids
}

// AttemptCounts maps each exercise id to its sample count.
func AttemptCounts(all map[string]model.ExerciseStats) map[string]int {
	out := make(map[string]int, len(all))
	for id, st := range all {
		out[id] = st.Count
	}
	return out
}

func sortStrings(values []string) {
	sort.Strings(values)
}
