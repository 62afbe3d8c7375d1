// Package recommend orders remedial lessons across detected gaps.
package recommend

import (
	"sort"

	"github.com/abhisek/scrivo/internal/catalog"
	"github.com/abhisek/scrivo/internal/gaps"
)

// Prioritize flattens a gap list into an ordered, de-duplicated list of
// lesson IDs: most urgent conceptual gap first, and within a gap,
// foundational (sentence-tier) lessons before advanced ones.
//
// Both sorts are stable. Gaps of equal severity keep their detection
// order, and lessons of equal tier keep their table order. Duplicates
// are dropped first-seen-wins across the whole gap list.
func Prioritize(gapList []gaps.SkillGap) []string {
	ordered := make([]gaps.SkillGap, len(gapList))
	copy(ordered, gapList)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Severity.Rank() > ordered[j].Severity.Rank()
	})

	seen := make(map[string]bool)
	var out []string

	for _, g := range ordered {
		lessons := make([]string, len(g.RecommendedLessons))
		copy(lessons, g.RecommendedLessons)
		sort.SliceStable(lessons, func(i, j int) bool {
			return catalog.LessonTier(lessons[i]) < catalog.LessonTier(lessons[j])
		})

		for _, id := range lessons {
			if seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}

	return out
}
