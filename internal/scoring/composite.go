// Package scoring combines per-phase percentage scores into composites.
package scoring

import "math"

// Weights is a three-phase weighting scheme. The three weights are
// expected to sum to 1.
type Weights struct {
	Phase1 float64
	Phase2 float64
	Phase3 float64
}

// GuidedLessonWeights weights review/write/revise phases of a guided
// lesson 20/40/40.
var GuidedLessonWeights = Weights{Phase1: 0.2, Phase2: 0.4, Phase3: 0.4}

// RankedMatchWeights weights write/feedback/revise phases of a ranked
// match 40/30/30.
var RankedMatchWeights = Weights{Phase1: 0.4, Phase2: 0.3, Phase3: 0.3}

// Composite combines three phase scores (percentages in [0,100]) into
// one weighted percentage, rounded to the nearest integer. The result
// reaches 100 only when every phase is 100.
func Composite(phase1, phase2, phase3 float64, w Weights) int {
	raw := phase1*w.Phase1 + phase2*w.Phase2 + phase3*w.Phase3
	return int(math.Round(raw))
}

// ImprovementBonus is how much a revision improved on the original
// draft, floored at zero. It is reported alongside the composite,
// never folded into it.
func ImprovementBonus(originalScore, revisionScore float64) float64 {
	return math.Max(0, revisionScore-originalScore)
}
