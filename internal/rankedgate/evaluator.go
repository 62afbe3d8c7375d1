// Package rankedgate decides whether accumulated or severe skill gaps
// block a learner from ranked competition.
package rankedgate

import (
	"github.com/abhisek/scrivo/internal/catalog"
	"github.com/abhisek/scrivo/internal/gaps"
	"github.com/abhisek/scrivo/internal/recommend"
)

// Reason explains why a learner is blocked.
type Reason string

const (
	ReasonNone         Reason = "none"
	ReasonHighSeverity Reason = "high_severity"
	ReasonAccumulated  Reason = "accumulated_gaps"
)

// BlockStatus is the gate's verdict over a gap-history snapshot.
type BlockStatus struct {
	Blocked bool   `json:"blocked"`
	Reason  Reason `json:"reason"`

	// BlockingGaps lists the categories responsible for the block.
	BlockingGaps []string `json:"blockingGaps"`

	// RequiredLessons must be completed to clear the block, in
	// prioritized order.
	RequiredLessons []string `json:"requiredLessons"`

	// SuggestedLessons covers all currently-open gaps, blocking or not.
	// Study-hall material, never a requirement.
	SuggestedLessons []string `json:"suggestedLessons"`

	// Warnings names categories approaching the accumulation threshold.
	Warnings []string `json:"warnings"`
}

// Config holds the gate policy values. Both are deliberately
// configuration, not constants.
type Config struct {
	// Window is how many recent submissions the gate considers.
	Window int

	// RecurrenceThreshold is how many submissions a category must
	// recur in (at medium or worse) before it blocks on its own.
	// Warnings surface one recurrence short of it.
	RecurrenceThreshold int
}

// DefaultConfig returns the standard gate policy.
func DefaultConfig() Config {
	return Config{
		Window:              5,
		RecurrenceThreshold: 3,
	}
}

// Check classifies a gap history. The history is ordered oldest first;
// the last snapshot is the most recent submission. The gate holds no
// state of its own: unblocking is simply this function returning an
// unblocked status on a later, cleaner history.
func Check(history []gaps.Snapshot, cfg Config) BlockStatus {
	status := BlockStatus{Reason: ReasonNone}
	if len(history) == 0 {
		return status
	}

	if cfg.Window > 0 && len(history) > cfg.Window {
		history = history[len(history)-cfg.Window:]
	}
	latest := history[len(history)-1]

	// Trigger 1: any high-severity gap in the most recent submission.
	var blocking []gaps.SkillGap
	for _, g := range latest.Gaps {
		if g.Severity == catalog.SeverityHigh {
			blocking = append(blocking, g)
		}
	}
	if len(blocking) > 0 {
		status.Blocked = true
		status.Reason = ReasonHighSeverity
	}

	// Trigger 2: a category recurring at medium or worse across enough
	// of the window, even if no single submission was severe.
	recurrence := countRecurrence(history)
	blockedSet := make(map[string]bool)
	for _, g := range blocking {
		blockedSet[g.Category] = true
	}
	for _, cat := range recurrenceOrder(history) {
		n := recurrence[cat]
		switch {
		case n >= cfg.RecurrenceThreshold:
			if !status.Blocked {
				status.Blocked = true
				status.Reason = ReasonAccumulated
			}
			if !blockedSet[cat] {
				blockedSet[cat] = true
				if g, ok := latestGapFor(history, cat); ok {
					blocking = append(blocking, g)
				}
			}
		case n == cfg.RecurrenceThreshold-1 && n > 0:
			if !blockedSet[cat] {
				status.Warnings = append(status.Warnings, cat)
			}
		}
	}

	for _, g := range blocking {
		status.BlockingGaps = append(status.BlockingGaps, g.Category)
	}
	status.RequiredLessons = recommend.Prioritize(blocking)
	status.SuggestedLessons = recommend.Prioritize(latest.Gaps)

	return status
}

// countRecurrence counts, per category, how many submissions in the
// window contained that category at medium severity or worse.
func countRecurrence(history []gaps.Snapshot) map[string]int {
	counts := make(map[string]int)
	for _, snap := range history {
		seen := make(map[string]bool)
		for _, g := range snap.Gaps {
			if g.Severity == catalog.SeverityLow || seen[g.Category] {
				continue
			}
			seen[g.Category] = true
			counts[g.Category]++
		}
	}
	return counts
}

// recurrenceOrder returns recurring categories in first-appearance
// order so the verdict is deterministic across calls.
func recurrenceOrder(history []gaps.Snapshot) []string {
	seen := make(map[string]bool)
	var order []string
	for _, snap := range history {
		for _, g := range snap.Gaps {
			if g.Severity == catalog.SeverityLow || seen[g.Category] {
				continue
			}
			seen[g.Category] = true
			order = append(order, g.Category)
		}
	}
	return order
}

// latestGapFor finds the most recent gap instance for a category, so
// accumulated blocks recommend current lessons, not stale ones.
func latestGapFor(history []gaps.Snapshot, category string) (gaps.SkillGap, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		for _, g := range history[i].Gaps {
			if g.Category == category {
				return g, true
			}
		}
	}
	return gaps.SkillGap{}, false
}
