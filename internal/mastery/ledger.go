// Package mastery tracks per-lesson mastery and one-time reward issuance.
package mastery

import (
	"context"
	"fmt"
	"time"
)

// Record is the persistent mastery state for one (user, lesson) pair.
type Record struct {
	UserID       string
	LessonID     string
	BestScore    int // monotonically non-decreasing, [0,100]
	AttemptCount int
	IsMastered   bool // sticky: never reverts once true
	LPAwarded    bool // LP is issued at most once per lesson
	UpdatedAt    time.Time
}

// Store is the injected persistence handle for mastery records.
// Get returns (nil, nil) for a lesson the user has never attempted.
type Store interface {
	Get(ctx context.Context, userID, lessonID string) (*Record, error)
	Put(ctx context.Context, rec *Record) error
}

// Config holds the mastery policy values.
type Config struct {
	// Threshold is the composite score at which a lesson is mastered.
	// The boundary itself counts: a score equal to Threshold masters.
	Threshold int

	// Reward is the LP issued on the first mastering attempt.
	Reward int
}

// DefaultConfig returns the standard mastery policy.
func DefaultConfig() Config {
	return Config{
		Threshold: 90,
		Reward:    25,
	}
}

// AttemptOutcome is the delta a recorded attempt produced.
type AttemptOutcome struct {
	BestScore     int
	AttemptCount  int
	IsMastered    bool
	NewlyMastered bool
	LPEarned      int
}

// Ledger computes mastery transitions over an injected store.
type Ledger struct {
	store Store
	cfg   Config
}

// NewLedger creates a mastery ledger.
func NewLedger(store Store, cfg Config) *Ledger {
	return &Ledger{store: store, cfg: cfg}
}

// RecordAttempt applies one graded attempt to the (user, lesson) record.
//
// Best score only ever rises. Crossing the threshold flips the record to
// mastered permanently and earns the reward exactly once; later attempts
// never earn again, no matter how high they score.
func (l *Ledger) RecordAttempt(ctx context.Context, userID, lessonID string, compositeScore int) (*AttemptOutcome, error) {
	if compositeScore < 0 {
		compositeScore = 0
	}
	if compositeScore > 100 {
		compositeScore = 100
	}

	rec, err := l.store.Get(ctx, userID, lessonID)
	if err != nil {
		return nil, fmt.Errorf("load mastery record: %w", err)
	}
	if rec == nil {
		rec = &Record{UserID: userID, LessonID: lessonID}
	}

	rec.AttemptCount++
	if compositeScore > rec.BestScore {
		rec.BestScore = compositeScore
	}

	outcome := &AttemptOutcome{
		BestScore:    rec.BestScore,
		AttemptCount: rec.AttemptCount,
	}

	if compositeScore >= l.cfg.Threshold && !rec.IsMastered {
		rec.IsMastered = true
		rec.LPAwarded = true
		outcome.NewlyMastered = true
		outcome.LPEarned = l.cfg.Reward
	}
	outcome.IsMastered = rec.IsMastered

	rec.UpdatedAt = time.Now()
	if err := l.store.Put(ctx, rec); err != nil {
		// The attempt's outcome stands; the caller is expected to retry
		// the write independently.
		return outcome, fmt.Errorf("persist mastery record: %w", err)
	}

	return outcome, nil
}

// Mastered reports whether the user has mastered the lesson.
func (l *Ledger) Mastered(ctx context.Context, userID, lessonID string) (bool, error) {
	rec, err := l.store.Get(ctx, userID, lessonID)
	if err != nil {
		return false, fmt.Errorf("load mastery record: %w", err)
	}
	return rec != nil && rec.IsMastered, nil
}
