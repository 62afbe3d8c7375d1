// Package practice ties grading reports to the mastery ledger, gap
// history, and the ranked gate.
package practice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/scrivo/internal/gaps"
	"github.com/abhisek/scrivo/internal/grader"
	"github.com/abhisek/scrivo/internal/mastery"
	"github.com/abhisek/scrivo/internal/rankedgate"
	"github.com/abhisek/scrivo/internal/scoring"
	"github.com/abhisek/scrivo/internal/store"
)

// Service coordinates the long-lived learner state around the
// stateless grading pipeline.
type Service struct {
	ledger  *mastery.Ledger
	gapRepo *store.GapRepo
	events  store.EventRepo
	gateCfg rankedgate.Config
}

// NewService wires a practice service over a store.
func NewService(st *store.Store, masteryCfg mastery.Config, gateCfg rankedgate.Config) *Service {
	return &Service{
		ledger:  mastery.NewLedger(st.MasteryRepo(), masteryCfg),
		gapRepo: st.GapRepo(),
		events:  st.EventRepo(),
		gateCfg: gateCfg,
	}
}

// IngestReport persists the gap snapshot and audit event of a graded
// submission and returns the minted submission ID. The report itself
// is already complete; persistence failing does not invalidate it.
func (s *Service) IngestReport(ctx context.Context, userID string, report *grader.Report) (string, error) {
	submissionID := uuid.New().String()

	snap := gaps.Snapshot{
		SubmissionID: submissionID,
		RecordedAt:   time.Now(),
		Gaps:         report.Gaps,
	}
	if err := s.gapRepo.Append(ctx, userID, snap); err != nil {
		return submissionID, fmt.Errorf("record gap history: %w", err)
	}

	resultJSON, err := json.Marshal(report.Result)
	if err != nil {
		return submissionID, fmt.Errorf("marshal result: %w", err)
	}
	event := store.GradeEventData{
		UserID:       userID,
		SubmissionID: submissionID,
		Kind:         string(report.Result.Kind()),
		IsCorrect:    report.Result.Correct(),
		Percentage:   report.Result.Percent(),
		SevereGap:    report.HasSevereGap,
		ResultJSON:   string(resultJSON),
	}
	if err := s.events.AppendGradeEvent(ctx, event); err != nil {
		return submissionID, fmt.Errorf("record grade event: %w", err)
	}

	return submissionID, nil
}

// LessonAttempt holds the three phase scores of one guided lesson run.
type LessonAttempt struct {
	LessonID    string
	ReviewScore float64
	WriteScore  float64
	ReviseScore float64
}

// AttemptResult reports what one recorded attempt produced.
type AttemptResult struct {
	Composite        int
	ImprovementBonus float64
	Outcome          *mastery.AttemptOutcome
}

// RecordLessonAttempt computes the guided-lesson composite and applies
// it to the mastery ledger. On a ledger-write failure the computed
// result is still returned alongside the error: the grade stands, the
// caller retries the write.
func (s *Service) RecordLessonAttempt(ctx context.Context, userID string, att LessonAttempt) (*AttemptResult, error) {
	composite := scoring.Composite(att.ReviewScore, att.WriteScore, att.ReviseScore, scoring.GuidedLessonWeights)
	result := &AttemptResult{
		Composite:        composite,
		ImprovementBonus: scoring.ImprovementBonus(att.WriteScore, att.ReviseScore),
	}

	outcome, err := s.ledger.RecordAttempt(ctx, userID, att.LessonID, composite)
	result.Outcome = outcome
	return result, err
}

// ScoreRankedMatch computes the ranked-match composite for one match's
// write/feedback/revise phases. Ranked matches feed no ledger; they
// are scored, not mastered.
func ScoreRankedMatch(writeScore, feedbackScore, reviseScore float64) *AttemptResult {
	return &AttemptResult{
		Composite:        scoring.Composite(writeScore, feedbackScore, reviseScore, scoring.RankedMatchWeights),
		ImprovementBonus: scoring.ImprovementBonus(writeScore, reviseScore),
	}
}

// RankedStatus evaluates the ranked gate over the user's recent gap
// history.
func (s *Service) RankedStatus(ctx context.Context, userID string) (rankedgate.BlockStatus, error) {
	history, err := s.gapRepo.Recent(ctx, userID, s.gateCfg.Window)
	if err != nil {
		return rankedgate.BlockStatus{}, fmt.Errorf("load gap history: %w", err)
	}
	return rankedgate.Check(history, s.gateCfg), nil
}
