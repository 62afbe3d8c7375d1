package rubric

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Kind distinguishes the two rubric variants.
type Kind string

const (
	KindParagraph Kind = "paragraph"
	KindEssay     Kind = "essay"
)

// Result is a normalized grading result of either kind.
type Result interface {
	Kind() Kind
	Percent() int
	Correct() bool
}

// ParseError indicates a grader payload could not be normalized.
// The raw payload is kept for diagnostics; it is never shown to students.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse grader response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse grader response: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Normalize parses a raw grader payload into a Result of the given kind.
// All clamping and defaulting rules live here so the paragraph and essay
// paths cannot drift apart.
func Normalize(kind Kind, raw []byte) (Result, error) {
	switch kind {
	case KindParagraph:
		return NormalizeParagraph(raw)
	case KindEssay:
		return NormalizeEssay(raw)
	default:
		return nil, &ParseError{Reason: fmt.Sprintf("unknown rubric kind %q", kind)}
	}
}

// paragraphPayload is the loosely-typed wire shape of a paragraph grade.
// Pointer fields let us distinguish absent from zero.
type paragraphPayload struct {
	IsCorrect *bool              `json:"isCorrect"`
	Remarks   []remarkPayload    `json:"remarks"`
	Scores    map[string]float64 `json:"scores"`
}

type remarkPayload struct {
	Severity            string `json:"severity"`
	Category            string `json:"category"`
	ConcreteProblem     string `json:"concreteProblem"`
	CallToAction        string `json:"callToAction"`
	SubstringOfInterest string `json:"substringOfInterest"`
}

// NormalizeParagraph parses and validates a raw paragraph grade.
//
// The payload's own isCorrect flag is informational only: correctness is
// recomputed from the remarks (no error-severity remark means correct) so a
// grader cannot report contradictory flag and remarks.
func NormalizeParagraph(raw []byte) (*GraderResult, error) {
	var payload paragraphPayload
	if err := json.Unmarshal(stripCodeFence(raw), &payload); err != nil {
		return nil, &ParseError{Reason: "invalid JSON", Err: err}
	}
	if payload.Scores == nil {
		return nil, &ParseError{Reason: "missing scores"}
	}

	remarks, err := normalizeRemarks(payload.Remarks)
	if err != nil {
		return nil, err
	}

	scores := ParagraphScores{MaxTotal: ParagraphMaxTotal}
	for _, cat := range Categories() {
		score := clamp(int(math.Round(payload.Scores[string(cat)])), 0, CategoryMax)
		scores.Categories = append(scores.Categories, CategoryScore{
			Category: cat,
			Score:    score,
			MaxScore: CategoryMax,
		})
		scores.Total += score
	}
	scores.Percentage = percentage(scores.Total, scores.MaxTotal)

	return &GraderResult{
		IsCorrect: !hasErrorRemark(remarks),
		Remarks:   remarks,
		Scores:    scores,
	}, nil
}

// essayPayload is the loosely-typed wire shape of an essay grade.
type essayPayload struct {
	IsCorrect      *bool              `json:"isCorrect"`
	Criteria       []criterionPayload `json:"criteria"`
	ParagraphCount *float64           `json:"paragraphCount"`
}

type criterionPayload struct {
	CriterionID string   `json:"criterionId"`
	Status      string   `json:"status"`
	Feedback    string   `json:"feedback"`
	Highlights  []string `json:"highlights"`
}

// NormalizeEssay parses and validates a raw essay grade. Criteria keep
// their payload order. Correctness is recomputed: an essay is correct
// only when every criterion is Yes.
func NormalizeEssay(raw []byte) (*EssayGraderResult, error) {
	var payload essayPayload
	if err := json.Unmarshal(stripCodeFence(raw), &payload); err != nil {
		return nil, &ParseError{Reason: "invalid JSON", Err: err}
	}
	if payload.Criteria == nil {
		return nil, &ParseError{Reason: "missing criteria"}
	}

	result := &EssayGraderResult{
		IsCorrect: true,
		Scores:    EssayScores{MaxTotal: EssayMaxTotal},
	}

	for _, cp := range payload.Criteria {
		status, ok := parseStatus(cp.Status)
		if !ok {
			return nil, &ParseError{
				Reason: fmt.Sprintf("criterion %q has unknown status %q", cp.CriterionID, cp.Status),
			}
		}
		crit := Criterion(cp.CriterionID)
		result.Criteria = append(result.Criteria, CriterionResult{
			Criterion:  crit,
			Status:     status,
			Feedback:   cp.Feedback,
			Highlights: cp.Highlights,
		})
		result.Scores.Total += status.PointsEarned(crit.Points())
		if status != StatusYes {
			result.IsCorrect = false
		}
	}

	result.Scores.Total = clamp(result.Scores.Total, 0, EssayMaxTotal)
	result.Scores.Percentage = percentage(result.Scores.Total, result.Scores.MaxTotal)

	if payload.ParagraphCount != nil {
		result.ParagraphCount = clamp(int(math.Round(*payload.ParagraphCount)), 0, math.MaxInt32)
	}

	return result, nil
}

func normalizeRemarks(payloads []remarkPayload) ([]Remark, error) {
	var remarks []Remark
	for _, rp := range payloads {
		severity := RemarkSeverity(strings.ToLower(rp.Severity))
		if severity != RemarkError && severity != RemarkNit {
			// Unknown severities demote to nit rather than fail: the
			// remark text is still usable feedback.
			severity = RemarkNit
		}
		remarks = append(remarks, Remark{
			Severity:            severity,
			Category:            rp.Category,
			ConcreteProblem:     rp.ConcreteProblem,
			CallToAction:        rp.CallToAction,
			SubstringOfInterest: rp.SubstringOfInterest,
		})
		if len(remarks) == MaxRemarks {
			break
		}
	}
	return remarks, nil
}

func hasErrorRemark(remarks []Remark) bool {
	for _, r := range remarks {
		if r.Severity == RemarkError {
			return true
		}
	}
	return false
}

func parseStatus(s string) (CriterionStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return StatusYes, true
	case "developing":
		return StatusDeveloping, true
	case "no":
		return StatusNo, true
	default:
		return "", false
	}
}

// stripCodeFence removes an optional markdown code fence wrapper.
// Some models fence their JSON output even when asked not to.
func stripCodeFence(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return raw
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// percentage computes round(100*total/maxTotal).
func percentage(total, maxTotal int) int {
	if maxTotal <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(total) / float64(maxTotal)))
}
