// Package grader orchestrates one grading round trip: validate the
// request, call the LLM with the rubric schema, normalize the payload,
// and derive gaps and lesson recommendations.
package grader

import (
	"context"
	"errors"
	"strings"

	"github.com/abhisek/scrivo/internal/gaps"
	"github.com/abhisek/scrivo/internal/llm"
	"github.com/abhisek/scrivo/internal/recommend"
	"github.com/abhisek/scrivo/internal/rubric"
)

// Request is one grading submission.
type Request struct {
	// Content is the student's text. Required.
	Content string

	// Prompt is the writing prompt the student responded to. Required.
	Prompt string

	// Kind selects the paragraph or essay rubric.
	Kind rubric.Kind

	// GradeLevel adjusts grader expectations when > 0.
	GradeLevel int

	// PreviousResult and PreviousContent switch the grader into
	// revision mode: the LLM is told not to re-flag fixed issues.
	PreviousResult  rubric.Result
	PreviousContent string
}

// Report is the grading response consumed by the UI and persistence
// layers. Everything in it is derived from Result; nothing is stored
// state of the grader's own.
type Report struct {
	Result             rubric.Result    `json:"result"`
	Gaps               []gaps.SkillGap  `json:"gaps"`
	HasSevereGap       bool             `json:"hasSevereGap"`
	PrioritizedLessons []string         `json:"prioritizedLessons"`
}

// Config holds grading call settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for grading calls.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.2,
	}
}

// Service grades submissions through an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a grading service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Grade runs the full pipeline for one submission.
//
// Failures are fail-fast: a payload that cannot be normalized aborts
// before gap detection, since a default-filled result would silently
// under- or over-report gaps.
func (s *Service) Grade(ctx context.Context, req Request) (*Report, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	kind := req.Kind
	if kind == "" {
		kind = rubric.KindParagraph
	}

	schema := ParagraphGradeSchema
	purpose := "paragraph-grade"
	if kind == rubric.KindEssay {
		schema = EssayGradeSchema
		purpose = "essay-grade"
	}
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPromptFor(kind),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		Schema:      schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, mapProviderError(err)
	}

	result, err := rubric.Normalize(kind, resp.Content)
	if err != nil {
		return nil, err
	}

	return buildReport(result), nil
}

// buildReport derives gaps and recommendations from a normalized result.
func buildReport(result rubric.Result) *Report {
	var detected []gaps.SkillGap
	switch r := result.(type) {
	case *rubric.GraderResult:
		detected = gaps.DetectParagraphGaps(r)
	case *rubric.EssayGraderResult:
		detected = gaps.DetectEssayGaps(r)
	}

	return &Report{
		Result:             result,
		Gaps:               detected,
		HasSevereGap:       gaps.HasSevere(detected),
		PrioritizedLessons: recommend.Prioritize(detected),
	}
}

func validate(req Request) error {
	if strings.TrimSpace(req.Content) == "" {
		return &ValidationError{Field: "content", Reason: "must not be empty"}
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return &ValidationError{Field: "prompt", Reason: "must not be empty"}
	}
	if req.Kind != "" && req.Kind != rubric.KindParagraph && req.Kind != rubric.KindEssay {
		return &ValidationError{Field: "type", Reason: "must be paragraph or essay"}
	}
	return nil
}

// mapProviderError translates llm-layer failures into the grader's
// taxonomy. A schema-invalid response is a parse failure of the grader
// payload; everything else is an upstream service failure.
func mapProviderError(err error) error {
	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		return &rubric.ParseError{Reason: "grader returned malformed payload", Err: err}
	}
	return &UpstreamError{Err: err}
}
