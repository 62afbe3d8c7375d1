package grader

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/scrivo/internal/llm"
	"github.com/abhisek/scrivo/internal/rubric"
)

const paragraphGrade = `{
	"isCorrect": false,
	"remarks": [
		{"severity": "error", "category": "Topic Sentence", "concreteProblem": "no stated main idea", "callToAction": "open with a claim"}
	],
	"scores": {"topicSentence": 2, "detailSentences": 4, "concludingSentence": 5, "conventions": 3}
}`

func TestGradeParagraph(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: []byte(paragraphGrade)})
	svc := NewService(provider, DefaultConfig())

	report, err := svc.Grade(context.Background(), Request{
		Content: "My paragraph about volcanoes.",
		Prompt:  "Explain how volcanoes form.",
	})
	require.NoError(t, err)

	require.IsType(t, &rubric.GraderResult{}, report.Result)
	assert.Equal(t, 70, report.Result.Percent())
	assert.False(t, report.Result.Correct())

	require.Len(t, report.Gaps, 3)
	assert.Equal(t, "topicSentence", report.Gaps[0].Category)
	assert.True(t, report.HasSevereGap)
	assert.NotEmpty(t, report.PrioritizedLessons)

	// A paragraph request carries the paragraph schema.
	require.Equal(t, 1, provider.CallCount())
	assert.Equal(t, "paragraph-grade", provider.Calls[0].Schema.Name)
	assert.Contains(t, provider.Calls[0].Messages[0].Content, "Explain how volcanoes form.")
}

func TestGradeEssaySelectsEssaySchema(t *testing.T) {
	essayGrade := `{"criteria": [{"criterionId": "thesis", "status": "No", "feedback": "missing claim"}]}`
	provider := llm.NewMockProvider(llm.MockResponse{Content: []byte(essayGrade)})
	svc := NewService(provider, DefaultConfig())

	report, err := svc.Grade(context.Background(), Request{
		Content: strings.Repeat("A body paragraph. ", 20),
		Prompt:  "Argue for or against school uniforms.",
		Kind:    rubric.KindEssay,
	})
	require.NoError(t, err)

	require.IsType(t, &rubric.EssayGraderResult{}, report.Result)
	assert.Equal(t, "essay-grade", provider.Calls[0].Schema.Name)
	require.Len(t, report.Gaps, 1)
	assert.Equal(t, "thesis", report.Gaps[0].Category)
	assert.True(t, report.HasSevereGap)
}

func TestGradeValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   Request
		field string
	}{
		{"empty content", Request{Prompt: "p"}, "content"},
		{"whitespace content", Request{Content: "   ", Prompt: "p"}, "content"},
		{"empty prompt", Request{Content: "c"}, "prompt"},
		{"unknown kind", Request{Content: "c", Prompt: "p", Kind: "letter"}, "type"},
	}

	provider := llm.NewMockProvider()
	svc := NewService(provider, DefaultConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Grade(context.Background(), tt.req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
	// Validation failures never reach the provider.
	assert.Equal(t, 0, provider.CallCount())
}

func TestGradeMapsInvalidResponseToParseError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Err: errors.New("schema validation failed")},
	})
	svc := NewService(provider, DefaultConfig())

	_, err := svc.Grade(context.Background(), Request{Content: "c", Prompt: "p"})
	var perr *rubric.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestGradeMapsProviderFailureToUpstreamError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{Err: errors.New("429")},
	})
	svc := NewService(provider, DefaultConfig())

	_, err := svc.Grade(context.Background(), Request{Content: "c", Prompt: "p"})
	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)

	// The upstream cause stays reachable for retry classification.
	var rate *llm.ErrRateLimit
	assert.ErrorAs(t, err, &rate)
}

func TestGradeMalformedPayloadIsParseError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: []byte("not json at all")})
	svc := NewService(provider, DefaultConfig())

	_, err := svc.Grade(context.Background(), Request{Content: "c", Prompt: "p"})
	var perr *rubric.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestGradeRevisionModePrompt(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: []byte(paragraphGrade)})
	svc := NewService(provider, DefaultConfig())

	prev, err := rubric.NormalizeParagraph([]byte(paragraphGrade))
	require.NoError(t, err)

	_, err = svc.Grade(context.Background(), Request{
		Content:         "My revised paragraph.",
		Prompt:          "Explain how volcanoes form.",
		PreviousResult:  prev,
		PreviousContent: "My first paragraph.",
	})
	require.NoError(t, err)

	msg := provider.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "My first paragraph.")
	assert.Contains(t, msg, "already fixed")
}
