package grader

import "github.com/abhisek/scrivo/internal/llm"

// remarkSchema is shared by both grading schemas.
var remarkSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"severity": map[string]any{
			"type": "string",
			"enum": []any{"error", "nit"},
		},
		"category": map[string]any{
			"type":        "string",
			"description": "Rubric area the remark concerns, e.g. \"Topic Sentence\"",
		},
		"concreteProblem": map[string]any{
			"type":        "string",
			"description": "What is wrong, stated concretely",
		},
		"callToAction": map[string]any{
			"type":        "string",
			"description": "One actionable instruction for the student",
		},
		"substringOfInterest": map[string]any{
			"type":        "string",
			"description": "Exact quote from the submission the remark refers to, or empty",
		},
	},
	"required":             []any{"severity", "category", "concreteProblem", "callToAction"},
	"additionalProperties": false,
}

// ParagraphGradeSchema defines the JSON schema for paragraph grading.
var ParagraphGradeSchema = &llm.Schema{
	Name:        "paragraph-grade",
	Description: "Rubric scores and remarks for a single student paragraph",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isCorrect": map[string]any{
				"type":        "boolean",
				"description": "True when the paragraph has no error-level problems",
			},
			"scores": map[string]any{
				"type":        "object",
				"description": "0-5 score per rubric category",
				"properties": map[string]any{
					"topicSentence":      map[string]any{"type": "integer", "minimum": 0, "maximum": 5},
					"detailSentences":    map[string]any{"type": "integer", "minimum": 0, "maximum": 5},
					"concludingSentence": map[string]any{"type": "integer", "minimum": 0, "maximum": 5},
					"conventions":        map[string]any{"type": "integer", "minimum": 0, "maximum": 5},
				},
				"required": []any{
					"topicSentence", "detailSentences", "concludingSentence", "conventions",
				},
				"additionalProperties": false,
			},
			"remarks": map[string]any{
				"type":        "array",
				"description": "Up to three remarks, most important first",
				"maxItems":    3,
				"items":       remarkSchema,
			},
		},
		"required":             []any{"isCorrect", "scores", "remarks"},
		"additionalProperties": false,
	},
}

// EssayGradeSchema defines the JSON schema for essay grading.
var EssayGradeSchema = &llm.Schema{
	Name:        "essay-grade",
	Description: "Per-criterion judgments for a multi-paragraph student essay",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isCorrect": map[string]any{
				"type":        "boolean",
				"description": "True when every criterion is met",
			},
			"criteria": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"criterionId": map[string]any{
							"type": "string",
							"enum": []any{
								"thesis", "topicSentences", "supportingDetails",
								"unity", "transitions", "conclusion",
								"sentenceStrategies", "conventions", "paragraphCount",
							},
						},
						"status": map[string]any{
							"type": "string",
							"enum": []any{"Yes", "Developing", "No"},
						},
						"feedback": map[string]any{
							"type":        "string",
							"description": "One or two sentences on how the essay meets or misses the criterion",
						},
						"highlights": map[string]any{
							"type":        "array",
							"description": "Quotes from the essay supporting the judgment",
							"items":       map[string]any{"type": "string"},
						},
					},
					"required":             []any{"criterionId", "status", "feedback"},
					"additionalProperties": false,
				},
			},
			"paragraphCount": map[string]any{
				"type":        "integer",
				"description": "Number of paragraphs detected in the essay",
				"minimum":     0,
			},
		},
		"required":             []any{"isCorrect", "criteria", "paragraphCount"},
		"additionalProperties": false,
	},
}
