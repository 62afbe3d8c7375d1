package grader

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/scrivo/internal/rubric"
)

const paragraphSystemPrompt = `You are a meticulous writing teacher grading a single paragraph written by a student. You follow The Writing Revolution methodology: a strong paragraph has a clear topic sentence, detail sentences that support it, a concluding sentence, and clean conventions. Score strictly against the rubric, quote the student's own words in remarks, and keep feedback concrete and actionable.`

const essaySystemPrompt = `You are a meticulous writing teacher grading a multi-paragraph essay written by a student. You follow The Writing Revolution methodology. Judge each rubric criterion independently as Yes, Developing, or No. Quote the essay in highlights, and keep feedback concrete and actionable.`

func systemPromptFor(kind rubric.Kind) string {
	if kind == rubric.KindEssay {
		return essaySystemPrompt
	}
	return paragraphSystemPrompt
}

func buildUserMessage(req Request) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Writing prompt: %s\n", req.Prompt))
	if req.GradeLevel > 0 {
		b.WriteString(fmt.Sprintf("Student grade level: %d\n", req.GradeLevel))
	}

	if req.PreviousResult != nil || req.PreviousContent != "" {
		b.WriteString("\nThis is a REVISION of an earlier draft.\n")
		if req.PreviousContent != "" {
			b.WriteString("Earlier draft:\n---\n")
			b.WriteString(req.PreviousContent)
			b.WriteString("\n---\n")
		}
		if req.PreviousResult != nil {
			if prev, err := json.Marshal(req.PreviousResult); err == nil {
				b.WriteString("Earlier grading result:\n")
				b.Write(prev)
				b.WriteString("\n")
			}
		}
		b.WriteString("Do not re-flag issues the student has already fixed. Grade the revision on its own merits and acknowledge improvement where it exists.\n")
	}

	b.WriteString("\nStudent submission:\n---\n")
	b.WriteString(req.Content)
	b.WriteString("\n---\n")

	b.WriteString(`
Instructions:
1. Score every rubric area. Do not skip any.
2. Surface at most three remarks, most important first. Use severity "error" only for problems that make the writing fail its purpose; use "nit" for polish.
3. Every remark needs a concrete problem and one actionable call to action.
4. When a remark refers to specific words in the submission, quote them exactly in substringOfInterest.`)

	return b.String()
}
