package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/scrivo/internal/catalog"
	"github.com/abhisek/scrivo/internal/grader"
	"github.com/abhisek/scrivo/internal/llm"
	"github.com/abhisek/scrivo/internal/mastery"
	"github.com/abhisek/scrivo/internal/practice"
	"github.com/abhisek/scrivo/internal/rankedgate"
	"github.com/abhisek/scrivo/internal/rubric"
	"github.com/abhisek/scrivo/internal/store"
)

var gradeCmd = &cobra.Command{
	Use:   "grade [file]",
	Short: "Grade a paragraph or essay from a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runGrade,
}

func init() {
	gradeCmd.Flags().String("type", "paragraph", "Rubric to grade against: paragraph or essay")
	gradeCmd.Flags().String("prompt", "", "The writing prompt the student responded to (required)")
	gradeCmd.Flags().Int("grade-level", 0, "Student grade level")
	gradeCmd.Flags().String("user", "local", "User ID to record history under")
	gradeCmd.Flags().String("previous", "", "Path to the earlier draft; grades this submission as a revision")
	_ = gradeCmd.MarkFlagRequired("prompt")
}

func runGrade(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read submission: %w", err)
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	kindFlag, _ := cmd.Flags().GetString("type")
	promptFlag, _ := cmd.Flags().GetString("prompt")
	gradeLevel, _ := cmd.Flags().GetInt("grade-level")
	userID, _ := cmd.Flags().GetString("user")

	req := grader.Request{
		Content:    string(content),
		Prompt:     promptFlag,
		Kind:       rubric.Kind(kindFlag),
		GradeLevel: gradeLevel,
	}

	if previousPath, _ := cmd.Flags().GetString("previous"); previousPath != "" {
		prev, err := os.ReadFile(previousPath)
		if err != nil {
			return fmt.Errorf("read earlier draft: %w", err)
		}
		req.PreviousContent = string(prev)
		req.PreviousResult = latestResult(ctx, st, userID)
	}

	svc := grader.NewService(provider, grader.DefaultConfig())
	report, err := svc.Grade(ctx, req)
	if err != nil {
		return describeGradeError(err)
	}

	practiceSvc := practice.NewService(st, mastery.DefaultConfig(), rankedgate.DefaultConfig())
	if _, err := practiceSvc.IngestReport(ctx, userID, report); err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to record history:", err)
	}

	printReport(report)
	return nil
}

func printReport(report *grader.Report) {
	fmt.Printf("Score: %d%%\n", report.Result.Percent())
	if report.Result.Correct() {
		fmt.Println("Result: pass")
	} else {
		fmt.Println("Result: needs work")
	}

	if len(report.Gaps) == 0 {
		fmt.Println("\nNo skill gaps detected. Nice work!")
		return
	}

	fmt.Println("\nSkill gaps:")
	for _, g := range report.Gaps {
		line := fmt.Sprintf("  [%s] %s", g.Severity, g.Category)
		if g.Feedback != "" {
			line += " — " + g.Feedback
		}
		fmt.Println(line)
	}

	if len(report.PrioritizedLessons) > 0 {
		fmt.Println("\nRecommended lessons, in order:")
		for i, id := range report.PrioritizedLessons {
			name := id
			if l, ok := catalog.GetLesson(id); ok {
				name = fmt.Sprintf("%s (%s)", l.Name, strings.ToLower(l.Tier.DisplayName()))
			}
			fmt.Printf("  %d. %s\n", i+1, name)
		}
	}

	if report.HasSevereGap {
		fmt.Println("\nA severe gap was found — ranked play may be blocked until it is addressed.")
	}
}

// latestResult recovers the user's most recent stored grade so a
// revision can be judged against it. Any failure just means the
// revision is graded without the earlier result.
func latestResult(ctx context.Context, st *store.Store, userID string) rubric.Result {
	event, err := st.EventRepo().LatestGradeEvent(ctx, userID)
	if err != nil || event == nil {
		return nil
	}
	switch rubric.Kind(event.Kind) {
	case rubric.KindParagraph:
		var r rubric.GraderResult
		if json.Unmarshal([]byte(event.ResultJSON), &r) == nil {
			return &r
		}
	case rubric.KindEssay:
		var r rubric.EssayGraderResult
		if json.Unmarshal([]byte(event.ResultJSON), &r) == nil {
			return &r
		}
	}
	return nil
}

// describeGradeError keeps parse detail out of user-facing output.
func describeGradeError(err error) error {
	var parseErr *rubric.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("grading failed, please try again")
	}
	return err
}
