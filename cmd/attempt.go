package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/scrivo/internal/mastery"
	"github.com/abhisek/scrivo/internal/practice"
	"github.com/abhisek/scrivo/internal/rankedgate"
)

var attemptCmd = &cobra.Command{
	Use:   "attempt [lesson-id]",
	Short: "Record a guided-lesson attempt from its phase scores",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttempt,
}

func init() {
	attemptCmd.Flags().Float64("review", 0, "Review phase score (0-100)")
	attemptCmd.Flags().Float64("write", 0, "Write phase score (0-100)")
	attemptCmd.Flags().Float64("revise", 0, "Revise phase score (0-100)")
	attemptCmd.Flags().String("user", "local", "User ID to record the attempt under")
}

func runAttempt(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	review, _ := cmd.Flags().GetFloat64("review")
	write, _ := cmd.Flags().GetFloat64("write")
	revise, _ := cmd.Flags().GetFloat64("revise")
	userID, _ := cmd.Flags().GetString("user")

	svc := practice.NewService(st, mastery.DefaultConfig(), rankedgate.DefaultConfig())
	result, err := svc.RecordLessonAttempt(cmd.Context(), userID, practice.LessonAttempt{
		LessonID:    args[0],
		ReviewScore: review,
		WriteScore:  write,
		ReviseScore: revise,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Composite score: %d%%\n", result.Composite)
	if result.ImprovementBonus > 0 {
		fmt.Printf("Improvement bonus: +%.0f\n", result.ImprovementBonus)
	}
	fmt.Printf("Best score: %d%% over %d attempt(s)\n", result.Outcome.BestScore, result.Outcome.AttemptCount)

	switch {
	case result.Outcome.NewlyMastered:
		fmt.Printf("Lesson mastered! +%d LP\n", result.Outcome.LPEarned)
	case result.Outcome.IsMastered:
		fmt.Println("Already mastered. Practice attempts do not earn LP.")
	}
	return nil
}
