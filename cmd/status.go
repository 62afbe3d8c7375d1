package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/scrivo/internal/catalog"
	"github.com/abhisek/scrivo/internal/mastery"
	"github.com/abhisek/scrivo/internal/practice"
	"github.com/abhisek/scrivo/internal/rankedgate"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show ranked-play status and suggested lessons",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().String("user", "local", "User ID to check")
}

func runStatus(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	userID, _ := cmd.Flags().GetString("user")
	svc := practice.NewService(st, mastery.DefaultConfig(), rankedgate.DefaultConfig())

	status, err := svc.RankedStatus(cmd.Context(), userID)
	if err != nil {
		return err
	}

	if status.Blocked {
		fmt.Printf("Ranked play: BLOCKED (%s)\n", status.Reason)
		fmt.Println("Blocking gaps:", joinOr(status.BlockingGaps, "none"))
		fmt.Println("\nRequired lessons:")
		for i, id := range status.RequiredLessons {
			fmt.Printf("  %d. %s\n", i+1, lessonLabel(id))
		}
	} else {
		fmt.Println("Ranked play: open")
	}

	for _, w := range status.Warnings {
		fmt.Printf("Warning: %s is recurring and close to blocking ranked play.\n", w)
	}

	if len(status.SuggestedLessons) > 0 {
		fmt.Println("\nSuggested study-hall lessons:")
		for _, id := range status.SuggestedLessons {
			fmt.Printf("  - %s\n", lessonLabel(id))
		}
	}
	return nil
}

func lessonLabel(id string) string {
	if l, ok := catalog.GetLesson(id); ok {
		return l.Name
	}
	return id
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	out := items[0]
	for _, s := range items[1:] {
		out += ", " + s
	}
	return out
}
