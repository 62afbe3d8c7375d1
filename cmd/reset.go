package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all learner data",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}

	confirmed, _ := cmd.Flags().GetBool("yes")
	if !confirmed {
		fmt.Printf("This deletes all progress in %s. Type 'yes' to continue: ", path)
		var answer string
		fmt.Fscanln(cmd.InOrStdin(), &answer)
		if answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// WAL sidecar files go with the database.
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", p, err)
		}
	}
	fmt.Println("Learner data deleted.")
	return nil
}
