package cmd

import (
	"github.com/abhisek/scrivo/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scrivo",
	Short: "AI writing tutor",
	Long:  "Scrivo is an adaptive writing tutor that grades paragraphs and essays against a TWR-style rubric and turns the results into practice recommendations.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SCRIVO_DB env var)")

	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(attemptCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SCRIVO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the learner database for a command.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
