package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show LLM usage statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	stats, err := st.EventRepo().LLMUsageByPurpose(cmd.Context())
	if err != nil {
		return fmt.Errorf("load usage stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("No LLM requests recorded yet.")
		return nil
	}

	fmt.Printf("%-18s %8s %8s %10s %10s %10s\n",
		"PURPOSE", "REQS", "FAILS", "TOK IN", "TOK OUT", "AVG MS")
	for _, s := range stats {
		fmt.Printf("%-18s %8d %8d %10d %10d %10d\n",
			s.Purpose, s.Requests, s.Failures, s.InputTokens, s.OutputTokens, s.AvgLatencyMs)
	}
	return nil
}
