package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/vigil/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded session summaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		summaries, err := st.EventRepo().QuerySessionSummaries(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(summaries) == 0 {
			fmt.Fprintln(out, "No sessions recorded.")
			return nil
		}

		fmt.Fprintf(out, "%-36s  %-19s  %8s  %6s  %10s\n",
			"Session", "Started", "Duration", "Frames", "Violations")
		fmt.Fprintln(out, strings.Repeat("─", 90))

		for _, s := range summaries {
			duration := "open"
			if s.DurationSecs > 0 {
				duration = fmt.Sprintf("%ds", s.DurationSecs)
			}
			fmt.Fprintf(out, "%-36s  %-19s  %8s  %6d  %10d\n",
				s.SessionID,
				s.StartedAt.Local().Format("2006-01-02 15:04:05"),
				duration,
				s.FramesProcessed,
				s.ViolationCount,
			)
			if len(s.SeverityCounts) > 0 {
				fmt.Fprintf(out, "%38s%s\n", "", formatSeverities(s.SeverityCounts))
			}
		}
		return nil
	},
}

func formatSeverities(counts map[string]int) string {
	parts := make([]string, 0, len(counts))
	for _, sev := range []string{"critical", "high", "medium", "low"} {
		if n := counts[sev]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", sev, n))
		}
	}
	return strings.Join(parts, "  ")
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
