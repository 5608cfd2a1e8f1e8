package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/vigil/internal/analysis"
	"github.com/abhisek/vigil/internal/confidence"
	"github.com/abhisek/vigil/internal/llm"
	"github.com/abhisek/vigil/internal/store"
	"github.com/spf13/cobra"
)

// Hard-evidence thresholds. Reports at or past these count as red flags
// on top of their factor contribution.
const (
	answerSimilarityRedFlag = 0.8
	typingRedFlag           = 0.7
	pasteRedFlag            = 0.6
)

var reportCmd = &cobra.Command{
	Use:   "report <session-id>",
	Short: "Compute the confidence breakdown for a stored session",
	Long: "Aggregates a session's recorded violations, and optionally a transcript, " +
		"completion timing and answer similarity, into one explainable confidence score.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		counts, err := st.EventRepo().CountViolationsBySeverity(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("count violations: %w", err)
		}

		var factors confidence.Factors
		factors.PatternDetection = confidence.PatternFactor(counts)

		redFlags := 0

		if path, _ := cmd.Flags().GetString("transcript"); path != "" {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}
			content := analysis.AnalyzeContent(string(raw))
			factors.ContentQuality = content.RiskScore
			redFlags += content.AnswerReceivingCount

			// An LLM verdict, when a provider is configured, can raise
			// the content factor past what the phrase rules found. The
			// classifier itself degrades to rules on provider errors.
			provider, perr := llm.NewProviderFromEnv(ctx, st.EventRepo())
			if perr != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "LLM provider not configured; using rule-based classification only.")
			} else {
				tc := analysis.NewTranscriptClassifier(provider, analysis.DefaultClassifierConfig())
				verdict, cerr := tc.Classify(ctx, string(raw))
				if cerr == nil && verdict.Flagged && verdict.Confidence > factors.ContentQuality {
					factors.ContentQuality = verdict.Confidence
				}
			}
		}

		if path, _ := cmd.Flags().GetString("typing-events"); path != "" {
			var events []analysis.KeyEvent
			if err := readJSONFile(path, &events); err != nil {
				return fmt.Errorf("read typing events: %w", err)
			}
			typing := analysis.AnalyzeTyping(events)
			factors.WritingStyle = typing.SuspicionScore
			if typing.SuspicionScore > typingRedFlag {
				redFlags++
			}
		}

		if path, _ := cmd.Flags().GetString("paste-events"); path != "" {
			var events []analysis.PasteEvent
			if err := readJSONFile(path, &events); err != nil {
				return fmt.Errorf("read paste events: %w", err)
			}
			pastes := analysis.AnalyzePastes(events)
			factors.AnswerComplexity = pastes.SuspicionScore
			if pastes.SuspicionScore > pasteRedFlag {
				redFlags++
			}
		}

		expected, _ := cmd.Flags().GetInt("expected-minutes")
		actual, _ := cmd.Flags().GetInt("actual-minutes")
		if expected > 0 && actual > 0 {
			start := time.Time{}
			end := start.Add(time.Duration(actual) * time.Minute)
			timing := analysis.AnalyzeCompletionTime(start, end, time.Duration(expected)*time.Minute)
			factors.TimeAnalysis = timing.SuspicionScore
		}

		answerPath, _ := cmd.Flags().GetString("answer")
		refPaths, _ := cmd.Flags().GetStringSlice("reference")
		if answerPath != "" && len(refPaths) > 0 {
			answer, err := os.ReadFile(answerPath)
			if err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			refs := make([]string, 0, len(refPaths))
			for _, p := range refPaths {
				raw, err := os.ReadFile(p)
				if err != nil {
					return fmt.Errorf("read reference: %w", err)
				}
				refs = append(refs, string(raw))
			}
			sim := analysis.AnswerSimilarity(string(answer), refs)
			if sim.MaxSimilarity >= answerSimilarityRedFlag {
				redFlags++
			}
		}

		breakdown := confidence.Aggregate(factors, confidence.DefaultWeights(), confidence.RedFlagPenalty(redFlags))

		printBreakdown(out, sessionID, counts, breakdown)

		if save, _ := cmd.Flags().GetBool("save"); save {
			snap := &store.Snapshot{
				SessionID: sessionID,
				Data: store.SnapshotData{
					Version:     confidence.WeightsVersion,
					SessionID:   sessionID,
					Score:       breakdown.Score,
					Level:       string(breakdown.Level),
					Factors:     breakdown.Weighted,
					Explanation: breakdown.Explanation,
				},
			}
			if err := st.SnapshotRepo().Save(ctx, snap); err != nil {
				return fmt.Errorf("save snapshot: %w", err)
			}
			fmt.Fprintln(out, "\nSnapshot saved.")
		}
		return nil
	},
}

// readJSONFile decodes one JSON file into v.
func readJSONFile(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func printBreakdown(out io.Writer, sessionID string, counts map[string]int, b confidence.Breakdown) {
	fmt.Fprintf(out, "Session %s\n", sessionID)
	fmt.Fprintln(out, strings.Repeat("─", 60))

	if len(counts) == 0 {
		fmt.Fprintln(out, "Violations: none recorded")
	} else {
		severities := make([]string, 0, len(counts))
		for sev := range counts {
			severities = append(severities, sev)
		}
		sort.Strings(severities)
		fmt.Fprint(out, "Violations:")
		for _, sev := range severities {
			fmt.Fprintf(out, "  %s=%d", sev, counts[sev])
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-20s  %6s  %8s\n", "Factor", "Value", "Weighted")
	for _, row := range []struct {
		name  string
		value float64
	}{
		{"content_quality", b.Factors.ContentQuality},
		{"writing_style", b.Factors.WritingStyle},
		{"answer_complexity", b.Factors.AnswerComplexity},
		{"time_analysis", b.Factors.TimeAnalysis},
		{"pattern_detection", b.Factors.PatternDetection},
	} {
		fmt.Fprintf(out, "%-20s  %6.2f  %8.3f\n", row.name, row.value, b.Weighted[row.name])
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Raw score:       %.3f\n", b.RawScore)
	if b.RedFlagPenalty < 0 {
		fmt.Fprintf(out, "Red-flag penalty: %.2f\n", b.RedFlagPenalty)
	}
	fmt.Fprintf(out, "Final score:     %.3f (%s)\n", b.Score, b.Level)
	fmt.Fprintf(out, "\n%s\n", b.Explanation)
}

func init() {
	reportCmd.Flags().String("transcript", "", "Transcript file to analyze for suspicious content")
	reportCmd.Flags().String("typing-events", "", "JSON file of keystroke events for typing-pattern analysis")
	reportCmd.Flags().String("paste-events", "", "JSON file of clipboard events for paste analysis")
	reportCmd.Flags().Int("expected-minutes", 0, "Expected completion time in minutes")
	reportCmd.Flags().Int("actual-minutes", 0, "Actual completion time in minutes")
	reportCmd.Flags().String("answer", "", "Answer text file for similarity analysis")
	reportCmd.Flags().StringSlice("reference", nil, "Reference answer file (repeatable)")
	reportCmd.Flags().Bool("save", false, "Persist the breakdown as a snapshot")
}
