package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/vigil/internal/landmark"
	"github.com/abhisek/vigil/internal/session"
	"github.com/abhisek/vigil/internal/violation"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay recorded landmark frames through the detection pipeline",
	Long: "Reads landmark frames as JSON lines (one frame per line) and runs them " +
		"through the full session pipeline: classification, face tracking, " +
		"violation throttling. Violations are printed and persisted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		framesPath, _ := cmd.Flags().GetString("frames")
		quiet, _ := cmd.Flags().GetBool("quiet")

		var in io.Reader = cmd.InOrStdin()
		if framesPath != "" && framesPath != "-" {
			f, err := os.Open(framesPath)
			if err != nil {
				return fmt.Errorf("open frames file: %w", err)
			}
			defer f.Close()
			in = f
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		out := cmd.OutOrStdout()
		listener := func(v violation.Violation) {
			if quiet {
				return
			}
			fmt.Fprintf(out, "[%s] %-18s %-8s conf=%.2f  %s\n",
				v.Timestamp.Format("15:04:05"), v.Type, v.Severity, v.Confidence, v.Message)
		}

		// Replay drives Process directly; the sampling loop polls a
		// detector that never produces frames.
		idle := session.DetectorFunc(func(context.Context) (*landmark.Frame, error) {
			return nil, nil
		})
		sess := session.New(session.DefaultConfig(), idle, listener, st.EventRepo())

		ctx := cmd.Context()
		if err := sess.Start(ctx); err != nil {
			return err
		}

		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
		line := 0
		for scanner.Scan() {
			line++
			raw := scanner.Bytes()
			if len(raw) == 0 {
				continue
			}
			var frame landmark.Frame
			if err := json.Unmarshal(raw, &frame); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "line %d: skipping malformed frame: %v\n", line, err)
				continue
			}
			sess.Process(&frame)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read frames: %w", err)
		}

		if err := sess.Close(); err != nil {
			return fmt.Errorf("close session: %w", err)
		}

		violations := sess.Violations()
		fmt.Fprintf(out, "\nSession %s: %d frames, %d violations\n",
			sess.ID(), sess.FramesProcessed(), len(violations))
		return nil
	},
}

func init() {
	runCmd.Flags().StringP("frames", "f", "-", "Frames file (JSON lines), or - for stdin")
	runCmd.Flags().BoolP("quiet", "q", false, "Suppress per-violation output")
}
