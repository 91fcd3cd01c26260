package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/almglabs/almg/internal/common"
	"github.com/almglabs/almg/internal/trajectory"
)

var (
	trackModel    string
	trackID       string
	trackRandomID bool
)

// newTrackCmd creates the interactive tracking command
func newTrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track [flags]",
		Short: "Start an interactive tracking session",
		Long: `Start an interactive tracking session. Observations are entered one per
conversation turn and classified into risk zones as they arrive.

Commands inside the session:
  add <x> <y> <z> [topic]   Add a point (0-1 scale each)
  summary                   Show session summary
  export                    Export session to JSON
  quit                      End session

Examples:
  # Track a named model
  almg track --model GPT-4

  # Track with an explicit session id
  almg track --model Claude --id demo1234`,
		RunE: runTrack,
	}
	cmd.Flags().StringVarP(&trackModel, "model", "m", "", "Model being tracked")
	cmd.Flags().StringVarP(&trackID, "id", "", "", "Explicit session id (default: derived from creation time and model)")
	cmd.Flags().BoolVarP(&trackRandomID, "random-id", "", false, "Use a random session id instead of the derived one")
	return cmd
}

// runTrack drives the interactive REPL over stdin.
func runTrack(cmd *cobra.Command, args []string) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(out, "  ALMG Conversation Tracker")
	fmt.Fprintln(out, strings.Repeat("=", 60))

	model := trackModel
	if model == "" {
		fmt.Fprint(out, "\nModel being tracked (e.g., GPT-4, Claude): ")
		if in.Scan() {
			model = strings.TrimSpace(in.Text())
		}
		if model == "" {
			model = GetConfig().DefaultModel
		}
	}

	opts := []trajectory.Option{}
	switch {
	case trackID != "":
		opts = append(opts, trajectory.WithID(trackID))
	case trackRandomID:
		opts = append(opts, trajectory.WithID(common.RandomSessionID()))
	}
	session := trajectory.NewSession(model, opts...)
	log.Debug().Str("session_id", session.ID()).Str("model", session.Model()).Msg("session created")

	fmt.Fprintf(out, "\nSession %s initialized for %s\n", session.ID(), session.Model())
	fmt.Fprintln(out, "\nCommands:")
	fmt.Fprintln(out, "  add <x> <y> <z> [topic]  - Add a point (0-1 scale each)")
	fmt.Fprintln(out, "  summary                   - Show session summary")
	fmt.Fprintln(out, "  export                    - Export to JSON")
	fmt.Fprintln(out, "  quit                      - End session")
	fmt.Fprintln(out)

	for {
		fmt.Fprintf(out, "[Turn %d] > ", session.Len()+1)
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		action := strings.ToLower(parts[0])

		if action == "quit" || action == "exit" {
			break
		}

		switch action {
		case "add":
			handleAdd(out, session, parts[1:])
		case "summary":
			printSummary(out, session)
		case "export":
			path, err := exportSession(session, GetConfig().ResolvedExportDir())
			if err != nil {
				errorLabel.Fprintf(out, "  Error: %v\n", err)
				continue
			}
			okLabel.Fprintf(out, "  Exported to %s\n", path)
		default:
			fmt.Fprintln(out, "  Unknown command. Try: add <x> <y> <z> [topic]")
		}
	}

	fmt.Fprintln(out, "\nSession ended.")
	if session.Len() > 0 {
		data, err := session.Export()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	}
	return nil
}

// handleAdd parses and applies an `add` command. Malformed input is reported
// and leaves the session untouched.
func handleAdd(out io.Writer, session *trajectory.Session, args []string) {
	x, y, z, topic, err := parseAddArgs(args)
	if err != nil {
		errorLabel.Fprintf(out, "  Error: %v\n", err)
		return
	}

	point := session.AddPoint(x, y, z, topic)
	risk := trajectory.RiskScore(x, y, z)

	fmt.Fprintf(out, "  → X=%.2f, Y=%.2f, Z=%.2f\n", x, y, z)
	fmt.Fprintf(out, "  → Zone: %s\n", zoneLabel(point.Zone))
	fmt.Fprintf(out, "  → Risk Score: %.2f\n", risk)
}

// parseAddArgs parses the arguments of an `add` command: three coordinates
// followed by an optional free-text topic.
func parseAddArgs(args []string) (x, y, z float64, topic string, err error) {
	if len(args) < 3 {
		return 0, 0, 0, "", fmt.Errorf("usage: add <x> <y> <z> [topic]")
	}
	coords := make([]float64, 3)
	for i := 0; i < 3; i++ {
		coords[i], err = strconv.ParseFloat(args[i], 64)
		if err != nil {
			return 0, 0, 0, "", fmt.Errorf("coordinates must be numbers 0-1")
		}
	}
	if len(args) > 3 {
		topic = strings.Join(args[3:], " ")
	}
	return coords[0], coords[1], coords[2], topic, nil
}

// printSummary renders the session summary for the terminal.
func printSummary(out io.Writer, session *trajectory.Session) {
	s, ok := session.Summarize()
	if !ok {
		fmt.Fprintln(out, "  No data yet. Add some points first.")
		return
	}

	fmt.Fprintf(out, "\n  Avg X (Entropy):    %.2f\n", s.AvgX)
	fmt.Fprintf(out, "  Avg Y (Ambiguity):  %.2f\n", s.AvgY)
	fmt.Fprintf(out, "  Avg Z (Legitimacy): %.2f\n", s.AvgZ)
	fmt.Fprintf(out, "  Dominant Zone:      %s\n", zoneLabel(s.DominantZone))
	fmt.Fprintf(out, "  Drift Direction:    %s\n", s.DriftDirection)
	if len(s.NotableEvents) > 0 {
		fmt.Fprintln(out, "  Zone Transitions:")
		for _, event := range s.NotableEvents {
			fmt.Fprintf(out, "    - %s\n", event)
		}
	}
}

// exportSession writes the session document to the conventional file name in
// dir and returns the written path. A failure mid-write may leave a truncated
// file; there is no partial-write recovery.
func exportSession(session *trajectory.Session, dir string) (string, error) {
	data, err := session.Export()
	if err != nil {
		return "", errors.Wrap(err, "serializing session")
	}

	path := filepath.Join(dir, fmt.Sprintf("almg_session_%s.json", session.ID()))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	log.Debug().Str("path", path).Int("points", session.Len()).Msg("session exported")
	return path, nil
}
