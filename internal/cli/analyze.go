package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/almglabs/almg/internal/trajectory"
)

// newAnalyzeCmd creates the analyze command
func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze FILE",
		Short: "Analyze an exported session file",
		Long: `Analyze an exported session file. Prints the session identity and the
summary recomputed from the stored trajectory.

Examples:
  # Analyze a session export
  almg analyze almg_session_ab12cd34.json

  # Analyze with machine-readable output
  almg analyze almg_session_ab12cd34.json -j`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	session, err := loadSessionFile(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	summary, ok := session.Summarize()

	if jsonOutput {
		doc := map[string]any{
			"session_id": session.ID(),
			"model":      session.Model(),
			"points":     session.Len(),
		}
		if ok {
			doc["summary"] = summary
		}
		printJSON(doc)
		return nil
	}

	fmt.Fprintf(out, "\nSession: %s\n", session.ID())
	fmt.Fprintf(out, "Model: %s\n", session.Model())
	fmt.Fprintf(out, "Points: %d\n", session.Len())

	if !ok {
		fmt.Fprintln(out, "\nTrajectory is empty.")
		return nil
	}

	fmt.Fprintln(out, "\nAverages:")
	fmt.Fprintf(out, "  X (Entropy):    %.2f\n", summary.AvgX)
	fmt.Fprintf(out, "  Y (Ambiguity):  %.2f\n", summary.AvgY)
	fmt.Fprintf(out, "  Z (Legitimacy): %.2f\n", summary.AvgZ)
	fmt.Fprintf(out, "\nDominant Zone: %s\n", zoneLabel(summary.DominantZone))
	fmt.Fprintf(out, "Drift: %s\n", summary.DriftDirection)

	if len(summary.NotableEvents) > 0 {
		fmt.Fprintln(out, "\nZone Transitions:")
		for _, event := range summary.NotableEvents {
			fmt.Fprintf(out, "  - %s\n", event)
		}
	}
	return nil
}

// loadSessionFile reads and imports a session document. Unreadable files and
// malformed documents are fatal for the invocation.
func loadSessionFile(path string) (*trajectory.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	session, err := trajectory.Import(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	log.Debug().Str("path", path).Str("session_id", session.ID()).Int("points", session.Len()).Msg("session loaded")
	return session, nil
}
