package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/almglabs/almg/internal/trajectory"
)

// Fixed plot dimensions: x maps to columns, (1-z) to rows.
const (
	gridWidth  = 40
	gridHeight = 20
)

// newVisualizeCmd creates the visualize command
func newVisualizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "visualize FILE",
		Short: "Render an ASCII plot of an exported session",
		Long: `Render an ASCII plot of an exported session. Each point is drawn on a
fixed 40x20 grid with a zone-specific glyph; x maps to the column and
legitimacy (inverted) to the row.

Examples:
  # Plot a session export
  almg visualize almg_session_ab12cd34.json`,
		Args: cobra.ExactArgs(1),
		RunE: runVisualize,
	}
}

func runVisualize(cmd *cobra.Command, args []string) error {
	session, err := loadSessionFile(args[0])
	if err != nil {
		return err
	}

	renderPlot(cmd.OutOrStdout(), session.Trajectory())
	return nil
}

// plotGrid places each point on the grid, clamped to the grid bounds. Later
// points overwrite earlier ones in the same cell; there is no aggregation.
// Empty cells hold the empty zone "".
func plotGrid(points []trajectory.Point) [][]trajectory.Zone {
	grid := make([][]trajectory.Zone, gridHeight)
	for i := range grid {
		grid[i] = make([]trajectory.Zone, gridWidth)
	}

	for _, p := range points {
		col := int(p.X * (gridWidth - 1))
		row := int((1 - p.Z) * (gridHeight - 1)) // invert z for display
		col = clamp(col, 0, gridWidth-1)
		row = clamp(row, 0, gridHeight-1)
		grid[row][col] = p.Zone
	}
	return grid
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// renderPlot writes the grid with axis markers and a legend.
func renderPlot(out io.Writer, points []trajectory.Point) {
	grid := plotGrid(points)

	fmt.Fprintln(out, "\n  ALMG Trajectory (X vs Z)")
	fmt.Fprintln(out, "  Z=1.0 "+strings.Repeat("─", gridWidth))
	for _, row := range grid {
		var b strings.Builder
		for _, cell := range row {
			if cell == "" {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(zoneGlyph(cell))
		}
		fmt.Fprintln(out, "       │"+b.String()+"│")
	}
	fmt.Fprintln(out, "  Z=0.0 "+strings.Repeat("─", gridWidth))
	fmt.Fprintln(out, "        X=0"+strings.Repeat(" ", gridWidth-8)+"X=1.0")

	var legend strings.Builder
	legend.WriteString("\n  Legend:")
	for _, z := range trajectory.Zones {
		legend.WriteString(fmt.Sprintf(" %s %s ", zoneGlyph(z), string(z)))
	}
	fmt.Fprintln(out, strings.TrimRight(legend.String(), " "))
}
