package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almglabs/almg/internal/trajectory"
)

func TestPlotGrid(t *testing.T) {
	points := []trajectory.Point{
		{X: 0, Z: 1, Zone: trajectory.ZoneGreen},  // top-left
		{X: 1, Z: 0, Zone: trajectory.ZonePurple}, // bottom-right
		{X: 0.5, Z: 0.5, Zone: trajectory.ZoneYellow},
	}
	grid := plotGrid(points)

	assert.Equal(t, trajectory.ZoneGreen, grid[0][0])
	assert.Equal(t, trajectory.ZonePurple, grid[gridHeight-1][gridWidth-1])
	assert.Equal(t, trajectory.ZoneYellow, grid[9][19])
}

func TestPlotGridClampsOutOfRange(t *testing.T) {
	points := []trajectory.Point{
		{X: -2, Z: 5, Zone: trajectory.ZoneGold},
		{X: 3, Z: -1, Zone: trajectory.ZoneRed},
	}
	grid := plotGrid(points)

	assert.Equal(t, trajectory.ZoneGold, grid[0][0])
	assert.Equal(t, trajectory.ZoneRed, grid[gridHeight-1][gridWidth-1])
}

func TestPlotGridLaterPointOverwrites(t *testing.T) {
	points := []trajectory.Point{
		{X: 0, Z: 1, Zone: trajectory.ZoneGreen},
		{X: 0, Z: 1, Zone: trajectory.ZonePurple},
	}
	grid := plotGrid(points)
	assert.Equal(t, trajectory.ZonePurple, grid[0][0])
}

func TestRenderPlot(t *testing.T) {
	color.NoColor = true
	points := []trajectory.Point{
		{X: 0, Z: 1, Zone: trajectory.ZoneGreen},
		{X: 1, Z: 0, Zone: trajectory.ZonePurple},
	}

	var buf bytes.Buffer
	renderPlot(&buf, points)
	out := buf.String()

	assert.Contains(t, out, "ALMG Trajectory (X vs Z)")
	assert.Contains(t, out, "Z=1.0")
	assert.Contains(t, out, "Z=0.0")
	assert.Contains(t, out, "X=1.0")
	assert.Contains(t, out, "Legend: ● Green  ◉ Gold  ○ Yellow  ◎ Red  ◯ Purple")

	// one bordered line per grid row, each holding exactly gridWidth cells
	var rows int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "       │") {
			rows++
			assert.Equal(t, gridWidth+9, len([]rune(line)))
		}
	}
	require.Equal(t, gridHeight, rows)

	assert.Contains(t, out, "●")
	assert.Contains(t, out, "◯")
}
