package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almglabs/almg/internal/trajectory"
)

func TestParseAddArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantX     float64
		wantY     float64
		wantZ     float64
		wantTopic string
		wantErr   bool
	}{
		{
			name:  "coordinates only",
			args:  []string{"0.1", "0.2", "0.9"},
			wantX: 0.1, wantY: 0.2, wantZ: 0.9,
		},
		{
			name:  "with single word topic",
			args:  []string{"0.1", "0.2", "0.9", "greeting"},
			wantX: 0.1, wantY: 0.2, wantZ: 0.9,
			wantTopic: "greeting",
		},
		{
			name:  "with multi word topic",
			args:  []string{"0.5", "0.5", "0.5", "model", "capabilities"},
			wantX: 0.5, wantY: 0.5, wantZ: 0.5,
			wantTopic: "model capabilities",
		},
		{
			name:  "out of range accepted",
			args:  []string{"-1", "2", "5"},
			wantX: -1, wantY: 2, wantZ: 5,
		},
		{
			name:    "too few arguments",
			args:    []string{"0.1", "0.2"},
			wantErr: true,
		},
		{
			name:    "non numeric coordinate",
			args:    []string{"0.1", "abc", "0.9"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, z, topic, err := parseAddArgs(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
			assert.Equal(t, tt.wantZ, z)
			assert.Equal(t, tt.wantTopic, topic)
		})
	}
}

func TestRunTrackSession(t *testing.T) {
	color.NoColor = true
	tmp := t.TempDir()

	oldConfig := config
	config = &Config{ExportDir: tmp}
	oldModel, oldID := trackModel, trackID
	t.Cleanup(func() {
		config = oldConfig
		trackModel, trackID = oldModel, oldID
	})

	script := strings.Join([]string{
		"add 0.1 0.1 0.9 greeting",
		"add 0.7 bad 0.5",
		"bogus",
		"summary",
		"export",
		"quit",
	}, "\n") + "\n"

	cmd := newTrackCmd()
	trackModel, trackID = "TestModel", "test0001"
	cmd.SetIn(strings.NewReader(script))
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, runTrack(cmd, nil))
	out := buf.String()

	assert.Contains(t, out, "Session test0001 initialized for TestModel")
	assert.Contains(t, out, "Zone: Green")
	assert.Contains(t, out, "Risk Score: 0.10")
	assert.Contains(t, out, "coordinates must be numbers")
	assert.Contains(t, out, "Unknown command")
	assert.Contains(t, out, "Dominant Zone:      Green")
	assert.Contains(t, out, "Exported to")
	assert.Contains(t, out, "Session ended.")

	// malformed add and unknown command must not have mutated the session
	data, err := os.ReadFile(filepath.Join(tmp, "almg_session_test0001.json"))
	require.NoError(t, err)
	session, err := trajectory.Import(data)
	require.NoError(t, err)
	require.Equal(t, 1, session.Len())
	assert.Equal(t, "greeting", session.Trajectory()[0].Topic)
}

func TestRunTrackEmptySummary(t *testing.T) {
	color.NoColor = true
	oldModel, oldID := trackModel, trackID
	t.Cleanup(func() { trackModel, trackID = oldModel, oldID })

	cmd := newTrackCmd()
	trackModel, trackID = "TestModel", "test0002"
	cmd.SetIn(strings.NewReader("summary\nquit\n"))
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, runTrack(cmd, nil))
	assert.Contains(t, buf.String(), "No data yet")
}
