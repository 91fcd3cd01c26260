package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
		want    Zone
	}{
		{"green interior", 0.1, 0.1, 0.95, ZoneGreen},
		{"green upper boundary", 0.30, 0.30, 0.80, ZoneGreen},
		{"just past green x", 0.31, 0.30, 0.80, ZoneGold},
		{"gold interior", 0.4, 0.45, 0.75, ZoneGold},
		{"gold boundary", 0.50, 0.50, 0.70, ZoneGold},
		{"yellow interior", 0.7, 0.6, 0.5, ZoneYellow},
		{"yellow boundary", 0.80, 0.80, 0.40, ZoneYellow},
		{"red interior", 0.9, 0.8, 0.3, ZoneRed},
		{"red boundary", 0.95, 0.85, 0.20, ZoneRed},
		{"purple corner", 1.0, 1.0, 0.0, ZonePurple},
		{"purple via high x", 0.96, 0.1, 0.9, ZonePurple},
		{"green z floor falls through to gold", 0.1, 0.1, 0.75, ZoneGold},
		{"out of range low", -0.5, -0.5, 2.0, ZoneGreen},
		{"out of range high", 2.0, 2.0, -1.0, ZonePurple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.x, tt.y, tt.z)
			assert.Equal(t, tt.want, got)
			// classification is pure; re-evaluation must agree
			assert.Equal(t, got, Classify(tt.x, tt.y, tt.z))
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	valid := map[Zone]bool{}
	for _, z := range Zones {
		valid[z] = true
	}
	for x := -0.2; x <= 1.2; x += 0.1 {
		for y := -0.2; y <= 1.2; y += 0.1 {
			for z := -0.2; z <= 1.2; z += 0.1 {
				got := Classify(x, y, z)
				assert.True(t, valid[got], "Classify(%v, %v, %v) returned unknown zone %q", x, y, z, got)
			}
		}
	}
}

func TestRiskScore(t *testing.T) {
	assert.InDelta(t, 0.0, RiskScore(0, 0, 1), 1e-9)
	assert.InDelta(t, 1.0, RiskScore(1, 1, 0), 1e-9)
	assert.InDelta(t, 0.4, RiskScore(0, 0, 0), 1e-9)

	// monotonic: up in x and y, down in z
	base := RiskScore(0.5, 0.5, 0.5)
	assert.Greater(t, RiskScore(0.6, 0.5, 0.5), base)
	assert.Greater(t, RiskScore(0.5, 0.6, 0.5), base)
	assert.Less(t, RiskScore(0.5, 0.5, 0.6), base)
}
