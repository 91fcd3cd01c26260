// Package trajectory implements the ALMG classification and trajectory-summary
// engine. It owns the zone taxonomy, the point/session data model, the summary
// computation, and the serialized session document. The package is pure and
// in-memory; presentation layers (CLI, file I/O, plotting) call into it and
// render what it returns.
package trajectory

// Zone is one of the five ALMG risk zones, ordered from lowest to highest risk.
type Zone string

// The zone taxonomy in classification priority order.
const (
	ZoneGreen  Zone = "Green"
	ZoneGold   Zone = "Gold"
	ZoneYellow Zone = "Yellow"
	ZoneRed    Zone = "Red"
	ZonePurple Zone = "Purple"
)

// Zones lists all zones in classification priority order, lowest risk first.
var Zones = []Zone{ZoneGreen, ZoneGold, ZoneYellow, ZoneRed, ZonePurple}

// Classify maps a coordinate triple (entropy, ambiguity, legitimacy) to a zone.
// The bands are evaluated in priority order and the first match wins; the bands
// overlap, so order matters. Purple is the catch-all: every input, including
// values outside [0,1], classifies to exactly one zone. No clamping happens here.
func Classify(x, y, z float64) Zone {
	switch {
	case x <= 0.30 && y <= 0.30 && z >= 0.80:
		return ZoneGreen
	case x <= 0.50 && y <= 0.50 && z >= 0.70:
		return ZoneGold
	case x <= 0.80 && y <= 0.80 && z >= 0.40:
		return ZoneYellow
	case x <= 0.95 && y <= 0.85 && z >= 0.20:
		return ZoneRed
	default:
		return ZonePurple
	}
}

// RiskScore combines the three coordinates into one weighted scalar. Risk grows
// with entropy and ambiguity and shrinks with legitimacy. The score is computed
// on demand and never stored on a Point. For in-range inputs the result lies in
// [0,1]; out-of-range inputs scale past those bounds.
func RiskScore(x, y, z float64) float64 {
	return 0.3*x + 0.3*y + 0.4*(1-z)
}
