package trajectory

import "time"

// TimestampLayout is the format used for all persisted timestamps.
const TimestampLayout = time.RFC3339Nano

// Point is a single observation in ALMG coordinate space. Points are created
// by Session.AddPoint (or rebuilt during import) and never mutated afterwards.
type Point struct {
	// Turn is the 1-based position of the point in its session's trajectory,
	// assigned at insertion time.
	Turn int `json:"turn"`
	// X is entropy, Y is ambiguity, Z is legitimacy. All three are nominally
	// in [0,1] but out-of-range values are accepted as-is.
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	// Zone is derived from (X, Y, Z) at creation time. On import a stored
	// zone is trusted verbatim; see Import.
	Zone Zone `json:"zone"`
	// Topic is an optional free-text annotation.
	Topic string `json:"topic"`
	// Timestamp is the creation time in ISO-8601 form.
	Timestamp string `json:"timestamp"`
}
