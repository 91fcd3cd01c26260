package trajectory

import "fmt"

// Drift classifies how the legitimacy coordinate moved between the first and
// the last point of a trajectory. Intermediate points are ignored.
type Drift string

// Drift directions.
const (
	DriftUnknown      Drift = "unknown"
	DriftStable       Drift = "stable"
	DriftTowardGreen  Drift = "toward_green"
	DriftTowardYellow Drift = "toward_yellow"
	DriftTowardRed    Drift = "toward_red"
)

// driftStableBand is the half-open |Δz| band treated as stable. A change of
// exactly 0.10 is not stable.
const driftStableBand = 0.10

// Summary holds the aggregate statistics of a trajectory.
type Summary struct {
	AvgX           float64  `json:"avg_x"`
	AvgY           float64  `json:"avg_y"`
	AvgZ           float64  `json:"avg_z"`
	DominantZone   Zone     `json:"dominant_zone"`
	DriftDirection Drift    `json:"drift_direction"`
	NotableEvents  []string `json:"notable_events"`
}

// Summarize computes the summary statistics for the session's trajectory in a
// single forward pass. It reports ok=false on an empty trajectory; that is a
// valid outcome, not an error.
//
// Dominant-zone ties resolve to whichever zone reaches the maximum count
// first in insertion order: the leader only changes on a strictly greater
// count. Summaries recomputed from the same trajectory must always agree,
// so the tie-break is fixed, not arbitrary.
func (s *Session) Summarize() (*Summary, bool) {
	if len(s.points) == 0 {
		return nil, false
	}

	var sumX, sumY, sumZ float64
	counts := make(map[Zone]int, len(Zones))
	var dominant Zone
	best := 0
	events := []string{}

	for i, p := range s.points {
		sumX += p.X
		sumY += p.Y
		sumZ += p.Z

		counts[p.Zone]++
		if counts[p.Zone] > best {
			best = counts[p.Zone]
			dominant = p.Zone
		}

		if i > 0 && p.Zone != s.points[i-1].Zone {
			events = append(events, fmt.Sprintf("Turn %d: %s → %s", i+1, s.points[i-1].Zone, p.Zone))
		}
	}

	n := float64(len(s.points))
	return &Summary{
		AvgX:           sumX / n,
		AvgY:           sumY / n,
		AvgZ:           sumZ / n,
		DominantZone:   dominant,
		DriftDirection: s.drift(),
		NotableEvents:  events,
	}, true
}

// drift classifies the z movement from the first to the last point. The
// positive branch only looks at the sign of the change, never at the
// absolute level of the final z. The asymmetry is part of the contract.
func (s *Session) drift() Drift {
	if len(s.points) < 2 {
		return DriftUnknown
	}
	first := s.points[0].Z
	last := s.points[len(s.points)-1].Z
	delta := last - first
	switch {
	case delta < driftStableBand && delta > -driftStableBand:
		return DriftStable
	case delta > 0:
		return DriftTowardGreen
	case last < 0.40:
		return DriftTowardRed
	default:
		return DriftTowardYellow
	}
}
