package trajectory

import "time"

// Clock supplies the current time for session and point timestamps.
// Sessions take a Clock so tests can pin timestamps instead of reading
// the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns the wall-clock Clock used by default.
func SystemClock() Clock {
	return systemClock{}
}
