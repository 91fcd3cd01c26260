package trajectory

import (
	"time"

	"github.com/almglabs/almg/internal/common"
)

// DefaultModel is the model label used when none is supplied.
const DefaultModel = "Unknown"

// IDGenerator produces a session identifier from the session's creation time
// and model label. Generators must return a short opaque string; the default
// is a content hash, see common.SessionID.
type IDGenerator func(createdAt time.Time, model string) string

// defaultIDGenerator hashes (creation time, model) into a short id.
var defaultIDGenerator IDGenerator = common.SessionID

// Session is the aggregate root for one tracking session. It exclusively owns
// its ordered trajectory of Points; the trajectory is append-only and the
// session id is immutable once assigned. A Session is not safe for concurrent
// mutation; callers needing that must serialize access themselves.
type Session struct {
	id        string
	model     string
	createdAt string
	points    []Point
	clock     Clock
}

// Option configures a Session at construction time.
type Option func(*sessionConfig)

type sessionConfig struct {
	id    string
	clock Clock
	idgen IDGenerator
}

// WithID supplies an explicit session identifier instead of generating one.
func WithID(id string) Option {
	return func(c *sessionConfig) { c.id = id }
}

// WithClock replaces the wall clock used for session and point timestamps.
func WithClock(clock Clock) Option {
	return func(c *sessionConfig) { c.clock = clock }
}

// WithIDGenerator replaces the default content-hash id generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(c *sessionConfig) { c.idgen = gen }
}

// NewSession creates an empty session for the given model. An empty model
// falls back to DefaultModel. Unless WithID is given, the identifier is
// produced by the id generator from the creation time and model.
func NewSession(model string, opts ...Option) *Session {
	cfg := sessionConfig{
		clock: SystemClock(),
		idgen: defaultIDGenerator,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if model == "" {
		model = DefaultModel
	}
	now := cfg.clock.Now()
	id := cfg.id
	if id == "" {
		id = cfg.idgen(now, model)
	}

	return &Session{
		id:        id,
		model:     model,
		createdAt: now.Format(TimestampLayout),
		clock:     cfg.clock,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Model returns the model label being tracked.
func (s *Session) Model() string { return s.model }

// CreatedAt returns the session creation timestamp in ISO-8601 form.
func (s *Session) CreatedAt() string { return s.createdAt }

// Len returns the number of points in the trajectory.
func (s *Session) Len() int { return len(s.points) }

// Trajectory returns a copy of the ordered trajectory. The session keeps
// exclusive ownership of its points.
func (s *Session) Trajectory() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// AddPoint classifies the coordinates, assigns the next turn number, and
// appends the resulting point to the trajectory. Any numeric input is
// accepted; there are no failure modes.
func (s *Session) AddPoint(x, y, z float64, topic string) Point {
	p := Point{
		Turn:      len(s.points) + 1,
		X:         x,
		Y:         y,
		Z:         z,
		Zone:      Classify(x, y, z),
		Topic:     topic,
		Timestamp: s.clock.Now().Format(TimestampLayout),
	}
	s.points = append(s.points, p)
	return p
}
