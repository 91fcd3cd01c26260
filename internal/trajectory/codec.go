package trajectory

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/almglabs/almg/internal/common/apperrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrInvalidDocument indicates a session document that could not be parsed.
var ErrInvalidDocument = apperrors.New("invalid session document")

// Document is the persisted form of a session: identity, the full trajectory,
// and the summary current at export time. The summary is recomputed on every
// export, never cached.
type Document struct {
	SessionID      string              `json:"session_id"`
	Model          string              `json:"model"`
	CreatedAt      string              `json:"created_at"`
	TotalExchanges int                 `json:"total_exchanges"`
	Trajectory     []Point             `json:"trajectory"`
	Summary        jsoniter.RawMessage `json:"summary"`
}

// Export serializes the session to an indented JSON document. An empty
// trajectory exports with an empty summary object.
func (s *Session) Export() ([]byte, error) {
	summary := jsoniter.RawMessage("{}")
	if sum, ok := s.Summarize(); ok {
		data, err := json.Marshal(sum)
		if err != nil {
			return nil, err
		}
		summary = data
	}

	doc := Document{
		SessionID:      s.id,
		Model:          s.model,
		CreatedAt:      s.createdAt,
		TotalExchanges: len(s.points),
		Trajectory:     s.Trajectory(),
		Summary:        summary,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Import reconstructs a session from a document produced by Export.
//
// Stored point zones are trusted verbatim rather than re-derived from the
// coordinates; only a missing zone is classified. This keeps round trips
// lossless even when a hand-edited document disagrees with the classifier.
// Missing optional fields fall back to their construction-time defaults:
// empty id is regenerated, empty model becomes DefaultModel, and empty
// timestamps take the current time. The persisted summary is ignored; it is
// always recomputed from the trajectory.
func Import(data []byte, opts ...Option) (*Session, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrInvalidDocument.Err(err)
	}

	cfg := sessionConfig{
		clock: SystemClock(),
		idgen: defaultIDGenerator,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	model := doc.Model
	if model == "" {
		model = DefaultModel
	}
	createdAt := doc.CreatedAt
	if createdAt == "" {
		createdAt = cfg.clock.Now().Format(TimestampLayout)
	}
	id := doc.SessionID
	if id == "" {
		id = cfg.id
	}
	if id == "" {
		id = cfg.idgen(cfg.clock.Now(), model)
	}

	points := make([]Point, 0, len(doc.Trajectory))
	for _, p := range doc.Trajectory {
		if p.Zone == "" {
			p.Zone = Classify(p.X, p.Y, p.Z)
		}
		if p.Timestamp == "" {
			p.Timestamp = cfg.clock.Now().Format(TimestampLayout)
		}
		points = append(points, p)
	}

	return &Session{
		id:        id,
		model:     model,
		createdAt: createdAt,
		points:    points,
		clock:     cfg.clock,
	}, nil
}
