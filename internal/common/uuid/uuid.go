package uuid

import "github.com/google/uuid"

// UUID generates record identifiers.
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random (v4) UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// Sequence returns IDs from a fixed list in order, then falls back to random UUIDs.
type Sequence struct {
	ids []string
}

// NewSequence creates a Sequence that hands out ids first.
func NewSequence(ids ...string) *Sequence {
	return &Sequence{ids: ids}
}

// NewUUID returns the next queued ID
func (s *Sequence) NewUUID() string {
	if len(s.ids) == 0 {
		return uuid.New().String()
	}
	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}
