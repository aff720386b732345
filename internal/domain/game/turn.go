package game

import (
	"github.com/google/uuid"

	"github.com/davidrhall/conquest-go/internal/domain/shared"
)

// Turn is a fully loaded snapshot of one game turn. Snapshots are shared:
// several components may hold the same snapshot at once, so a Turn is never
// mutated after construction.
type Turn struct {
	id         uuid.UUID
	turnNumber int
	timestamp  shared.Timestamp
}

// NewTurn creates a turn snapshot
func NewTurn(turnNumber int, timestamp shared.Timestamp) *Turn {
	return &Turn{
		id:         uuid.New(),
		turnNumber: turnNumber,
		timestamp:  timestamp,
	}
}

// ID returns the snapshot's unique identity
func (t *Turn) ID() uuid.UUID {
	return t.id
}

// TurnNumber returns the turn number this snapshot belongs to
func (t *Turn) TurnNumber() int {
	return t.turnNumber
}

// Timestamp returns the host timestamp of this turn
func (t *Turn) Timestamp() shared.Timestamp {
	return t.timestamp
}
