package score

import (
	"github.com/davidrhall/conquest-go/internal/domain/game"
	"github.com/davidrhall/conquest-go/internal/domain/shared"
)

// TurnScore is one turn's grid of optional score values, indexed by
// (slot, player). Turn number and timestamp are fixed at construction;
// the value storage grows lazily as cells are written.
type TurnScore struct {
	turnNumber int
	timestamp  shared.Timestamp
	values     []shared.Value
}

// NewTurnScore creates an empty record for one turn
func NewTurnScore(turnNumber int, timestamp shared.Timestamp) *TurnScore {
	return &TurnScore{turnNumber: turnNumber, timestamp: timestamp}
}

// TurnNumber returns the turn number
func (t *TurnScore) TurnNumber() int {
	return t.turnNumber
}

// Timestamp returns the host timestamp this record was taken at
func (t *TurnScore) Timestamp() shared.Timestamp {
	return t.timestamp
}

// Set stores a value at (slot, player). Players outside [1, MaxPlayers]
// are silently ignored. Storage is only grown for known values; growing
// just to record "unknown" would change nothing observable.
func (t *TurnScore) Set(slot Slot, player int, v shared.Value) {
	if player < 1 || player > game.MaxPlayers {
		return
	}
	index := int(slot)*game.MaxPlayers + (player - 1)
	if index >= len(t.values) {
		if !v.IsKnown() {
			return
		}
		grown := make([]shared.Value, index+1)
		copy(grown, t.values)
		t.values = grown
	}
	t.values[index] = v
}

// Get returns the value at (slot, player), unknown if out of range or unset
func (t *TurnScore) Get(slot Slot, player int) shared.Value {
	if player < 1 || player > game.MaxPlayers || slot < 0 {
		return shared.NoValue()
	}
	index := int(slot)*game.MaxPlayers + (player - 1)
	if index >= len(t.values) {
		return shared.NoValue()
	}
	return t.values[index]
}
