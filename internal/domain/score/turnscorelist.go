package score

import (
	"fmt"

	"github.com/davidrhall/conquest-go/internal/domain/shared"
)

// Description is optional metadata for one score kind: display name plus
// the win condition attached to it, if any.
type Description struct {
	// Name is the human-readable score name
	Name string

	// ID is the score kind this describes
	ID ScoreID

	// TurnLimit is the number of turns the score must be held to win (0 = none)
	TurnLimit int16

	// WinLimit is the value needed to win (-1 = none)
	WinLimit int32
}

// TurnScoreList owns the score time series: turn records in strictly
// ascending turn number order, the append-only slot schema mapping score
// ids to slots, and the known score descriptions.
type TurnScoreList struct {
	slots        []ScoreID
	descriptions []Description
	turns        []*TurnScore
}

// NewTurnScoreList creates a list with the default schema: the four
// client-derived counters plus build points.
func NewTurnScoreList() *TurnScoreList {
	l := &TurnScoreList{}
	l.Clear()
	return l
}

// Clear resets the list to its initial state, dropping all turn records,
// descriptions, and file-defined slots.
func (l *TurnScoreList) Clear() {
	l.slots = []ScoreID{
		ScoreIDPlanets,
		ScoreIDCapital,
		ScoreIDFreighters,
		ScoreIDBases,
		ScoreIDBuildPoints,
	}
	l.descriptions = nil
	l.turns = nil
}

// AddSlot returns the slot for a score id, allocating a new one if the id
// is not yet in the schema. Slots are never reassigned once handed out.
func (l *TurnScoreList) AddSlot(id ScoreID) Slot {
	if slot, ok := l.GetSlot(id); ok {
		return slot
	}
	l.slots = append(l.slots, id)
	return Slot(len(l.slots) - 1)
}

// GetSlot looks up the slot for a score id without modifying the schema
func (l *TurnScoreList) GetSlot(id ScoreID) (Slot, bool) {
	for i, sid := range l.slots {
		if sid == id {
			return Slot(i), true
		}
	}
	return 0, false
}

// NumScores returns the number of slots in the schema
func (l *TurnScoreList) NumScores() int {
	return len(l.slots)
}

// ScoreByIndex returns the score id occupying the given slot position
func (l *TurnScoreList) ScoreByIndex(index int) (ScoreID, bool) {
	if index < 0 || index >= len(l.slots) {
		return 0, false
	}
	return l.slots[index], true
}

// AddDescription upserts a description by score id. It returns true if this
// added or changed anything, so callers can skip redundant change signals.
func (l *TurnScoreList) AddDescription(d Description) bool {
	for i := range l.descriptions {
		if l.descriptions[i].ID == d.ID {
			if l.descriptions[i] == d {
				return false
			}
			l.descriptions[i] = d
			return true
		}
	}
	l.descriptions = append(l.descriptions, d)
	return true
}

// GetDescription returns the description for a score id, nil if none
func (l *TurnScoreList) GetDescription(id ScoreID) *Description {
	for i := range l.descriptions {
		if l.descriptions[i].ID == id {
			return &l.descriptions[i]
		}
	}
	return nil
}

// NumDescriptions returns the number of stored descriptions
func (l *TurnScoreList) NumDescriptions() int {
	return len(l.descriptions)
}

// DescriptionByIndex returns a description by position, nil if out of range
func (l *TurnScoreList) DescriptionByIndex(index int) *Description {
	if index < 0 || index >= len(l.descriptions) {
		return nil
	}
	return &l.descriptions[index]
}

// AddTurn returns the mutable record for a turn number, creating it in
// sorted position if needed. If a record already exists for this turn with
// a different timestamp, the game was rehosted: the stale record is
// discarded and replaced with a fresh empty one. With the same timestamp,
// the existing record and its data are returned unchanged.
func (l *TurnScoreList) AddTurn(turnNumber int, timestamp shared.Timestamp) *TurnScore {
	// Scan from the end; inserts and updates cluster at recent turns.
	pos := len(l.turns)
	for pos > 0 {
		existing := l.turns[pos-1]
		if existing.TurnNumber() == turnNumber {
			if existing.Timestamp().Equals(timestamp) {
				return existing
			}
			fresh := NewTurnScore(turnNumber, timestamp)
			l.turns[pos-1] = fresh
			return fresh
		}
		if existing.TurnNumber() < turnNumber {
			break
		}
		pos--
	}

	fresh := NewTurnScore(turnNumber, timestamp)
	l.turns = append(l.turns, nil)
	copy(l.turns[pos+1:], l.turns[pos:])
	l.turns[pos] = fresh
	if l.turns[pos].TurnNumber() != turnNumber {
		panic(fmt.Sprintf("score: turn record inserted out of place (want %d, got %d)",
			turnNumber, l.turns[pos].TurnNumber()))
	}
	return fresh
}

// GetTurn returns the record for a turn number, nil if absent.
// Scans from the end since recent turns are requested most often.
func (l *TurnScoreList) GetTurn(turnNumber int) *TurnScore {
	for i := len(l.turns) - 1; i >= 0; i-- {
		if l.turns[i].TurnNumber() == turnNumber {
			return l.turns[i]
		}
		if l.turns[i].TurnNumber() < turnNumber {
			break
		}
	}
	return nil
}

// NumTurns returns the number of stored turn records
func (l *TurnScoreList) NumTurns() int {
	return len(l.turns)
}

// TurnByIndex returns the record at a position in the ascending sequence,
// nil if out of range.
func (l *TurnScoreList) TurnByIndex(index int) *TurnScore {
	if index < 0 || index >= len(l.turns) {
		return nil
	}
	return l.turns[index]
}

// FirstTurnNumber returns the lowest stored turn number, 0 if empty
func (l *TurnScoreList) FirstTurnNumber() int {
	if len(l.turns) == 0 {
		return 0
	}
	return l.turns[0].TurnNumber()
}
