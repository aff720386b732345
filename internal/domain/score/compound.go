package score

import (
	"github.com/davidrhall/conquest-go/internal/domain/game"
	"github.com/davidrhall/conquest-go/internal/domain/shared"
)

// maxCompoundParts bounds the number of weighted terms in a compound score
const maxCompoundParts = 4

// CompoundScore is a weighted sum over up to maxCompoundParts slots.
// It is a copyable value; once construction fails (unknown score id, too
// many terms) the score is permanently invalid and evaluates to unknown.
//
// Equality is order-sensitive: the same terms added in a different order
// compare unequal. Callers rely on this, do not "fix" it.
type CompoundScore struct {
	slots    [maxCompoundParts]Slot
	factors  [maxCompoundParts]int32
	numParts int
	valid    bool
}

// NewCompoundScore creates an empty, valid score that evaluates to zero
// for any query. Used as the always-available neutral element.
func NewCompoundScore() CompoundScore {
	return CompoundScore{valid: true}
}

// NewSingleScore creates a score over one score kind with the given factor.
// If the kind is not in the list's schema, the result is invalid.
func NewSingleScore(list *TurnScoreList, id ScoreID, factor int32) CompoundScore {
	s := NewCompoundScore()
	s.Add(list, id, factor)
	return s
}

// NewDefaultScore creates one of the canonical compound scores
func NewDefaultScore(list *TurnScoreList, kind DefaultKind) CompoundScore {
	s := NewCompoundScore()
	switch kind {
	case TotalShips:
		s.Add(list, ScoreIDFreighters, 1)
		s.Add(list, ScoreIDCapital, 1)
	case TimScore:
		s.Add(list, ScoreIDFreighters, 1)
		s.Add(list, ScoreIDCapital, 10)
		s.Add(list, ScoreIDPlanets, 10)
		s.Add(list, ScoreIDBases, 120)
	default:
		s.valid = false
	}
	return s
}

// Add appends one weighted term. The score becomes invalid if the kind is
// unknown to the list or the term capacity is exceeded; invalidity is
// permanent even if the kind is added to the schema later.
func (s *CompoundScore) Add(list *TurnScoreList, id ScoreID, factor int32) *CompoundScore {
	slot, ok := list.GetSlot(id)
	if !ok || s.numParts >= maxCompoundParts {
		s.valid = false
		return s
	}
	s.slots[s.numParts] = slot
	s.factors[s.numParts] = factor
	s.numParts++
	return s
}

// IsValid reports whether the score can produce values
func (s CompoundScore) IsValid() bool {
	return s.valid
}

// Get evaluates the weighted sum over a player set against one turn record.
// The result is unknown if the score is invalid or no (term, player)
// combination had data at all. Partially missing data is tolerated: absent
// cells contribute zero, one known cell anywhere makes the result known.
func (s CompoundScore) Get(turn *TurnScore, players game.PlayerSet) shared.Value {
	if !s.valid || turn == nil {
		return shared.NoValue()
	}
	var sum int32
	known := false
	for i := 0; i < s.numParts; i++ {
		for player := 1; player <= game.MaxPlayers; player++ {
			if !players.Contains(player) {
				continue
			}
			if v, ok := turn.Get(s.slots[i], player).Get(); ok {
				sum += s.factors[i] * v
				known = true
			}
		}
	}
	if !known {
		return shared.NoValue()
	}
	return shared.NewValue(sum)
}

// GetPlayer evaluates the score for a single player
func (s CompoundScore) GetPlayer(turn *TurnScore, player int) shared.Value {
	return s.Get(turn, game.NewPlayerSet(player))
}

// GetTurn evaluates the score by turn number, unknown if the turn is absent
func (s CompoundScore) GetTurn(list *TurnScoreList, turnNumber int, players game.PlayerSet) shared.Value {
	return s.Get(list.GetTurn(turnNumber), players)
}

// GetTurnPlayer evaluates the score by turn number for a single player
func (s CompoundScore) GetTurnPlayer(list *TurnScoreList, turnNumber, player int) shared.Value {
	return s.Get(list.GetTurn(turnNumber), game.NewPlayerSet(player))
}

// Equals compares two compound scores term by term, in order
func (s CompoundScore) Equals(other CompoundScore) bool {
	if s.valid != other.valid || s.numParts != other.numParts {
		return false
	}
	for i := 0; i < s.numParts; i++ {
		if s.slots[i] != other.slots[i] || s.factors[i] != other.factors[i] {
			return false
		}
	}
	return true
}
