package history

import (
	"context"
	"sort"

	"github.com/davidrhall/conquest-go/internal/domain/score"
	"github.com/davidrhall/conquest-go/internal/domain/shared"
)

// List is a sparse collection of historical turn entries keyed by turn
// number. Entries are owned by the list and never removed once created;
// all further changes go through the entry's own methods.
type List struct {
	turns map[int]*Turn
}

// NewList creates an empty history
func NewList() *List {
	return &List{turns: make(map[int]*Turn)}
}

// Get returns the entry for a turn number, nil if absent
func (l *List) Get(turnNumber int) *Turn {
	return l.turns[turnNumber]
}

// Create returns the entry for a turn number, creating it in Unknown state
// if needed. Turn numbers below 1 never get an entry; Create returns nil
// for them.
func (l *List) Create(turnNumber int) *Turn {
	if turnNumber <= 0 {
		return nil
	}
	if t, ok := l.turns[turnNumber]; ok {
		return t
	}
	t := NewTurn(turnNumber)
	l.turns[turnNumber] = t
	return t
}

// FindNewestUnknownTurnNumber returns the highest turn number worth asking
// the loader about, scanning stored entries from the top. A numbering gap
// directly below the last known turn wins over the scanned entry's own
// status; an entry that is itself Unknown reports its own number. With
// nothing found, the turn below the lowest entry (or below currentTurn for
// an empty list) is reported.
func (l *List) FindNewestUnknownTurnNumber(currentTurn int) int {
	numbers := make([]int, 0, len(l.turns))
	for nr := range l.turns {
		numbers = append(numbers, nr)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(numbers)))

	lastKnown := currentTurn
	for _, nr := range numbers {
		if nr < lastKnown-1 {
			return lastKnown - 1
		}
		if l.turns[nr].Status() == StatusUnknown {
			return nr
		}
		lastKnown = nr
	}
	return lastKnown - 1
}

// InitFromTurnScores seeds timestamps for count consecutive turns starting
// at firstTurn from the score records. Loaded entries keep their own
// timestamp: the snapshot is more authoritative than a score file.
func (l *List) InitFromTurnScores(scores *score.TurnScoreList, firstTurn, count int) {
	for i := 0; i < count; i++ {
		turnNumber := firstTurn + i
		record := scores.GetTurn(turnNumber)
		if record == nil {
			continue
		}
		if entry := l.Create(turnNumber); entry != nil && entry.Status() != StatusLoaded {
			entry.SetTimestamp(record.Timestamp())
		}
	}
}

// InitFromTurnLoader asks the loader to classify count consecutive turns
// starting at firstTurn for one player. Only entries still in Unknown
// state take the loader's answer.
func (l *List) InitFromTurnLoader(ctx context.Context, loader Loader, player, firstTurn, count int) error {
	availability, err := loader.TurnAvailability(ctx, player, firstTurn, count)
	if err != nil {
		return err
	}
	for i, a := range availability {
		if i >= count {
			break
		}
		entry := l.Create(firstTurn + i)
		if entry == nil || entry.Status() != StatusUnknown {
			continue
		}
		switch a {
		case AvailabilityStronglyPositive:
			entry.SetStatus(StatusStronglyAvailable)
		case AvailabilityWeaklyPositive:
			entry.SetStatus(StatusWeaklyAvailable)
		default:
			entry.SetStatus(StatusUnavailable)
		}
	}
	return nil
}

// TurnStatus returns the status for a turn number, Unknown if no entry exists
func (l *List) TurnStatus(turnNumber int) Status {
	if t := l.turns[turnNumber]; t != nil {
		return t.Status()
	}
	return StatusUnknown
}

// TurnTimestamp returns the timestamp for a turn number, the invalid stamp
// if no entry exists.
func (l *List) TurnTimestamp(turnNumber int) shared.Timestamp {
	if t := l.turns[turnNumber]; t != nil {
		return t.Timestamp()
	}
	return shared.Timestamp{}
}
