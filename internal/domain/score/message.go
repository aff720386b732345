package score

import "github.com/davidrhall/conquest-go/internal/domain/shared"

// Message is score data received from an external source (host messages,
// utility records). Fields left at their zero value / unknown are treated
// as "not supplied" and do not overwrite previously known metadata.
type Message struct {
	// ID is the score kind, 0 if the sender only identified it by name
	ID ScoreID

	// Name is the score's display name, empty if not supplied
	Name string

	// TurnNumber is the turn the values belong to, 0 if the message
	// carries only metadata
	TurnNumber int

	// TurnLimit is the win condition's turn count, if supplied
	TurnLimit shared.Value

	// WinLimit is the win condition's score value, if supplied
	WinLimit shared.Value

	// Values maps player number to score value
	Values map[int]int32
}

// AddMessageInformation merges externally sourced score data into the
// schema and turn records. The score kind is resolved by id, then by name
// against id-less descriptions, and finally by synthesizing a fresh id.
// Metadata merge is partial: only fields the message supplies overwrite
// what is already known. Feeding identical data twice changes nothing.
func (l *TurnScoreList) AddMessageInformation(msg Message, timestamp shared.Timestamp) {
	id := msg.ID
	if id == 0 {
		id = l.resolveByName(msg.Name)
	}

	merged := Description{ID: id, WinLimit: -1}
	if existing := l.GetDescription(id); existing != nil {
		merged = *existing
	}
	if msg.Name != "" {
		merged.Name = msg.Name
	}
	if v, ok := msg.TurnLimit.Get(); ok {
		merged.TurnLimit = int16(v)
	}
	if v, ok := msg.WinLimit.Get(); ok {
		merged.WinLimit = v
	}
	l.AddDescription(merged)

	slot := l.AddSlot(id)
	if msg.TurnNumber > 0 && len(msg.Values) > 0 {
		turn := l.AddTurn(msg.TurnNumber, timestamp)
		for player, value := range msg.Values {
			turn.Set(slot, player, shared.NewValue(value))
		}
	}
}

// resolveByName finds the score id for a name-only message: an existing
// description with that name wins, otherwise a fresh unused id is taken
// from the synthesized range.
func (l *TurnScoreList) resolveByName(name string) ScoreID {
	if name != "" {
		for i := range l.descriptions {
			if l.descriptions[i].Name == name {
				return l.descriptions[i].ID
			}
		}
	}
	id := firstSynthesizedID
	for {
		_, used := l.GetSlot(id)
		if !used && l.GetDescription(id) == nil {
			return id
		}
		id++
	}
}
