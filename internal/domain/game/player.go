package game

import (
	"fmt"
	"sort"
)

// MaxPlayers is the highest player number supported by any host variant
const MaxPlayers = 31

// Player is a directory entry for one player slot. Non-real entries
// (aliens, spectators) are skipped by the score presentation layer.
type Player struct {
	id        int
	shortName string
	real      bool
}

// ID returns the player number
func (p *Player) ID() int {
	return p.id
}

// ShortName returns the player's short display name
func (p *Player) ShortName() string {
	return p.shortName
}

// IsReal reports whether this is a real (human-playable) slot
func (p *Player) IsReal() bool {
	return p.real
}

// PlayerList is the player directory consumed by the score builders
type PlayerList struct {
	players map[int]*Player
}

// NewPlayerList creates an empty player directory
func NewPlayerList() *PlayerList {
	return &PlayerList{players: make(map[int]*Player)}
}

// Add registers a player slot. Re-adding a number replaces the old entry.
// Numbers outside [1, MaxPlayers] are ignored and return nil.
func (l *PlayerList) Add(id int, shortName string, real bool) *Player {
	if id < 1 || id > MaxPlayers {
		return nil
	}
	p := &Player{id: id, shortName: shortName, real: real}
	l.players[id] = p
	return p
}

// Get returns the entry for a player number, nil if absent
func (l *PlayerList) Get(id int) *Player {
	return l.players[id]
}

// ShortName returns a player's short name, with a generic fallback for
// unknown numbers so display code never renders an empty label.
func (l *PlayerList) ShortName(id int) string {
	if p := l.players[id]; p != nil && p.shortName != "" {
		return p.shortName
	}
	return fmt.Sprintf("Player %d", id)
}

// RealPlayers returns all real entries in ascending player number order
func (l *PlayerList) RealPlayers() []*Player {
	result := make([]*Player, 0, len(l.players))
	for _, p := range l.players {
		if p.real {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].id < result[j].id })
	return result
}
