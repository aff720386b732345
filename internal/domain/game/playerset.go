package game

// PlayerSet is a bit set of player numbers in [1, MaxPlayers]
type PlayerSet uint64

// NewPlayerSet creates a set containing the given players
func NewPlayerSet(players ...int) PlayerSet {
	var s PlayerSet
	for _, p := range players {
		s = s.With(p)
	}
	return s
}

// With returns the set extended by one player. Out-of-range numbers are ignored.
func (s PlayerSet) With(player int) PlayerSet {
	if player < 1 || player > MaxPlayers {
		return s
	}
	return s | 1<<uint(player)
}

// Contains checks set membership
func (s PlayerSet) Contains(player int) bool {
	if player < 1 || player > MaxPlayers {
		return false
	}
	return s&(1<<uint(player)) != 0
}

// IsEmpty reports whether the set contains no players
func (s PlayerSet) IsEmpty() bool {
	return s == 0
}
