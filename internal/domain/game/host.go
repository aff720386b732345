package game

import "strings"

// HostKind identifies the host program family running the game
type HostKind int

const (
	// HostKindUnknown indicates the host has not been identified yet
	HostKindUnknown HostKind = iota

	// HostKindHost is the classic Host
	HostKindHost

	// HostKindPHost is the portable PHost family
	HostKindPHost
)

// HostVersion identifies the host program and version of the current game
type HostVersion struct {
	kind    HostKind
	version int
}

// NewHostVersion creates a HostVersion.
// The version is encoded as major*1000 + minor (e.g. 4021 for 4.021).
func NewHostVersion(kind HostKind, version int) HostVersion {
	return HostVersion{kind: kind, version: version}
}

// Kind returns the host family
func (h HostVersion) Kind() HostKind {
	return h.kind
}

// Version returns the encoded version number
func (h HostVersion) Version() int {
	return h.version
}

// IsPHost reports whether the game runs on a PHost-family ruleset.
// Build point decay only exists on PHost.
func (h HostVersion) IsPHost() bool {
	return h.kind == HostKindPHost
}

// HostConfiguration is the subset of the host ruleset configuration
// consulted by the score subsystem.
type HostConfiguration struct {
	buildQueue      string
	palDecayPerTurn [MaxPlayers + 1]int32
}

// NewHostConfiguration creates a configuration with PHost defaults
// (PBP build queue, 20% PAL decay for everyone).
func NewHostConfiguration() *HostConfiguration {
	c := &HostConfiguration{buildQueue: "PBP"}
	for i := 1; i <= MaxPlayers; i++ {
		c.palDecayPerTurn[i] = 20
	}
	return c
}

// IsPBPGame reports whether build points are priority build points
// as opposed to player activity levels.
func (c *HostConfiguration) IsPBPGame() bool {
	return strings.EqualFold(c.buildQueue, "PBP")
}

// SetBuildQueue sets the build queue mode ("PBP", "PAL" or "Fifo")
func (c *HostConfiguration) SetBuildQueue(mode string) {
	c.buildQueue = mode
}

// PALDecayPerTurn returns the per-turn PAL decay rate for a player
func (c *HostConfiguration) PALDecayPerTurn(player int) int32 {
	if player < 1 || player > MaxPlayers {
		return 0
	}
	return c.palDecayPerTurn[player]
}

// SetPALDecayPerTurn sets the per-turn PAL decay rate for a player
func (c *HostConfiguration) SetPALDecayPerTurn(player int, rate int32) {
	if player < 1 || player > MaxPlayers {
		return
	}
	c.palDecayPerTurn[player] = rate
}
