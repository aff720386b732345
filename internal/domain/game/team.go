package game

import "fmt"

// TeamSettings holds team membership, team display names, and the viewpoint
// player used for per-player configuration lookups. By default every player
// forms their own single-member team.
type TeamSettings struct {
	viewpointPlayer int
	teamOf          [MaxPlayers + 1]int
	teamNames       map[int]string
}

// NewTeamSettings creates team settings with everyone on their own team
func NewTeamSettings() *TeamSettings {
	t := &TeamSettings{teamNames: make(map[int]string)}
	for i := 1; i <= MaxPlayers; i++ {
		t.teamOf[i] = i
	}
	return t
}

// ViewpointPlayer returns the player whose point of view this client uses
func (t *TeamSettings) ViewpointPlayer() int {
	return t.viewpointPlayer
}

// SetViewpointPlayer sets the viewpoint player
func (t *TeamSettings) SetViewpointPlayer(player int) {
	t.viewpointPlayer = player
}

// PlayerTeam returns the team a player belongs to, 0 for out-of-range players
func (t *TeamSettings) PlayerTeam(player int) int {
	if player < 1 || player > MaxPlayers {
		return 0
	}
	return t.teamOf[player]
}

// SetPlayerTeam assigns a player to a team. Out-of-range players are ignored.
func (t *TeamSettings) SetPlayerTeam(player, team int) {
	if player < 1 || player > MaxPlayers {
		return
	}
	t.teamOf[player] = team
}

// TeamName returns the configured team name, or a generic "Team N" label
func (t *TeamSettings) TeamName(team int) string {
	if name, ok := t.teamNames[team]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Team %d", team)
}

// SetTeamName configures a team's display name
func (t *TeamSettings) SetTeamName(team int, name string) {
	t.teamNames[team] = name
}

// TeamMembers returns the set of players belonging to the given team
func (t *TeamSettings) TeamMembers(team int) PlayerSet {
	var s PlayerSet
	for i := 1; i <= MaxPlayers; i++ {
		if t.teamOf[i] == team {
			s = s.With(i)
		}
	}
	return s
}
