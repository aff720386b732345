package score

import (
	"fmt"

	"github.com/davidrhall/conquest-go/internal/domain/dataview"
	"github.com/davidrhall/conquest-go/internal/domain/game"
)

// ChartBuilder pivots the score time series into a score-over-time table:
// one row per player or team, one column per turn. Variants are discovered
// once at construction; mode setters only affect the next Build.
type ChartBuilder struct {
	builderBase
	scores  *TurnScoreList
	players *game.PlayerList
	teams   *game.TeamSettings
	tx      game.Translator

	variantIndex int
	byTeam       bool
	cumulative   bool
}

// NewChartBuilder creates a chart builder over a score list and its player
// directory. The references must outlive the builder. The variant sequence
// is fixed; it determines the on-screen series order.
func NewChartBuilder(scores *TurnScoreList, players *game.PlayerList, teams *game.TeamSettings,
	host game.HostVersion, config *game.HostConfiguration, tx game.Translator) *ChartBuilder {

	cb := &ChartBuilder{
		scores:  scores,
		players: players,
		teams:   teams,
		tx:      tx,
	}
	sb := singleBuilder{base: &cb.builderBase, scores: scores, teams: teams, host: host, config: config}

	cb.addVariant(tx.Translate("Score"), NewDefaultScore(scores, TimScore), 0, 0, -1)
	sb.add(tx.Translate("Planets"), ScoreIDPlanets)
	sb.add(tx.Translate("Freighters"), ScoreIDFreighters)
	sb.add(tx.Translate("Capital Ships"), ScoreIDCapital)
	cb.addVariant(tx.Translate("Total Ships"), NewDefaultScore(scores, TotalShips), 0, 0, -1)
	sb.add(tx.Translate("Bases"), ScoreIDBases)
	if config.IsPBPGame() {
		sb.add(tx.Translate("PBPs"), ScoreIDBuildPoints)
	} else {
		sb.add(tx.Translate("PAL"), ScoreIDBuildPoints)
	}
	sb.addRemainingScores(tx)

	return cb
}

// SetVariantIndex selects which variant the next Build evaluates
func (cb *ChartBuilder) SetVariantIndex(index int) {
	cb.variantIndex = index
}

// SetByTeam selects grouping by team instead of by player
func (cb *ChartBuilder) SetByTeam(byTeam bool) {
	cb.byTeam = byTeam
}

// SetCumulativeMode selects running-total stacking of the chart columns
func (cb *ChartBuilder) SetCumulativeMode(cumulative bool) {
	cb.cumulative = cumulative
}

// Build computes a fresh table for the current parameters. Column keys are
// turn numbers rebased to the list's first turn, so a leading gap compacts
// away while interior gaps stay visible as holes.
func (cb *ChartBuilder) Build() *dataview.Table {
	table := dataview.New()
	variant := cb.Variant(cb.variantIndex)
	if variant == nil {
		return table
	}

	if cb.byTeam {
		for team := 1; team <= game.MaxPlayers; team++ {
			members := cb.realTeamMembers(team)
			if members.IsEmpty() {
				continue
			}
			cb.fillRow(table.AddRow(team, cb.teams.TeamName(team)), variant.Score, members)
		}
	} else {
		for _, p := range cb.players.RealPlayers() {
			cb.fillRow(table.AddRow(p.ID(), p.ShortName()), variant.Score, game.NewPlayerSet(p.ID()))
		}
	}

	first := cb.scores.FirstTurnNumber()
	for i := 0; i < cb.scores.NumTurns(); i++ {
		turn := cb.scores.TurnByIndex(i)
		table.SetColumnName(turn.TurnNumber()-first, fmt.Sprintf(cb.tx.Translate("Turn %d"), turn.TurnNumber()))
	}

	if cb.cumulative {
		table.Stack()
	}
	return table
}

func (cb *ChartBuilder) fillRow(row *dataview.Row, score CompoundScore, players game.PlayerSet) {
	first := cb.scores.FirstTurnNumber()
	for i := 0; i < cb.scores.NumTurns(); i++ {
		turn := cb.scores.TurnByIndex(i)
		if v := score.Get(turn, players); v.IsKnown() {
			row.Set(turn.TurnNumber()-first, v)
		}
	}
}

// realTeamMembers returns the team's members restricted to real players
func (cb *ChartBuilder) realTeamMembers(team int) game.PlayerSet {
	var members game.PlayerSet
	for _, p := range cb.players.RealPlayers() {
		if cb.teams.PlayerTeam(p.ID()) == team {
			members = members.With(p.ID())
		}
	}
	return members
}
