package score

import (
	"github.com/davidrhall/conquest-go/internal/domain/dataview"
	"github.com/davidrhall/conquest-go/internal/domain/game"
)

// TableBuilder pivots the score time series into a single-turn overview:
// one row per player or team, one column per variant. A turn-pair
// difference mode shows the change between two turns instead.
//
// Column names reuse the variant names, which are deliberately shorter
// here than in the chart ("Fr." instead of "Freighters") since all of
// them share one screen row.
type TableBuilder struct {
	builderBase
	scores  *TurnScoreList
	players *game.PlayerList
	teams   *game.TeamSettings

	turnIndex       int
	byTeam          bool
	difference      bool
	firstTurnIndex  int
	secondTurnIndex int
}

// NewTableBuilder creates a table builder over a score list and its player
// directory. The references must outlive the builder. The variant sequence
// is fixed; it determines the on-screen column order.
func NewTableBuilder(scores *TurnScoreList, players *game.PlayerList, teams *game.TeamSettings,
	host game.HostVersion, config *game.HostConfiguration, tx game.Translator) *TableBuilder {

	tb := &TableBuilder{
		scores:  scores,
		players: players,
		teams:   teams,
	}
	sb := singleBuilder{base: &tb.builderBase, scores: scores, teams: teams, host: host, config: config}

	tb.addVariant(tx.Translate("Score"), NewDefaultScore(scores, TimScore), 0, 0, -1)
	sb.add(tx.Translate("Planets"), ScoreIDPlanets)
	sb.add(tx.Translate("Fr."), ScoreIDFreighters)
	sb.add(tx.Translate("Cap."), ScoreIDCapital)
	sb.add(tx.Translate("Bases"), ScoreIDBases)
	if config.IsPBPGame() {
		sb.add(tx.Translate("PBPs"), ScoreIDBuildPoints)
	} else {
		sb.add(tx.Translate("PAL"), ScoreIDBuildPoints)
	}
	sb.addRemainingScores(tx)

	return tb
}

// SetByTeam selects grouping by team instead of by player
func (tb *TableBuilder) SetByTeam(byTeam bool) {
	tb.byTeam = byTeam
}

// SetTurnIndex selects the turn (by position in the ascending sequence)
// the next Build shows. This leaves difference mode.
func (tb *TableBuilder) SetTurnIndex(index int) {
	tb.turnIndex = index
	tb.difference = false
}

// SetTurnDifferenceIndexes selects difference mode: the next Build shows
// the first turn's values minus the second turn's.
func (tb *TableBuilder) SetTurnDifferenceIndexes(first, second int) {
	tb.firstTurnIndex = first
	tb.secondTurnIndex = second
	tb.difference = true
}

// Build computes a fresh table for the current parameters. In difference
// mode negative cells are legitimate values, including -1, and must reach
// the consumer intact.
func (tb *TableBuilder) Build() *dataview.Table {
	if !tb.difference {
		return tb.buildForTurn(tb.turnIndex)
	}
	result := tb.buildForTurn(tb.firstTurnIndex)
	result.Add(-1, tb.buildForTurn(tb.secondTurnIndex), 0)
	return result
}

func (tb *TableBuilder) buildForTurn(turnIndex int) *dataview.Table {
	table := dataview.New()
	turn := tb.scores.TurnByIndex(turnIndex)

	if tb.byTeam {
		for team := 1; team <= game.MaxPlayers; team++ {
			members := tb.realTeamMembers(team)
			if members.IsEmpty() {
				continue
			}
			tb.fillRow(table.AddRow(team, tb.teams.TeamName(team)), turn, members)
		}
	} else {
		for _, p := range tb.players.RealPlayers() {
			tb.fillRow(table.AddRow(p.ID(), p.ShortName()), turn, game.NewPlayerSet(p.ID()))
		}
	}

	for i := range tb.variants {
		table.SetColumnName(i, tb.variants[i].Name)
	}
	return table
}

func (tb *TableBuilder) fillRow(row *dataview.Row, turn *TurnScore, players game.PlayerSet) {
	for i := range tb.variants {
		if v := tb.variants[i].Score.Get(turn, players); v.IsKnown() {
			row.Set(i, v)
		}
	}
}

func (tb *TableBuilder) realTeamMembers(team int) game.PlayerSet {
	var members game.PlayerSet
	for _, p := range tb.players.RealPlayers() {
		if tb.teams.PlayerTeam(p.ID()) == team {
			members = members.With(p.ID())
		}
	}
	return members
}
