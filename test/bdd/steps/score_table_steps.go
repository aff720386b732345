package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/davidrhall/conquest-go/internal/domain/dataview"
	"github.com/davidrhall/conquest-go/internal/domain/game"
	"github.com/davidrhall/conquest-go/internal/domain/score"
	"github.com/davidrhall/conquest-go/internal/domain/shared"
)

type scoreTableContext struct {
	scores  *score.TurnScoreList
	players *game.PlayerList
	teams   *game.TeamSettings
	host    game.HostVersion
	config  *game.HostConfiguration
	builder *score.TableBuilder
	table   *dataview.Table
}

func (tc *scoreTableContext) reset() {
	tc.scores = score.NewTurnScoreList()
	tc.players = game.NewPlayerList()
	tc.teams = game.NewTeamSettings()
	tc.host = game.NewHostVersion(game.HostKindPHost, 4021)
	tc.config = game.NewHostConfiguration()
	tc.builder = nil
	tc.table = nil
}

func (tc *scoreTableContext) aScoreTableGameWithRealPlayers(a, b int) error {
	tc.players.Add(a, fmt.Sprintf("Player %d", a), true)
	tc.players.Add(b, fmt.Sprintf("Player %d", b), true)
	return nil
}

func (tc *scoreTableContext) playerHasCapitalShipsOnTurn(player, capital, turnNumber int) error {
	turn := tc.scores.AddTurn(turnNumber, shared.MakeTimestamp(2003, 1, turnNumber%28+1, 0, 0, 0))
	slot, ok := tc.scores.GetSlot(score.ScoreIDCapital)
	if !ok {
		return fmt.Errorf("capital ship slot missing")
	}
	turn.Set(slot, player, shared.NewValue(int32(capital)))
	return nil
}

func (tc *scoreTableContext) newBuilder() *score.TableBuilder {
	return score.NewTableBuilder(tc.scores, tc.players, tc.teams, tc.host, tc.config, game.NewIdentityTranslator())
}

func (tc *scoreTableContext) iBuildTheOverviewForTurnIndex(index int) error {
	tc.builder = tc.newBuilder()
	tc.builder.SetTurnIndex(index)
	tc.table = tc.builder.Build()
	return nil
}

func (tc *scoreTableContext) iBuildTheDifference(first, second int) error {
	tc.builder = tc.newBuilder()
	tc.builder.SetTurnDifferenceIndexes(first, second)
	tc.table = tc.builder.Build()
	return nil
}

func (tc *scoreTableContext) columnForPlayerShouldBe(columnName string, player, expected int) error {
	v, err := tc.cell(columnName, player)
	if err != nil {
		return err
	}
	got, ok := v.Get()
	if !ok {
		return fmt.Errorf("column %q for player %d has no value", columnName, player)
	}
	if got != int32(expected) {
		return fmt.Errorf("column %q for player %d: expected %d, got %d", columnName, player, expected, got)
	}
	return nil
}

func (tc *scoreTableContext) columnForPlayerShouldBeEmpty(columnName string, player int) error {
	v, err := tc.cell(columnName, player)
	if err != nil {
		return err
	}
	if got, ok := v.Get(); ok {
		return fmt.Errorf("column %q for player %d: expected no value, got %d", columnName, player, got)
	}
	return nil
}

func (tc *scoreTableContext) cell(columnName string, player int) (shared.Value, error) {
	if tc.table == nil {
		return shared.NoValue(), fmt.Errorf("no table built")
	}
	column := -1
	for i := 0; i < tc.builder.NumVariants(); i++ {
		if tc.table.ColumnName(i) == columnName {
			column = i
			break
		}
	}
	if column < 0 {
		return shared.NoValue(), fmt.Errorf("no column named %q", columnName)
	}
	row := tc.table.Row(player)
	if row == nil {
		return shared.NoValue(), fmt.Errorf("no row for player %d", player)
	}
	return row.Get(column), nil
}

// RegisterScoreTableSteps registers the score table step definitions
func RegisterScoreTableSteps(sc *godog.ScenarioContext) {
	tc := &scoreTableContext{}
	tc.reset()

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	sc.Step(`^a score table game with real players (\d+) and (\d+)$`, tc.aScoreTableGameWithRealPlayers)
	sc.Step(`^player (\d+) has (\d+) capital ships on turn (\d+)$`, tc.playerHasCapitalShipsOnTurn)
	sc.Step(`^I build the overview for turn index (\d+)$`, tc.iBuildTheOverviewForTurnIndex)
	sc.Step(`^I build the difference between turn indexes (\d+) and (\d+)$`, tc.iBuildTheDifference)
	sc.Step(`^the "([^"]*)" column for player (\d+) should be (-?\d+)$`, tc.columnForPlayerShouldBe)
	sc.Step(`^the "([^"]*)" column for player (\d+) should be empty$`, tc.columnForPlayerShouldBeEmpty)
}
