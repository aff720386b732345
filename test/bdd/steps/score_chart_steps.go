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

type scoreChartContext struct {
	scores  *score.TurnScoreList
	players *game.PlayerList
	teams   *game.TeamSettings
	host    game.HostVersion
	config  *game.HostConfiguration
	table   *dataview.Table
}

func (cc *scoreChartContext) reset() {
	cc.scores = score.NewTurnScoreList()
	cc.players = game.NewPlayerList()
	cc.teams = game.NewTeamSettings()
	cc.host = game.NewHostVersion(game.HostKindPHost, 4021)
	cc.config = game.NewHostConfiguration()
	cc.table = nil
}

func (cc *scoreChartContext) aGameWithRealPlayers(a, b int) error {
	cc.players.Add(a, fmt.Sprintf("Player %d", a), true)
	cc.players.Add(b, fmt.Sprintf("Player %d", b), true)
	return nil
}

func (cc *scoreChartContext) playerHasShipsOnTurn(player, capital, freighters, turnNumber int) error {
	turn := cc.scores.AddTurn(turnNumber, shared.MakeTimestamp(2003, 1, turnNumber%28+1, 0, 0, 0))
	capitalSlot, ok := cc.scores.GetSlot(score.ScoreIDCapital)
	if !ok {
		return fmt.Errorf("capital ship slot missing")
	}
	freighterSlot, ok := cc.scores.GetSlot(score.ScoreIDFreighters)
	if !ok {
		return fmt.Errorf("freighter slot missing")
	}
	turn.Set(capitalSlot, player, shared.NewValue(int32(capital)))
	turn.Set(freighterSlot, player, shared.NewValue(int32(freighters)))
	return nil
}

func (cc *scoreChartContext) buildChart(variantName string, cumulative bool) error {
	builder := score.NewChartBuilder(cc.scores, cc.players, cc.teams, cc.host, cc.config, game.NewIdentityTranslator())
	index := -1
	for i, v := range builder.Variants() {
		if v.Name == variantName {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("no chart variant named %q", variantName)
	}
	builder.SetVariantIndex(index)
	builder.SetCumulativeMode(cumulative)
	cc.table = builder.Build()
	return nil
}

func (cc *scoreChartContext) iBuildTheChart(variantName string) error {
	return cc.buildChart(variantName, false)
}

func (cc *scoreChartContext) iBuildTheCumulativeChart(variantName string) error {
	return cc.buildChart(variantName, true)
}

func (cc *scoreChartContext) theChartShouldHaveRows(expected int) error {
	if cc.table == nil {
		return fmt.Errorf("no chart built")
	}
	if got := cc.table.NumRows(); got != expected {
		return fmt.Errorf("expected %d rows, got %d", expected, got)
	}
	return nil
}

func (cc *scoreChartContext) playerShouldHaveValueInColumn(player, expected, column int) error {
	v, err := cc.cell(player, column)
	if err != nil {
		return err
	}
	got, ok := v.Get()
	if !ok {
		return fmt.Errorf("player %d column %d has no value", player, column)
	}
	if got != int32(expected) {
		return fmt.Errorf("player %d column %d: expected %d, got %d", player, column, expected, got)
	}
	return nil
}

func (cc *scoreChartContext) playerShouldHaveNoValueInColumn(player, column int) error {
	v, err := cc.cell(player, column)
	if err != nil {
		return err
	}
	if got, ok := v.Get(); ok {
		return fmt.Errorf("player %d column %d: expected no value, got %d", player, column, got)
	}
	return nil
}

func (cc *scoreChartContext) cell(player, column int) (shared.Value, error) {
	if cc.table == nil {
		return shared.NoValue(), fmt.Errorf("no chart built")
	}
	row := cc.table.Row(player)
	if row == nil {
		return shared.NoValue(), fmt.Errorf("no row for player %d", player)
	}
	return row.Get(column), nil
}

// RegisterScoreChartSteps registers the score chart step definitions
func RegisterScoreChartSteps(sc *godog.ScenarioContext) {
	cc := &scoreChartContext{}
	cc.reset()

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		cc.reset()
		return ctx, nil
	})

	sc.Step(`^a game with real players (\d+) and (\d+)$`, cc.aGameWithRealPlayers)
	sc.Step(`^player (\d+) has (\d+) capital ships and (\d+) freighters on turn (\d+)$`, cc.playerHasShipsOnTurn)
	sc.Step(`^I build the "([^"]*)" chart$`, cc.iBuildTheChart)
	sc.Step(`^I build the cumulative "([^"]*)" chart$`, cc.iBuildTheCumulativeChart)
	sc.Step(`^the chart should have (\d+) rows$`, cc.theChartShouldHaveRows)
	sc.Step(`^player (\d+) should have value (-?\d+) in column (\d+)$`, cc.playerShouldHaveValueInColumn)
	sc.Step(`^player (\d+) should have no value in column (\d+)$`, cc.playerShouldHaveNoValueInColumn)
}
