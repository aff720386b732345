package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/davidrhall/conquest-go/internal/domain/game"
	"github.com/davidrhall/conquest-go/internal/domain/history"
	"github.com/davidrhall/conquest-go/internal/domain/shared"
)

type historyContext struct {
	turns *history.List
}

func (hc *historyContext) reset() {
	hc.turns = history.NewList()
}

func statusFromName(name string) (history.Status, error) {
	for _, s := range []history.Status{
		history.StatusUnknown, history.StatusUnavailable, history.StatusStronglyAvailable,
		history.StatusWeaklyAvailable, history.StatusFailed, history.StatusLoaded,
	} {
		if s.String() == name {
			return s, nil
		}
	}
	return history.StatusUnknown, fmt.Errorf("unknown status name %q", name)
}

func (hc *historyContext) anEmptyTurnHistory() error {
	hc.turns = history.NewList()
	return nil
}

func (hc *historyContext) turnIsMarked(turnNumber int, statusName string) error {
	status, err := statusFromName(statusName)
	if err != nil {
		return err
	}
	entry := hc.turns.Create(turnNumber)
	if entry == nil {
		return fmt.Errorf("no entry for turn %d", turnNumber)
	}
	entry.SetStatus(status)
	return nil
}

func (hc *historyContext) newestUnknownBelowShouldBe(currentTurn, expected int) error {
	if got := hc.turns.FindNewestUnknownTurnNumber(currentTurn); got != expected {
		return fmt.Errorf("expected turn %d, got %d", expected, got)
	}
	return nil
}

func (hc *historyContext) aLoadOfTurnFails(turnNumber int) error {
	entry := hc.turns.Create(turnNumber)
	if entry == nil {
		return fmt.Errorf("no entry for turn %d", turnNumber)
	}
	entry.HandleLoadFailed()
	return nil
}

func (hc *historyContext) aLoadOfTurnSucceeds(turnNumber int, timestamp string) error {
	ts := shared.ParseTimestamp([]byte(timestamp))
	if !ts.IsValid() {
		return fmt.Errorf("invalid timestamp %q", timestamp)
	}
	entry := hc.turns.Create(turnNumber)
	if entry == nil {
		return fmt.Errorf("no entry for turn %d", turnNumber)
	}
	entry.HandleLoadSucceeded(game.NewTurn(turnNumber, ts))
	return nil
}

func (hc *historyContext) turnShouldBe(turnNumber int, statusName string) error {
	expected, err := statusFromName(statusName)
	if err != nil {
		return err
	}
	if got := hc.turns.TurnStatus(turnNumber); got != expected {
		return fmt.Errorf("turn %d: expected status %q, got %q", turnNumber, expected, got)
	}
	return nil
}

// RegisterHistorySteps registers the historical turn step definitions
func RegisterHistorySteps(sc *godog.ScenarioContext) {
	hc := &historyContext{}
	hc.reset()

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		hc.reset()
		return ctx, nil
	})

	sc.Step(`^an empty turn history$`, hc.anEmptyTurnHistory)
	sc.Step(`^turn (\d+) is marked "([^"]*)"$`, hc.turnIsMarked)
	sc.Step(`^the newest unknown turn below current turn (\d+) should be (\d+)$`, hc.newestUnknownBelowShouldBe)
	sc.Step(`^a load of turn (\d+) fails$`, hc.aLoadOfTurnFails)
	sc.Step(`^a load of turn (\d+) succeeds with timestamp "([^"]*)"$`, hc.aLoadOfTurnSucceeds)
	sc.Step(`^turn (\d+) should be "([^"]*)"$`, hc.turnShouldBe)
}
