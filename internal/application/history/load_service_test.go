package history_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphistory "github.com/davidrhall/conquest-go/internal/application/history"
	"github.com/davidrhall/conquest-go/internal/domain/game"
	"github.com/davidrhall/conquest-go/internal/domain/history"
	"github.com/davidrhall/conquest-go/internal/domain/shared"
)

// fakeLoader answers from a fixed set of stored turns
type fakeLoader struct {
	available map[int]history.Availability
	snapshots map[int]*game.Turn
	loadCalls int
}

func (f *fakeLoader) TurnAvailability(_ context.Context, _ int, firstTurn, count int) ([]history.Availability, error) {
	result := make([]history.Availability, count)
	for i := 0; i < count; i++ {
		result[i] = f.available[firstTurn+i]
	}
	return result, nil
}

func (f *fakeLoader) LoadTurn(_ context.Context, _ int, turnNumber int) (*game.Turn, error) {
	f.loadCalls++
	if snapshot, ok := f.snapshots[turnNumber]; ok {
		return snapshot, nil
	}
	return nil, errors.New("no such turn")
}

// countingMetrics satisfies LoadMetrics for assertions
type countingMetrics struct {
	successes int
	failures  int
}

func (m *countingMetrics) RecordLoadSuccess(int, int) { m.successes++ }
func (m *countingMetrics) RecordLoadFailure(int, int) { m.failures++ }

func TestLoadService_LoadSuccess(t *testing.T) {
	// Arrange
	snapshot := game.NewTurn(10, shared.MakeTimestamp(2003, 1, 10, 0, 0, 0))
	loader := &fakeLoader{snapshots: map[int]*game.Turn{10: snapshot}}
	metrics := &countingMetrics{}
	turns := history.NewList()
	service := apphistory.NewLoadService(turns, loader, 0, metrics)

	// Act
	entry, err := service.Load(context.Background(), 3, 10)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, history.StatusLoaded, entry.Status())
	assert.Same(t, snapshot, entry.Snapshot())
	assert.Equal(t, 1, metrics.successes)
	assert.Zero(t, metrics.failures)
}

func TestLoadService_LoadFailureIsNotAnError(t *testing.T) {
	// Arrange - the loader has nothing for turn 10
	loader := &fakeLoader{}
	metrics := &countingMetrics{}
	turns := history.NewList()
	service := apphistory.NewLoadService(turns, loader, 0, metrics)

	// Act
	entry, err := service.Load(context.Background(), 3, 10)

	// Assert - failure lands on the entry, the call itself succeeds
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, history.StatusUnavailable, entry.Status())
	assert.Equal(t, 1, metrics.failures)
}

func TestLoadService_InvalidTurnNumber(t *testing.T) {
	service := apphistory.NewLoadService(history.NewList(), &fakeLoader{}, 0, nil)

	entry, err := service.Load(context.Background(), 3, 0)

	assert.Error(t, err)
	assert.Nil(t, entry)
}

func TestLoadService_UnloadableEntrySkipsLoader(t *testing.T) {
	// Arrange - turn 10 already settled as unavailable
	loader := &fakeLoader{}
	turns := history.NewList()
	turns.Create(10).SetStatus(history.StatusUnavailable)
	service := apphistory.NewLoadService(turns, loader, 0, nil)

	// Act
	entry, err := service.Load(context.Background(), 3, 10)

	// Assert - the entry comes back untouched, no fetch happened
	require.NoError(t, err)
	assert.Equal(t, history.StatusUnavailable, entry.Status())
	assert.Zero(t, loader.loadCalls)
}

func TestLoadService_NilMetricsIsFine(t *testing.T) {
	loader := &fakeLoader{}
	service := apphistory.NewLoadService(history.NewList(), loader, 0, nil)

	_, err := service.Load(context.Background(), 3, 10)

	assert.NoError(t, err)
}

func TestLoadService_Classify(t *testing.T) {
	// Arrange
	loader := &fakeLoader{available: map[int]history.Availability{
		10: history.AvailabilityStronglyPositive,
		11: history.AvailabilityWeaklyPositive,
	}}
	turns := history.NewList()
	service := apphistory.NewLoadService(turns, loader, 0, nil)

	// Act
	err := service.Classify(context.Background(), 3, 10, 3)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, history.StatusStronglyAvailable, turns.TurnStatus(10))
	assert.Equal(t, history.StatusWeaklyAvailable, turns.TurnStatus(11))
	assert.Equal(t, history.StatusUnavailable, turns.TurnStatus(12))
}

func TestLoadService_LoadNewest(t *testing.T) {
	// Arrange - current turn 11, turn 10 is stored and loadable
	snapshot := game.NewTurn(10, shared.MakeTimestamp(2003, 1, 10, 0, 0, 0))
	loader := &fakeLoader{
		available: map[int]history.Availability{10: history.AvailabilityStronglyPositive},
		snapshots: map[int]*game.Turn{10: snapshot},
	}
	turns := history.NewList()
	service := apphistory.NewLoadService(turns, loader, 0, nil)

	// Act
	entry, err := service.LoadNewest(context.Background(), 3, 11)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 10, entry.TurnNumber())
	assert.Equal(t, history.StatusLoaded, entry.Status())
}

func TestLoadService_LoadNewestBottomsOut(t *testing.T) {
	service := apphistory.NewLoadService(history.NewList(), &fakeLoader{}, 0, nil)

	entry, err := service.LoadNewest(context.Background(), 3, 1)

	assert.NoError(t, err)
	assert.Nil(t, entry)
}

func TestLoadService_CancelledContext(t *testing.T) {
	// Arrange - a throttled service with a cancelled context fails the wait
	loader := &fakeLoader{}
	service := apphistory.NewLoadService(history.NewList(), loader, 0.001, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	_, err := service.Load(ctx, 3, 10)

	// Assert
	assert.Error(t, err)
	assert.Zero(t, loader.loadCalls)
}
