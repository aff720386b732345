package history_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrhall/conquest-go/internal/domain/game"
	"github.com/davidrhall/conquest-go/internal/domain/history"
	"github.com/davidrhall/conquest-go/internal/domain/score"
	"github.com/davidrhall/conquest-go/internal/domain/shared"
)

// stubLoader serves canned availability answers and records what was asked
type stubLoader struct {
	answers    []history.Availability
	err        error
	gotPlayer  int
	gotFirst   int
	gotCount   int
}

func (s *stubLoader) TurnAvailability(_ context.Context, player, firstTurn, count int) ([]history.Availability, error) {
	s.gotPlayer, s.gotFirst, s.gotCount = player, firstTurn, count
	return s.answers, s.err
}

func (s *stubLoader) LoadTurn(context.Context, int, int) (*game.Turn, error) {
	return nil, nil
}

func TestList_CreateAndGet(t *testing.T) {
	list := history.NewList()

	entry := list.Create(5)
	require.NotNil(t, entry)
	assert.Same(t, entry, list.Create(5))
	assert.Same(t, entry, list.Get(5))
	assert.Nil(t, list.Get(6))
	assert.Nil(t, list.Create(0))
	assert.Nil(t, list.Create(-3))
}

func TestList_StatusAndTimestampFallbacks(t *testing.T) {
	list := history.NewList()

	assert.Equal(t, history.StatusUnknown, list.TurnStatus(9))
	assert.False(t, list.TurnTimestamp(9).IsValid())
}

func TestFindNewestUnknownTurnNumber_EmptyList(t *testing.T) {
	list := history.NewList()

	assert.Equal(t, 41, list.FindNewestUnknownTurnNumber(42))
}

func TestFindNewestUnknownTurnNumber_GapBelowCurrent(t *testing.T) {
	// Arrange - turns 10 and 20 are weakly available, current turn is 21
	list := history.NewList()
	list.Create(10).SetStatus(history.StatusWeaklyAvailable)
	list.Create(20).SetStatus(history.StatusWeaklyAvailable)

	// Assert - 20 is adjacent and settled, the gap below it wins
	assert.Equal(t, 19, list.FindNewestUnknownTurnNumber(21))
}

func TestFindNewestUnknownTurnNumber_EntryAtCurrent(t *testing.T) {
	list := history.NewList()
	list.Create(10).SetStatus(history.StatusWeaklyAvailable)
	list.Create(20).SetStatus(history.StatusWeaklyAvailable)

	assert.Equal(t, 19, list.FindNewestUnknownTurnNumber(20))
}

func TestFindNewestUnknownTurnNumber_LargeGapAtTop(t *testing.T) {
	list := history.NewList()
	list.Create(10).SetStatus(history.StatusWeaklyAvailable)
	list.Create(20).SetStatus(history.StatusWeaklyAvailable)

	// The stretch between 20 and 100 is entirely unexplored
	assert.Equal(t, 99, list.FindNewestUnknownTurnNumber(100))
}

func TestFindNewestUnknownTurnNumber_UnknownEntryWins(t *testing.T) {
	list := history.NewList()
	list.Create(20).SetStatus(history.StatusWeaklyAvailable)
	list.Create(19) // stays Unknown

	assert.Equal(t, 19, list.FindNewestUnknownTurnNumber(21))
}

func TestInitFromTurnScores_SeedsTimestamps(t *testing.T) {
	// Arrange
	scores := score.NewTurnScoreList()
	ts10 := shared.MakeTimestamp(2003, 1, 10, 0, 0, 0)
	ts12 := shared.MakeTimestamp(2003, 1, 12, 0, 0, 0)
	scores.AddTurn(10, ts10)
	scores.AddTurn(12, ts12)

	list := history.NewList()

	// Act
	list.InitFromTurnScores(scores, 9, 5)

	// Assert - entries only where score records exist
	assert.True(t, list.TurnTimestamp(10).Equals(ts10))
	assert.True(t, list.TurnTimestamp(12).Equals(ts12))
	assert.Nil(t, list.Get(9))
	assert.Nil(t, list.Get(11))
}

func TestInitFromTurnScores_LoadedEntryKeepsOwnTimestamp(t *testing.T) {
	// Arrange - a loaded snapshot's timestamp beats the score file
	snapTs := shared.MakeTimestamp(2003, 5, 5, 12, 0, 0)
	list := history.NewList()
	list.Create(10).HandleLoadSucceeded(game.NewTurn(10, snapTs))

	scores := score.NewTurnScoreList()
	scores.AddTurn(10, shared.MakeTimestamp(2003, 1, 10, 0, 0, 0))

	// Act
	list.InitFromTurnScores(scores, 10, 1)

	// Assert
	assert.True(t, list.TurnTimestamp(10).Equals(snapTs))
}

func TestInitFromTurnLoader_MapsAnswers(t *testing.T) {
	// Arrange
	loader := &stubLoader{answers: []history.Availability{
		history.AvailabilityNegative,
		history.AvailabilityWeaklyPositive,
		history.AvailabilityStronglyPositive,
	}}
	list := history.NewList()

	// Act
	err := list.InitFromTurnLoader(context.Background(), loader, 3, 10, 3)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, loader.gotPlayer)
	assert.Equal(t, 10, loader.gotFirst)
	assert.Equal(t, 3, loader.gotCount)
	assert.Equal(t, history.StatusUnavailable, list.TurnStatus(10))
	assert.Equal(t, history.StatusWeaklyAvailable, list.TurnStatus(11))
	assert.Equal(t, history.StatusStronglyAvailable, list.TurnStatus(12))
}

func TestInitFromTurnLoader_OnlyUnknownEntriesChange(t *testing.T) {
	// Arrange - turn 10 already settled as unavailable
	loader := &stubLoader{answers: []history.Availability{
		history.AvailabilityStronglyPositive,
		history.AvailabilityStronglyPositive,
	}}
	list := history.NewList()
	list.Create(10).SetStatus(history.StatusUnavailable)

	// Act
	err := list.InitFromTurnLoader(context.Background(), loader, 3, 10, 2)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, history.StatusUnavailable, list.TurnStatus(10))
	assert.Equal(t, history.StatusStronglyAvailable, list.TurnStatus(11))
}

func TestInitFromTurnLoader_PropagatesError(t *testing.T) {
	loader := &stubLoader{err: assert.AnError}
	list := history.NewList()

	err := list.InitFromTurnLoader(context.Background(), loader, 3, 10, 2)

	assert.Error(t, err)
	assert.Nil(t, list.Get(10))
}
