package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrhall/conquest-go/internal/adapters/persistence"
	"github.com/davidrhall/conquest-go/internal/domain/score"
	"github.com/davidrhall/conquest-go/internal/domain/shared"
	"github.com/davidrhall/conquest-go/test/helpers"
)

func TestScoreReportRepository_AddAndListAll(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormScoreReportRepository(db)
	ctx := context.Background()
	ts := shared.MakeTimestamp(2003, 1, 10, 0, 0, 0)

	msg := score.Message{
		ID:         51,
		Name:       "Tons destroyed",
		TurnNumber: 7,
		TurnLimit:  shared.NewValue(3),
		WinLimit:   shared.NewValue(5000),
		Values:     map[int]int32{1: 100, 4: 250},
	}
	require.NoError(t, repo.Add(ctx, msg, ts))

	// Act
	reports, err := repo.ListAll(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, reports, 1)
	got := reports[0]
	assert.Equal(t, score.ScoreID(51), got.Message.ID)
	assert.Equal(t, "Tons destroyed", got.Message.Name)
	assert.Equal(t, 7, got.Message.TurnNumber)
	assert.Equal(t, int32(3), got.Message.TurnLimit.OrElse(-1))
	assert.Equal(t, int32(5000), got.Message.WinLimit.OrElse(-1))
	assert.Equal(t, map[int]int32{1: 100, 4: 250}, got.Message.Values)
	assert.True(t, got.Timestamp.Equals(ts))
}

func TestScoreReportRepository_UnsetLimitsStayUnknown(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormScoreReportRepository(db)
	ctx := context.Background()

	msg := score.Message{ID: 51, Name: "Tons destroyed"}
	require.NoError(t, repo.Add(ctx, msg, shared.MakeTimestamp(2003, 1, 10, 0, 0, 0)))

	// Act
	reports, err := repo.ListAll(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.False(t, reports[0].Message.TurnLimit.IsKnown())
	assert.False(t, reports[0].Message.WinLimit.IsKnown())
}

func TestScoreReportRepository_ListPreservesInsertionOrder(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormScoreReportRepository(db)
	ctx := context.Background()
	ts := shared.MakeTimestamp(2003, 1, 10, 0, 0, 0)

	for turn := 1; turn <= 3; turn++ {
		msg := score.Message{ID: 51, Name: "Tons destroyed", TurnNumber: turn}
		require.NoError(t, repo.Add(ctx, msg, ts))
	}

	// Act
	reports, err := repo.ListAll(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, reports, 3)
	for i, report := range reports {
		assert.Equal(t, i+1, report.Message.TurnNumber)
	}
}

func TestScoreReportRepository_Replay(t *testing.T) {
	// Arrange - two reports for the same kind on different turns
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormScoreReportRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, score.Message{
		ID:         51,
		Name:       "Tons destroyed",
		TurnNumber: 7,
		Values:     map[int]int32{1: 100},
	}, shared.MakeTimestamp(2003, 1, 7, 0, 0, 0)))
	require.NoError(t, repo.Add(ctx, score.Message{
		ID:         51,
		TurnNumber: 8,
		Values:     map[int]int32{1: 150},
	}, shared.MakeTimestamp(2003, 1, 8, 0, 0, 0)))

	list := score.NewTurnScoreList()

	// Act
	require.NoError(t, repo.Replay(ctx, list))

	// Assert - both turns landed under one kind, name survived the merge
	slot, ok := list.GetSlot(51)
	require.True(t, ok)
	desc := list.GetDescription(51)
	require.NotNil(t, desc)
	assert.Equal(t, "Tons destroyed", desc.Name)
	assert.Equal(t, int32(100), list.GetTurn(7).Get(slot, 1).OrElse(-1))
	assert.Equal(t, int32(150), list.GetTurn(8).Get(slot, 1).OrElse(-1))
}

func TestScoreReportRepository_ReplayTwiceIsIdempotent(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormScoreReportRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, score.Message{
		ID:         51,
		Name:       "Tons destroyed",
		TurnNumber: 7,
		Values:     map[int]int32{1: 100},
	}, shared.MakeTimestamp(2003, 1, 7, 0, 0, 0)))

	list := score.NewTurnScoreList()
	require.NoError(t, repo.Replay(ctx, list))
	turns, slots := list.NumTurns(), list.NumScores()

	// Act
	require.NoError(t, repo.Replay(ctx, list))

	// Assert
	assert.Equal(t, turns, list.NumTurns())
	assert.Equal(t, slots, list.NumScores())
}
