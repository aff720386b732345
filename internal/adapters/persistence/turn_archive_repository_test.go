package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrhall/conquest-go/internal/adapters/persistence"
	"github.com/davidrhall/conquest-go/internal/domain/history"
	"github.com/davidrhall/conquest-go/internal/domain/shared"
	"github.com/davidrhall/conquest-go/test/helpers"
)

func TestTurnArchiveRepository_TurnAvailability(t *testing.T) {
	// Arrange - turn 10 complete, turn 11 partial, turn 12 missing
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTurnArchiveRepository(db)
	ctx := context.Background()
	ts := shared.MakeTimestamp(2003, 1, 10, 0, 0, 0)

	require.NoError(t, repo.Save(ctx, 3, 10, ts, true))
	require.NoError(t, repo.Save(ctx, 3, 11, ts, false))

	// Act
	availability, err := repo.TurnAvailability(ctx, 3, 10, 3)

	// Assert
	require.NoError(t, err)
	require.Len(t, availability, 3)
	assert.Equal(t, history.AvailabilityStronglyPositive, availability[0])
	assert.Equal(t, history.AvailabilityWeaklyPositive, availability[1])
	assert.Equal(t, history.AvailabilityNegative, availability[2])
}

func TestTurnArchiveRepository_AvailabilityIsPerPlayer(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTurnArchiveRepository(db)
	ctx := context.Background()
	ts := shared.MakeTimestamp(2003, 1, 10, 0, 0, 0)
	require.NoError(t, repo.Save(ctx, 3, 10, ts, true))

	// Act - another player's archive knows nothing about the turn
	availability, err := repo.TurnAvailability(ctx, 4, 10, 1)

	// Assert
	require.NoError(t, err)
	require.Len(t, availability, 1)
	assert.Equal(t, history.AvailabilityNegative, availability[0])
}

func TestTurnArchiveRepository_ZeroCount(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTurnArchiveRepository(db)

	availability, err := repo.TurnAvailability(context.Background(), 3, 10, 0)

	assert.NoError(t, err)
	assert.Empty(t, availability)
}

func TestTurnArchiveRepository_LoadTurn(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTurnArchiveRepository(db)
	ctx := context.Background()
	ts := shared.MakeTimestamp(2003, 1, 10, 12, 30, 0)
	require.NoError(t, repo.Save(ctx, 3, 10, ts, true))

	// Act
	snapshot, err := repo.LoadTurn(ctx, 3, 10)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, 10, snapshot.TurnNumber())
	assert.True(t, snapshot.Timestamp().Equals(ts))
}

func TestTurnArchiveRepository_LoadTurnNotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTurnArchiveRepository(db)

	snapshot, err := repo.LoadTurn(context.Background(), 3, 99)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "turn not found")
	assert.Nil(t, snapshot)
}

func TestTurnArchiveRepository_SaveUpserts(t *testing.T) {
	// Arrange - the partial row is later replaced by the complete one
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTurnArchiveRepository(db)
	ctx := context.Background()
	ts := shared.MakeTimestamp(2003, 1, 10, 0, 0, 0)
	require.NoError(t, repo.Save(ctx, 3, 10, ts, false))

	// Act
	require.NoError(t, repo.Save(ctx, 3, 10, ts, true))

	// Assert
	availability, err := repo.TurnAvailability(ctx, 3, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, history.AvailabilityStronglyPositive, availability[0])
}
