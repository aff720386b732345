package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrhall/conquest-go/internal/domain/game"
	"github.com/davidrhall/conquest-go/internal/domain/history"
	"github.com/davidrhall/conquest-go/internal/domain/shared"
)

func TestTurn_StartsUnknown(t *testing.T) {
	entry := history.NewTurn(5)

	assert.Equal(t, 5, entry.TurnNumber())
	assert.Equal(t, history.StatusUnknown, entry.Status())
	assert.True(t, entry.IsLoadable())
	assert.Nil(t, entry.Snapshot())
	assert.False(t, entry.Timestamp().IsValid())
}

func TestTurn_LoadSucceeded(t *testing.T) {
	// Arrange
	entry := history.NewTurn(5)
	entry.SetStatus(history.StatusStronglyAvailable)
	ts := shared.MakeTimestamp(2003, 6, 1, 9, 0, 0)
	snapshot := game.NewTurn(5, ts)

	// Act
	entry.HandleLoadSucceeded(snapshot)

	// Assert - snapshot attached, timestamp taken over
	assert.Equal(t, history.StatusLoaded, entry.Status())
	assert.Same(t, snapshot, entry.Snapshot())
	assert.True(t, entry.Timestamp().Equals(ts))
	assert.False(t, entry.IsLoadable())
}

func TestTurn_LoadedSnapshotIsNeverReplaced(t *testing.T) {
	// Arrange
	entry := history.NewTurn(5)
	first := game.NewTurn(5, shared.MakeTimestamp(2003, 6, 1, 9, 0, 0))
	entry.HandleLoadSucceeded(first)

	// Act - a second delivery must be ignored
	second := game.NewTurn(5, shared.MakeTimestamp(2003, 7, 1, 9, 0, 0))
	entry.HandleLoadSucceeded(second)
	entry.HandleLoadFailed()

	// Assert
	assert.Same(t, first, entry.Snapshot())
	assert.Equal(t, history.StatusLoaded, entry.Status())
}

func TestTurn_BrokenStrongPromiseFails(t *testing.T) {
	entry := history.NewTurn(5)
	entry.SetStatus(history.StatusStronglyAvailable)

	entry.HandleLoadFailed()

	assert.Equal(t, history.StatusFailed, entry.Status())
	assert.False(t, entry.IsLoadable())
}

func TestTurn_DisappointedGuessBecomesUnavailable(t *testing.T) {
	for _, status := range []history.Status{history.StatusUnknown, history.StatusWeaklyAvailable} {
		entry := history.NewTurn(5)
		entry.SetStatus(status)

		entry.HandleLoadFailed()

		assert.Equal(t, history.StatusUnavailable, entry.Status(), "from %v", status)
	}
}

func TestTurn_SucceedWhileUnavailableIsNoOp(t *testing.T) {
	// Arrange
	entry := history.NewTurn(5)
	entry.SetStatus(history.StatusUnavailable)

	// Act
	entry.HandleLoadSucceeded(game.NewTurn(5, shared.MakeTimestamp(2003, 6, 1, 9, 0, 0)))

	// Assert
	assert.Nil(t, entry.Snapshot())
	assert.Equal(t, history.StatusUnavailable, entry.Status())
}

func TestTurn_SucceedWithNilSnapshotIsNoOp(t *testing.T) {
	entry := history.NewTurn(5)

	entry.HandleLoadSucceeded(nil)

	require.Nil(t, entry.Snapshot())
	assert.Equal(t, history.StatusUnknown, entry.Status())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "unknown", history.StatusUnknown.String())
	assert.Equal(t, "available", history.StatusStronglyAvailable.String())
	assert.Equal(t, "maybe available", history.StatusWeaklyAvailable.String())
	assert.Equal(t, "failed", history.StatusFailed.String())
	assert.Equal(t, "loaded", history.StatusLoaded.String())
}
