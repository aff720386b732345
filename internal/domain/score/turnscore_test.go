package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidrhall/conquest-go/internal/domain/score"
	"github.com/davidrhall/conquest-go/internal/domain/shared"
)

func TestTurnScore_SetAndGet(t *testing.T) {
	// Arrange
	ts := score.NewTurnScore(42, shared.MakeTimestamp(2003, 12, 10, 12, 0, 0))

	// Act
	ts.Set(0, 3, shared.NewValue(100))
	ts.Set(5, 11, shared.NewValue(-7))

	// Assert
	assert.Equal(t, 42, ts.TurnNumber())
	assert.Equal(t, int32(100), ts.Get(0, 3).OrElse(0))
	assert.Equal(t, int32(-7), ts.Get(5, 11).OrElse(0))
	assert.False(t, ts.Get(0, 4).IsKnown())
	assert.False(t, ts.Get(9, 3).IsKnown())
}

func TestTurnScore_PlayerOutOfRangeIgnored(t *testing.T) {
	ts := score.NewTurnScore(1, shared.Timestamp{})

	// Neither call may panic or store anything
	ts.Set(0, 0, shared.NewValue(1))
	ts.Set(0, 32, shared.NewValue(1))

	assert.False(t, ts.Get(0, 0).IsKnown())
	assert.False(t, ts.Get(0, 32).IsKnown())
}

func TestTurnScore_OverwriteCell(t *testing.T) {
	ts := score.NewTurnScore(1, shared.Timestamp{})
	ts.Set(2, 7, shared.NewValue(10))

	// Act
	ts.Set(2, 7, shared.NewValue(20))
	ts.Set(2, 7, shared.NoValue())

	// Assert - a stored cell can be cleared again
	assert.False(t, ts.Get(2, 7).IsKnown())
}
