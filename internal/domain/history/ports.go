package history

import (
	"context"

	"github.com/davidrhall/conquest-go/internal/domain/game"
)

// Availability is the loader's three-valued classification of whether a
// turn can be fetched for a player.
type Availability int

const (
	// AvailabilityNegative means the turn is not retrievable
	AvailabilityNegative Availability = iota

	// AvailabilityWeaklyPositive means the turn can probably be retrieved
	AvailabilityWeaklyPositive

	// AvailabilityStronglyPositive means the turn is known to be retrievable
	AvailabilityStronglyPositive
)

// Loader is the external turn-loading service
type Loader interface {
	// TurnAvailability classifies count consecutive turns starting at
	// firstTurn for one player. The result has one entry per queried turn.
	TurnAvailability(ctx context.Context, player, firstTurn, count int) ([]Availability, error)

	// LoadTurn fetches a full turn snapshot
	LoadTurn(ctx context.Context, player, turnNumber int) (*game.Turn, error)
}
