package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/davidrhall/conquest-go/internal/domain/game"
	"github.com/davidrhall/conquest-go/internal/domain/history"
	"github.com/davidrhall/conquest-go/internal/domain/shared"
)

// GormTurnArchiveRepository implements history.Loader over the local turn
// archive database. A row marked complete is a strong promise; an
// incomplete row (partial result file) only a weak one.
type GormTurnArchiveRepository struct {
	db *gorm.DB
}

// NewGormTurnArchiveRepository creates a new GORM turn archive repository
func NewGormTurnArchiveRepository(db *gorm.DB) *GormTurnArchiveRepository {
	return &GormTurnArchiveRepository{db: db}
}

// TurnAvailability classifies count consecutive turns for one player
func (r *GormTurnArchiveRepository) TurnAvailability(ctx context.Context, player, firstTurn, count int) ([]history.Availability, error) {
	if count <= 0 {
		return nil, nil
	}

	var models []ArchivedTurnModel
	result := r.db.WithContext(ctx).
		Where("player_id = ? AND turn_number >= ? AND turn_number < ?", player, firstTurn, firstTurn+count).
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query turn archive: %w", result.Error)
	}

	byTurn := make(map[int]*ArchivedTurnModel, len(models))
	for i := range models {
		byTurn[models[i].TurnNumber] = &models[i]
	}

	availability := make([]history.Availability, count)
	for i := 0; i < count; i++ {
		model, ok := byTurn[firstTurn+i]
		switch {
		case !ok:
			availability[i] = history.AvailabilityNegative
		case model.Complete != 0:
			availability[i] = history.AvailabilityStronglyPositive
		default:
			availability[i] = history.AvailabilityWeaklyPositive
		}
	}
	return availability, nil
}

// LoadTurn fetches one archived turn as a snapshot
func (r *GormTurnArchiveRepository) LoadTurn(ctx context.Context, player, turnNumber int) (*game.Turn, error) {
	var model ArchivedTurnModel
	result := r.db.WithContext(ctx).
		Where("player_id = ? AND turn_number = ?", player, turnNumber).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("turn not found: player %d, turn %d", player, turnNumber)
		}
		return nil, fmt.Errorf("failed to load turn: %w", result.Error)
	}

	return game.NewTurn(model.TurnNumber, shared.ParseTimestamp([]byte(model.Timestamp))), nil
}

// Save records an archived turn. Existing rows are upserted.
func (r *GormTurnArchiveRepository) Save(ctx context.Context, player, turnNumber int, timestamp shared.Timestamp, complete bool) error {
	model := ArchivedTurnModel{
		PlayerID:   player,
		TurnNumber: turnNumber,
		Timestamp:  timestamp.String(),
	}
	if complete {
		model.Complete = 1
	}

	result := r.db.WithContext(ctx).Save(&model)
	if result.Error != nil {
		return fmt.Errorf("failed to save archived turn: %w", result.Error)
	}
	return nil
}
