package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/davidrhall/conquest-go/internal/domain/score"
	"github.com/davidrhall/conquest-go/internal/domain/shared"
)

// StoredReport is one persisted score report plus the host timestamp it
// was received under.
type StoredReport struct {
	Message   score.Message
	Timestamp shared.Timestamp
}

// GormScoreReportRepository persists score data extracted from host
// messages. Reports are append-only; the in-memory score list is rebuilt
// by replaying them through AddMessageInformation, whose merge semantics
// make the replay idempotent.
type GormScoreReportRepository struct {
	db *gorm.DB
}

// NewGormScoreReportRepository creates a new GORM score report repository
func NewGormScoreReportRepository(db *gorm.DB) *GormScoreReportRepository {
	return &GormScoreReportRepository{db: db}
}

// Add persists one score report
func (r *GormScoreReportRepository) Add(ctx context.Context, msg score.Message, timestamp shared.Timestamp) error {
	model, err := reportToModel(msg, timestamp)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save score report: %w", result.Error)
	}
	return nil
}

// ListAll returns all stored reports in insertion order
func (r *GormScoreReportRepository) ListAll(ctx context.Context) ([]StoredReport, error) {
	var models []ScoreReportModel
	result := r.db.WithContext(ctx).Order("id").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list score reports: %w", result.Error)
	}

	reports := make([]StoredReport, 0, len(models))
	for i := range models {
		report, err := modelToReport(&models[i])
		if err != nil {
			continue // Skip unreadable reports
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// Replay feeds all stored reports into a score list
func (r *GormScoreReportRepository) Replay(ctx context.Context, list *score.TurnScoreList) error {
	reports, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, report := range reports {
		list.AddMessageInformation(report.Message, report.Timestamp)
	}
	return nil
}

func reportToModel(msg score.Message, timestamp shared.Timestamp) (*ScoreReportModel, error) {
	values := make(map[string]int32, len(msg.Values))
	for player, v := range msg.Values {
		values[strconv.Itoa(player)] = v
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to encode score values: %w", err)
	}

	model := &ScoreReportModel{
		ScoreID:    int16(msg.ID),
		Name:       msg.Name,
		TurnNumber: msg.TurnNumber,
		Timestamp:  timestamp.String(),
		Values:     string(encoded),
	}
	if v, ok := msg.TurnLimit.Get(); ok {
		limit := int16(v)
		model.TurnLimit = &limit
	}
	if v, ok := msg.WinLimit.Get(); ok {
		limit := v
		model.WinLimit = &limit
	}
	return model, nil
}

func modelToReport(model *ScoreReportModel) (StoredReport, error) {
	var encoded map[string]int32
	if model.Values != "" {
		if err := json.Unmarshal([]byte(model.Values), &encoded); err != nil {
			return StoredReport{}, fmt.Errorf("failed to decode score values: %w", err)
		}
	}

	values := make(map[int]int32, len(encoded))
	for key, v := range encoded {
		player, err := strconv.Atoi(key)
		if err != nil {
			return StoredReport{}, fmt.Errorf("invalid player key %q: %w", key, err)
		}
		values[player] = v
	}

	msg := score.Message{
		ID:         score.ScoreID(model.ScoreID),
		Name:       model.Name,
		TurnNumber: model.TurnNumber,
		Values:     values,
	}
	if model.TurnLimit != nil {
		msg.TurnLimit = shared.NewValue(int32(*model.TurnLimit))
	}
	if model.WinLimit != nil {
		msg.WinLimit = shared.NewValue(*model.WinLimit)
	}

	return StoredReport{
		Message:   msg,
		Timestamp: shared.ParseTimestamp([]byte(model.Timestamp)),
	}, nil
}
