package persistence

// ArchivedTurnModel represents the archived_turns table: one row per
// (player, turn) the local archive holds data for.
type ArchivedTurnModel struct {
	PlayerID   int    `gorm:"column:player_id;primaryKey"`
	TurnNumber int    `gorm:"column:turn_number;primaryKey"`
	Timestamp  string `gorm:"column:timestamp;not null"`             // 18-char host stamp
	Complete   int    `gorm:"column:complete;not null;default:0"`    // 0 or 1 (SQLite compatible)
}

func (ArchivedTurnModel) TableName() string {
	return "archived_turns"
}

// ScoreReportModel represents the score_reports table: score data extracted
// from host messages, replayed into the in-memory score list on startup.
type ScoreReportModel struct {
	ID         int    `gorm:"column:id;primaryKey;autoIncrement"`
	ScoreID    int16  `gorm:"column:score_id;not null;default:0"` // 0 = identified by name
	Name       string `gorm:"column:name"`
	TurnNumber int    `gorm:"column:turn_number;not null"`
	Timestamp  string `gorm:"column:timestamp;not null"` // 18-char host stamp
	TurnLimit  *int16 `gorm:"column:turn_limit"`
	WinLimit   *int32 `gorm:"column:win_limit"`
	Values     string `gorm:"column:player_values;type:text"` // player→value map as JSON text
}

func (ScoreReportModel) TableName() string {
	return "score_reports"
}
