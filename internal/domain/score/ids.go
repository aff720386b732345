// Package score implements the per-turn score time series: ordered turn
// records with a dynamic slot schema, derived compound scores, and the
// chart/table builders that pivot the series for display.
package score

// Slot is an index into a turn record's per-score-kind value array.
// Once a slot has been assigned to a score id it is never reassigned,
// so slot indices may be cached and reused safely.
type Slot int

// ScoreID identifies a category of tracked statistic. Small negative values
// are reserved for counters derived by the client itself; positive values
// are defined by the host's score files or messages.
type ScoreID int16

const (
	// ScoreIDPlanets counts planets owned
	ScoreIDPlanets ScoreID = -1

	// ScoreIDCapital counts capital (armed) ships
	ScoreIDCapital ScoreID = -2

	// ScoreIDFreighters counts unarmed freighters
	ScoreIDFreighters ScoreID = -3

	// ScoreIDBases counts starbases
	ScoreIDBases ScoreID = -4

	// ScoreIDScore is the host's generic score column
	ScoreIDScore ScoreID = 1

	// ScoreIDBuildPoints counts priority build points / player activity levels
	ScoreIDBuildPoints ScoreID = 2

	// ScoreIDMinesAllowed is the legacy "minefields allowed" counter
	ScoreIDMinesAllowed ScoreID = 3

	// ScoreIDMinesLaid is the legacy "minefields laid" counter
	ScoreIDMinesLaid ScoreID = 4
)

// firstSynthesizedID is where ids invented for unnamed incoming score data
// start, clear of both the built-ins and the classic file-defined range.
const firstSynthesizedID ScoreID = 1000

// DefaultKind names a canonical compound score with fixed weights
type DefaultKind int

const (
	// TotalShips is freighters + capital ships
	TotalShips DefaultKind = iota

	// TimScore is the classic host score:
	// freighters + 10*capital + 10*planets + 120*bases
	TimScore
)
