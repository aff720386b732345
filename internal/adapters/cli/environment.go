package cli

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/davidrhall/conquest-go/internal/adapters/persistence"
	"github.com/davidrhall/conquest-go/internal/domain/game"
	"github.com/davidrhall/conquest-go/internal/domain/score"
	"github.com/davidrhall/conquest-go/internal/infrastructure/config"
	"github.com/davidrhall/conquest-go/internal/infrastructure/database"
)

// openDatabase loads configuration and connects to the local database
func openDatabase(configPath string) (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return cfg, db, nil
}

// loadScores rebuilds the in-memory score list from stored reports
func loadScores(ctx context.Context, db *gorm.DB) (*score.TurnScoreList, error) {
	scores := score.NewTurnScoreList()
	reports := persistence.NewGormScoreReportRepository(db)
	if err := reports.Replay(ctx, scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// buildGameEnvironment turns configuration into the player directory and
// ruleset objects the builders consume. Without configured players, the
// directory is derived from whoever has data in the score list.
func buildGameEnvironment(cfg *config.Config, scores *score.TurnScoreList) (*game.PlayerList, *game.TeamSettings, game.HostVersion, *game.HostConfiguration) {
	players := game.NewPlayerList()
	if len(cfg.Game.Players) > 0 {
		for id, name := range cfg.Game.Players {
			players.Add(id, name, true)
		}
	} else {
		for _, id := range playersWithData(scores) {
			players.Add(id, fmt.Sprintf("Player %d", id), true)
		}
	}

	teams := game.NewTeamSettings()
	teams.SetViewpointPlayer(cfg.Game.ViewpointPlayer)
	for player, team := range cfg.Game.Teams {
		teams.SetPlayerTeam(player, team)
	}
	for team, name := range cfg.Game.TeamNames {
		teams.SetTeamName(team, name)
	}

	kind := game.HostKindHost
	if cfg.Game.HostType == "phost" {
		kind = game.HostKindPHost
	}
	host := game.NewHostVersion(kind, cfg.Game.HostVersion)

	hostConfig := game.NewHostConfiguration()
	hostConfig.SetBuildQueue(cfg.Game.BuildQueue)
	for i := 1; i <= game.MaxPlayers; i++ {
		hostConfig.SetPALDecayPerTurn(i, int32(cfg.Game.PALDecayPerTurn))
	}

	return players, teams, host, hostConfig
}

// playersWithData returns the players that have at least one known value
// anywhere in the score list, ascending.
func playersWithData(scores *score.TurnScoreList) []int {
	var result []int
	for player := 1; player <= game.MaxPlayers; player++ {
		if playerHasData(scores, player) {
			result = append(result, player)
		}
	}
	return result
}

func playerHasData(scores *score.TurnScoreList, player int) bool {
	for i := 0; i < scores.NumTurns(); i++ {
		turn := scores.TurnByIndex(i)
		for slot := 0; slot < scores.NumScores(); slot++ {
			if turn.Get(score.Slot(slot), player).IsKnown() {
				return true
			}
		}
	}
	return false
}
