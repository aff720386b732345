package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "conquest.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "conquest"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "conquest"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Game defaults
	if cfg.Game.ViewpointPlayer == 0 {
		cfg.Game.ViewpointPlayer = 1
	}
	if cfg.Game.HostType == "" {
		cfg.Game.HostType = "phost"
	}
	if cfg.Game.HostVersion == 0 {
		cfg.Game.HostVersion = 4021 // PHost 4.021
	}
	if cfg.Game.BuildQueue == "" {
		cfg.Game.BuildQueue = "PBP"
	}
	if cfg.Game.PALDecayPerTurn == 0 {
		cfg.Game.PALDecayPerTurn = 20
	}
	if cfg.Game.CurrentTurn == 0 {
		cfg.Game.CurrentTurn = 1
	}
}
