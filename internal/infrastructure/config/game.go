package config

// GameConfig holds the game/ruleset settings the score subsystem consults
type GameConfig struct {
	// ViewpointPlayer is the player number this client plays as
	ViewpointPlayer int `mapstructure:"viewpoint_player" validate:"min=1,max=31"`

	// HostType is the host program family: host or phost
	HostType string `mapstructure:"host_type" validate:"required,oneof=host phost"`

	// HostVersion is the encoded host version (major*1000 + minor)
	HostVersion int `mapstructure:"host_version"`

	// BuildQueue is the build queue mode: PBP, PAL or Fifo
	BuildQueue string `mapstructure:"build_queue" validate:"required,oneof=PBP PAL Fifo"`

	// PALDecayPerTurn is the per-turn activity decay percentage (PHost only)
	PALDecayPerTurn int `mapstructure:"pal_decay_per_turn" validate:"min=0,max=100"`

	// CurrentTurn is the newest turn of the running game
	CurrentTurn int `mapstructure:"current_turn" validate:"min=1"`

	// Players maps player number to short display name
	Players map[int]string `mapstructure:"players"`

	// Teams maps player number to team number (unset = own team)
	Teams map[int]int `mapstructure:"teams"`

	// TeamNames maps team number to display name
	TeamNames map[int]string `mapstructure:"team_names"`
}
