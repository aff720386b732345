package config

import "time"

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Type is the database backend: sqlite or postgres
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`

	// Path is the database file for SQLite (or ":memory:")
	Path string `mapstructure:"path"`

	// URL is a full connection string (overrides individual fields)
	URL string `mapstructure:"url"`

	// Individual PostgreSQL connection fields
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`

	// Pool holds connection pool settings (PostgreSQL only)
	Pool PoolConfig `mapstructure:"pool"`
}

// PoolConfig holds connection pool configuration
type PoolConfig struct {
	MaxOpen     int           `mapstructure:"max_open"`
	MaxIdle     int           `mapstructure:"max_idle"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
}
