package config

import "github.com/vijay-prabhu/tutormatch/internal/geo"

// Config represents the application configuration
type Config struct {
	Database  DatabaseConfig  `toml:"database"`
	Search    SearchConfig    `toml:"search"`
	Recommend RecommendConfig `toml:"recommend"`
	Geocode   GeocodeConfig   `toml:"geocode"`
	Logging   LoggingConfig   `toml:"logging"`
	MCP       MCPConfig       `toml:"mcp"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// SearchConfig contains filter settings
type SearchConfig struct {
	// BrowseLimit is how many tutors a search without criteria returns
	BrowseLimit int `toml:"browse_limit"`
}

// RecommendConfig contains ranking settings
type RecommendConfig struct {
	// Limit caps the number of recommendations shown; 0 shows all
	Limit int `toml:"limit"`
}

// GeocodeConfig extends the built-in city table used to place addresses
type GeocodeConfig struct {
	Cities map[string]geo.Coordinates `toml:"cities"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "~/.local/share/tutormatch/tutormatch.db",
		},
		Search: SearchConfig{
			BrowseLimit: 6,
		},
		Recommend: RecommendConfig{
			Limit: 10,
		},
		Geocode: GeocodeConfig{
			Cities: map[string]geo.Coordinates{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}
