package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Search.BrowseLimit != 6 {
		t.Errorf("expected BrowseLimit=6, got %d", cfg.Search.BrowseLimit)
	}

	if cfg.Recommend.Limit != 10 {
		t.Errorf("expected Limit=10, got %d", cfg.Recommend.Limit)
	}

	if cfg.Logging.Output != "stderr" {
		t.Errorf("expected Output=stderr, got %s", cfg.Logging.Output)
	}

	if cfg.MCP.Transport != "stdio" {
		t.Errorf("expected Transport=stdio, got %s", cfg.MCP.Transport)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "missing database path",
			modify: func(c *Config) {
				c.Database.Path = ""
			},
			wantErr: true,
		},
		{
			name: "invalid browse limit",
			modify: func(c *Config) {
				c.Search.BrowseLimit = 0
			},
			wantErr: true,
		},
		{
			name: "negative recommend limit",
			modify: func(c *Config) {
				c.Recommend.Limit = -1
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			modify: func(c *Config) {
				c.Logging.Level = "verbose"
			},
			wantErr: true,
		},
		{
			name: "invalid log format",
			modify: func(c *Config) {
				c.Logging.Format = "xml"
			},
			wantErr: true,
		},
		{
			name: "invalid mcp transport",
			modify: func(c *Config) {
				c.MCP.Transport = "http"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		result, err := expandPath(tt.input)
		if err != nil {
			t.Errorf("expandPath(%q) error: %v", tt.input, err)
		}
		if result != tt.expected {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	data := `
[database]
path = "` + filepath.Join(dir, "tutors.db") + `"

[search]
browse_limit = 3

[geocode.cities]
mysore = { lat = 12.2958, lng = 76.6394 }

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Search.BrowseLimit != 3 {
		t.Errorf("BrowseLimit = %d, want 3", cfg.Search.BrowseLimit)
	}
	if cfg.Recommend.Limit != 10 {
		t.Errorf("Limit = %d, want default 10", cfg.Recommend.Limit)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Format = %s, want json", cfg.Logging.Format)
	}

	mysore, ok := cfg.Geocode.Cities["mysore"]
	if !ok {
		t.Fatal("expected mysore in geocode cities")
	}
	if mysore.Lat != 12.2958 || mysore.Lng != 76.6394 {
		t.Errorf("mysore = %+v, want {12.2958 76.6394}", mysore)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil || !strings.Contains(err.Error(), "config init") {
		t.Errorf("expected not-found hint, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.toml")
	if err := os.WriteFile(invalid, []byte("[search]\nbrowse_limit = 0\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected validation error for browse_limit = 0")
	}

	malformed := filepath.Join(dir, "malformed.toml")
	if err := os.WriteFile(malformed, []byte("[search\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(malformed); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}
	if strings.HasPrefix(cfg.Database.Path, "~") {
		t.Errorf("expected expanded database path, got %s", cfg.Database.Path)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Database.Path = filepath.Join(dir, "data", "tutors.db")
	cfg.Logging.Output = filepath.Join(dir, "logs", "tutormatch.log")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error: %v", err)
	}

	for _, sub := range []string{"data", "logs"} {
		if info, err := os.Stat(filepath.Join(dir, sub)); err != nil || !info.IsDir() {
			t.Errorf("expected directory %s to exist", sub)
		}
	}
}
