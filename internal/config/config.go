package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the persistent client configuration.
type Config struct {
	// Search backend
	API APIConfig `json:"api"`

	// Input and results behaviour
	Search SearchConfig `json:"search"`

	// UI preferences
	UI UIConfig `json:"ui"`

	// Diagnostics
	Diagnostics DiagnosticsConfig `json:"diagnostics"`
}

// APIConfig locates the search backend.
type APIConfig struct {
	BaseURL string   `json:"base_url"`
	Timeout Duration `json:"timeout"`
}

// SearchConfig tunes the session.
type SearchConfig struct {
	TopK       int `json:"top_k"`
	DebounceMs int `json:"debounce_ms"`
}

// UIConfig holds UI preferences.
type UIConfig struct {
	AltScreen bool `json:"alt_screen"`
}

// DiagnosticsConfig controls the JSONL event log and debug overlay.
type DiagnosticsConfig struct {
	EventLog bool `json:"event_log"`
	RingSize int  `json:"ring_size"`
}

// Duration is a time.Duration that reads and writes as "30s".
type Duration time.Duration

// Std converts to time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// Plain numbers are seconds.
		var n float64
		if err2 := json.Unmarshal(b, &n); err2 != nil {
			return fmt.Errorf("config: duration must be a string like \"30s\": %w", err)
		}
		*d = Duration(n * float64(time.Second))
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	*d = Duration(v)
	return nil
}

// DefaultConfig returns the defaults.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: Duration(30 * time.Second),
		},
		Search: SearchConfig{
			TopK:       50,
			DebounceMs: 500,
		},
		UI: UIConfig{
			AltScreen: true,
		},
		Diagnostics: DiagnosticsConfig{
			EventLog: true,
			RingSize: 512,
		},
	}
}

// Dir is the data directory: $BOOKFINDER_HOME or ~/.bookfinder.
func Dir() string {
	if d := os.Getenv("BOOKFINDER_HOME"); d != "" {
		return d
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".bookfinder")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(Dir(), "config.json")
}

// EventLogPath returns the path of the JSONL diagnostic log.
func EventLogPath() string {
	return filepath.Join(Dir(), "bookfinder.events.jsonl")
}

// CatalogPath returns the development backend's default catalog database.
func CatalogPath() string {
	return filepath.Join(Dir(), "catalog.db")
}

// Load reads .env (if present), then the config file (or defaults), then
// applies environment overrides.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadFrom(ConfigPath())
}

// LoadFrom is Load without the .env step, reading path.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg.fillDefaults()
	return cfg, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() error {
	// The web frontend's variable is honoured so one .env serves both.
	if v := os.Getenv("NEXT_PUBLIC_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("BOOKFINDER_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("BOOKFINDER_TOP_K"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("config: BOOKFINDER_TOP_K must be a positive integer, got %q", v)
		}
		c.Search.TopK = n
	}
	if v := os.Getenv("BOOKFINDER_DEBOUNCE_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("config: BOOKFINDER_DEBOUNCE_MS must be a positive integer, got %q", v)
		}
		c.Search.DebounceMs = n
	}
	if v := os.Getenv("BOOKFINDER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: BOOKFINDER_TIMEOUT: %w", err)
		}
		c.API.Timeout = Duration(d)
	}
	return nil
}

func (c *Config) fillDefaults() {
	def := DefaultConfig()
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.BaseURL == "" {
		c.API.BaseURL = def.API.BaseURL
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = def.API.Timeout
	}
	if c.Search.TopK <= 0 {
		c.Search.TopK = def.Search.TopK
	}
	if c.Search.DebounceMs <= 0 {
		c.Search.DebounceMs = def.Search.DebounceMs
	}
	if c.Diagnostics.RingSize <= 0 {
		c.Diagnostics.RingSize = def.Diagnostics.RingSize
	}
}

// DebounceDelay is Search.DebounceMs as a duration.
func (c *Config) DebounceDelay() time.Duration {
	return time.Duration(c.Search.DebounceMs) * time.Millisecond
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
