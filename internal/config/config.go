package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It holds the persisted browser state (path, window size) together with
// generator parameters and directory listing filters.
type Config struct {
	Browser struct {
		Path       string `yaml:"path"`        // Last visited path (selection encoded as "/a/b")
		Source     string `yaml:"source"`      // Column content source: random or filesystem
		Root       string `yaml:"root"`        // Directory anchoring filesystem browsing
		MaxColumns int    `yaml:"max_columns"` // Maximum number of columns (providers)
	} `yaml:"browser"`
	Generator struct {
		MinLength int `yaml:"min_length"` // Minimum generated string length
		MaxLength int `yaml:"max_length"` // Maximum generated string length
		Count     int `yaml:"count"`      // Entries generated per column
	} `yaml:"generator"`
	Listing struct {
		ShowHidden bool     `yaml:"show_hidden"` // Include dot files in listings
		Hide       []string `yaml:"hide"`        // Glob patterns for entries to hide
	} `yaml:"listing"`
	Window struct {
		Width  int `yaml:"width"`  // Saved window width hint
		Height int `yaml:"height"` // Saved window height hint
	} `yaml:"window"`
	Theme struct {
		Name     string `yaml:"name"`     // Theme name (default, dark, light)
		Primary  string `yaml:"primary"`  // Primary color for chrome
		Selected string `yaml:"selected"` // Color for the selected entry
		Muted    string `yaml:"muted"`    // Color for unselected entries
		Border   string `yaml:"border"`   // Border color for columns
	} `yaml:"theme"`
}

// LoadConfig loads configuration from the default location
// (~/.config/finder4/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "finder4", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	// Try to read the config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Browser.Path != "" {
		cfg.Browser.Path = tempCfg.Browser.Path
	}
	if tempCfg.Browser.Source != "" {
		cfg.Browser.Source = tempCfg.Browser.Source
	}
	if tempCfg.Browser.Root != "" {
		cfg.Browser.Root = tempCfg.Browser.Root
	}
	if tempCfg.Browser.MaxColumns > 0 {
		cfg.Browser.MaxColumns = tempCfg.Browser.MaxColumns
	}

	if tempCfg.Generator.MinLength > 0 {
		cfg.Generator.MinLength = tempCfg.Generator.MinLength
	}
	if tempCfg.Generator.MaxLength > 0 {
		cfg.Generator.MaxLength = tempCfg.Generator.MaxLength
	}
	if tempCfg.Generator.Count > 0 {
		cfg.Generator.Count = tempCfg.Generator.Count
	}

	cfg.Listing.ShowHidden = tempCfg.Listing.ShowHidden
	if len(tempCfg.Listing.Hide) > 0 {
		cfg.Listing.Hide = tempCfg.Listing.Hide
	}

	if tempCfg.Window.Width > 0 {
		cfg.Window.Width = tempCfg.Window.Width
	}
	if tempCfg.Window.Height > 0 {
		cfg.Window.Height = tempCfg.Window.Height
	}

	if tempCfg.Theme.Name != "" {
		cfg.ApplyTheme(tempCfg.Theme.Name)
	}

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Browser.Path = "/"
	cfg.Browser.Source = "filesystem"
	cfg.Browser.Root = string(filepath.Separator)
	cfg.Browser.MaxColumns = 7 // Matches the generated hierarchy depth

	cfg.Generator.MinLength = 5
	cfg.Generator.MaxLength = 8
	cfg.Generator.Count = 10

	cfg.Listing.ShowHidden = false
	cfg.Listing.Hide = []string{}

	cfg.Window.Width = 800
	cfg.Window.Height = 600

	cfg.ApplyTheme("default")

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal the config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write the data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "finder4", "config.yaml"), nil
}

// HidePatterns compiles the configured hide globs.
// Returns error on the first pattern that fails to compile.
func (c *Config) HidePatterns() ([]glob.Glob, error) {
	patterns := make([]glob.Glob, 0, len(c.Listing.Hide))
	for _, p := range c.Listing.Hide {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid hide pattern %q: %w", p, err)
		}
		patterns = append(patterns, g)
	}
	return patterns, nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	// Validate content source
	validSources := map[string]bool{"random": true, "filesystem": true}
	if !validSources[c.Browser.Source] {
		return fmt.Errorf("invalid browser source: %s", c.Browser.Source)
	}

	if c.Browser.MaxColumns < 1 {
		return fmt.Errorf("max_columns must be >= 1")
	}

	// Validate generator parameters
	if c.Generator.MinLength < 1 {
		return fmt.Errorf("generator min_length must be >= 1")
	}
	if c.Generator.MaxLength < c.Generator.MinLength {
		return fmt.Errorf("generator max_length must be >= min_length")
	}
	if c.Generator.Count < 0 {
		return fmt.Errorf("generator count must be >= 0")
	}

	// Validate hide patterns compile
	if _, err := c.HidePatterns(); err != nil {
		return err
	}

	// Validate the browse root when filesystem browsing is configured
	if c.Browser.Source == "filesystem" && c.Browser.Root != "" {
		info, err := os.Stat(c.Browser.Root)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("browser root does not exist: %s", c.Browser.Root)
			}
			return fmt.Errorf("error accessing browser root: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("browser root is not a directory: %s", c.Browser.Root)
		}
	}

	return nil
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Browser.Source = "random"
	cfg.Browser.MaxColumns = 3
	cfg.Generator.Count = 5
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary":  "#7B61FF",
			"selected": "#73F59F",
			"muted":    "#666666",
			"border":   "#7B61FF",
		},
		"dark": {
			"primary":  "#5F87AF",
			"selected": "#87D787",
			"muted":    "#4E4E4E",
			"border":   "#5F87AF",
		},
		"light": {
			"primary":  "#AF87FF",
			"selected": "#5FAF5F",
			"muted":    "#9E9E9E",
			"border":   "#AF87FF",
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme in the configuration.
// It updates the theme colors based on the theme name.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Selected = theme["selected"]
	c.Theme.Muted = theme["muted"]
	c.Theme.Border = theme["border"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light"}
}
