package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mmcdole/splitpane/internal/split"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Splitter SplitterConfig `mapstructure:"splitter"`
	Panes    []PaneConfig   `mapstructure:"panes"`
	UI       UIConfig       `mapstructure:"ui"`
	Store    StoreConfig    `mapstructure:"store"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// SplitterConfig mirrors split.Options for the fields a config file can set.
// Sizes are in cells; the terminal maps one cell to one pixel.
type SplitterConfig struct {
	Direction     string    `mapstructure:"direction"` // "horizontal" or "vertical"
	Sizes         []float64 `mapstructure:"sizes"`     // Percentages, one per pane
	MinSize       float64   `mapstructure:"min_size"`
	GutterSize    float64   `mapstructure:"gutter_size"`
	SnapOffset    float64   `mapstructure:"snap_offset"`
	DragInterval  float64   `mapstructure:"drag_interval"`
	PushablePanes bool      `mapstructure:"pushable_panes"`
	Cursor        string    `mapstructure:"cursor"`
}

// PaneConfig describes one pane
type PaneConfig struct {
	ID      string  `mapstructure:"id"`
	Title   string  `mapstructure:"title"`
	Body    string  `mapstructure:"body"`
	MinSize float64 `mapstructure:"min_size"` // Overrides splitter.min_size when set
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme    string `mapstructure:"theme"`
	Layout   string `mapstructure:"layout"`    // Layout restored at startup
	AutoSave bool   `mapstructure:"auto_save"` // Save the layout after every drag
}

// StoreConfig holds layout storage configuration
type StoreConfig struct {
	Dir string `mapstructure:"dir"` // Empty keeps layouts in memory
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Splitter: SplitterConfig{
			Direction:  string(split.Horizontal),
			MinSize:    8,
			GutterSize: 1,
			SnapOffset: 3,
		},
		Panes: []PaneConfig{
			{ID: "files", Title: "Files"},
			{ID: "editor", Title: "Editor"},
			{ID: "preview", Title: "Preview"},
		},
		UI: UIConfig{
			Theme:  "default",
			Layout: "default",
		},
		Store: StoreConfig{
			Dir: defaultDataPath(),
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "splitview.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "splitview")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "splitview")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "splitview")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "splitview")
	}
}

// ConfigFile returns the path SaveConfig writes to
func ConfigFile() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}

// LoadConfig loads configuration from the default locations and environment
func LoadConfig() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(defaultConfigPath())
	v.AddConfigPath(".")
	return load(v)
}

// LoadConfigFile loads configuration from an explicit file and environment
func LoadConfigFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	return load(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides, e.g. SPLITVIEW_SPLITTER_GUTTER_SIZE
	v.SetEnvPrefix("SPLITVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Scalar keys must be known to viper for env overrides to apply
	d := DefaultConfig()
	v.SetDefault("splitter.direction", d.Splitter.Direction)
	v.SetDefault("splitter.min_size", d.Splitter.MinSize)
	v.SetDefault("splitter.gutter_size", d.Splitter.GutterSize)
	v.SetDefault("splitter.snap_offset", d.Splitter.SnapOffset)
	v.SetDefault("splitter.drag_interval", d.Splitter.DragInterval)
	v.SetDefault("splitter.pushable_panes", d.Splitter.PushablePanes)
	v.SetDefault("splitter.cursor", d.Splitter.Cursor)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.layout", d.UI.Layout)
	v.SetDefault("ui.auto_save", d.UI.AutoSave)
	v.SetDefault("store.dir", d.Store.Dir)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.level", d.Logging.Level)
	return v
}

func load(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	// A configured pane list replaces the defaults rather than merging into them
	if v.IsSet("panes") {
		cfg.Panes = nil
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations no splitter can be built from
func (c *Config) Validate() error {
	if len(c.Panes) == 0 {
		return errors.New("config: at least one pane is required")
	}
	seen := make(map[string]bool, len(c.Panes))
	for i, p := range c.Panes {
		if p.ID == "" {
			return fmt.Errorf("config: pane %d has no id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("config: duplicate pane id %q", p.ID)
		}
		seen[p.ID] = true
	}
	if s := c.Splitter.Sizes; len(s) > 0 && len(s) != len(c.Panes) {
		return fmt.Errorf("config: %d sizes for %d panes", len(s), len(c.Panes))
	}
	switch split.Direction(c.Splitter.Direction) {
	case split.Horizontal, split.Vertical:
	default:
		return fmt.Errorf("config: unknown direction %q", c.Splitter.Direction)
	}
	return nil
}

// Options converts the splitter configuration to split options
func (c *Config) Options() []split.Option {
	s := c.Splitter
	opts := []split.Option{
		split.WithDirection(split.Direction(s.Direction)),
		split.WithMinSize(s.MinSize),
		split.WithGutterSize(s.GutterSize),
		split.WithSnapOffset(s.SnapOffset),
		split.WithDragInterval(s.DragInterval),
		split.WithPushablePanes(s.PushablePanes),
		split.WithCursor(s.Cursor),
	}
	if len(s.Sizes) == len(c.Panes) {
		opts = append(opts, split.WithSizes(s.Sizes...))
	}

	perPane := false
	mins := make([]float64, len(c.Panes))
	for i, p := range c.Panes {
		mins[i] = s.MinSize
		if p.MinSize > 0 {
			mins[i] = p.MinSize
			perPane = true
		}
	}
	if perPane {
		opts = append(opts, split.WithMinSizes(mins...))
	}
	return opts
}

// SaveConfig saves the configuration to ConfigFile
func SaveConfig(cfg *Config) error {
	if err := os.MkdirAll(defaultConfigPath(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return SaveConfigFile(cfg, ConfigFile())
}

// SaveConfigFile writes the configuration as yaml to path
func SaveConfigFile(cfg *Config, path string) error {
	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("splitter.direction", cfg.Splitter.Direction)
	v.Set("splitter.sizes", cfg.Splitter.Sizes)
	v.Set("splitter.min_size", cfg.Splitter.MinSize)
	v.Set("splitter.gutter_size", cfg.Splitter.GutterSize)
	v.Set("splitter.snap_offset", cfg.Splitter.SnapOffset)
	v.Set("splitter.drag_interval", cfg.Splitter.DragInterval)
	v.Set("splitter.pushable_panes", cfg.Splitter.PushablePanes)
	v.Set("splitter.cursor", cfg.Splitter.Cursor)

	panes := make([]map[string]any, len(cfg.Panes))
	for i, p := range cfg.Panes {
		panes[i] = map[string]any{"id": p.ID, "title": p.Title, "body": p.Body, "min_size": p.MinSize}
	}
	v.Set("panes", panes)

	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.layout", cfg.UI.Layout)
	v.Set("ui.auto_save", cfg.UI.AutoSave)
	v.Set("store.dir", cfg.Store.Dir)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
