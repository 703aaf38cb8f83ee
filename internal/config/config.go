// Package config loads the settings shared by the demo binaries from an
// optional YAML file and command-line overrides.
package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plus3/ecsdemos/internal/logger"
)

type Config struct {
	Window WindowConfig  `yaml:"window"`
	Assets AssetsConfig  `yaml:"assets"`
	Log    logger.Config `yaml:"log"`
	// Debug enables the Dear ImGui overlay.
	Debug bool `yaml:"debug"`
	// TPS is the fixed update rate.
	TPS int `yaml:"tps"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type AssetsConfig struct {
	Root string `yaml:"root"`
	// Watch reloads fonts when files under Root change. A missing Root
	// disables watching with a warning.
	Watch bool `yaml:"watch"`
}

// Default returns the configuration used when no file is given.
func Default(title string) Config {
	return Config{
		Window: WindowConfig{Title: title, Width: 1280, Height: 720},
		Assets: AssetsConfig{Root: "assets"},
		Log:    logger.DefaultConfig(),
		TPS:    60,
	}
}

// Load overlays the YAML file at path onto base. Keys missing from the file
// keep their base values.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: load %s: %w", path, err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings no window can be opened with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", c.TPS)
	}
	return nil
}

// Parse registers -config, -log-level and -debug on fs, parses args and
// returns base overlaid with the config file and then the flags.
func Parse(fs *flag.FlagSet, args []string, base Config) (Config, error) {
	path := fs.String("config", "", "Path to a YAML config file.")
	level := fs.String("log-level", "", "Override the log level (debug, info, warn, error).")
	debug := fs.Bool("debug", base.Debug, "Show the ECS debug overlay.")
	if err := fs.Parse(args); err != nil {
		return base, err
	}

	cfg := base
	if *path != "" {
		var err error
		if cfg, err = Load(*path, base); err != nil {
			return base, err
		}
	}
	if *level != "" {
		cfg.Log.Level = *level
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "debug" {
			cfg.Debug = *debug
		}
	})
	return cfg, nil
}
