package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	App     AppConfig     `toml:"app"`
	Scene   SceneConfig   `toml:"scene"`
	Render  RenderConfig  `toml:"render"`
	Logging LoggingConfig `toml:"logging"`
}

type AppConfig struct {
	Title string `toml:"title"`
}

type SceneConfig struct {
	Path   string `toml:"path"`   // scene file or script directory
	Format string `toml:"format"` // "lua" or "yaml"
	Entry  string `toml:"entry"`  // lua global returning the scene table
}

type RenderConfig struct {
	FrameRate Duration `toml:"frame_rate"` // redraw interval for the terminal host
}

// Duration decodes TOML strings like "50ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the built-in configuration, used when no config file
// is given.
func Defaults() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Title: "domforge",
		},
		Scene: SceneConfig{
			Path:   "scripts",
			Format: "lua",
			Entry:  "build_scene",
		},
		Render: RenderConfig{
			FrameRate: Duration{50 * time.Millisecond},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
