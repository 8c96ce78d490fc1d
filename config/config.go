package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/obslog"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Log   LogConfig   `yaml:"log"`
	Color bool        `yaml:"color"`
	FEN   string      `yaml:"fen"`
	Perft PerftConfig `yaml:"perft"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type PerftConfig struct {
	Parallel bool `yaml:"parallel"`
	Verbose  bool `yaml:"verbose"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: obslog.FormatLegacy,
		},
		Color: true,
		FEN:   board.DefaultStartingPositionFEN,
		Perft: PerftConfig{
			Parallel: true,
		},
	}
}

// Load reads the YAML file at path on top of Default, then applies CHESSRULES_* environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("CHESSRULES_LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSRULES_LOG_FORMAT")); v != "" {
		cfg.Log.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSRULES_LOG_FILE")); v != "" {
		cfg.Log.File = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESSRULES_COLOR")); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			cfg.Color = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("CHESSRULES_FEN")); v != "" {
		cfg.FEN = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !obslog.ValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", obslog.FormatLegacy, obslog.FormatJSON, obslog.FormatConsole:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if _, _, err := board.NewBoard(board.WithFEN(c.FEN)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) LogOptions() obslog.Options {
	return obslog.Options{
		Level:  c.Log.Level,
		Format: c.Log.Format,
		File:   c.Log.File,
	}
}
