package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// EnvFile is the optional dotenv file read from the working directory.
const EnvFile = ".env"

// Environment variables that override file settings.
const (
	EnvCols         = "SNAKE_COLS"
	EnvRows         = "SNAKE_ROWS"
	EnvMoveInterval = "SNAKE_MOVE_INTERVAL"
	EnvCollision    = "SNAKE_COLLISION"
)

// LookupFunc resolves an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadSnake loads the Snake configuration.
// Search order: customPath -> ~/.gridsnake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Environment variables (and .env) are applied on top, then the result is validated.
func LoadSnake(customPath string) (SnakeConfig, error) {
	lookup, err := envLookup(EnvFile)
	if err != nil {
		return SnakeConfig{}, err
	}

	var search []string
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		search = append(search, userCfgPath)
	}
	search = append(search, filepath.Join("configs", "snake.yaml"))

	return loadSnake(customPath, search, lookup)
}

// loadSnake is LoadSnake with the search path and environment injected.
func loadSnake(customPath string, search []string, lookup LookupFunc) (SnakeConfig, error) {
	cfg := embeddedDefault()

	if customPath != "" {
		// A custom path is explicit, so every failure is reported.
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if cfg, err = decodeOver(cfg, data); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
	} else {
		// Implicit locations are best effort: first readable, parseable file wins.
		for _, path := range search {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if next, err := decodeOver(cfg, data); err == nil {
				cfg = next
				break
			}
		}
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (SnakeConfig, error) {
	cfg, err := decodeOver(embeddedDefault(), data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// embeddedDefault decodes the embedded YAML, falling back to the hardcoded defaults.
func embeddedDefault() SnakeConfig {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig()
	}
	return cfg
}

// decodeOver decodes data on top of base so that missing keys keep their base value.
func decodeOver(base SnakeConfig, data []byte) (SnakeConfig, error) {
	next := base
	next.Start.Body = append([]core.Point(nil), base.Start.Body...)
	if err := yaml.Unmarshal(data, &next); err != nil {
		return base, err
	}
	return next, nil
}

// envLookup merges the process environment with an optional dotenv file.
// Real environment variables win over the file.
func envLookup(path string) (LookupFunc, error) {
	fileVars, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		fileVars = nil
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}, nil
}

// applyEnv overrides cfg fields from environment variables.
func applyEnv(cfg *SnakeConfig, lookup LookupFunc) error {
	if lookup == nil {
		return nil
	}

	if v, ok := lookup(EnvCols); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvCols, v, err)
		}
		cfg.Grid.Cols = n
	}

	if v, ok := lookup(EnvRows); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvRows, v, err)
		}
		cfg.Grid.Rows = n
	}

	if v, ok := lookup(EnvMoveInterval); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvMoveInterval, v, err)
		}
		cfg.Timing.MoveInterval = d
	}

	if v, ok := lookup(EnvCollision); ok && v != "" {
		cfg.Rules.Collision = CollisionRule(v)
	}

	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridsnake", "configs", filename)
}
