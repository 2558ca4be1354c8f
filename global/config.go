package global

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nathanieltooley/pokefactory/factory"
	"gopkg.in/yaml.v3"
)

// Config drives a rollout run. Zero values are filled in by populateConfig.
type Config struct {
	Seed      uint32 `yaml:"seed"`
	Battles   int    `yaml:"battles"`
	Workers   int    `yaml:"workers"`
	Challenge int    `yaml:"challenge"`
	OpenLevel bool   `yaml:"open_level"`
	Level     int    `yaml:"level"`
	MaxTurns  int    `yaml:"max_turns"`
	Debug     bool   `yaml:"debug"`
	LogFile   string `yaml:"log_file"`
}

const (
	DEFAULT_BATTLES   = 100
	DEFAULT_MAX_TURNS = 200
)

var Opt = populateConfig(Config{})

// LoadConfig reads a YAML config from path. A missing file is not an error and gives the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return populateConfig(Config{}), nil
	}

	contents, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return populateConfig(Config{}), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	return ParseConfig(contents)
}

func ParseConfig(contents []byte) (Config, error) {
	config := Config{}
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return populateConfig(config), nil
}

func SaveConfig(path string, config Config) error {
	contents, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, contents, 0644)
}

func populateConfig(config Config) Config {
	if config.Battles <= 0 {
		config.Battles = DEFAULT_BATTLES
	}
	if config.Level <= 0 {
		config.Level = factory.Level(config.OpenLevel)
	}
	if config.MaxTurns <= 0 {
		config.MaxTurns = DEFAULT_MAX_TURNS
	}
	if config.Challenge < 0 {
		config.Challenge = 0
	}

	return config
}
