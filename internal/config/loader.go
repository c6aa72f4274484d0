package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSnake returns the compiled-in configuration.
// Falls back to DefaultSnakeConfig if the embedded YAML does not parse.
func LoadSnake() (SnakeConfig, error) {
	cfg, err := ParseSnake(defaultSnakeYAML)
	if err != nil {
		cfg = DefaultSnakeConfig()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseSnake decodes YAML on top of the defaults, so omitted fields keep their default values.
func ParseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse snake config: %w", err)
	}
	return cfg, nil
}
