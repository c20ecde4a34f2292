package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file and overlays it onto the defaults, so a config file
// only needs to mention the values it changes.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
