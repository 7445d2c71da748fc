package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "tinybasic.yml"

type fileConfig struct {
	Prompt   string `yaml:"prompt"`
	Autoload string `yaml:"autoload"`
	NoColor  bool   `yaml:"no_color"`
}

type appConfig struct {
	prompt   string
	loadPath string
	noColor  bool
}

// loadConfig reads the YAML config when present. A missing file is only
// an error when the user named it explicitly.
func loadConfig(path string) (appConfig, error) {
	cfg := appConfig{prompt: "> "}
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return appConfig{}, err
		}
		return cfg, nil
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return appConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	if fc.Prompt != "" {
		cfg.prompt = fc.Prompt
	}
	cfg.loadPath = fc.Autoload
	cfg.noColor = fc.NoColor
	return cfg, nil
}
