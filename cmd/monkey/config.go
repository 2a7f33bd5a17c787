package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mgomes/monkey/monkey"
)

const (
	defaultPrompt      = ">> "
	defaultHistoryFile = ".monkey_history"
)

// cliConfig is the document read by -config. The engine section uses the
// same keys as monkey.LoadConfig.
type cliConfig struct {
	Engine monkey.Config `yaml:"engine"`
	REPL   replSettings  `yaml:"repl"`
}

type replSettings struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Plain       bool   `yaml:"plain"`
}

func loadCLIConfig(path string) (cliConfig, error) {
	var cfg cliConfig
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return cliConfig{}, fmt.Errorf("read config: %w", err)
		}
		defer file.Close()

		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cliConfig{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if cfg.REPL.Prompt == "" {
		cfg.REPL.Prompt = defaultPrompt
	}
	if cfg.REPL.HistoryFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.REPL.HistoryFile = filepath.Join(home, defaultHistoryFile)
		}
	}
	return cfg, nil
}
