// Binaries use flags and a single optional config file for configuration.
// A config file is stored in YAML format and contains the values that can be set via flags.
// Every leaf field of Config names its flag through a `flag` struct tag; flags stay the source of truth.

package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

var configFilePath = flag.String("config_file", "", "Path to the YAML configuration file.")

// Config is the schema of the config file. Nil fields keep their flag defaults.
type Config struct {
	Log   *LogConfig   `yaml:"log"`
	Sort  *SortConfig  `yaml:"sort"`
	Shell *ShellConfig `yaml:"shell"`
}

type LogConfig struct {
	HandlerType *string `yaml:"handler_type" flag:"log_handler_type"`
	Level       *string `yaml:"level" flag:"log_level"`
}

// SortConfig configures the bubblesort binary.
type SortConfig struct {
	Input      *string `yaml:"input" flag:"input"`
	Descending *bool   `yaml:"descending" flag:"descending"`
}

// ShellConfig configures the linkedlist binary.
type ShellConfig struct {
	Script *string `yaml:"script" flag:"script"`
	Prompt *string `yaml:"prompt" flag:"prompt"`
}

// Load parses the given YAML `content`. Unknown keys are rejected.
func Load(content []byte) (*Config, error) {
	conf := new(Config)
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(conf); err != nil && !errors.Is(err, io.EOF) { // EOF means an empty document.
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return conf, nil
}

// InitFlags initializes the flags from the config file specified by the -config_file flag.
// It should be called after defining all flags and before using them.
func InitFlags() {
	flag.Parse()

	if *configFilePath == "" {
		slog.Debug("Config file not specified. Skipping config initialization.")
		return
	}

	// Read config file.
	configBytes, err := os.ReadFile(*configFilePath)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("Config file does not exist.", "path", *configFilePath, "error", err)
		return
	}
	if err != nil { // If the config file cannot be read, we skip loading and use default flag values.
		slog.Error("Failed to read config file.", "error", err)
		return
	}

	// Apply configurations.
	conf, err := Load(configBytes)
	if err != nil {
		slog.Error("Failed to parse config file.", "path", *configFilePath, "error", err)
		return
	}
	if err := setConfigFlags(conf); err != nil {
		slog.Error("Failed to set flags from config file.", "error", err)
		return
	}
}
