// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/caiyu1999/ai4s-qiuzhao/internal/logger"
)

const (
	envPrefix = "OPENEVOLVE_"

	defaultLogLevel = "DEBUG"
)

var (
	// ErrConfigNotValid is returned when the loaded configuration fails validation.
	ErrConfigNotValid = errors.New("logging configuration not valid")
	// ErrParsing reports failures that occur while decoding configuration files.
	ErrParsing = errors.New("error parsing")
)

// Config holds the settings used to configure the logging sink.
type Config struct {
	LogDir     string `env:"LOG_DIR" json:"logDir" yaml:"logDir"`
	LogLevel   string `env:"LOG_LEVEL" json:"logLevel" yaml:"logLevel"`
	FilePrefix string `env:"LOG_FILE_PREFIX" json:"filePrefix" yaml:"filePrefix"`
	Console    bool   `env:"LOG_CONSOLE" json:"console" yaml:"console"`
}

// Default returns the configuration used when nothing is set: DEBUG level, no file, no console.
func Default() *Config {
	return &Config{
		LogLevel:   defaultLogLevel,
		FilePrefix: logger.DefaultFilePrefix,
	}
}

// Load builds the configuration starting from the defaults, then applies the YAML file at path
// when path is not empty, then the OPENEVOLVE_* environment variables that are set.
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		if err := config.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(config, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotValid, err.Error())
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) loadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config file %q: %w", path, err)
	}
	defer file.Close()

	return c.decode(file, path)
}

func (c *Config) decode(reader io.Reader, path string) error {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w %q: %s", ErrParsing, path, err.Error())
	}
	return nil
}

// Validate checks the configured values and reports every invalid field at once.
func (c *Config) Validate() error {
	configErrors := make([]string, 0)

	if c.FilePrefix == "" {
		configErrors = append(configErrors, "file prefix cannot be empty")
	}
	if strings.ContainsAny(c.FilePrefix, `/\`) {
		configErrors = append(configErrors, "file prefix cannot contain path separators")
	}

	if len(configErrors) > 0 {
		return fmt.Errorf("%w: %s", ErrConfigNotValid, strings.Join(configErrors, ", "))
	}
	return nil
}

// NewSink creates a sink from the configuration and configures it. When Console is set,
// console is attached as an additional destination.
func (c *Config) NewSink(console io.Writer, opts ...logger.SinkOption) (*logger.Sink, error) {
	opts = append([]logger.SinkOption{logger.WithFilePrefix(c.FilePrefix)}, opts...)
	sink := logger.NewSink(opts...)
	if err := sink.Configure(c.LogDir, c.LogLevel); err != nil {
		return nil, err
	}

	if c.Console {
		sink.AddConsole(console)
	}
	return sink, nil
}
