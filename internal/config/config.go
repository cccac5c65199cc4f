// Package config loads switrs-to-sqlite settings from defaults, a YAML file,
// a dotenv file and SWITRS_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nao1215/switrs"
	"github.com/nao1215/switrs/domain/record"
)

// Environment variable names
const (
	EnvOutputFile     = "SWITRS_OUTPUT_FILE"
	EnvParseError     = "SWITRS_PARSE_ERROR"
	EnvChunkSize      = "SWITRS_CHUNK_SIZE"
	EnvLogLevel       = "SWITRS_LOG_LEVEL"
	EnvManifest       = "SWITRS_MANIFEST"
	EnvMetricsPushURL = "SWITRS_METRICS_PUSH_URL"
	EnvMetricsJob     = "SWITRS_METRICS_JOB"
	EnvOnly           = "SWITRS_ONLY"
)

// Metrics holds the Pushgateway settings
type Metrics struct {
	// PushURL is the Pushgateway base URL. Empty disables pushing.
	PushURL string `yaml:"push_url"`
	// Job is the Pushgateway job name.
	Job string `yaml:"job"`
}

// Config holds every setting of a load run
type Config struct {
	OutputFile string `yaml:"output_file"`
	// ParseError is one of strict, ignore or replace.
	ParseError string `yaml:"parse_error"`
	ChunkSize  int    `yaml:"chunk_size"`
	// LogLevel is a logrus level name. Empty defers to LOG_LEVEL, then info.
	LogLevel string  `yaml:"log_level"`
	Manifest bool    `yaml:"manifest"`
	Metrics  Metrics `yaml:"metrics"`
	// Only restricts the load to these record types. Empty loads all three.
	Only []string `yaml:"only"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		OutputFile: switrs.DefaultOutputFile,
		ParseError: switrs.ParseErrorStrict.String(),
		ChunkSize:  switrs.DefaultChunkSize,
		Metrics:    Metrics{Job: switrs.DefaultMetricsJob},
	}
}

// Load returns the defaults overlaid with the YAML file at path.
// An empty path returns the defaults. Unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnvFile loads variables from a dotenv file into the process
// environment without overriding variables already set. It reports whether
// the file existed.
func LoadEnvFile(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat env file %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return true, nil
}

// ApplyEnv overrides settings with the SWITRS_* variables lookup finds.
// Pass os.LookupEnv to read the process environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvOutputFile); ok {
		c.OutputFile = v
	}
	if v, ok := lookup(EnvParseError); ok {
		c.ParseError = v
	}
	if v, ok := lookup(EnvChunkSize); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvChunkSize, v, err)
		}
		c.ChunkSize = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvManifest); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvManifest, v, err)
		}
		c.Manifest = b
	}
	if v, ok := lookup(EnvMetricsPushURL); ok {
		c.Metrics.PushURL = v
	}
	if v, ok := lookup(EnvMetricsJob); ok {
		c.Metrics.Job = v
	}
	if v, ok := lookup(EnvOnly); ok {
		c.Only = nil
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				c.Only = append(c.Only, name)
			}
		}
	}
	return nil
}

// Kinds returns the record types to load, in load order
func (c *Config) Kinds() ([]record.Kind, error) {
	if len(c.Only) == 0 {
		return record.Kinds(), nil
	}
	selected := make(map[record.Kind]bool, len(c.Only))
	for _, name := range c.Only {
		kind, err := record.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("invalid only: %w", err)
		}
		selected[kind] = true
	}
	kinds := make([]record.Kind, 0, len(selected))
	for _, kind := range record.Kinds() {
		if selected[kind] {
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}

// ParseErrorMode returns the parsed parse error mode
func (c *Config) ParseErrorMode() (switrs.ParseErrorMode, error) {
	return switrs.ParseParseErrorMode(c.ParseError)
}

// Validate checks values that cannot be checked field by field while loading
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.OutputFile) == "" {
		errs = append(errs, errors.New("output_file must not be empty"))
	}
	if _, err := c.ParseErrorMode(); err != nil {
		errs = append(errs, err)
	}
	if c.ChunkSize < switrs.MinChunkSize {
		errs = append(errs, fmt.Errorf("chunk_size must be at least %d, got %d", switrs.MinChunkSize, c.ChunkSize))
	}
	if _, err := c.Kinds(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
