// Package config loads and validates the simulator's YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration document
type Config struct {
	LogLevel   string           `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	Graph      GraphConfig      `yaml:"graph"`
	Simulation SimulationConfig `yaml:"simulation"`
	Render     RenderConfig     `yaml:"render"`
	Output     OutputConfig     `yaml:"output"`
}

// GraphConfig selects the input graph. An empty File means the built-in
// 34-node club network.
type GraphConfig struct {
	File string `yaml:"file"`
}

// SimulationConfig selects the model and its parameters
type SimulationConfig struct {
	Model           string   `yaml:"model" validate:"required,oneof=icm cascade cnim potential"`
	Seeds           []uint64 `yaml:"seeds" validate:"required,min=1,max=2,unique"`
	Epsilon         float64  `yaml:"epsilon" validate:"gt=0"`
	Probability     float64  `yaml:"probability" validate:"gte=0,lte=1"`
	RandomSeed      int64    `yaml:"random_seed"`
	Policy          string   `yaml:"policy" validate:"oneof=halt-on-failure skip-failures"`
	Anchor          string   `yaml:"anchor" validate:"oneof=previous origin"`
	StrictAdjacency bool     `yaml:"strict_adjacency"`
	MaxRounds       int      `yaml:"max_rounds" validate:"gte=0"`
}

// RenderConfig controls the plot layout
type RenderConfig struct {
	Layout     string `yaml:"layout" validate:"oneof=force circular hierarchical"`
	Width      int    `yaml:"width" validate:"min=100,max=10000"`
	Height     int    `yaml:"height" validate:"min=100,max=10000"`
	Iterations int    `yaml:"iterations" validate:"min=1,max=10000"`
}

// OutputConfig says where rendered artifacts go. Artifacts are written to
// S3 when a bucket is set, to Dir otherwise.
type OutputConfig struct {
	Dir      string   `yaml:"dir" validate:"required"`
	Compress bool     `yaml:"compress"`
	S3       S3Config `yaml:"s3"`
}

// S3Config configures the S3 artifact sink
type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Prefix          string `yaml:"prefix"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint" validate:"omitempty,url"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// Enabled reports whether artifacts should go to S3
func (s S3Config) Enabled() bool {
	return s.Bucket != ""
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Simulation: SimulationConfig{
			Model:       "icm",
			Seeds:       []uint64{12, 18},
			Epsilon:     0.1,
			Probability: 0.1,
			RandomSeed:  1,
			Policy:      "halt-on-failure",
			Anchor:      "previous",
		},
		Render: RenderConfig{
			Layout:     "force",
			Width:      1200,
			Height:     800,
			Iterations: 200,
		},
		Output: OutputConfig{
			Dir: "plots",
		},
	}
}

// Load decodes a YAML document over the defaults, applies environment
// overrides and validates the result.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads the configuration at path
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// applyEnv lets LOG_LEVEL override the file
func (c *Config) applyEnv() {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
}
