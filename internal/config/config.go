package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/saladstik/schedulebuilder/pkg/engine"
)

// Config carries everything the CLI needs for one run: scoring weights, the
// pool guard and export settings.
type Config struct {
	Weights WeightsConfig `json:"weights"`
	Pool    PoolConfig    `json:"pool"`
	Export  ExportConfig  `json:"export"`
}

// WeightsConfig mirrors engine.Weights so scoring stays a configurable
// policy instead of hardcoded constants.
type WeightsConfig struct {
	Size          int `json:"size"`
	FreeDays      int `json:"free_days"`
	MandatoryEach int `json:"mandatory_each"`
	MandatoryAll  int `json:"mandatory_all"`
}

// SetDefaults applies the engine's standard weights to unset fields.
func (c *WeightsConfig) SetDefaults() {
	defaults := engine.DefaultWeights()
	if c.Size == 0 {
		c.Size = defaults.Size
	}
	if c.FreeDays == 0 {
		c.FreeDays = defaults.FreeDays
	}
	if c.MandatoryEach == 0 {
		c.MandatoryEach = defaults.MandatoryEach
	}
	if c.MandatoryAll == 0 {
		c.MandatoryAll = defaults.MandatoryAll
	}
}

// Validate checks the relative magnitudes the ranking depends on.
func (c WeightsConfig) Validate() error {
	if c.Size <= 0 || c.FreeDays < 0 || c.MandatoryEach < 0 || c.MandatoryAll < 0 {
		return fmt.Errorf("weights must be non-negative with a positive size weight")
	}
	if c.Size <= c.FreeDays {
		return fmt.Errorf("size weight (%d) must exceed the free-days weight (%d) so larger combinations always rank higher", c.Size, c.FreeDays)
	}
	return nil
}

// Engine converts the config to the engine's weight type.
func (c WeightsConfig) Engine() engine.Weights {
	return engine.Weights{
		Size:          c.Size,
		FreeDays:      c.FreeDays,
		MandatoryEach: c.MandatoryEach,
		MandatoryAll:  c.MandatoryAll,
	}
}

// PoolConfig bounds the candidate pool before the exhaustive search runs.
type PoolConfig struct {
	// MaxSections is the guard threshold: pools above it are refused unless
	// the caller forces the run, since exhaustive enumeration is exponential.
	MaxSections int `json:"max_sections"`
	// MaxSize bounds combination cardinality; zero uses the engine default.
	MaxSize int `json:"max_size"`
}

func (c *PoolConfig) SetDefaults() {
	if c.MaxSections == 0 {
		c.MaxSections = 20
	}
}

func (c PoolConfig) Validate() error {
	if c.MaxSections < 1 {
		return fmt.Errorf("max_sections must be at least 1")
	}
	if c.MaxSize < 0 {
		return fmt.Errorf("max_size must not be negative")
	}
	return nil
}

// ExportConfig holds the calendar export window.
type ExportConfig struct {
	// SemesterStart and SemesterEnd bound the weekly recurrence of calendar
	// events, in "2006-01-02" form.
	SemesterStart string `json:"semester_start"`
	SemesterEnd   string `json:"semester_end"`
}

// Default returns a ready-to-use configuration for runs without a config
// file.
func Default() *Config {
	cfg := &Config{}
	cfg.Weights.SetDefaults()
	cfg.Pool.SetDefaults()
	return cfg
}

// Load reads a JSON or YAML configuration file, applies environment
// overrides (SB_ prefix, __ as the key separator), defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("SB_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "sb_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Weights.SetDefaults()
	cfg.Pool.SetDefaults()
	if err := cfg.Weights.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Pool.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
