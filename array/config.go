package array

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes an array in a YAML document:
//
//	initial_capacity: 64
//	max_capacity: 4096
//	growth:
//	  increment: 20
//	  multiplicative: true
type Config struct {
	InitialCapacity int    `yaml:"initial_capacity"` // default: 16
	Growth          Growth `yaml:"growth"`           // default: +15
	MaxCapacity     int    `yaml:"max_capacity"`     // default: 0 (unbounded)
}

// DefaultConfig returns a Config with all default values filled in.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: DefaultCapacity,
		Growth:          DefaultGrowth(),
	}
}

// ParseConfig decodes a YAML document on top of [DefaultConfig] and
// validates the result. Fields absent from data keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("array: reading config: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports the first invalid field as an error wrapping
// [ErrInvalidConfig]. A zero growth increment is valid and means 1.
func (c Config) Validate() error {
	switch {
	case c.InitialCapacity < 0:
		return fmt.Errorf("%w: initial_capacity %d is negative", ErrInvalidConfig, c.InitialCapacity)
	case c.Growth.Increment < 0:
		return fmt.Errorf("%w: growth.increment %d is negative", ErrInvalidConfig, c.Growth.Increment)
	case c.MaxCapacity < 0:
		return fmt.Errorf("%w: max_capacity %d is negative", ErrInvalidConfig, c.MaxCapacity)
	case c.MaxCapacity > 0 && c.InitialCapacity > c.MaxCapacity:
		return fmt.Errorf("%w: initial_capacity %d exceeds max_capacity %d",
			ErrInvalidConfig, c.InitialCapacity, c.MaxCapacity)
	}
	return nil
}

// NewFromConfig validates cfg and creates an owning array from it. Options
// are applied after cfg, so WithMaxCapacity and WithGrowth override the
// corresponding fields.
func NewFromConfig[T any](cfg Config, finalize Finalizer[T], opts ...Option) (*Array[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithMaxCapacity(cfg.MaxCapacity))
	all = append(all, opts...)
	s := newSettings(all)
	g := cfg.Growth
	if s.growth != nil {
		g = *s.growth
	}
	return newArray(cfg.InitialCapacity, g, false, finalize, s), nil
}
