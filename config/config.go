package config

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/zigen/affine"
	"github.com/katalvlaran/zigen/degenerator"
	"github.com/katalvlaran/zigen/sieve"
)

// Sentinel errors for configuration.
var (
	// ErrParse wraps YAML decoding failures.
	ErrParse = errors.New("config: cannot parse")

	// ErrInvalid indicates an out-of-range value.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the mutable part of an analysis session.
type Config struct {
	Degenerator degenerator.Config `yaml:"degenerator"`

	// Sieves names the selection criteria in order.
	Sieves []string `yaml:"sieves"`

	// Strong and Weak list root names favoured or penalized by sieves.
	Strong []string `yaml:"strong"`
	Weak   []string `yaml:"weak"`

	// Decisions maps each root to its key; its key set is the root set.
	Decisions map[string]string `yaml:"decisions"`

	// Gap separates operands of sequential operators.
	Gap float64 `yaml:"gap"`
}

// Default returns the built-in configuration with no roots.
func Default() Config {
	return Config{
		Degenerator: degenerator.DefaultConfig(),
		Sieves:      slices.Clone(sieve.DefaultOrder),
		Decisions:   map[string]string{},
		Gap:         affine.DefaultGap,
	}
}

// Load decodes YAML from r on top of Default.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if cfg.Decisions == nil {
		cfg.Decisions = map[string]string{}
	}
	return cfg, nil
}

// Validate checks sieve names against reg and value ranges. Unknown
// sieve names match sieve.ErrUnknownSieve.
func (c Config) Validate(reg *sieve.Registry) error {
	if c.Gap < 0 {
		return fmt.Errorf("%w: gap %v", ErrInvalid, c.Gap)
	}
	for from, to := range c.Degenerator.FeatureMap {
		if !from.Known() || !to.Known() {
			return fmt.Errorf("%w: feature map %s → %s", ErrInvalid, from, to)
		}
	}
	if _, err := reg.Resolve(c.Sieves); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Roots returns the decision keys in ascending order.
func (c Config) Roots() []string {
	roots := maps.Keys(c.Decisions)
	slices.Sort(roots)
	return roots
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.Degenerator.FeatureMap = cloneMap(c.Degenerator.FeatureMap)
	out.Sieves = slices.Clone(c.Sieves)
	out.Strong = slices.Clone(c.Strong)
	out.Weak = slices.Clone(c.Weak)
	out.Decisions = cloneMap(c.Decisions)
	return out
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
