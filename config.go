package symcanon

import (
	"bytes"
	"errors"
	"io"

	"github.com/njchilds90/symcanon/internal/errwrap"
	"gopkg.in/yaml.v3"
)

// Config tunes a Canonicalizer.
type Config struct {
	// MaxDepth bounds how deep canonicalization may recurse. Zero means no
	// limit.
	MaxDepth int `yaml:"max_depth"`

	// Trace logs every rewrite at debug level.
	Trace bool `yaml:"trace"`
}

// DefaultConfig returns the settings used by the package level Canonicalize.
func DefaultConfig() Config {
	return Config{}
}

// ParseConfig decodes a yaml document. Unknown keys are an error. Keys that
// are missing keep their default value.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errwrap.Wrapf(err, "can't parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the config makes sense.
func (obj Config) Validate() error {
	if obj.MaxDepth < 0 {
		return errwrap.Wrapf(ErrInvalidConfig, "max_depth must not be negative, got %d", obj.MaxDepth)
	}
	return nil
}
