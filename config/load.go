package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load decodes a Config from r, starting from the documented defaults so a
// partial document only overrides the sections it mentions. Strict
// (KnownFields) decoding rejects unrecognised keys with ErrUnknownField, per
// §7's "unknown property name" configuration error. The returned Config is
// NOT validated; call Validate (or use LoadAndValidate).
func Load(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			return cfg, nil
		}
		return Config{}, classifyDecodeError(err)
	}

	return cfg, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// LoadAndValidate decodes and validates in one step: the same Load-then-
// Validate sequence the analyze and validate-config CLI subcommands run.
func LoadAndValidate(r io.Reader) (Config, error) {
	cfg, err := Load(r)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// classifyDecodeError distinguishes yaml.v3's "unknown field" errors (which
// map to ErrUnknownField) from ordinary syntax errors (ErrDecode).
func classifyDecodeError(err error) error {
	if strings.Contains(err.Error(), "not found in type") {
		return fmt.Errorf("%w: %v", ErrUnknownField, err)
	}
	return fmt.Errorf("%w: %v", ErrDecode, err)
}
