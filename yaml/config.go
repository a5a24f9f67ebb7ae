// Package yaml loads headlines configuration from YAML files.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/headlines"
	yaml "gopkg.in/yaml.v3"
)

// LoadConfig reads the YAML file at path on top of base. Keys missing
// from the file keep their base value. Unknown keys are rejected.
func LoadConfig(path string, base headlines.Config) (headlines.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, headlines.Errorf(headlines.EINVALID, "open config %q: %v", path, err)
	}
	defer f.Close()

	return DecodeConfig(f, base)
}

// DecodeConfig decodes YAML from r on top of base and validates the result.
func DecodeConfig(r io.Reader, base headlines.Config) (headlines.Config, error) {
	cfg := base

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, headlines.Errorf(headlines.EINVALID, "decode config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}
