package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/maritimerenewable/resis/pkg/resistance"
)

// LoadHull reads a YAML document with the six resistance.Dimensions keys.
// Unknown keys are rejected.
func LoadHull(path string) (resistance.Dimensions, error) {
	f, err := os.Open(path)
	if err != nil {
		return resistance.Dimensions{}, fmt.Errorf("open hull file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var d resistance.Dimensions
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return resistance.Dimensions{}, fmt.Errorf("parse hull file %s: %w", path, err)
	}
	return d, nil
}
