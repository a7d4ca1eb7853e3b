// Package config provides workflow configuration management,
// including reading and writing seqpipes YAML configuration files.
package config

import (
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Mapping is a generic YAML configuration mapping.
type Mapping map[string]any

// reservedKeys are stripped on load. They are injected by the workflow
// runner at dispatch time and must never leak back in from a config file.
var reservedKeys = []string{"maindir", "workflow"}

// Load reads a YAML mapping from path and strips reserved keys.
func Load(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var m Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	for _, k := range reservedKeys {
		delete(m, k)
	}
	return m, nil
}

// Write serializes a mapping to path as YAML. Key order follows yaml.v3
// map encoding and is not guaranteed to be stable.
func Write(path string, m Mapping) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// Diff returns every key of a whose value differs from, or is absent in, b.
// The returned mapping carries a's values.
func Diff(a, b Mapping) Mapping {
	diff := Mapping{}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !reflect.DeepEqual(av, bv) {
			diff[k] = av
		}
	}
	return diff
}

// Merge returns a new mapping with overlay applied on top of base.
// Neither input is modified.
func Merge(base, overlay Mapping) Mapping {
	merged := make(Mapping, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}
