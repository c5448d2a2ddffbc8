package schema

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FromJSON decodes a single, already-resolved schema node tree from JSON.
// $ref indirection is not followed.
func FromJSON(data []byte) (*Schema, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("schema: empty document")
	}
	var s Schema
	if err := j.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("schema: invalid JSON: %w", err)
	}
	return &s, nil
}

// FromYAML decodes a single, already-resolved schema node tree from YAML.
func FromYAML(data []byte) (*Schema, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("schema: empty document")
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("schema: invalid YAML: %w", err)
	}
	s.normalizeDefaults()
	return &s, nil
}

// Load reads a schema file, choosing the decoder by extension (.json, or
// YAML otherwise).
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FromJSON(data)
	default:
		return FromYAML(data)
	}
}

// normalizeDefaults rewrites YAML-decoded defaults (which may contain
// map[any]any) into JSON-like values so they are wire-shaped.
func (s *Schema) normalizeDefaults() {
	if s == nil {
		return
	}
	s.Default = yamlNormalizeValue(s.Default)
	for _, p := range s.Properties {
		p.normalizeDefaults()
	}
	if s.AdditionalProperties != nil {
		s.AdditionalProperties.Schema.normalizeDefaults()
	}
	s.Items.normalizeDefaults()
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
