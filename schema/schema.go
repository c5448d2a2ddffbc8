package schema

import (
	"bytes"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Declared types understood by the marshaling engine.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeNull    = "null"
	TypeArray   = "array"
	TypeObject  = "object"
	TypeFile    = "file"
)

// ModelMarker is the document key that tags an object schema as a named model.
const ModelMarker = "x-model"

// Schema is a single node of an already-resolved schema document. Nodes are
// never modified by the engine; the document owns them.
type Schema struct {
	// Core
	Type        string   `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string   `json:"format,omitempty" yaml:"format,omitempty"`
	Default     any      `json:"default,omitempty" yaml:"default,omitempty"`
	Required    Required `json:"required,omitempty" yaml:"required,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	AdditionalProperties *Additional        `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	XModel               string             `json:"x-model,omitempty" yaml:"x-model,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`
}

// IsPrimitive reports whether typ is one of the scalar kinds.
func IsPrimitive(typ string) bool {
	switch typ {
	case TypeString, TypeInteger, TypeNumber, TypeBoolean, TypeNull:
		return true
	}
	return false
}

func (s *Schema) HasFormat() bool { return s != nil && s.Format != "" }

// FormatName returns the declared format, or "" when none is set.
func (s *Schema) FormatName() string {
	if s == nil {
		return ""
	}
	return s.Format
}

// HasDefault reports whether a non-null default is declared.
func (s *Schema) HasDefault() bool { return s != nil && s.Default != nil }

func (s *Schema) DefaultValue() any {
	if s == nil {
		return nil
	}
	return s.Default
}

// IsRequired reports the property-level required flag. The array form of
// "required" lists child names and does not mark the node itself.
func (s *Schema) IsRequired() bool { return s != nil && s.Required.Flag }

// IsModel reports whether the node carries the model marker.
func (s *Schema) IsModel() bool { return s != nil && s.XModel != "" }

func (s *Schema) ModelName() string {
	if s == nil {
		return ""
	}
	return s.XModel
}

// PropertySpec returns the schema for the property key of an object schema.
// Declared properties win; otherwise a schema-valued additionalProperties
// applies. It returns nil when no schema governs the key.
func (s *Schema) PropertySpec(key string) *Schema {
	if s == nil {
		return nil
	}
	if p, ok := s.Properties[key]; ok && p != nil {
		return p
	}
	if s.AdditionalProperties != nil {
		return s.AdditionalProperties.Schema
	}
	return nil
}

// Required holds either form of the "required" keyword: a boolean on a
// property node, or a list of child names on an object node.
type Required struct {
	Flag  bool
	Names []string
}

func (r Required) MarshalJSON() ([]byte, error) {
	if len(r.Names) > 0 {
		return j.Marshal(r.Names)
	}
	return j.Marshal(r.Flag)
}

func (r *Required) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		return j.Unmarshal(b, &r.Names)
	}
	return j.Unmarshal(b, &r.Flag)
}

func (r Required) MarshalYAML() (any, error) {
	if len(r.Names) > 0 {
		return r.Names, nil
	}
	return r.Flag, nil
}

func (r *Required) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		return n.Decode(&r.Names)
	}
	return n.Decode(&r.Flag)
}

// Additional is the additionalProperties keyword: either a boolean or a
// schema applied to undeclared keys.
type Additional struct {
	Allowed bool
	Schema  *Schema
}

func (a Additional) MarshalJSON() ([]byte, error) {
	if a.Schema != nil {
		return j.Marshal(a.Schema)
	}
	return j.Marshal(a.Allowed)
}

func (a *Additional) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		a.Allowed = true
		a.Schema = &Schema{}
		return j.Unmarshal(b, a.Schema)
	}
	return j.Unmarshal(b, &a.Allowed)
}

func (a Additional) MarshalYAML() (any, error) {
	if a.Schema != nil {
		return a.Schema, nil
	}
	return a.Allowed, nil
}

func (a *Additional) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.MappingNode {
		a.Allowed = true
		a.Schema = &Schema{}
		return n.Decode(a.Schema)
	}
	return n.Decode(&a.Allowed)
}
