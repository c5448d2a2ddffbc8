// Package codec serializes marshaled wire values and decodes input
// documents into ordered wire-shaped trees.
package codec

import (
	"fmt"
	"strings"

	skemawire "github.com/reoring/skemawire"
)

// Codec serializes a wire value.
type Codec interface {
	ContentType() string
	Marshal(v any) ([]byte, error)
}

// Names lists the codecs understood by ByName.
var Names = []string{"json", "yaml", "cbor"}

// ByName returns the codec registered under name (case-insensitive).
func ByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSON(false), nil
	case "json-indent":
		return JSON(true), nil
	case "yaml", "yml":
		return YAML(), nil
	case "cbor":
		return CBOR()
	}
	return nil, fmt.Errorf("codec: unknown output %q (want one of %s)", name, strings.Join(Names, ", "))
}

// numberLike matches json.Number from encoding/json and go-json.
type numberLike interface {
	String() string
	Int64() (int64, error)
	Float64() (float64, error)
}

// plainNumbers rewrites Objects as maps and JSON numbers as int64 / float64,
// for encoders that know neither.
func plainNumbers(v any) (any, error) {
	switch t := v.(type) {
	case skemawire.Object:
		out := make(map[string]any, len(t))
		for _, m := range t {
			pv, err := plainNumbers(m.Value)
			if err != nil {
				return nil, err
			}
			out[m.Key] = pv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i := range t {
			pv, err := plainNumbers(t[i])
			if err != nil {
				return nil, err
			}
			out[i] = pv
		}
		return out, nil
	case numberLike:
		if n, err := t.Int64(); err == nil {
			return n, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("codec: invalid number %q: %w", t.String(), err)
		}
		return f, nil
	}
	return v, nil
}
