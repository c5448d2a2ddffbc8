// Package marshal walks a schema and a native value together and produces
// the JSON-compatible wire value.
package marshal

import (
	"fmt"

	j "github.com/goccy/go-json"
	"go.uber.org/zap"

	skemawire "github.com/reoring/skemawire"
	"github.com/reoring/skemawire/format"
	"github.com/reoring/skemawire/i18n"
	"github.com/reoring/skemawire/model"
	"github.com/reoring/skemawire/schema"
)

// Marshaler converts native values to wire values. It keeps no per-call
// state and may be shared between goroutines.
type Marshaler struct {
	formats *format.Registry
	models  *model.Registry
	logger  *zap.Logger
}

// Option configures a Marshaler.
type Option func(*Marshaler)

// WithLogger sets the logger used for debug traces of the walk.
func WithLogger(l *zap.Logger) Option {
	return func(m *Marshaler) {
		if l != nil {
			m.logger = l
		}
	}
}

// New returns a Marshaler bound to the given registries. A nil formats
// registry is replaced by one holding the built-ins; a nil models registry by
// an empty one.
func New(formats *format.Registry, models *model.Registry, opts ...Option) *Marshaler {
	if formats == nil {
		formats = format.NewRegistry()
	}
	if models == nil {
		models = model.NewRegistry()
	}
	m := &Marshaler{formats: formats, models: models, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Marshal converts v to its wire representation according to s. Failures are
// returned as skemawire.Issues holding a single issue; no partial result is
// returned.
func (m *Marshaler) Marshal(s *schema.Schema, v any) (any, error) {
	return m.marshal(skemawire.Root(), s, v)
}

// EncodeJSON marshals v and encodes the wire value as JSON.
func (m *Marshaler) EncodeJSON(s *schema.Schema, v any) ([]byte, error) {
	w, err := m.Marshal(s, v)
	if err != nil {
		return nil, err
	}
	return j.Marshal(w)
}

func (m *Marshaler) marshal(p skemawire.PathRef, s *schema.Schema, v any) (any, error) {
	if s == nil {
		return nil, fail(p, skemawire.CodeUnsupportedType, fmt.Sprintf("no schema for value %v", v), nil)
	}

	switch {
	case schema.IsPrimitive(s.Type):
		return m.marshalPrimitive(p, s, v)
	case s.Type == schema.TypeArray:
		return m.marshalArray(p, s, v)
	// Model specs are objects too, so the marker is checked first.
	case s.IsModel():
		if IsMappingLike(v) {
			return m.marshalObject(p, s, v)
		}
		return m.marshalModel(p, s, v)
	case s.Type == schema.TypeObject:
		return m.marshalObject(p, s, v)
	case s.Type == schema.TypeFile:
		return v, nil
	}
	return nil, fail(p, skemawire.CodeUnsupportedType,
		fmt.Sprintf("unknown type %q for value %v", s.Type, v), nil, skemawire.ParamType, s.Type)
}

// marshalPrimitive substitutes the default for a null value, or encodes the
// value through its format. A default is never run through the format.
func (m *Marshaler) marshalPrimitive(p skemawire.PathRef, s *schema.Schema, v any) (any, error) {
	if isNull(v) {
		if s.HasDefault() {
			return s.DefaultValue(), nil
		}
		if s.IsRequired() {
			return nil, fail(p, skemawire.CodeRequired,
				fmt.Sprintf("%s value is null and has no default", s.Type), nil, skemawire.ParamType, s.Type)
		}
		return nil, nil
	}

	w, err := m.formats.Encode(s, indirect(v))
	if err != nil {
		return nil, fail(p, skemawire.CodeInvalidFormat,
			fmt.Sprintf("format %q: %v", s.FormatName(), err), err, skemawire.ParamFormat, s.FormatName())
	}
	return w, nil
}

func (m *Marshaler) marshalArray(p skemawire.PathRef, s *schema.Schema, v any) (any, error) {
	if !IsSequenceLike(v) {
		return nil, fail(p, skemawire.CodeInvalidType,
			fmt.Sprintf("expected sequence for %T: %v", v, v), nil, skemawire.ParamType, s.Type)
	}

	out := make([]any, 0)
	_, err := eachElement(v, func(i int, elem any) error {
		if s.Items == nil {
			out = append(out, elem)
			return nil
		}
		w, err := m.marshal(p.Index(i), s.Items, elem)
		if err != nil {
			return err
		}
		out = append(out, w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// marshalObject drops null members before any property lookup, so a required
// property holding null is omitted rather than rejected.
func (m *Marshaler) marshalObject(p skemawire.PathRef, s *schema.Schema, v any) (any, error) {
	if !IsMappingLike(v) {
		return nil, fail(p, skemawire.CodeInvalidType,
			fmt.Sprintf("expected mapping for %T: %v", v, v), nil, skemawire.ParamType, s.Type)
	}

	out := skemawire.Object{}
	err := eachMember(v, func(k string, val any) error {
		if isNull(val) {
			return nil
		}
		ps := s.PropertySpec(k)
		if ps == nil {
			m.logger.Debug("no schema for property, passing through", zap.String("path", p.Field(k).Pointer()))
			out = append(out, skemawire.Member{Key: k, Value: val})
			return nil
		}
		w, err := m.marshal(p.Field(k), ps, val)
		if err != nil {
			return err
		}
		out = append(out, skemawire.Member{Key: k, Value: w})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// marshalModel exports every field of a registered model instance and feeds
// the result to the object transform.
func (m *Marshaler) marshalModel(p skemawire.PathRef, s *schema.Schema, v any) (any, error) {
	name := s.ModelName()
	typ, ok := m.models.Resolve(name)
	if !ok {
		return nil, fail(p, skemawire.CodeUnknownModel, fmt.Sprintf("unknown model %s", name), nil, skemawire.ParamModel, name)
	}
	if !model.IsInstance(v, typ) {
		return nil, fail(p, skemawire.CodeModelMismatch,
			fmt.Sprintf("expected model of type %s for %T: %v", name, v, v), nil, skemawire.ParamModel, name)
	}
	fields, ok := model.Fields(v)
	if !ok {
		return nil, fail(p, skemawire.CodeModelMismatch,
			fmt.Sprintf("model %s value %T does not export fields", name, v), nil, skemawire.ParamModel, name)
	}
	return m.marshalObject(p, s, fields)
}

func fail(p skemawire.PathRef, code, detail string, cause error, kv ...any) error {
	it := p.Issue(code, i18n.T(code, nil)+": "+detail, kv...)
	it.Cause = cause
	return skemawire.Issues{it}
}
