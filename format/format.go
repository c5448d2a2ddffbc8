// Package format holds the registry of named primitive formats (date,
// int64, byte, ...) and the conversions between their wire and native
// shapes.
package format

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/reoring/skemawire/schema"
)

// Format describes a named refinement of a primitive schema type.
//
// Decode converts a wire value to its native shape and Encode does the
// reverse. Validate inspects a wire value and returns an error when it does
// not conform; a nil Validate accepts everything.
type Format struct {
	Name        string
	Decode      func(v any) (any, error)
	Encode      func(v any) (any, error)
	Validate    func(v any) error
	Description string
}

// Registry maps format names to Formats. It is safe for concurrent use;
// registration may happen while other goroutines encode.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Format
	logger  *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger that receives unknown-format diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry returns a registry populated with the built-in formats.
func NewRegistry(opts ...Option) *Registry {
	r := NewEmptyRegistry(opts...)
	for _, f := range Builtins() {
		r.formats[f.Name] = f
	}
	return r
}

// NewEmptyRegistry returns a registry without any formats.
func NewEmptyRegistry(opts ...Option) *Registry {
	r := &Registry{
		formats: make(map[string]Format),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register inserts f, replacing any format already registered under f.Name.
func (r *Registry) Register(f Format) {
	r.mu.Lock()
	r.formats[f.Name] = f
	r.mu.Unlock()
}

// Lookup returns the format registered under name. A non-empty unknown name
// is reported as a warning and yields false.
func (r *Registry) Lookup(name string) (Format, bool) {
	r.mu.RLock()
	f, ok := r.formats[name]
	r.mu.RUnlock()
	if !ok && name != "" {
		r.logger.Warn("format is not registered", zap.String("format", name))
	}
	return f, ok
}

// Encode converts a native value to its wire shape according to the format
// declared by s. Nil values, specs without a format and unknown formats pass
// through unchanged.
func (r *Registry) Encode(s *schema.Schema, v any) (any, error) {
	if v == nil || !s.HasFormat() {
		return v, nil
	}
	f, ok := r.Lookup(s.FormatName())
	if !ok || f.Encode == nil {
		return v, nil
	}
	return f.Encode(v)
}

// Decode converts a wire value to its native shape; see Encode.
func (r *Registry) Decode(s *schema.Schema, v any) (any, error) {
	if v == nil || !s.HasFormat() {
		return v, nil
	}
	f, ok := r.Lookup(s.FormatName())
	if !ok || f.Decode == nil {
		return v, nil
	}
	return f.Decode(v)
}

// Validate runs the format validator of s against a wire value.
func (r *Registry) Validate(s *schema.Schema, v any) error {
	if v == nil || !s.HasFormat() {
		return nil
	}
	f, ok := r.Lookup(s.FormatName())
	if !ok || f.Validate == nil {
		return nil
	}
	return f.Validate(v)
}

// Names returns the registered format names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formats))
	for n := range r.formats {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Describe returns the description of a registered format.
func (r *Registry) Describe(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formats[name]
	return f.Description, ok
}
