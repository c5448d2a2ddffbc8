// Package model resolves named schema models to the Go types that back them.
package model

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	skemawire "github.com/reoring/skemawire"
)

// Exporter is implemented by model types. ExportFields returns every field
// that should reach the wire, keyed by its wire name. Fields missing from the
// schema are still emitted by the engine.
type Exporter interface {
	ExportFields() skemawire.Object
}

var exporterType = reflect.TypeOf((*Exporter)(nil)).Elem()

// Registry maps model names to struct types.
type Registry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// NewRegistry creates an empty model registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]reflect.Type),
	}
}

// Register binds name to the struct type of prototype. The type, or a
// pointer to it, must implement Exporter.
func (r *Registry) Register(name string, prototype any) error {
	if name == "" {
		return fmt.Errorf("model name cannot be empty")
	}
	if prototype == nil {
		return fmt.Errorf("model prototype cannot be nil")
	}

	t := reflect.TypeOf(prototype)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("model type must be a struct, got %v", t.Kind())
	}
	if !t.Implements(exporterType) && !reflect.PointerTo(t).Implements(exporterType) {
		return fmt.Errorf("model type %v does not implement model.Exporter", t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.types[name]; exists {
		if existing == t {
			return nil
		}
		return fmt.Errorf("model %s already registered to %v", name, existing)
	}

	r.types[name] = t
	return nil
}

// Resolve returns the type registered under name.
func (r *Registry) Resolve(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[name]
	return t, ok
}

// Names returns the registered model names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for n := range r.types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsInstance reports whether v is a value of t or a non-nil pointer to one.
func IsInstance(v any, t reflect.Type) bool {
	if v == nil || t == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Type() == t {
		return true
	}
	return rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Type().Elem() == t
}

// Fields exports the fields of a model instance. ok is false when v does not
// implement Exporter on its value or pointer receiver.
func Fields(v any) (skemawire.Object, bool) {
	if e, ok := v.(Exporter); ok {
		return e.ExportFields(), true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() == reflect.Ptr {
		return nil, false
	}
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	if e, ok := p.Interface().(Exporter); ok {
		return e.ExportFields(), true
	}
	return nil, false
}
