package marshal

import (
	"reflect"
	"sort"

	skemawire "github.com/reoring/skemawire"
)

// IsMappingLike reports whether v behaves as a string-keyed associative
// container: an Object or any map whose keys are strings.
func IsMappingLike(v any) bool {
	switch t := v.(type) {
	case skemawire.Object, map[string]any:
		return true
	case *skemawire.Object:
		return t != nil
	}
	rv := indirectValue(reflect.ValueOf(v))
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

// IsSequenceLike reports whether v is an ordered container. Strings and byte
// slices are scalars, and an Object is a mapping.
func IsSequenceLike(v any) bool {
	switch v.(type) {
	case []any:
		return true
	case skemawire.Object, *skemawire.Object:
		return false
	}
	rv := indirectValue(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Type().Elem().Kind() != reflect.Uint8
	}
	return false
}

// isNull reports nil and nil-valued references.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// indirect dereferences pointers to scalars so format encoders see the value.
func indirect(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return v
	}
	rv = indirectValue(rv)
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

func indirectValue(rv reflect.Value) reflect.Value {
	for rv.IsValid() && rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// eachMember visits a mapping-like value in its natural order: insertion
// order for Objects, sorted key order for Go maps.
func eachMember(v any, fn func(k string, val any) error) error {
	switch t := v.(type) {
	case skemawire.Object:
		return eachObjectMember(t, fn)
	case *skemawire.Object:
		return eachObjectMember(*t, fn)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := fn(k, t[k]); err != nil {
				return err
			}
		}
		return nil
	}
	rv := indirectValue(reflect.ValueOf(v))
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	for _, k := range keys {
		if err := fn(k.String(), rv.MapIndex(k).Interface()); err != nil {
			return err
		}
	}
	return nil
}

func eachObjectMember(o skemawire.Object, fn func(k string, val any) error) error {
	for _, m := range o {
		if err := fn(m.Key, m.Value); err != nil {
			return err
		}
	}
	return nil
}

// eachElement visits a sequence-like value in order.
func eachElement(v any, fn func(i int, elem any) error) (int, error) {
	if s, ok := v.([]any); ok {
		for i, e := range s {
			if err := fn(i, e); err != nil {
				return 0, err
			}
		}
		return len(s), nil
	}
	rv := indirectValue(reflect.ValueOf(v))
	n := rv.Len()
	for i := 0; i < n; i++ {
		if err := fn(i, rv.Index(i).Interface()); err != nil {
			return 0, err
		}
	}
	return n, nil
}
