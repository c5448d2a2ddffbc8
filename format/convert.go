package format

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// numberLike matches json.Number from encoding/json and go-json.
type numberLike interface {
	String() string
	Int64() (int64, error)
	Float64() (float64, error)
}

// toByteString keeps string-like values and stringifies everything else.
func toByteString(v any) (any, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case numberLike:
		return t.String(), nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	return fmt.Sprint(v), nil
}

func toFloat64(v any) (any, error) {
	if f, ok := v.(float64); ok {
		return f, nil
	}
	return asFloat64(v)
}

// toFloat keeps both float widths as they are.
func toFloat(v any) (any, error) {
	switch v.(type) {
	case float64, float32:
		return v, nil
	}
	return asFloat64(v)
}

func asFloat64(v any) (float64, error) {
	switch t := v.(type) {
	case numberLike:
		return t.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to float: %w", t, err)
		}
		return f, nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	}
	return 0, fmt.Errorf("cannot convert %T to float", v)
}

// toInt32 keeps any Go integer as is and narrows everything else to int32.
func toInt32(v any) (any, error) {
	if isInteger(v) {
		return v, nil
	}
	n, err := asInt64(v)
	if err != nil {
		return nil, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return nil, fmt.Errorf("value %d overflows int32", n)
	}
	return int32(n), nil
}

func toInt64(v any) (any, error) {
	if n, ok := v.(int64); ok {
		return n, nil
	}
	return asInt64(v)
}

func isInteger(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func asInt64(v any) (int64, error) {
	switch t := v.(type) {
	case numberLike:
		if n, err := t.Int64(); err == nil {
			return n, nil
		}
		f, err := t.Float64()
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to integer: %w", t.String(), err)
		}
		return truncate(f)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to integer: %w", t, err)
		}
		return n, nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return truncate(rv.Float())
	}
	return 0, fmt.Errorf("cannot convert %T to integer", v)
}

func truncate(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("cannot convert %v to integer", f)
	}
	t := math.Trunc(f)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, fmt.Errorf("value %v overflows int64", f)
	}
	return int64(t), nil
}
