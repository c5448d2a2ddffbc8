package format

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// dateTimeLayouts are tried in order; inputs without an offset parse as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	dateLayout,
}

func encodeDate(v any) (any, error) {
	t, err := asTime(v, parseDate)
	if err != nil {
		return nil, err
	}
	return truncateDate(t).Format(dateLayout), nil
}

func decodeDate(v any) (any, error) {
	t, err := asTime(v, parseDate)
	if err != nil {
		return nil, err
	}
	return truncateDate(t), nil
}

// encodeDateTime renders RFC 3339 with the value's own offset.
func encodeDateTime(v any) (any, error) {
	t, err := asTime(v, parseDateTime)
	if err != nil {
		return nil, err
	}
	return t.Format(time.RFC3339Nano), nil
}

func decodeDateTime(v any) (any, error) {
	t, err := asTime(v, parseDateTime)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func asTime(v any, parse func(string) (time.Time, error)) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t == nil {
			return time.Time{}, fmt.Errorf("nil *time.Time")
		}
		return asTime(*t, parse)
	case string:
		return parse(t)
	case []byte:
		return parse(string(t))
	}
	return time.Time{}, fmt.Errorf("cannot convert %T to time", v)
}

func parseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var firstErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q: %w", s, firstErr)
}

// parseDate accepts a calendar date or any date-time and keeps only the
// date component.
func parseDate(s string) (time.Time, error) {
	t, err := parseDateTime(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return truncateDate(t), nil
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
