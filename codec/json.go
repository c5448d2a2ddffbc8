package codec

import (
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"

	skemawire "github.com/reoring/skemawire"
	"github.com/reoring/skemawire/i18n"
)

type jsonCodec struct{ indent bool }

// JSON returns a go-json backed codec. Object members keep their order.
func JSON(indent bool) Codec { return jsonCodec{indent: indent} }

func (jsonCodec) ContentType() string { return "application/json" }

func (c jsonCodec) Marshal(v any) ([]byte, error) {
	if c.indent {
		return j.MarshalIndent(v, "", "  ")
	}
	return j.Marshal(v)
}

// DecodeOption configures DecodeJSON.
type DecodeOption func(*decoder)

// RejectDuplicateKeys makes DecodeJSON fail with a skemawire.Issues carrying
// CodeDuplicateKey when an object repeats a key. Without it the last value
// wins and the key keeps its first position.
func RejectDuplicateKeys() DecodeOption {
	return func(d *decoder) { d.strict = true }
}

type decoder struct {
	dec    *j.Decoder
	strict bool
}

// DecodeJSON reads one JSON document. Objects become skemawire.Object in
// document order and numbers stay json.Number so no precision is lost before
// a format decides the native width.
func DecodeJSON(r io.Reader, opts ...DecodeOption) (any, error) {
	d := &decoder{dec: j.NewDecoder(r)}
	for _, o := range opts {
		o(d)
	}
	d.dec.UseNumber()
	tok, err := d.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("codec: empty JSON input")
		}
		return nil, fmt.Errorf("codec: invalid JSON: %w", err)
	}
	v, err := d.value(skemawire.Root(), tok)
	if err != nil {
		if _, ok := skemawire.AsIssues(err); ok {
			return nil, err
		}
		return nil, fmt.Errorf("codec: invalid JSON: %w", err)
	}
	if extra, err := d.dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("codec: invalid JSON after top-level value: %w", err)
		}
		return nil, fmt.Errorf("codec: unexpected %v after top-level value", extra)
	}
	return v, nil
}

func (d *decoder) value(p skemawire.PathRef, tok any) (any, error) {
	delim, ok := tok.(j.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		return d.object(p)
	case '[':
		return d.array(p)
	}
	return nil, fmt.Errorf("unexpected %q at %s", rune(delim), p.Pointer())
}

func (d *decoder) object(p skemawire.PathRef) (any, error) {
	o := skemawire.Object{}
	for d.dec.More() {
		kt, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := kt.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key at %s, got %v", p.Pointer(), kt)
		}
		if d.strict && o.Has(key) {
			return nil, skemawire.Issues{p.Issue(skemawire.CodeDuplicateKey,
				i18n.T(skemawire.CodeDuplicateKey, nil)+": "+key, skemawire.ParamKey, key)}
		}
		vt, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		val, err := d.value(p.Field(key), vt)
		if err != nil {
			return nil, err
		}
		o.Set(key, val)
	}
	if _, err := d.dec.Token(); err != nil { // '}'
		return nil, err
	}
	return o, nil
}

func (d *decoder) array(p skemawire.PathRef) (any, error) {
	arr := []any{}
	for i := 0; d.dec.More(); i++ {
		t, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		v, err := d.value(p.Index(i), t)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := d.dec.Token(); err != nil { // ']'
		return nil, err
	}
	return arr, nil
}
