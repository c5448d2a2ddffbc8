package skemawire

import (
	"bytes"

	j "github.com/goccy/go-json"
)

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is a string-keyed mapping that remembers insertion order. The
// marshaling engine emits Objects for every wire mapping so that the output
// key order follows the first-seen order of the input.
type Object []Member

// ObjectOf builds an Object from alternating key/value arguments. A trailing
// key without a value is ignored.
func ObjectOf(kv ...any) Object {
	o := make(Object, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		k, _ := kv[i].(string)
		o.Set(k, kv[i+1])
	}
	return o
}

// Set assigns v under k. An existing key keeps its position.
func (o *Object) Set(k string, v any) {
	for i := range *o {
		if (*o)[i].Key == k {
			(*o)[i].Value = v
			return
		}
	}
	*o = append(*o, Member{Key: k, Value: v})
}

// Get returns the value stored under k.
func (o Object) Get(k string) (any, bool) {
	for _, m := range o {
		if m.Key == k {
			return m.Value, true
		}
	}
	return nil, false
}

// Has reports whether k is present.
func (o Object) Has(k string) bool {
	_, ok := o.Get(k)
	return ok
}

func (o Object) Len() int { return len(o) }

// Keys returns the keys in insertion order.
func (o Object) Keys() []string {
	out := make([]string, len(o))
	for i, m := range o {
		out[i] = m.Key
	}
	return out
}

// MarshalJSON writes the members in insertion order.
func (o Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := j.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := j.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
