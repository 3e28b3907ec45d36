package hindsight

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// field is one key of an ordered JSON object.
type field struct {
	key      string
	value    any
	optional bool // omitted when value is its type's zero value
}

// object is a JSON object that keeps its fields in order.
type object []field

// opt marks a field as omitted when zero.
func opt(key string, value any) field { return field{key: key, value: value, optional: true} }

func (o object) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	first := true
	for _, f := range o {
		if f.optional {
			if v := reflect.ValueOf(f.value); !v.IsValid() || v.IsZero() {
				continue
			}
		}
		data, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("cannot marshal %q: %w", f.key, err)
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		key, _ := json.Marshal(f.key)
		b.Write(key)
		b.WriteByte(':')
		b.Write(data)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
