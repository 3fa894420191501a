// Package ordered provides the insertion ordered json object used to build
// the output documents.
package ordered

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Map is the json object that keeps the insertion order of its keys.
// The zero value is not usable, use New instead.
type Map struct {
	keys   []string
	values map[string]interface{}
}

// New creates new empty Map.
func New() *Map {
	return &Map{values: map[string]interface{}{}}
}

// Set sets the 'value' at given 'key'. Existing key keeps its position.
func (m *Map) Set(key string, value interface{}) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get gets the value stored at the 'key'.
func (m *Map) Get(key string) (interface{}, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has checks if the map contains given 'key'.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes the 'key' from the map.
func (m *Map) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the map keys in the insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of the map entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Marshal encodes the 'v' into json without escaping the HTML characters.
// The json.Marshal re-escapes the output of the MarshalJSON methods, so the
// documents containing Map values must be encoded with this function.
func Marshal(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalJSON implements json.Marshaler interface.
func (m *Map) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	out := &bytes.Buffer{}
	out.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			out.WriteByte(',')
		}
		buf.Reset()
		if err := enc.Encode(key); err != nil {
			return nil, err
		}
		out.Write(bytes.TrimRight(buf.Bytes(), "\n"))
		out.WriteByte(':')

		buf.Reset()
		if err := enc.Encode(m.values[key]); err != nil {
			return nil, err
		}
		out.Write(bytes.TrimRight(buf.Bytes(), "\n"))
	}
	out.WriteByte('}')
	return out.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler interface.
// Nested objects are decoded as *Map so that their order is kept as well.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	t, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := t.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("ordered: expected json object, got: %v", t)
	}
	m.keys = nil
	m.values = map[string]interface{}{}
	return m.decodeObject(dec)
}

func (m *Map) decodeObject(dec *json.Decoder) error {
	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := t.(string)
		if !ok {
			return fmt.Errorf("ordered: expected object key, got: %v", t)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return err
		}
		m.Set(key, value)
	}
	// closing '}'
	_, err := dec.Token()
	return err
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	t, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := t.(json.Delim)
	if !ok {
		return t, nil
	}
	switch delim {
	case '{':
		nested := New()
		if err = nested.decodeObject(dec); err != nil {
			return nil, err
		}
		return nested, nil
	case '[':
		values := []interface{}{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		if _, err = dec.Token(); err != nil {
			return nil, err
		}
		return values, nil
	}
	return nil, fmt.Errorf("ordered: unexpected delimiter: %v", delim)
}

// Depth returns the maximum nesting depth of the json 'data'.
// Scalar document has the depth 0, '{}' and '[]' have the depth 1.
func Depth(data []byte) int {
	var (
		depth, max int
		inString   bool
		escaped    bool
	)
	for _, b := range data {
		if inString {
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				inString = false
			}
			continue
		}
		switch b {
		case '"':
			inString = true
		case '{', '[':
			depth++
			if depth > max {
				max = depth
			}
		case '}', ']':
			depth--
		}
	}
	return max
}
