package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AdditionalData is an insertion-ordered string map carrying vendor side channels.
// The zero value is an empty map.
type AdditionalData struct {
	keys   []string
	values map[string]string
}

// NewAdditionalData builds an AdditionalData from alternating key/value pairs.
// A trailing key without value is ignored.
func NewAdditionalData(pairs ...string) AdditionalData {
	var d AdditionalData
	for i := 0; i+1 < len(pairs); i += 2 {
		d.set(pairs[i], pairs[i+1])
	}
	return d
}

func (d *AdditionalData) set(key, value string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value stored for key and whether it was present.
func (d AdditionalData) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Value returns the value stored for key, or "".
func (d AdditionalData) Value(key string) string {
	return d.values[key]
}

// Has reports whether key is present, even with an empty value.
func (d AdditionalData) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Keys returns the keys in delivery order.
func (d AdditionalData) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of entries.
func (d AdditionalData) Len() int {
	return len(d.keys)
}

// With returns a copy of d with key set to value.
func (d AdditionalData) With(key, value string) AdditionalData {
	var out AdditionalData
	for _, k := range d.keys {
		out.set(k, d.values[k])
	}
	out.set(key, value)
	return out
}

// Bool parses the value stored for key tolerantly: "true"/"1"/"yes" are true,
// "false"/"0"/"no" are false, anything unparseable or absent is false.
func (d AdditionalData) Bool(key string) bool {
	v, ok := d.values[key]
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// UnmarshalJSON decodes a JSON object keeping key order. Scalar non-string
// values are stringified; nested objects and arrays are kept as raw JSON.
func (d *AdditionalData) UnmarshalJSON(data []byte) error {
	*d = AdditionalData{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("additionalData: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("additionalData: expected object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("additionalData key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("additionalData: non-string key")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("additionalData %q: %w", key, err)
		}
		d.set(key, stringify(raw))
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("additionalData: %w", err)
	}
	return nil
}

// MarshalJSON encodes the map keeping delivery order.
func (d AdditionalData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, _ := json.Marshal(k)
		vb, _ := json.Marshal(d.values[k])
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func stringify(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	case 't', 'f':
		if b, err := strconv.ParseBool(string(trimmed)); err == nil {
			return strconv.FormatBool(b)
		}
	case 'n':
		return ""
	}
	return string(trimmed)
}
