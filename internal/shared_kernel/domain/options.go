package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Option is one selectable key/value pair of a select or multi_select field.
// The key is what gets stored; the value is the operator-facing label.
type Option struct {
	Key   string
	Value string
}

// OptionSet is the ordered option collection of a field definition. Order is
// declaration order and is preserved across serialization.
type OptionSet []Option

func (s OptionSet) HasKey(key string) bool {
	_, ok := s.Get(key)
	return ok
}

func (s OptionSet) Get(key string) (string, bool) {
	for _, opt := range s {
		if opt.Key == key {
			return opt.Value, true
		}
	}
	return "", false
}

func (s OptionSet) Keys() []string {
	keys := make([]string, len(s))
	for i, opt := range s {
		keys[i] = opt.Key
	}
	return keys
}

// DuplicateKey returns the first repeated key, if any.
func (s OptionSet) DuplicateKey() (string, bool) {
	seen := make(map[string]struct{}, len(s))
	for _, opt := range s {
		if _, ok := seen[opt.Key]; ok {
			return opt.Key, true
		}
		seen[opt.Key] = struct{}{}
	}
	return "", false
}

// MarshalJSON serializes the set as a flat JSON object, emitting keys in
// declaration order.
func (s OptionSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, opt := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(opt.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(opt.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a flat JSON object, preserving the document order of
// its keys. Scalar values are coerced to strings.
func (s *OptionSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("options: expected JSON object, got %v", tok)
	}

	var result OptionSet
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("options: expected string key, got %v", keyTok)
		}

		valueTok, err := dec.Token()
		if err != nil {
			return err
		}
		var value string
		switch v := valueTok.(type) {
		case string:
			value = v
		case json.Number:
			value = v.String()
		case bool:
			value = fmt.Sprintf("%t", v)
		case nil:
			value = ""
		default:
			return fmt.Errorf("options: unsupported value for key %q", key)
		}

		result = append(result, Option{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = result
	return nil
}
