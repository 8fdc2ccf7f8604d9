package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var ErrDuplicateKey = errors.New("duplicate key")

type Pair struct {
	Key   string
	Value string
}

// Mapping is a string map that keeps declaration order and rejects
// duplicate keys when decoded.
type Mapping []Pair

func (m Mapping) Get(key string) (string, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, p := range m {
		keys = append(keys, p.Key)
	}
	return keys
}

func (m Mapping) duplicates() []string {
	seen := make(map[string]bool, len(m))
	var dup []string
	for _, p := range m {
		if seen[p.Key] {
			dup = append(dup, p.Key)
			continue
		}
		seen[p.Key] = true
	}
	return dup
}

func (m *Mapping) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw yaml.MapSlice
	if err := unmarshal(&raw); err != nil {
		return err
	}

	out := make(Mapping, 0, len(raw))
	for _, item := range raw {
		key, ok := item.Key.(string)
		if !ok {
			return errors.Errorf("mapping key %v is not a string", item.Key)
		}
		value, ok := item.Value.(string)
		if !ok {
			return errors.Errorf("value of %q is not a string", key)
		}
		out = append(out, Pair{Key: key, Value: value})
	}

	if dup := out.duplicates(); len(dup) > 0 {
		return errors.Wrapf(ErrDuplicateKey, "%q", dup[0])
	}

	*m = out
	return nil
}

func (m Mapping) MarshalYAML() (interface{}, error) {
	out := make(yaml.MapSlice, 0, len(m))
	for _, p := range m {
		out = append(out, yaml.MapItem{Key: p.Key, Value: p.Value})
	}
	return out, nil
}

func (m Mapping) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(p.Value)
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

// UnmarshalJSON treats null as a no-op, the encoding/json Unmarshaler convention.
// An empty object decodes to an empty, non-nil Mapping.
func (m *Mapping) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return errors.WithStack(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.Errorf("expected object, got %v", tok)
	}

	out := Mapping{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errors.WithStack(err)
		}
		key := fmt.Sprint(tok)

		var value string
		if err := dec.Decode(&value); err != nil {
			return errors.Wrapf(err, "value of %q", key)
		}
		out = append(out, Pair{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return errors.WithStack(err)
	}

	if dup := out.duplicates(); len(dup) > 0 {
		return errors.Wrapf(ErrDuplicateKey, "%q", dup[0])
	}

	*m = out
	return nil
}
