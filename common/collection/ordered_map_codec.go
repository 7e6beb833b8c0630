// Copyright 2025 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collection

import (
	"bytes"
	"encoding"
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/emirpasic/gods/containers"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	_ containers.JSONSerializer   = (*OrderedMap[string, int])(nil)
	_ containers.JSONDeserializer = (*OrderedMap[string, int])(nil)
	_ yaml.Marshaler              = (*OrderedMap[string, int])(nil)
	_ yaml.Unmarshaler            = (*OrderedMap[string, int])(nil)
)

// MarshalJSON encodes the map as a JSON object whose members follow the
// iteration order. Keys follow the encoding/json rules for map keys: string
// kinds are used as is, integer kinds are formatted in base 10 and other
// types must implement encoding.TextMarshaler.
func (m *OrderedMap[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		name, err := encodeKey(key)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteByte(',')
		}

		quoted, err := json.Marshal(name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode key %q", name)
		}
		buf.Write(quoted)
		buf.WriteByte(':')

		value, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode value of key %q", name)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the content of the map with the members of a JSON
// object, in document order. A key repeated in the document ends up at the
// position of its last occurrence. On error the map is left untouched.
func (m *OrderedMap[K, V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "failed to read ordered map")
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.Errorf("expected a JSON object, got %v", tok)
	}

	decoded := &OrderedMap[K, V]{values: make(map[K]V)}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return errors.Wrap(err, "failed to read ordered map key")
		}
		name, ok := tok.(string)
		if !ok {
			return errors.Errorf("expected an object key, got %v", tok)
		}
		key, err := decodeKey[K](name)
		if err != nil {
			return err
		}

		var value V
		if err := dec.Decode(&value); err != nil {
			return errors.Wrapf(err, "failed to decode value of key %q", name)
		}
		decoded.Append(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return errors.Wrap(err, "failed to read end of ordered map")
	}

	m.values, m.keys = decoded.values, decoded.keys
	return nil
}

func (m *OrderedMap[K, V]) ToJSON() ([]byte, error) {
	return m.MarshalJSON()
}

func (m *OrderedMap[K, V]) FromJSON(data []byte) error {
	return m.UnmarshalJSON(data)
}

// MarshalYAML encodes the map as a YAML mapping that keeps the iteration order.
func (m *OrderedMap[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range m.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, errors.Wrapf(err, "failed to encode key %v", key)
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(m.values[key]); err != nil {
			return nil, errors.Wrapf(err, "failed to encode value of key %v", key)
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// UnmarshalYAML replaces the content of the map with the entries of a YAML
// mapping, in document order. On error the map is left untouched.
func (m *OrderedMap[K, V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return errors.Errorf("expected a YAML mapping at line %d, column %d", node.Line, node.Column)
	}

	decoded := &OrderedMap[K, V]{values: make(map[K]V)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key K
		if err := node.Content[i].Decode(&key); err != nil {
			return errors.Wrapf(err, "failed to decode key at line %d", node.Content[i].Line)
		}
		var value V
		if err := node.Content[i+1].Decode(&value); err != nil {
			return errors.Wrapf(err, "failed to decode value of key %v", key)
		}
		decoded.Append(key, value)
	}

	m.values, m.keys = decoded.values, decoded.keys
	return nil
}

func encodeKey[K comparable](key K) (string, error) {
	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	}

	if tm, ok := any(key).(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return "", errors.Wrapf(err, "failed to encode key %v", key)
		}
		return string(text), nil
	}
	return "", errors.Errorf("unsupported ordered map key type %T", key)
}

func decodeKey[K comparable](name string) (K, error) {
	var key K
	rv := reflect.ValueOf(&key).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(name)
		return key, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(name, 10, 64)
		if err != nil || rv.OverflowInt(n) {
			return key, errors.Errorf("invalid integer key %q", name)
		}
		rv.SetInt(n)
		return key, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(name, 10, 64)
		if err != nil || rv.OverflowUint(n) {
			return key, errors.Errorf("invalid unsigned key %q", name)
		}
		rv.SetUint(n)
		return key, nil
	}

	if tu, ok := any(&key).(encoding.TextUnmarshaler); ok {
		if err := tu.UnmarshalText([]byte(name)); err != nil {
			return key, errors.Wrapf(err, "failed to decode key %q", name)
		}
		return key, nil
	}
	return key, errors.Errorf("unsupported ordered map key type %T", key)
}
