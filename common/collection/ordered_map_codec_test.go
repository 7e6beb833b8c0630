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
	"encoding/json"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOrderedMap_JSON(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Append("zulu", 1)
	m.Append("alpha", 2)
	m.Append("mike", 3)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"zulu":1,"alpha":2,"mike":3}`, string(data))

	decoded := NewOrderedMap[string, int]()
	require.NoError(t, json.Unmarshal([]byte(`{"b": 2, "a": 1, "c": 3, "b": 4}`), decoded))
	assert.Equal(t, []string{"a", "c", "b"}, decoded.Keys())
	assert.Equal(t, []int{1, 3, 4}, decoded.Values())

	empty, err := NewOrderedMap[string, int]().ToJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(empty))
}

func TestOrderedMap_JSONNested(t *testing.T) {
	type document struct {
		Name   string                       `json:"name"`
		Fields *OrderedMap[string, []string] `json:"fields"`
	}

	doc := document{Name: "shards", Fields: NewOrderedMap[string, []string]()}
	doc.Fields.Append("second", []string{"b"})
	doc.Fields.Append("first", []string{"a", "c"})

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"shards","fields":{"second":["b"],"first":["a","c"]}}`, string(data))

	var decoded document
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "shards", decoded.Name)
	assert.Equal(t, []string{"second", "first"}, decoded.Fields.Keys())
	assert.Equal(t, []string{"a", "c"}, decoded.Fields.ValueOf("first"))
}

func TestOrderedMap_JSONKeys(t *testing.T) {
	ints := NewOrderedMap[int64, string]()
	ints.Append(20, "b")
	ints.Append(-3, "a")
	data, err := ints.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"20":"b","-3":"a"}`, string(data))

	decodedInts := NewOrderedMap[int64, string]()
	require.NoError(t, decodedInts.FromJSON(data))
	assert.Equal(t, []int64{20, -3}, decodedInts.Keys())

	addrs := NewOrderedMap[netip.Addr, int]()
	addrs.Append(netip.MustParseAddr("10.0.0.2"), 2)
	addrs.Append(netip.MustParseAddr("10.0.0.1"), 1)
	data, err = json.Marshal(addrs)
	require.NoError(t, err)
	assert.Equal(t, `{"10.0.0.2":2,"10.0.0.1":1}`, string(data))

	decodedAddrs := NewOrderedMap[netip.Addr, int]()
	require.NoError(t, json.Unmarshal(data, decodedAddrs))
	assert.Equal(t, 0, decodedAddrs.PositionOf(netip.MustParseAddr("10.0.0.2")))

	unsupported := NewOrderedMap[compositeKey, int]()
	unsupported.Append(compositeKey{"a", 1}, 1)
	_, err = json.Marshal(unsupported)
	assert.Error(t, err)
	assert.Error(t, unsupported.FromJSON([]byte(`{"a":1}`)))
}

func TestOrderedMap_JSONErrorsKeepContent(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Append("keep", 1)

	for _, input := range []string{
		`[1, 2]`,
		`{"a": "not a number"}`,
		`{"a": 1`,
		``,
	} {
		t.Run(input, func(t *testing.T) {
			assert.Error(t, m.UnmarshalJSON([]byte(input)))
			assert.Equal(t, []string{"keep"}, m.Keys())
		})
	}

	require.NoError(t, m.UnmarshalJSON([]byte("null")))
	assert.Equal(t, []string{"keep"}, m.Keys())

	overflow := NewOrderedMap[int8, int]()
	assert.Error(t, overflow.FromJSON([]byte(`{"300": 1}`)))
}

func TestOrderedMap_YAML(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Append("zulu", 1)
	m.Append("alpha", 2)

	data, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "zulu: 1\nalpha: 2\n", string(data))

	decoded := NewOrderedMap[string, int]()
	require.NoError(t, yaml.Unmarshal([]byte("c: 3\na: 1\nb: 2\n"), decoded))
	assert.Equal(t, []string{"c", "a", "b"}, decoded.Keys())
	assert.Equal(t, 1, decoded.ValueOf("a"))

	type config struct {
		Namespaces *OrderedMap[string, int] `yaml:"namespaces"`
	}
	var conf config
	require.NoError(t, yaml.Unmarshal([]byte("namespaces:\n  second: 2\n  first: 1\n"), &conf))
	assert.Equal(t, []string{"second", "first"}, conf.Namespaces.Keys())

	assert.Error(t, decoded.UnmarshalYAML(&yaml.Node{Kind: yaml.SequenceNode}))
	assert.Equal(t, []string{"c", "a", "b"}, decoded.Keys())
}
