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
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

var _ Map[string, int] = (*OrderedMap[string, int])(nil)

// OrderedMap is a hash map that remembers the position of each key.
//
// Values live in a map indexed by key, while a separate key sequence defines
// the iteration order and positional lookups. Both always hold exactly the
// same set of keys.
//
// Reads are lenient: an unknown key or an out-of-range position yields the
// zero value of V (or -1 for PositionOf). Mutations with an out-of-range
// position are ignored.
//
// Re-inserting a key that is already present moves it: the key is first
// removed from its old position, then inserted at the requested one.
//
// An OrderedMap is not safe for concurrent use.
type OrderedMap[K comparable, V any] struct {
	values map[K]V
	keys   []K
}

// NewOrderedMap creates an empty map.
//
// Plain int keys are refused, since positions are ints as well and mixing
// the two is almost always a mistake.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	var zero K
	if _, isInt := any(zero).(int); isInt {
		panic("collection: OrderedMap key type must not be int")
	}
	return &OrderedMap[K, V]{
		values: make(map[K]V),
	}
}

func (m *OrderedMap[K, V]) Size() int {
	return len(m.keys)
}

func (m *OrderedMap[K, V]) Empty() bool {
	return len(m.keys) == 0
}

// ValueAt returns the value at the given iteration position, or the zero
// value when position is outside [0, Size()).
func (m *OrderedMap[K, V]) ValueAt(position int) V {
	if position < 0 || position >= len(m.keys) {
		var zero V
		return zero
	}
	return m.values[m.keys[position]]
}

// ValueOf returns the value stored for key, or the zero value if absent.
func (m *OrderedMap[K, V]) ValueOf(key K) V {
	return m.values[key]
}

func (m *OrderedMap[K, V]) Get(key K) (value V, found bool) {
	value, found = m.values[key]
	return value, found
}

func (m *OrderedMap[K, V]) Contains(key K) bool {
	_, found := m.values[key]
	return found
}

// KeyAt returns the key at the given iteration position.
func (m *OrderedMap[K, V]) KeyAt(position int) (key K, found bool) {
	if position < 0 || position >= len(m.keys) {
		return key, false
	}
	return m.keys[position], true
}

// PositionOf returns the iteration position of key, or -1 if absent.
// It scans the key sequence, so it is O(n).
func (m *OrderedMap[K, V]) PositionOf(key K) int {
	if _, found := m.values[key]; !found {
		return -1
	}
	return slices.Index(m.keys, key)
}

// Insert places key at position, storing value for it. Position must be in
// [0, Size()], otherwise the call is a no-op.
//
// If key is already present it is moved: it leaves its previous position
// before being inserted at the new one. When that makes position point past
// the shortened sequence, the key goes to the end.
func (m *OrderedMap[K, V]) Insert(position int, key K, value V) {
	if position < 0 || position > len(m.keys) {
		return
	}
	m.relink(position, key, value, true)
}

// Append is equivalent to Insert(Size(), key, value).
func (m *OrderedMap[K, V]) Append(key K, value V) {
	m.relink(len(m.keys), key, value, true)
}

// Put appends key, moving it to the end if it is already present.
func (m *OrderedMap[K, V]) Put(key K, value V) {
	m.Append(key, value)
}

func (m *OrderedMap[K, V]) Remove(key K) {
	var zero V
	m.relink(-1, key, zero, false)
}

// RemoveAt deletes the entry at position. Positions outside [0, Size())
// are ignored.
func (m *OrderedMap[K, V]) RemoveAt(position int) {
	if position < 0 || position >= len(m.keys) {
		return
	}
	var zero V
	m.relink(-1, m.keys[position], zero, false)
}

// relink is the only code path that adds or removes a single entry. It
// unlinks key from the sequence and the store if present and, when link is
// set, stores value and links key back at position.
func (m *OrderedMap[K, V]) relink(position int, key K, value V, link bool) {
	if m.values == nil {
		m.values = make(map[K]V)
	}

	if _, found := m.values[key]; found {
		idx := slices.Index(m.keys, key)
		m.keys = slices.Delete(m.keys, idx, idx+1)
		delete(m.values, key)
	}

	if !link {
		return
	}

	position = min(position, len(m.keys))
	m.keys = slices.Insert(m.keys, position, key)
	m.values[key] = value
}

func (m *OrderedMap[K, V]) Clear() {
	m.values = make(map[K]V)
	m.keys = nil
}

// Keys returns a copy of the keys in iteration order.
func (m *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Values returns the values in iteration order.
func (m *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, len(m.keys))
	for _, key := range m.keys {
		values = append(values, m.values[key])
	}
	return values
}

// All iterates over the entries in order. The map must not be modified
// while the sequence is being consumed.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range m.keys {
			if !yield(key, m.values[key]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the map. Keys and values are copied
// with plain assignment.
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	values := maps.Clone(m.values)
	if values == nil {
		values = make(map[K]V)
	}
	return &OrderedMap[K, V]{
		values: values,
		keys:   slices.Clone(m.keys),
	}
}

func (m *OrderedMap[K, V]) String() string {
	var builder strings.Builder
	builder.WriteString("{")
	for i, key := range m.keys {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(fmt.Sprintf("%v: %v", key, m.values[key]))
	}
	builder.WriteString("}")
	return builder.String()
}

// ConvertValues materializes the values of m, in order, converted with
// convert.
func ConvertValues[K comparable, V, T any](m *OrderedMap[K, V], convert func(V) T) []T {
	converted := make([]T, 0, m.Size())
	for _, value := range m.All() {
		converted = append(converted, convert(value))
	}
	return converted
}
