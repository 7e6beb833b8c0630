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

// Iterator is a cursor over the live key sequence of an OrderedMap.
//
// It holds the map and a position, nothing else: reading through it looks
// the key up at that position and then the value by key. Any mutation of the
// map that changes the key sequence invalidates every iterator.
//
//	for it := m.Begin(); !it.Equal(m.End()); it = it.Next() {
//		fmt.Println(it.Key(), it.Value())
//	}
type Iterator[K comparable, V any] struct {
	container *OrderedMap[K, V]
	index     int
}

// Begin returns an iterator at the first position.
func (m *OrderedMap[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{container: m, index: 0}
}

// End returns the past-the-end iterator.
func (m *OrderedMap[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{container: m, index: len(m.keys)}
}

func (it Iterator[K, V]) Valid() bool {
	return it.container != nil && it.index >= 0 && it.index < len(it.container.keys)
}

func (it Iterator[K, V]) Next() Iterator[K, V] {
	it.index++
	return it
}

func (it Iterator[K, V]) Index() int {
	return it.index
}

func (it Iterator[K, V]) Key() K {
	if !it.Valid() {
		var zero K
		return zero
	}
	return it.container.keys[it.index]
}

// Value returns the value under the cursor, or the zero value if the cursor
// is not on an entry.
func (it Iterator[K, V]) Value() V {
	if it.container == nil {
		var zero V
		return zero
	}
	return it.container.ValueAt(it.index)
}

// Set replaces the value under the cursor in place, keeping its position.
// It reports false if the cursor is not on an entry.
func (it Iterator[K, V]) Set(value V) bool {
	if !it.Valid() {
		return false
	}
	it.container.values[it.container.keys[it.index]] = value
	return true
}

func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.container == other.container && it.index == other.index
}
