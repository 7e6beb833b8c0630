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
	"slices"

	"github.com/pkg/errors"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// RingBuffer is a fixed-capacity FIFO buffer. Pushing into a full buffer
// overwrites the oldest element.
//
// Elements are addressed by their logical index, 0 being the oldest one.
// Unlike OrderedMap, an invalid index is an error.
//
// A RingBuffer is not safe for concurrent use.
type RingBuffer[T any] struct {
	buffer []T
	start  int
	size   int
}

// NewRingBuffer creates a buffer holding up to capacity elements. A buffer
// with zero capacity accepts no element at all.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &RingBuffer[T]{
		buffer: make([]T, capacity),
	}
}

func (r *RingBuffer[T]) Size() int {
	return r.size
}

func (r *RingBuffer[T]) Capacity() int {
	return len(r.buffer)
}

func (r *RingBuffer[T]) IsEmpty() bool {
	return r.size == 0
}

func (r *RingBuffer[T]) IsFull() bool {
	return r.size == len(r.buffer)
}

func (r *RingBuffer[T]) slot(index int) (int, error) {
	if index < 0 || index >= r.size {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d with size %d", index, r.size)
	}
	return (r.start + index) % len(r.buffer), nil
}

// At returns the element at logical index, which must be in [0, Size()).
func (r *RingBuffer[T]) At(index int) (T, error) {
	s, err := r.slot(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.buffer[s], nil
}

// Set replaces the element at logical index, which must be in [0, Size()).
func (r *RingBuffer[T]) Set(index int, value T) error {
	s, err := r.slot(index)
	if err != nil {
		return err
	}
	r.buffer[s] = value
	return nil
}

// Clear empties the buffer. Old elements stay in the backing array until
// they are overwritten.
func (r *RingBuffer[T]) Clear() {
	r.start = 0
	r.size = 0
}

func (r *RingBuffer[T]) RemoveFront() {
	if r.size == 0 {
		return
	}
	r.start = (r.start + 1) % len(r.buffer)
	r.size--
}

// PushBack appends value. When the buffer is full the oldest element is
// overwritten and the size stays the same.
func (r *RingBuffer[T]) PushBack(value T) {
	if len(r.buffer) == 0 {
		return
	}

	if r.size < len(r.buffer) {
		r.buffer[(r.start+r.size)%len(r.buffer)] = value
		r.size++
		return
	}

	r.buffer[r.start] = value
	r.start = (r.start + 1) % len(r.buffer)
}

// Front returns the oldest n elements, oldest first. A count that is not
// positive, or larger than Size(), selects every element.
func (r *RingBuffer[T]) Front(n int) []T {
	if n <= 0 || n > r.size {
		n = r.size
	}
	return r.collect(0, n)
}

// Back returns the newest n elements, oldest first. A count that is not
// positive, or larger than Size(), selects every element.
func (r *RingBuffer[T]) Back(n int) []T {
	if n <= 0 || n > r.size {
		n = r.size
	}
	return r.collect(r.size-n, r.size)
}

// Items returns every element, oldest first.
func (r *RingBuffer[T]) Items() []T {
	return r.collect(0, r.size)
}

func (r *RingBuffer[T]) collect(from, to int) []T {
	res := make([]T, 0, to-from)
	for i := from; i < to; i++ {
		res = append(res, r.buffer[(r.start+i)%len(r.buffer)])
	}
	return res
}

// All iterates over the logical indexes and elements, oldest first.
func (r *RingBuffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < r.size; i++ {
			if !yield(i, r.buffer[(r.start+i)%len(r.buffer)]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the buffer, with the same capacity.
func (r *RingBuffer[T]) Clone() *RingBuffer[T] {
	return &RingBuffer[T]{
		buffer: slices.Clone(r.buffer),
		start:  r.start,
		size:   r.size,
	}
}

func (r *RingBuffer[T]) String() string {
	return fmt.Sprint(r.Items())
}
