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

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zeebo/xxh3"
)

func TestXxh3128(t *testing.T) {
	for _, test := range []string{"", "foo", "bar", "a much longer line that spans more than one stripe of input"} {
		t.Run(test, func(t *testing.T) {
			digest := Xxh3128([]byte(test))
			assert.Equal(t, xxh3.HashString128(test), digest)
			assert.Equal(t, digest, Xxh3128([]byte(test)))
		})
	}

	assert.NotEqual(t, Xxh3128([]byte("foo")), Xxh3128([]byte("bar")))
	assert.NotEqual(t, Xxh3128([]byte("foo")), Xxh3128([]byte("foo\n")))
}
