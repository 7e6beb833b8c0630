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
	"github.com/zeebo/xxh3"
)

// Xxh3128 returns the 128 bits xxh3 digest of data. The digest is a
// comparable value and can be used directly as a map key.
func Xxh3128(data []byte) xxh3.Uint128 {
	return xxh3.Hash128(data)
}
