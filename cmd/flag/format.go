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

package flag

import (
	"github.com/pkg/errors"
)

type OutputFormat string

const (
	Text OutputFormat = "text"
	JSON OutputFormat = "json"
	YAML OutputFormat = "yaml"
)

func (f *OutputFormat) String() string {
	return string(*f)
}

func (f *OutputFormat) Set(s string) error {
	switch OutputFormat(s) {
	case Text, JSON, YAML:
		*f = OutputFormat(s)
		return nil
	}
	return errors.Errorf("must be one of %s, %s or %s", Text, JSON, YAML)
}

func (*OutputFormat) Type() string {
	return "format"
}
