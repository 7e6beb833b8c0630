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
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestOutputFormat(t *testing.T) {
	for _, test := range []struct {
		value    string
		expected OutputFormat
		err      bool
	}{
		{"text", Text, false},
		{"json", JSON, false},
		{"yaml", YAML, false},
		{"xml", Text, true},
		{"", Text, true},
	} {
		t.Run(test.value, func(t *testing.T) {
			f := Text
			err := f.Set(test.value)
			assert.Equal(t, test.err, err != nil)
			assert.Equal(t, test.expected, f)
		})
	}
}

func TestFlags(t *testing.T) {
	var (
		file   string
		lines  = 10
		format = Text
	)
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	ConfigFile(cmd, &file)
	Lines(cmd, &lines)
	Format(cmd, &format)

	cmd.SetArgs([]string{"--conf", "conf.yaml", "-n", "3", "--format", "yaml"})
	assert.NoError(t, cmd.Execute())
	assert.Equal(t, "conf.yaml", file)
	assert.Equal(t, 3, lines)
	assert.Equal(t, YAML, format)

	cmd.SetArgs([]string{"--format", "xml"})
	assert.Error(t, cmd.Execute())
}
