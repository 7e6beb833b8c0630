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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Lines       int           `mapstructure:"lines"`
	IdleTimeout time.Duration `mapstructure:"idle-timeout"`
}

func newTestCmd(conf *testConfig) *cobra.Command {
	cmd := &cobra.Command{Use: "tail"}
	cmd.Flags().IntVarP(&conf.Lines, "lines", "n", 10, "")
	cmd.Flags().DurationVar(&conf.IdleTimeout, "idle-timeout", 0, "")
	return cmd
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	File = ""
	conf := testConfig{}
	cmd := newTestCmd(&conf)

	require.NoError(t, Load(cmd, "tail", &conf))
	assert.Equal(t, 10, conf.Lines)
	assert.Equal(t, time.Duration(0), conf.IdleTimeout)
}

func TestLoad_Precedence(t *testing.T) {
	File = writeConfig(t, "tail:\n  lines: 3\n  idle-timeout: 2s\nuniq:\n  lines: 99\n")
	defer func() {
		File = ""
	}()

	conf := testConfig{}
	cmd := newTestCmd(&conf)
	require.NoError(t, Load(cmd, "tail", &conf))
	assert.Equal(t, 3, conf.Lines)
	assert.Equal(t, 2*time.Second, conf.IdleTimeout)

	t.Setenv("OXIA_COLLECTIONS_TAIL_LINES", "7")
	t.Setenv("OXIA_COLLECTIONS_TAIL_IDLE_TIMEOUT", "1m")
	conf = testConfig{}
	cmd = newTestCmd(&conf)
	require.NoError(t, Load(cmd, "tail", &conf))
	assert.Equal(t, 7, conf.Lines)
	assert.Equal(t, time.Minute, conf.IdleTimeout)

	conf = testConfig{}
	cmd = newTestCmd(&conf)
	require.NoError(t, cmd.ParseFlags([]string{"-n", "5"}))
	require.NoError(t, Load(cmd, "tail", &conf))
	assert.Equal(t, 5, conf.Lines)
	assert.Equal(t, time.Minute, conf.IdleTimeout)
}

func TestLoad_Errors(t *testing.T) {
	defer func() {
		File = ""
	}()

	File = filepath.Join(t.TempDir(), "missing.yaml")
	conf := testConfig{}
	assert.Error(t, Load(newTestCmd(&conf), "tail", &conf))

	File = writeConfig(t, "tail:\n  idle-timeout: forever\n")
	conf = testConfig{}
	assert.Error(t, Load(newTestCmd(&conf), "tail", &conf))
}
