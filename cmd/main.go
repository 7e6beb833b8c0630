// Copyright 2023 StreamNative, Inc.
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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/streamnative/oxia-collections/cmd/config"
	"github.com/streamnative/oxia-collections/cmd/flag"
	"github.com/streamnative/oxia-collections/cmd/tail"
	"github.com/streamnative/oxia-collections/cmd/uniq"
	"github.com/streamnative/oxia-collections/common/logging"
)

var (
	logLevelStr string
	rootCmd     = &cobra.Command{
		Use:               "oxia-collections",
		Short:             "Line tools built on ordered maps and ring buffers",
		Long:              `Line tools built on the oxia ordered map and ring buffer containers`,
		PersistentPreRunE: configureLogging,
		SilenceErrors:     true,
	}
)

type LogLevelError string

func (l LogLevelError) Error() string {
	return fmt.Sprintf("unknown log level (%s)", string(l))
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevelStr, "log-level", "l", logging.DefaultLogLevel.String(), "Set logging level [debug|info|warn|error]")
	rootCmd.PersistentFlags().BoolVarP(&logging.LogJSON, "log-json", "j", false, "Print logs in JSON format")
	flag.ConfigFile(rootCmd, &config.File)

	rootCmd.AddCommand(tail.Cmd)
	rootCmd.AddCommand(uniq.Cmd)
}

func configureLogging(*cobra.Command, []string) error {
	level, err := logging.ParseLogLevel(logLevelStr)
	if err != nil {
		return LogLevelError(logLevelStr)
	}
	logging.LogLevel = level
	logging.ConfigureLogger()
	return nil
}

func main() {
	if _, err := maxprocs.Set(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
