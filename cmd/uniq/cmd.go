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

package uniq

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zeebo/xxh3"
	"gopkg.in/yaml.v3"

	"github.com/streamnative/oxia-collections/cmd/config"
	"github.com/streamnative/oxia-collections/cmd/flag"
	"github.com/streamnative/oxia-collections/cmd/input"
	"github.com/streamnative/oxia-collections/common"
	"github.com/streamnative/oxia-collections/common/collection"
)

type Config struct {
	Count  bool             `mapstructure:"count"`
	Recent bool             `mapstructure:"recent"`
	Format flag.OutputFormat `mapstructure:"format"`
}

func NewConfig() Config {
	return Config{
		Count:  false,
		Recent: false,
		Format: flag.Text,
	}
}

var (
	Cmd = &cobra.Command{
		Use:   "uniq [FILE]...",
		Short: "Print each distinct line once",
		Long: `Print each distinct line of the given files, or of the standard input, once.
Lines are kept in the order they were first seen, or last seen with --recent.
Unlike uniq(1), duplicates do not need to be adjacent.`,
		RunE: exec,
	}

	conf = NewConfig()
)

func init() {
	Cmd.Flags().BoolVarP(&conf.Count, "count", "c", conf.Count, "Prefix lines with their number of occurrences")
	Cmd.Flags().BoolVar(&conf.Recent, "recent", conf.Recent, "Order lines by their last occurrence")
	flag.Format(Cmd, &conf.Format)
	Cmd.SilenceUsage = true
}

type occurrence struct {
	line  string
	count int
}

func exec(cmd *cobra.Command, args []string) error {
	if err := config.Load(cmd, "uniq", &conf); err != nil {
		return err
	}
	// Values coming from the config file bypass the flag validation
	if err := conf.Format.Set(string(conf.Format)); err != nil {
		return errors.Wrap(err, "invalid format")
	}

	seen := collection.NewOrderedMap[xxh3.Uint128, *occurrence]()
	stats, err := input.ReadLines(cmd.InOrStdin(), args, func(line string) {
		digest := common.Xxh3128([]byte(line))
		o, found := seen.Get(digest)
		if !found {
			seen.Append(digest, &occurrence{line: line, count: 1})
			return
		}

		o.count++
		if conf.Recent {
			seen.Append(digest, o)
		}
	})
	input.LogSummary("uniq", stats)

	if writeErr := write(cmd.OutOrStdout(), seen); writeErr != nil {
		return writeErr
	}
	return err
}

func write(out io.Writer, seen *collection.OrderedMap[xxh3.Uint128, *occurrence]) error {
	if conf.Format == flag.Text {
		for _, o := range seen.All() {
			var err error
			if conf.Count {
				_, err = fmt.Fprintf(out, "%7d %s\n", o.count, o.line)
			} else {
				_, err = fmt.Fprintln(out, o.line)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}

	counts := collection.NewOrderedMap[string, int]()
	for _, o := range seen.All() {
		counts.Append(o.line, o.count)
	}

	var (
		data []byte
		err  error
	)
	if conf.Format == flag.JSON {
		data, err = json.MarshalIndent(counts, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(counts)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s output", conf.Format)
	}

	_, err = out.Write(data)
	return err
}
