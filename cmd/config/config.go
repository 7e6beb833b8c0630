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
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "OXIA_COLLECTIONS"
	fileName  = "oxia-collections"
)

// File is the explicit config file, set by the --conf flag. When empty,
// oxia-collections.yaml is looked up in the working directory and in
// /oxia-collections/conf.
var File string

// Load fills out with the settings of one command. For every flag of cmd,
// the value comes from, in order of precedence: the flag when set on the
// command line, the OXIA_COLLECTIONS_<SECTION>_<FLAG> environment variable,
// the <section>.<flag> key of the config file, the flag default.
func Load(cmd *cobra.Command, section string, out any) error {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v); err != nil {
		return err
	}

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr == nil {
			bindErr = v.BindPFlag(section+"."+f.Name, f)
		}
	})
	if bindErr != nil {
		return errors.Wrap(bindErr, "failed to bind flags")
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(v.AllSettings()[section]); err != nil {
		return errors.Wrapf(err, "failed to load %s config", section)
	}
	return nil
}

func readConfigFile(v *viper.Viper) error {
	if File != "" {
		v.SetConfigFile(File)
	} else {
		v.SetConfigName(fileName)
		v.AddConfigPath(".")
		v.AddConfigPath("/oxia-collections/conf")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if File == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "failed to read config file")
	}
	return nil
}
