// SPDX-License-Identifier: MIT
// Package: apfabric/fabric
//
// load.go - LoadConfig: the optional-file, environment-overridable
// loader for Config.
//
// Contract:
//   - configPath == "" looks for "apmap.yaml" in the current directory
//     and falls back to DefaultConfig() if nothing is found.
//   - An explicitly named configPath that does not exist is an error;
//     an implicit search that finds nothing is not.
package fabric

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// fileConfig is the mapstructure-tagged shape LoadConfig unmarshals
// into before resolving it to the immutable Config via NewConfig.
type fileConfig struct {
	GlobalNum int  `mapstructure:"global_num"`
	G4Enabled bool `mapstructure:"g4_enabled"`
	Threshold int  `mapstructure:"threshold"`
}

// LoadConfig resolves a Config from, in increasing precedence: the
// reference defaults, an optional YAML config file, and APMAP_*
// environment variables. An explicitly named configPath that cannot be
// read is an error; an implicit search that finds nothing silently
// falls back to DefaultConfig().
func LoadConfig(configPath string) (Config, error) {
	v := viper.New()
	v.SetDefault("global_num", DefaultGlobalNum)
	v.SetDefault("g4_enabled", true)
	v.SetDefault("threshold", DefaultThreshold)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("apmap")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file anywhere in the search path: defaults stand.
		} else if configPath != "" && os.IsNotExist(err) {
			return Config{}, fmt.Errorf("fabric: config file %s not found", configPath)
		} else {
			return Config{}, fmt.Errorf("fabric: reading config: %w", err)
		}
	}

	v.SetEnvPrefix("apmap")
	v.AutomaticEnv()

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return Config{}, fmt.Errorf("fabric: unmarshal config: %w", err)
	}

	return NewConfig(
		WithGlobalNum(fc.GlobalNum),
		WithG4(fc.G4Enabled),
		WithThreshold(fc.Threshold),
	), nil
}
