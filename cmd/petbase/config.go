// Config file loading for the petbase CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config keys.
const (
	cfgKeyDataDir      = "data_dir"
	cfgKeyDBPath       = "db_path"
	cfgKeyProvidersCSV = "providers_csv"
	cfgKeyLimitsCSV    = "limits_csv"
)

// loadConfig reads the YAML config file at path using Viper. A missing
// config file is not an error; flags and defaults cover everything.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return v, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return v, nil
}
