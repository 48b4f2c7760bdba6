package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder registers a set of flags and reads back their values
// once the flags, the environment and the config file have been
// resolved by viper
type Binder interface {
	// Bind declares the flags of the binder on cmd and their
	// defaults on v
	Bind(v *viper.Viper, cmd *cobra.Command) error

	// Configure reads the resolved values from v
	Configure(v *viper.Viper) error
}

// ConfigFile is the Binder for the optional configuration file.
// Values in the file act as defaults for every other flag
type ConfigFile struct {
	Path string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("config", "", "path to the configuration file")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString("config")
	if len(f.Path) == 0 {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read configuration file %s", f.Path)
	}

	return nil
}
