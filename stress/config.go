package stress

import (
	"github.com/eaugeas/rbtree/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the configuration of a set of trials. It is both
// the config.Config and the only config.Binder of the rbtree
// command
type Config struct {
	TrialCount  int
	Size        int
	Removals    int
	KeyRange    int
	Seed        int64
	Concurrency int
	LogLevel    logrus.Level
}

// Use implementation of config.Config
func (c *Config) Use() string {
	return "rbtree"
}

// EnvPrefix implementation of config.Config
func (c *Config) EnvPrefix() string {
	return "rbtree"
}

// Binders implementation of config.Config
func (c *Config) Binders() []config.Binder {
	return []config.Binder{c}
}

// Bind implementation of config.Binder
func (c *Config) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.Int("trials", 8, "number of independent trials to run")
	flags.Int("size", 10000, "number of insertions per trial")
	flags.Int("removals", 5000, "number of removals attempted per trial")
	flags.Int("key-range", 0, "keys are drawn from [0, key-range); 0 uses the whole int32 range")
	flags.Int64("seed", 1, "seed of the first trial, the following trials increment it")
	flags.Int("concurrency", 0, "number of trials run at once; 0 uses one per CPU")
	flags.String("log-level", "info", "lowest level of the log entries written")
	return nil
}

// Configure implementation of config.Binder
func (c *Config) Configure(v *viper.Viper) error {
	c.TrialCount = v.GetInt("trials")
	c.Size = v.GetInt("size")
	c.Removals = v.GetInt("removals")
	c.KeyRange = v.GetInt("key-range")
	c.Seed = v.GetInt64("seed")
	c.Concurrency = v.GetInt("concurrency")

	for key, value := range map[string]int{
		"trials":    c.TrialCount,
		"size":      c.Size,
		"removals":  c.Removals,
		"key-range": c.KeyRange,
	} {
		if value < 0 {
			return config.ErrInvalidValue{Key: key, Reason: "must not be negative"}
		}
	}

	level, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return config.ErrInvalidValue{Key: "log-level", Reason: err.Error()}
	}
	c.LogLevel = level

	return nil
}

// Trials returns the trials described by the configuration
func (c *Config) Trials() []Trial {
	trials := make([]Trial, 0, c.TrialCount)
	for i := 0; i < c.TrialCount; i++ {
		trials = append(trials, Trial{
			ID:       i,
			Seed:     c.Seed + int64(i),
			Size:     c.Size,
			Removals: c.Removals,
			KeyRange: c.KeyRange,
		})
	}
	return trials
}
