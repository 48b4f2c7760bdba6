package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is implemented by the configuration of an application
type Config interface {
	// Use is the name of the command
	Use() string

	// EnvPrefix is the prefix of the environment variables that
	// can be used to set the flags
	EnvPrefix() string

	// Binders returns the binders that declare and read the flags
	Binders() []Binder
}

// Parser resolves a Config from command line flags, environment
// variables and an optional configuration file, in that order of
// precedence
type Parser struct {
	Config Config

	file *ConfigFile

	cmd *cobra.Command
	v   *viper.Viper
}

// Parse parses the process arguments
func (p *Parser) Parse() error {
	return p.ParseArgs(os.Args[1:])
}

// ParseArgs parses args as if they were the command line
// arguments of the process
func (p *Parser) ParseArgs(args []string) error {
	if p.cmd.PersistentFlags().Parsed() {
		return ErrAlreadyParsed
	}

	if err := p.cmd.PersistentFlags().Parse(args); err != nil {
		return ErrParseFlags{err}
	}

	// keep file first so that any parameters read from the file are used
	// as defaults for the other flags
	var binders []Binder
	binders = append(binders, p.file)
	binders = append(binders, p.Config.Binders()...)

	for _, c := range binders {
		if err := c.Configure(p.v); err != nil {
			return err
		}
	}

	return nil
}

// Usage prints the usage of the command
func (p *Parser) Usage() error {
	return p.cmd.Usage()
}

// Generate creates a Parser for the configuration of app
func Generate(app string, config Config) (*Parser, error) {
	prefix := config.EnvPrefix()
	if len(prefix) == 0 {
		prefix = app
	}

	v := viper.New()
	// all environment variables start with prefix `prefix` and are set
	// by replacing `.` and `-` to _.
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	use := config.Use()
	if len(use) == 0 {
		use = app
	}

	cmd := &cobra.Command{Use: use}
	file := ConfigFile{}
	var binders []Binder
	binders = append(binders, &file)
	binders = append(binders, config.Binders()...)

	for _, c := range binders {
		if err := c.Bind(v, cmd); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	return &Parser{file: &file, Config: config, cmd: cmd, v: v}, nil
}
