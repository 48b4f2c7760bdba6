package config

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nameConfig struct {
	name string
	err  error
}

func (c *nameConfig) Use() string       { return "" }
func (c *nameConfig) EnvPrefix() string { return "" }
func (c *nameConfig) Binders() []Binder { return []Binder{c} }

func (c *nameConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("name", "tree", "name")
	return nil
}

func (c *nameConfig) Configure(v *viper.Viper) error {
	c.name = v.GetString("name")
	return c.err
}

func TestParserDefaultsToAppPrefix(t *testing.T) {
	t.Setenv("TESTAPP_NAME", "forest")
	c := &nameConfig{}

	p, err := Generate("testapp", c)
	require.NoError(t, err)
	require.NoError(t, p.ParseArgs(nil))

	assert.Equal(t, "forest", c.name)
	assert.Equal(t, "testapp", p.cmd.Use)
}

func TestParserConfigureError(t *testing.T) {
	c := &nameConfig{err: errors.New("invalid")}

	p, err := Generate("testapp", c)
	require.NoError(t, err)

	assert.Equal(t, c.err, p.ParseArgs([]string{"--name", "x"}))
	assert.Equal(t, "x", c.name)
}

func TestParserMissingConfigFile(t *testing.T) {
	p, err := Generate("testapp", &nameConfig{})
	require.NoError(t, err)

	err = p.ParseArgs([]string{"--config", "/does/not/exist.yaml"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "/does/not/exist.yaml")
}
