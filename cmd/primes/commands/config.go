package commands

import (
	"fmt"
	"io"

	"github.com/KumKeeHyun/eratosthenes/fp/lazy-eval/prime"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration, read through viper from flags,
// PRIMES_* environment variables and the config file.
type Config struct {
	Format  string `mapstructure:"format" yaml:"format"`   // list, json, yaml
	Bound   string `mapstructure:"bound" yaml:"bound"`     // index, value
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"` // debug logs on stderr
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Format: FormatList,
		Bound:  prime.BoundIndex.String(),
	}
}

// SetDefaults registers the defaults with viper.
func SetDefaults() {
	def := DefaultConfig()
	viper.SetDefault("format", def.Format)
	viper.SetDefault("bound", def.Bound)
	viper.SetDefault("verbose", def.Verbose)
}

// LoadConfig reads the effective configuration from viper and validates it.
func LoadConfig() (*Config, error) {
	config := DefaultConfig()
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if _, ok := writers[c.Format]; !ok {
		return fmt.Errorf("invalid format %q, want one of list, json, yaml", c.Format)
	}
	if _, err := prime.ParseBound(c.Bound); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Options maps the config onto finder options. Validate must have passed.
func (c *Config) Options() []prime.Option {
	b, _ := prime.ParseBound(c.Bound)
	return []prime.Option{prime.WithBound(b)}
}

var newDevelopmentLogger = zap.NewDevelopment

// Logger builds a development logger on stderr when verbose, a no-op
// logger otherwise. If the development logger cannot be built, a
// warning goes to errOut and logging is off.
func (c *Config) Logger(errOut io.Writer) *zap.Logger {
	if !c.Verbose {
		return zap.NewNop()
	}
	logger, err := newDevelopmentLogger()
	if err != nil {
		fmt.Fprintf(errOut, "Warning: verbose logging disabled: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

// NewConfigCmd builds the config subcommand.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Print the effective configuration",
		Args:    cobra.NoArgs,
		RunE:    runConfig,
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	defer enc.Close()
	if err := enc.Encode(config); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return nil
}
