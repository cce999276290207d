package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// NewRootCmd builds the primes command tree with its persistent flags.
// Configuration is read in PersistentPreRunE, so every execution sees
// the flags, PRIMES_* variables and config file of that run.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "primes [n]",
		Short: "Print the primes up to n",
		Long: `primes prints every prime less than or equal to n, found by trial
division. Use "primes generate" to stream primes without a bound.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initConfig,
		RunE:              RunFind,
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.primes/config.yaml)")
	rootCmd.PersistentFlags().String("format", FormatList, "output format: list, json or yaml")
	rootCmd.PersistentFlags().String("bound", "index", "divisor limit rule: index or value")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging on stderr")

	rootCmd.AddCommand(NewGenerateCmd())

	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

// Execute runs rootCmd on args. A dash-led bound such as "-5" is passed
// through as an argument instead of failing as an unknown flag.
func Execute(rootCmd *cobra.Command, args []string) error {
	rootCmd.SetArgs(boundArgs(rootCmd, args))
	return rootCmd.Execute()
}

// boundArgs moves dash-led tokens that are not root flags behind a "--"
// so pflag leaves them positional. Arguments routed to a subcommand, or
// already containing "--", are returned unchanged.
func boundArgs(rootCmd *cobra.Command, args []string) []string {
	for _, arg := range args {
		if arg == "--" || isSubcommand(rootCmd, arg) {
			return append([]string{}, args...)
		}
	}

	res := make([]string, 0, len(args)+1)
	var bounds []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && len(arg) > 1 && !isRootFlag(rootCmd, arg) {
			bounds = append(bounds, arg)
			continue
		}
		res = append(res, arg)
	}
	if len(bounds) == 0 {
		return res
	}
	res = append(res, "--")
	return append(res, bounds...)
}

func isSubcommand(rootCmd *cobra.Command, arg string) bool {
	switch arg {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == arg || c.HasAlias(arg) {
			return true
		}
	}
	return false
}

// isRootFlag reports whether arg names a flag of rootCmd: "--name",
// "--name=value", or a shorthand cluster starting with a known letter.
func isRootFlag(rootCmd *cobra.Command, arg string) bool {
	lookup := func(f func(*pflag.FlagSet) bool) bool {
		return f(rootCmd.PersistentFlags()) || f(rootCmd.Flags())
	}
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, _ = strings.Cut(name, "=")
		if name == "help" {
			return true
		}
		return lookup(func(fs *pflag.FlagSet) bool { return fs.Lookup(name) != nil })
	}
	short := arg[1:2]
	if short == "h" {
		return true
	}
	return lookup(func(fs *pflag.FlagSet) bool { return fs.ShorthandLookup(short) != nil })
}

func initConfig(cmd *cobra.Command, args []string) error {
	flags := cmd.Root().PersistentFlags()
	for _, key := range []string{"format", "bound", "verbose"} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}
	SetDefaults()

	cfgFile, _ := flags.GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		// Use ~/.primes/config.yaml
		viper.AddConfigPath(filepath.Join(home, ".primes"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("primes")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}
