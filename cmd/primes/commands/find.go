package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/KumKeeHyun/eratosthenes/fp/lazy-eval/prime"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// UsageMessage is printed when the argument count is not exactly one.
const UsageMessage = "Input an integer argument."

// RunFind prints the primes up to the single positional argument. Bad
// input is reported on the output and is not an error; only invalid
// configuration is.
func RunFind(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) != 1 {
		fmt.Fprintln(out, UsageMessage)
		return nil
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}
	logger := config.Logger(cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	start := time.Now()
	res := prime.Find(args[0], config.Options()...)
	if !res.OK() {
		fields := []zap.Field{zap.String("input", args[0])}
		var inputErr *prime.InputError
		if errors.As(res.Err, &inputErr) {
			fields = append(fields, zap.String("detail", inputErr.Detail()))
		}
		logger.Debug("bound rejected", fields...)
		fmt.Fprintln(out, res.Err)
		return nil
	}

	logger.Debug("primes found",
		zap.String("input", args[0]),
		zap.String("bound", config.Bound),
		zap.Int("count", len(res.Primes)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return writePrimes(out, config.Format, res.Primes)
}
