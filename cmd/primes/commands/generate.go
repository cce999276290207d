package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KumKeeHyun/eratosthenes/fp/lazy-eval/prime"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"leb.io/hrff"
)

// NewGenerateCmd builds the generate subcommand.
func NewGenerateCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Stream primes from the unbounded generator",
		Long: `Print successive primes, one per line, starting at 2.
With --count 0 the stream runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, count)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of primes to print (0 for no limit)")
	return cmd
}

func runGenerate(cmd *cobra.Command, count int) error {
	if count < 0 {
		return fmt.Errorf("invalid count %d", count)
	}
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	logger := config.Logger(cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	n, err := streamPrimes(ctx, cmd, prime.NewPrimeIterator(), count)
	elapsed := time.Since(start)

	fields := []zap.Field{zap.Int("count", n), zap.Duration("elapsed", elapsed)}
	if elapsed > 0 {
		rate := hrff.Float64{V: float64(n) / elapsed.Seconds(), U: "primes/s"}
		fields = append(fields, zap.String("rate", fmt.Sprintf("%h", rate)))
	}
	logger.Debug("generation stopped", fields...)
	return err
}

// streamPrimes writes primes from it until count are written (count 0
// means no limit) or ctx is done, and returns how many were written.
func streamPrimes(ctx context.Context, cmd *cobra.Command, it prime.Iterator, count int) (int, error) {
	out := cmd.OutOrStdout()
	n := 0
	for (count == 0 || n < count) && it.HasNext() {
		select {
		case <-ctx.Done():
			return n, nil
		default:
		}
		if _, err := fmt.Fprintln(out, it.Next()); err != nil {
			return n, fmt.Errorf("failed to write prime: %w", err)
		}
		n++
	}
	return n, nil
}
