package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hexprime/internal/checker"
	"hexprime/internal/config"
	"hexprime/internal/logging"
)

// options holds the flag values and the state built in PersistentPreRunE.
type options struct {
	configPath string
	rounds     int
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds the hexprime command.
func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hexprime [input-file output-file]",
		Short: "Test a little-endian hex number for primality",
		Long: `hexprime reads a hexadecimal string whose first character is the least
significant digit (h0*16^0 + h1*16^1 + ...), and reports whether the value
is probably prime: 1 for prime, 0 otherwise.

Characters that are not hex digits are skipped but keep their position.

With two arguments the input is read from the first file and the verdict is
written to the second. Otherwise the input is read from standard input and
the verdict is printed to standard output.

Paths starting with "-" go after a "--" separator.

Example:
  hexprime in.txt out.txt
  hexprime -- -in.txt out.txt
  echo 1F | hexprime`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c := checker.New(opts.cfg.Primality.Rounds, opts.logger)
			if len(args) == 2 {
				return runFile(c, opts.logger, args[0], args[1])
			}
			return runStdin(c, opts.logger, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultConfigPath(), "Path to YAML config file")
	cmd.Flags().IntVar(&opts.rounds, "rounds", config.DefaultRounds, "Miller-Rabin rounds")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// init loads config, applies flag overrides and builds the logger.
func (o *options) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("rounds") {
		cfg.Primality.Rounds = o.rounds
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, o.verbose)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logging.WithRun(logger)
	logging.For(o.logger, logging.CategoryBoot).Debug("configured",
		zap.String("config", o.configPath),
		zap.Int("rounds", cfg.Primality.Rounds),
	)
	return nil
}

// runFile reads inPath and writes the verdict line to outPath.
func runFile(c *checker.Checker, logger *zap.Logger, inPath, outPath string) error {
	text, err := checker.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	res := c.Check(text)
	if err := checker.WriteFile(outPath, res); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logging.For(logger, logging.CategoryIO).Debug("wrote verdict",
		zap.String("input", inPath),
		zap.String("output", outPath),
		zap.String("symbol", res.Symbol()),
	)
	return nil
}

// runStdin reads all of in and prints the verdict line to out.
func runStdin(c *checker.Checker, logger *zap.Logger, in io.Reader, out io.Writer) error {
	res, err := c.Run(in)
	if err != nil {
		return err
	}
	if err := checker.WriteVerdict(out, res); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logging.For(logger, logging.CategoryIO).Debug("printed verdict", zap.String("symbol", res.Symbol()))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
