// Package cli wires flags, config, and logging into the lookup pipeline.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/vietddude/stylelog"

	"github.com/vietddude/deploytime/internal/core/config"
	"github.com/vietddude/deploytime/internal/core/domain"
	"github.com/vietddude/deploytime/internal/infra/rpc/solana"
	"github.com/vietddude/deploytime/internal/lookup"
	"github.com/vietddude/deploytime/internal/metrics"
)

var (
	cfgPath          string
	endpointOverride string
	timeoutOverride  time.Duration
	isDebug          bool
	quiet            bool
)

var rootCmd = &cobra.Command{
	Use:   "deploytime <program-id>",
	Short: "Resolve a program's first-deployment timestamp",
	Long: `deploytime finds the oldest on-chain transaction for a program ID and
prints the block time of that transaction as epoch seconds. Public RPC
endpoints are tried in priority order with retries and failover.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runLookup,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Lookup failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "config file (default is config.yaml)")
	rootCmd.PersistentFlags().StringVar(&endpointOverride, "endpoint", "", "RPC endpoint tried before all others")
	rootCmd.PersistentFlags().DurationVar(&timeoutOverride, "timeout", 0, "HTTP timeout per RPC call (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "only print the timestamp")
}

// applyOverrides folds flag values into the loaded config. Flags win over
// the config file.
func applyOverrides(cfg *config.AppConfig, timeout time.Duration) {
	if timeout > 0 {
		cfg.HTTPTimeout = timeout
	}
}

func runLookup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	// Load Configuration
	cfg, err := config.Load(cfgPath)
	if err != nil {
		stylelog.InitDefault()
		return fmt.Errorf("load config: %w", err)
	}

	// Setup logging
	slogLevel := slog.LevelInfo
	switch {
	case isDebug || cfg.Logging.Level == "debug":
		slogLevel = slog.LevelDebug
	case quiet:
		slogLevel = slog.LevelError
	case cfg.Logging.Level == "warn":
		slogLevel = slog.LevelWarn
	case cfg.Logging.Level == "error":
		slogLevel = slog.LevelError
	}

	stylelog.InitDefault(&tint.Options{
		Level:      slogLevel,
		TimeFormat: time.RFC3339,
	})
	log := slog.Default()

	program, err := domain.ParseProgramID(args[0])
	if err != nil {
		return err
	}

	applyOverrides(cfg, timeoutOverride)

	endpoints := cfg.EndpointList(endpointOverride)
	log.Debug("Endpoint list assembled", "endpoints", endpoints)

	factory := func(endpoint string) lookup.Client {
		return solana.NewClient(endpoint, cfg.HTTPTimeout)
	}

	failover := lookup.NewFailover(endpoints, factory, lookup.Options{
		ScanPolicy:    cfg.Scan,
		ResolvePolicy: cfg.Resolve,
		PageLimit:     cfg.PageLimit,
		Logger:        log,
	})

	// Handle OS Signals
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	blockTime, err := failover.ResolveFirstDeployment(ctx, program)
	log.Debug("Run summary", "totals", metrics.Summary())
	if err != nil {
		return err
	}

	log.Info("First deployment",
		"program", program,
		"timestamp", blockTime,
		"utc", time.Unix(blockTime, 0).UTC().Format(time.RFC3339))
	fmt.Fprintln(cmd.OutOrStdout(), blockTime)
	return nil
}
