package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"weightlog/internal/adapter/chart"
	"weightlog/internal/adapter/cli"
	"weightlog/internal/adapter/csvfile"
	"weightlog/internal/adapter/memory"
	"weightlog/internal/adapter/postgres"
	"weightlog/internal/adapter/sqlite"
	"weightlog/internal/app"
	"weightlog/internal/config"
	"weightlog/internal/domain"
	"weightlog/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, exitMessage(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "weightlog <username>",
		Short: "Track your weight, view its history and work towards a goal",
		Long: `weightlog records dated weight measurements for a user, renders the
recent history as a chart and a table, and estimates how many days remain
until a target weight is reached.

Run it with the same username each time to keep using the same data.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			logger.Debug("config loaded", zap.Stringer("config", cfg))

			return run(cmd.Context(), cfg, logger, args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "weightlog.yaml", "Path to an optional YAML config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	return cmd
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, user string, in io.Reader, out io.Writer) error {
	st, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store, err)
	}
	defer func() { _ = closeStore() }()

	weightSvc := app.NewWeightService(st, nil)
	goalSvc := app.NewGoalService(st, st)
	chartsSvc := app.NewChartsService(weightSvc, chart.NewRenderer(), cfg.ChartPath)

	menu := cli.New(user, weightSvc, goalSvc, chartsSvc, in, out, cli.Options{
		MaxAttempts: cfg.RecordAttempts,
		Logger:      logger.With(zap.String("user", user)),
	})
	return menu.Run(ctx)
}

type store interface {
	domain.WeightRepository
	domain.GoalRepository
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Store {
	case config.StoreMemory:
		return memory.New(), noop, nil
	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	default:
		return csvfile.New(cfg.DataDir, logger), noop, nil
	}
}

// exitMessage maps the menu's abort errors to the text shown on exit.
func exitMessage(err error) string {
	switch {
	case errors.Is(err, cli.ErrTooManyAttempts):
		return "Too many attempts. Restart program"
	case errors.Is(err, domain.ErrLogNotFound):
		return "Error: Log your weight first"
	default:
		return "Error: " + err.Error()
	}
}
