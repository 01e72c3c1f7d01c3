package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shaibs3/resepgen/internal/app"
	"github.com/shaibs3/resepgen/internal/config"
	"github.com/shaibs3/resepgen/internal/logger"
	"github.com/shaibs3/resepgen/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newRootCmd builds the CLI. Flag defaults come from cfg, so flags override the environment.
func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resepgen",
		Short: "Generate a synthetic recipe dataset from a nutrition CSV",
		Long: `resepgen samples rows from a nutrition dataset, attaches randomly generated
ingredients, steps, category and timing, and writes the recipes to a CSV file.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.InputPath, "input", "i", cfg.InputPath, "Nutrition CSV to read (INPUT_PATH)")
	flags.StringVarP(&cfg.OutputPath, "output", "o", cfg.OutputPath, "Recipe CSV to write (OUTPUT_PATH)")
	flags.IntVarP(&cfg.SampleSize, "sample-size", "n", cfg.SampleSize, "Maximum number of rows to sample (SAMPLE_SIZE)")
	flags.Int64Var(&cfg.SampleSeed, "seed", cfg.SampleSeed, "Seed for row sampling (SAMPLE_SEED)")
	flags.Int64Var(&cfg.SynthSeed, "synth-seed", cfg.SynthSeed, "Seed for per-row values, 0 for a random seed (SYNTH_SEED)")
	flags.IntVar(&cfg.PreviewRows, "preview", cfg.PreviewRows, "Rows shown in the console preview (PREVIEW_ROWS)")
	flags.StringVar(&cfg.SinkConfig, "sink", cfg.SinkConfig, `Export sink JSON, e.g. {"db_type":"sqlite","extra_details":{"path":"recipes.db"}} (SINK_CONFIG)`)
	flags.StringVar(&cfg.MetricsTextfile, "metrics-file", cfg.MetricsTextfile, "Write prometheus metrics to this file (METRICS_TEXTFILE)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (LOG_LEVEL)")

	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *config.Config) error {
	if cfg.SampleSize < 0 {
		return fmt.Errorf("sample size must not be negative, got %d", cfg.SampleSize)
	}
	// diagnostics below are printed by the app itself
	cmd.SilenceErrors = true

	// Create application logger with proper configuration
	appLogger, err := logger.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		report.Failure(cmd.OutOrStdout(), err)
		return err
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	appLogger.Info("Build info",
		zap.String("version", version),
		zap.String("commit", commit),
		zap.String("date", date),
	)

	application, err := app.NewApp(cfg, appLogger, cmd.OutOrStdout())
	if err != nil {
		appLogger.Error("failed to initialize application", zap.Error(err))
		report.Failure(cmd.OutOrStdout(), err)
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			appLogger.Warn("failed to close application", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}
