package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/shaibs3/resepgen/internal/config"
	"github.com/shaibs3/resepgen/internal/dataset"
	"github.com/shaibs3/resepgen/internal/report"
	"github.com/shaibs3/resepgen/internal/sink"
	"github.com/shaibs3/resepgen/internal/synth"
	"github.com/shaibs3/resepgen/internal/telemetry"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// App runs one dataset generation
type App struct {
	config    *config.Config
	logger    *zap.Logger
	telemetry *telemetry.Telemetry
	// sink is nil when export is disabled
	sink sink.RecipeSink
	out  io.Writer

	synthesizer *synth.Synthesizer
	duration    metric.Float64Histogram
}

// NewApp wires telemetry, the export sink and the synthesizer. Console output goes to out.
func NewApp(cfg *config.Config, logger *zap.Logger, out io.Writer) (*App, error) {
	appLogger := logger.Named("app")

	tel, err := telemetry.NewTelemetry(logger)
	if err != nil {
		return nil, err
	}

	synthMetrics, err := synth.NewMetrics(tel.Meter)
	if err != nil {
		return nil, err
	}
	duration, err := tel.Meter.Float64Histogram("generation_duration",
		metric.WithDescription("Wall time of a full generation run"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	var recipeSink sink.RecipeSink
	if cfg.SinkConfig != "" {
		recipeSink, err = sink.NewFactory(logger).CreateSink(cfg.SinkConfig)
		if err != nil {
			_ = tel.Shutdown(context.Background())
			return nil, err
		}
	}

	synthSeed := uint64(cfg.SynthSeed)
	if cfg.SynthSeed == 0 {
		synthSeed = rand.Uint64()
	}
	appLogger.Debug("seeds",
		zap.Int64("sample_seed", cfg.SampleSeed),
		zap.Uint64("synth_seed", synthSeed))

	return &App{
		config:      cfg,
		logger:      appLogger,
		telemetry:   tel,
		sink:        recipeSink,
		out:         out,
		synthesizer: synth.NewSynthesizer(newRand(synthSeed), synth.WithMetrics(synthMetrics)),
		duration:    duration,
	}, nil
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Run generates the dataset and prints the outcome.
// A missing input and any other failure are reported differently; both return the error.
func (app *App) Run(ctx context.Context) error {
	start := time.Now()

	n, err := app.generate(ctx)
	if err != nil {
		if errors.Is(err, dataset.ErrInputNotFound) {
			report.InputNotFound(app.out, app.config.InputPath)
		} else {
			report.Failure(app.out, err)
		}
		app.logger.Error("generation failed", zap.Error(err))
		return err
	}

	elapsed := time.Since(start)
	app.duration.Record(ctx, elapsed.Seconds())
	app.logger.Info("generation finished",
		zap.Int("recipes", n),
		zap.String("output", app.config.OutputPath),
		zap.Duration("elapsed", elapsed))

	if app.config.MetricsTextfile != "" {
		if err := app.telemetry.WriteTextfile(app.config.MetricsTextfile); err != nil {
			app.logger.Warn("failed to write metrics textfile", zap.Error(err))
		}
	}
	return nil
}

func (app *App) generate(ctx context.Context) (int, error) {
	report.Reading(app.out, app.config.InputPath)
	rows, err := dataset.LoadSource(app.config.InputPath)
	if err != nil {
		return 0, fmt.Errorf("load source: %w", err)
	}
	app.logger.Info("source loaded", zap.String("path", app.config.InputPath), zap.Int("rows", len(rows)))

	seed := uint64(app.config.SampleSeed)
	sampled := synth.Sample(newRand(seed), rows, app.config.SampleSize)
	report.Processing(app.out, len(sampled))

	recipes := app.synthesizer.Synthesize(ctx, sampled)

	if err := dataset.WriteRecipes(app.config.OutputPath, recipes); err != nil {
		return 0, fmt.Errorf("write output: %w", err)
	}

	if app.sink != nil {
		if err := app.sink.Store(ctx, recipes); err != nil {
			return 0, fmt.Errorf("export recipes: %w", err)
		}
	}

	report.Success(app.out, app.config.OutputPath, recipes, app.config.PreviewRows)
	return len(recipes), nil
}

// Close releases the sink and flushes telemetry
func (app *App) Close() error {
	var sinkErr error
	if app.sink != nil {
		sinkErr = app.sink.Close()
	}
	telErr := app.telemetry.Shutdown(context.Background())
	return errors.Join(sinkErr, telErr)
}
