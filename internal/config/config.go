package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	DefaultInputPath   = "nutrition.csv"
	DefaultOutputPath  = "resep_dataset_final.csv"
	DefaultSampleSize  = 200
	DefaultSampleSeed  = 42
	DefaultPreviewRows = 5
)

// Config holds the runtime settings of a generation run
type Config struct {
	Environment string
	LogLevel    string

	InputPath  string
	OutputPath string

	SampleSize int
	SampleSeed int64
	// SynthSeed seeds the per-row generator. Zero means seed from the wall clock.
	SynthSeed int64

	PreviewRows int

	// SinkConfig is the JSON sink description, empty disables export
	SinkConfig      string
	MetricsTextfile string
}

// Load reads an optional .env file and then the process environment.
func Load(logger *zap.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("failed to load .env file", zap.Error(err))
		}
	}

	return &Config{
		Environment:     getEnv("ENVIRONMENT", "production"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		InputPath:       getEnv("INPUT_PATH", DefaultInputPath),
		OutputPath:      getEnv("OUTPUT_PATH", DefaultOutputPath),
		SampleSize:      getEnvInt(logger, "SAMPLE_SIZE", DefaultSampleSize),
		SampleSeed:      getEnvInt64(logger, "SAMPLE_SEED", DefaultSampleSeed),
		SynthSeed:       getEnvInt64(logger, "SYNTH_SEED", 0),
		PreviewRows:     getEnvInt(logger, "PREVIEW_ROWS", DefaultPreviewRows),
		SinkConfig:      os.Getenv("SINK_CONFIG"),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(logger *zap.Logger, key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		logger.Warn("invalid integer in environment, using default",
			zap.String("key", key), zap.String("value", v), zap.Int("default", fallback))
		return fallback
	}
	return n
}

func getEnvInt64(logger *zap.Logger, key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		logger.Warn("invalid integer in environment, using default",
			zap.String("key", key), zap.String("value", v), zap.Int64("default", fallback))
		return fallback
	}
	return n
}
