package sink

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Factory builds sinks from their JSON configuration
type Factory struct {
	logger *zap.Logger
}

func NewFactory(logger *zap.Logger) *Factory {
	return &Factory{
		logger: logger.Named("sink"),
	}
}

// CreateSink parses configJSON and returns the matching sink. Sinks touch no files until Store.
func (f *Factory) CreateSink(configJSON string) (RecipeSink, error) {
	if configJSON == "" {
		return nil, errors.New("empty sink configuration")
	}

	var config Config
	f.logger.Debug("parsing configuration", zap.String("configJSON", configJSON))
	if err := json.Unmarshal([]byte(configJSON), &config); err != nil {
		return nil, fmt.Errorf("failed to parse sink configuration JSON: %w", err)
	}

	f.logger.Info("creating sink",
		zap.String("db_type", config.DbType.String()),
		zap.Any("extra_details", config.ExtraDetails))

	if !config.DbType.IsValid() {
		return nil, fmt.Errorf("unsupported sink type: %q", config.DbType)
	}

	switch config.DbType {
	case SinkTypeSQLite:
		return NewSQLiteSink(config, f.logger)
	default:
		return NewMemorySink(), nil
	}
}
