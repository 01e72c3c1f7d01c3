package synth

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records synthesis counters. A nil *Metrics records nothing.
type Metrics struct {
	sampledRows metric.Int64Counter
	recipes     metric.Int64Counter
	listLength  metric.Int64Histogram
}

// NewMetrics registers the synthesis instruments on meter
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	if meter == nil {
		return nil, nil
	}

	sampled, err := meter.Int64Counter("sampled_source_rows",
		metric.WithDescription("Source rows selected for synthesis"))
	if err != nil {
		return nil, fmt.Errorf("failed to create sampled rows counter: %w", err)
	}
	recipes, err := meter.Int64Counter("recipes_synthesized",
		metric.WithDescription("Recipes synthesized, by category and difficulty"))
	if err != nil {
		return nil, fmt.Errorf("failed to create recipes counter: %w", err)
	}
	listLength, err := meter.Int64Histogram("recipe_list_length",
		metric.WithDescription("Number of ingredients or steps drawn per recipe"),
		metric.WithExplicitBucketBoundaries(3, 4, 5, 6, 7, 8))
	if err != nil {
		return nil, fmt.Errorf("failed to create list length histogram: %w", err)
	}

	return &Metrics{
		sampledRows: sampled,
		recipes:     recipes,
		listLength:  listLength,
	}, nil
}

func (m *Metrics) recordSample(ctx context.Context, n int) {
	if m == nil {
		return
	}
	m.sampledRows.Add(ctx, int64(n))
}

func (m *Metrics) recordRecipe(ctx context.Context, category, difficulty string, ingredients, steps int) {
	if m == nil {
		return
	}
	m.recipes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", category),
		attribute.String("difficulty", difficulty),
	))
	m.listLength.Record(ctx, int64(ingredients), metric.WithAttributes(attribute.String("list", "ingredients")))
	m.listLength.Record(ctx, int64(steps), metric.WithAttributes(attribute.String("list", "steps")))
}
