package synth

import (
	"context"
	"fmt"
	"time"

	"github.com/shaibs3/resepgen/internal/db_model"
)

const descriptionTemplate = "Resep %s yang lezat, praktis, dan mudah dibuat di rumah. Cocok untuk hidangan keluarga."

// Bounds of the generated fields, inclusive
const (
	MinIngredients, MaxIngredients = 3, 8
	MinSteps, MaxSteps             = 3, 6
	MinCookTime, MaxCookTime       = 10, 60
	MinPrepTime, MaxPrepTime       = 5, 30
	MinServings, MaxServings       = 1, 6
)

// Synthesizer turns sampled source rows into recipes
type Synthesizer struct {
	rng     Rand
	now     func() time.Time
	metrics *Metrics
}

type Option func(*Synthesizer)

// WithClock replaces time.Now as the created_at source
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) { s.now = now }
}

func WithMetrics(m *Metrics) Option {
	return func(s *Synthesizer) { s.metrics = m }
}

// NewSynthesizer creates a synthesizer drawing per-row values from rng
func NewSynthesizer(rng Rand, opts ...Option) *Synthesizer {
	s := &Synthesizer{rng: rng, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize builds one recipe per row, with ids 1..len(rows) in row order
func (s *Synthesizer) Synthesize(ctx context.Context, rows []db_model.SourceRow) []db_model.Recipe {
	s.metrics.recordSample(ctx, len(rows))

	recipes := make([]db_model.Recipe, len(rows))
	for i, row := range rows {
		recipes[i] = s.recipe(i+1, row)
		r := recipes[i]
		s.metrics.recordRecipe(ctx, r.Category, r.Difficulty, len(r.Ingredients), len(r.Steps))
	}
	return recipes
}

func (s *Synthesizer) recipe(id int, row db_model.SourceRow) db_model.Recipe {
	title := TitleCase(row.Name)
	return db_model.Recipe{
		ID:          id,
		Title:       title,
		Description: fmt.Sprintf(descriptionTemplate, title),
		Ingredients: drawDistinct(s.rng, ingredientPool[:], intBetween(s.rng, MinIngredients, MaxIngredients)),
		Steps:       drawDistinct(s.rng, stepPool[:], intBetween(s.rng, MinSteps, MaxSteps)),
		Category:    choice(s.rng, categoryLabels[:]),
		CookTime:    intBetween(s.rng, MinCookTime, MaxCookTime),
		Difficulty:  choice(s.rng, difficultyLabels[:]),
		ImageURL:    row.Image,
		CreatedAt:   s.now().Truncate(time.Second),
		Servings:    intBetween(s.rng, MinServings, MaxServings),
		PrepTime:    intBetween(s.rng, MinPrepTime, MaxPrepTime),
		Status:      db_model.StatusPublished,
	}
}
