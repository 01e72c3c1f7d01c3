package sink

import (
	"context"

	"github.com/shaibs3/resepgen/internal/db_model"
)

// RecipeSink receives the synthesized batch after the output file is written
type RecipeSink interface {
	Store(ctx context.Context, recipes []db_model.Recipe) error
	Close() error
}
