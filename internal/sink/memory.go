package sink

import (
	"context"
	"slices"
	"sync"

	"github.com/shaibs3/resepgen/internal/db_model"
)

// MemorySink keeps the last stored batch
type MemorySink struct {
	mu      sync.RWMutex
	recipes []db_model.Recipe
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (m *MemorySink) Store(ctx context.Context, recipes []db_model.Recipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recipes = slices.Clone(recipes) // replace, a rerun is a new batch
	return nil
}

// Recipes returns a copy of the stored batch
func (m *MemorySink) Recipes() []db_model.Recipe {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.recipes)
}

func (m *MemorySink) Close() error {
	return nil
}
