package sink

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shaibs3/resepgen/internal/db"
	"github.com/shaibs3/resepgen/internal/db_model"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteSink seeds a recipes table in a local SQLite file.
// The file is not opened until the first Store or Recipes call.
type SQLiteSink struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

func NewSQLiteSink(config Config, logger *zap.Logger) (*SQLiteSink, error) {
	path, ok := config.ExtraDetails["path"].(string)
	if !ok || path == "" {
		return nil, fmt.Errorf("path is required for sqlite sink")
	}

	return &SQLiteSink{
		path:   path,
		logger: logger.Named("sqlite"),
	}, nil
}

func (s *SQLiteSink) open(ctx context.Context) error {
	if s.db != nil {
		return nil
	}
	s.logger.Info("opening sqlite database", zap.String("path", s.path))

	dbConn, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if _, err := dbConn.ExecContext(ctx, db_model.Schema); err != nil {
		dbConn.Close()
		s.logger.Error("failed to create recipes table", zap.Error(err))
		return fmt.Errorf("failed to create recipes table: %w", err)
	}

	s.db = dbConn
	return nil
}

// Store replaces the table contents with the batch in one transaction
func (s *SQLiteSink) Store(ctx context.Context, recipes []db_model.Recipe) error {
	if err := s.open(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := db.ReplaceRecipes(ctx, tx, recipes); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("recipes exported", zap.String("path", s.path), zap.Int("count", len(recipes)))
	return nil
}

// Recipes reads back every stored recipe ordered by id
func (s *SQLiteSink) Recipes(ctx context.Context) ([]db_model.Recipe, error) {
	if err := s.open(ctx); err != nil {
		return nil, err
	}
	return db.GetRecipes(ctx, s.db)
}

func (s *SQLiteSink) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
