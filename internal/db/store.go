package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shaibs3/resepgen/internal/db_model"
)

const insertRecipe = `INSERT INTO recipes
	(id, title, description, ingredients, steps, category, cook_time, difficulty,
	 image_url, created_at, servings, prep_time, status)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// ReplaceRecipes empties the recipes table and inserts recipes, all inside tx
func ReplaceRecipes(ctx context.Context, tx *sql.Tx, recipes []db_model.Recipe) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM recipes`); err != nil {
		return fmt.Errorf("failed to clear recipes: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertRecipe)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range recipes {
		ingredients, err := db_model.EncodeList(r.Ingredients)
		if err != nil {
			return fmt.Errorf("failed to encode ingredients of recipe %d: %w", r.ID, err)
		}
		steps, err := db_model.EncodeList(r.Steps)
		if err != nil {
			return fmt.Errorf("failed to encode steps of recipe %d: %w", r.ID, err)
		}
		_, err = stmt.ExecContext(ctx,
			r.ID, r.Title, r.Description, ingredients, steps, r.Category, r.CookTime,
			r.Difficulty, r.ImageURL, r.CreatedAt.Format(db_model.CreatedAtLayout),
			r.Servings, r.PrepTime, r.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert recipe %d: %w", r.ID, err)
		}
	}
	return nil
}

// GetRecipes returns all recipes ordered by id
func GetRecipes(ctx context.Context, db *sql.DB) ([]db_model.Recipe, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, description, ingredients, steps, category, cook_time, difficulty,
		       image_url, created_at, servings, prep_time, status
		FROM recipes
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []db_model.Recipe
	for rows.Next() {
		var (
			rec                db_model.Recipe
			ingredients, steps string
			createdAt          string
			imageURL           sql.NullString
		)
		err := rows.Scan(&rec.ID, &rec.Title, &rec.Description, &ingredients, &steps,
			&rec.Category, &rec.CookTime, &rec.Difficulty, &imageURL, &createdAt,
			&rec.Servings, &rec.PrepTime, &rec.Status)
		if err != nil {
			return nil, err
		}
		rec.ImageURL = imageURL.String
		if rec.Ingredients, err = db_model.DecodeList(ingredients); err != nil {
			return nil, fmt.Errorf("recipe %d ingredients: %w", rec.ID, err)
		}
		if rec.Steps, err = db_model.DecodeList(steps); err != nil {
			return nil, fmt.Errorf("recipe %d steps: %w", rec.ID, err)
		}
		if rec.CreatedAt, err = time.ParseInLocation(db_model.CreatedAtLayout, createdAt, time.Local); err != nil {
			return nil, fmt.Errorf("recipe %d created_at: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
