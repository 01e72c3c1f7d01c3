package db_model

import "time"

// CreatedAtLayout is the created_at text format of the output file and the recipes table
const CreatedAtLayout = "2006-01-02 15:04:05"

// StatusPublished is the status of every generated recipe
const StatusPublished = "published"

// Columns is the ordered output schema
var Columns = [...]string{
	"id",
	"title",
	"description",
	"ingredients",
	"steps",
	"category",
	"cook_time",
	"difficulty",
	"image_url",
	"created_at",
	"servings",
	"prep_time",
	"status",
}

// SourceRow is one row of the nutrition dataset. Other columns are ignored.
type SourceRow struct {
	Name  string `db_model:"name" json:"name"`
	Image string `db_model:"image" json:"image"`
}

// Recipe is a synthesized recipe row
type Recipe struct {
	ID          int       `db_model:"id" json:"id"`
	Title       string    `db_model:"title" json:"title"`
	Description string    `db_model:"description" json:"description"`
	Ingredients []string  `db_model:"ingredients" json:"ingredients"`
	Steps       []string  `db_model:"steps" json:"steps"`
	Category    string    `db_model:"category" json:"category"`
	CookTime    int       `db_model:"cook_time" json:"cook_time"`
	Difficulty  string    `db_model:"difficulty" json:"difficulty"`
	ImageURL    string    `db_model:"image_url" json:"image_url"`
	CreatedAt   time.Time `db_model:"created_at" json:"created_at"`
	Servings    int       `db_model:"servings" json:"servings"`
	PrepTime    int       `db_model:"prep_time" json:"prep_time"`
	Status      string    `db_model:"status" json:"status"`
}

// Schema is the SQL schema for the recipes table
const Schema = `
CREATE TABLE IF NOT EXISTS recipes (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    ingredients TEXT NOT NULL,
    steps TEXT NOT NULL,
    category TEXT NOT NULL,
    cook_time INTEGER NOT NULL,
    difficulty TEXT NOT NULL,
    image_url TEXT,
    created_at TEXT NOT NULL,
    servings INTEGER NOT NULL,
    prep_time INTEGER NOT NULL,
    status TEXT NOT NULL
);
`
