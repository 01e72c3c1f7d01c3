package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shaibs3/resepgen/internal/db_model"
)

var rule = strings.Repeat("=", 50)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Reading announces the load step
func Reading(w io.Writer, inputPath string) {
	fmt.Fprintf(w, "Reading %s...\n", inputPath)
}

// Processing announces how many recipes will be generated
func Processing(w io.Writer, n int) {
	fmt.Fprintf(w, "Processing %d recipes...\n", n)
}

// Success prints the banner and a preview of the first previewRows recipes
func Success(w io.Writer, outputPath string, recipes []db_model.Recipe, previewRows int) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "SUCCESS! File '%s' has been created.\n", outputPath)
	fmt.Fprintln(w, rule)

	n := min(previewRows, len(recipes))
	if n <= 0 {
		return
	}
	fmt.Fprintf(w, "Preview of the first %d rows:\n", n)
	fmt.Fprintln(w, Preview(recipes[:n]))
}

// Preview renders title, category and difficulty as a table
func Preview(recipes []db_model.Recipe) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("", "title", "category", "difficulty")

	for i, r := range recipes {
		t.Row(strconv.Itoa(i), r.Title, r.Category, r.Difficulty)
	}
	return t.Render()
}

// InputNotFound prints the remediation message for a missing source file
func InputNotFound(w io.Writer, inputPath string) {
	fmt.Fprintf(w, "ERROR: input file '%s' not found. Make sure the file is in the same folder.\n", inputPath)
}

// Failure prints a generic processing error
func Failure(w io.Writer, err error) {
	fmt.Fprintf(w, "ERROR: processing failed: %v\n", err)
}
