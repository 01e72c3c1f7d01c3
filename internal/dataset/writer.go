package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shaibs3/resepgen/internal/db_model"
)

// WriteRecipes writes recipes to path, replacing any existing file.
// The data goes to a temp file next to path first, so a failed run leaves path untouched.
func WriteRecipes(path string, recipes []db_model.Recipe) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = EncodeRecipes(tmp, recipes); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

// EncodeRecipes writes the header and one CSV record per recipe to w
func EncodeRecipes(w io.Writer, recipes []db_model.Recipe) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(db_model.Columns[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range recipes {
		record, err := r.Record()
		if err != nil {
			return fmt.Errorf("failed to encode recipe %d: %w", r.ID, err)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write recipe %d: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
