package db_model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// EncodeList renders items as a JSON array in the `["a", "b"]` form used by
// the recipe dataset, with ", " separators and no HTML escaping.
func EncodeList(items []string) (string, error) {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(item); err != nil {
			return "", err
		}
		sb.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	}
	sb.WriteByte(']')
	return sb.String(), nil
}

// DecodeList parses a JSON array of strings
func DecodeList(s string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Record returns the row as text cells in Columns order
func (r Recipe) Record() ([]string, error) {
	ingredients, err := EncodeList(r.Ingredients)
	if err != nil {
		return nil, err
	}
	steps, err := EncodeList(r.Steps)
	if err != nil {
		return nil, err
	}

	return []string{
		strconv.Itoa(r.ID),
		r.Title,
		r.Description,
		ingredients,
		steps,
		r.Category,
		strconv.Itoa(r.CookTime),
		r.Difficulty,
		r.ImageURL,
		r.CreatedAt.Format(CreatedAtLayout),
		strconv.Itoa(r.Servings),
		strconv.Itoa(r.PrepTime),
		r.Status,
	}, nil
}
