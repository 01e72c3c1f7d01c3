package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/shaibs3/resepgen/internal/config"
	"github.com/shaibs3/resepgen/internal/dataset"
	"github.com/shaibs3/resepgen/internal/db_model"
	"github.com/shaibs3/resepgen/internal/sink"
	"github.com/shaibs3/resepgen/internal/synth"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeNutrition(t *testing.T, dir string, n int) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("id,calories,proteins,fat,carbohydrate,name,image\n")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "%d,%d,1.5,2,3,makanan nomor %d,https://img.example/%d.jpg\n", i, i*10, i, i)
	}
	path := filepath.Join(dir, "nutrition.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func testConfig(dir string) *config.Config {
	return &config.Config{
		Environment: "development",
		LogLevel:    "debug",
		InputPath:   filepath.Join(dir, "nutrition.csv"),
		OutputPath:  filepath.Join(dir, "resep_dataset_final.csv"),
		SampleSize:  config.DefaultSampleSize,
		SampleSeed:  config.DefaultSampleSeed,
		PreviewRows: config.DefaultPreviewRows,
	}
}

func runApp(t *testing.T, cfg *config.Config) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a, err := NewApp(cfg, zap.NewNop(), &out)
	require.NoError(t, err)
	defer a.Close()
	err = a.Run(context.Background())
	return out.String(), err
}

func readOutput(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Equal(t, db_model.Columns[:], records[0])
	return records[1:]
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	out, err := runApp(t, cfg)
	require.ErrorIs(t, err, dataset.ErrInputNotFound)
	require.Contains(t, out, "ERROR: input file '"+cfg.InputPath+"' not found")

	_, statErr := os.Stat(cfg.OutputPath)
	require.True(t, os.IsNotExist(statErr), "no output file should be created")
}

func TestRun_MissingInputLeavesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	require.NoError(t, os.WriteFile(cfg.OutputPath, []byte("previous run\n"), 0o644))

	_, err := runApp(t, cfg)
	require.Error(t, err)

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	require.Equal(t, "previous run\n", string(data))
}

func TestRun_MalformedInputIsGenericFailure(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	require.NoError(t, os.WriteFile(cfg.InputPath, []byte("title,picture\nx,y\n"), 0o644))

	out, err := runApp(t, cfg)
	require.Error(t, err)
	require.NotErrorIs(t, err, dataset.ErrInputNotFound)
	require.Contains(t, out, "ERROR: processing failed:")
	_, statErr := os.Stat(cfg.OutputPath)
	require.True(t, os.IsNotExist(statErr))
}

func TestRun_FiveRows(t *testing.T) {
	dir := t.TempDir()
	writeNutrition(t, dir, 5)
	cfg := testConfig(dir)

	out, err := runApp(t, cfg)
	require.NoError(t, err)
	require.Contains(t, out, "Processing 5 recipes...")
	require.Contains(t, out, "SUCCESS!")

	records := readOutput(t, cfg.OutputPath)
	require.Len(t, records, 5)
	for i, rec := range records {
		require.Equal(t, strconv.Itoa(i+1), rec[0])
		require.True(t, strings.HasPrefix(rec[1], "Makanan Nomor "), rec[1])
		require.Equal(t, "published", rec[12])
	}
}

func TestRun_CapsAtTwoHundred(t *testing.T) {
	dir := t.TempDir()
	writeNutrition(t, dir, 500)
	cfg := testConfig(dir)

	_, err := runApp(t, cfg)
	require.NoError(t, err)

	records := readOutput(t, cfg.OutputPath)
	require.Len(t, records, 200)

	seen := map[string]bool{}
	for i, rec := range records {
		require.Equal(t, strconv.Itoa(i+1), rec[0])

		ingredients, err := db_model.DecodeList(rec[3])
		require.NoError(t, err)
		require.Subset(t, synth.Ingredients(), ingredients)
		require.True(t, len(ingredients) >= 3 && len(ingredients) <= 8)

		steps, err := db_model.DecodeList(rec[4])
		require.NoError(t, err)
		require.Subset(t, synth.Steps(), steps)
		require.True(t, len(steps) >= 3 && len(steps) <= 6)

		require.Contains(t, synth.Categories(), rec[5])
		require.Contains(t, synth.Difficulties(), rec[7])

		require.False(t, seen[rec[8]], "source row sampled twice")
		seen[rec[8]] = true
	}
}

func TestRun_SampleIsReproducible(t *testing.T) {
	dir := t.TempDir()
	writeNutrition(t, dir, 300)
	cfg := testConfig(dir)

	_, err := runApp(t, cfg)
	require.NoError(t, err)
	first := readOutput(t, cfg.OutputPath)

	_, err = runApp(t, cfg)
	require.NoError(t, err)
	second := readOutput(t, cfg.OutputPath)

	require.Len(t, second, len(first))
	for i := range first {
		require.Equal(t, first[i][1], second[i][1], "title of row %d", i+1)
		require.Equal(t, first[i][8], second[i][8], "image of row %d", i+1)
	}
}

func TestRun_SynthSeedMakesRowsReproducible(t *testing.T) {
	dir := t.TempDir()
	writeNutrition(t, dir, 50)
	cfg := testConfig(dir)
	cfg.SynthSeed = 99

	_, err := runApp(t, cfg)
	require.NoError(t, err)
	first := readOutput(t, cfg.OutputPath)

	_, err = runApp(t, cfg)
	require.NoError(t, err)
	second := readOutput(t, cfg.OutputPath)

	for i := range first {
		// created_at may tick between runs
		first[i][9], second[i][9] = "", ""
	}
	require.Equal(t, first, second)
}

func TestRun_ExportsAndWritesMetrics(t *testing.T) {
	dir := t.TempDir()
	writeNutrition(t, dir, 12)
	cfg := testConfig(dir)
	cfg.SinkConfig = fmt.Sprintf(`{"db_type":"sqlite","extra_details":{"path":%q}}`, filepath.Join(dir, "recipes.db"))
	cfg.MetricsTextfile = filepath.Join(dir, "resepgen.prom")

	_, err := runApp(t, cfg)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "recipes.db"))
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.MetricsTextfile)
	require.NoError(t, err)
	require.Contains(t, string(data), "recipes_synthesized")
	require.Contains(t, string(data), "sampled_source_rows")
}

func TestNewApp_InvalidSinkConfig(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.SinkConfig = `{"db_type":"kafka"}`

	_, err := NewApp(cfg, zap.NewNop(), &bytes.Buffer{})
	require.ErrorContains(t, err, "unsupported sink type")
}

func TestRun_MissingInputCreatesNoDatabase(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	dbPath := filepath.Join(dir, "recipes.db")
	cfg.SinkConfig = fmt.Sprintf(`{"db_type":"sqlite","extra_details":{"path":%q}}`, dbPath)

	out, err := runApp(t, cfg)
	require.ErrorIs(t, err, dataset.ErrInputNotFound)
	require.Contains(t, out, "not found")
	require.NoFileExists(t, dbPath)
	require.NoFileExists(t, cfg.OutputPath)
}

func TestRun_SQLiteExportMatchesLatestRun(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.SinkConfig = fmt.Sprintf(`{"db_type":"sqlite","extra_details":{"path":%q}}`, filepath.Join(dir, "recipes.db"))

	writeNutrition(t, dir, 50)
	_, err := runApp(t, cfg)
	require.NoError(t, err)

	writeNutrition(t, dir, 5)
	_, err = runApp(t, cfg)
	require.NoError(t, err)
	require.Len(t, readOutput(t, cfg.OutputPath), 5)

	s, err := sink.NewSQLiteSink(sink.Config{
		DbType:       sink.SinkTypeSQLite,
		ExtraDetails: map[string]interface{}{"path": filepath.Join(dir, "recipes.db")},
	}, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	stored, err := s.Recipes(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 5)
	for i, r := range stored {
		require.Equal(t, i+1, r.ID)
	}
}

func TestRun_NoSinkConfigured(t *testing.T) {
	dir := t.TempDir()
	writeNutrition(t, dir, 3)
	cfg := testConfig(dir)

	a, err := NewApp(cfg, zap.NewNop(), &bytes.Buffer{})
	require.NoError(t, err)
	require.Nil(t, a.sink)
	require.NoError(t, a.Run(context.Background()))
	require.NoError(t, a.Close())
}
