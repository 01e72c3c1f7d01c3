package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTelemetry_WriteTextfile(t *testing.T) {
	tel, err := NewTelemetry(zap.NewNop())
	require.NoError(t, err)
	defer tel.Shutdown(context.Background())

	counter, err := tel.Meter.Int64Counter("test_events")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	families, err := tel.Registry.Gather()
	require.NoError(t, err)
	found := false
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "test_events") {
			found = true
		}
	}
	require.True(t, found, "counter should be exported to the registry")

	path := filepath.Join(t.TempDir(), "resepgen.prom")
	require.NoError(t, tel.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "test_events")
}
