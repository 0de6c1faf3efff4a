package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/patrickemami/pomcp-go/internal/pomcp"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParsesYAML(t *testing.T) {
	path := writeTempConfig(t, `
num_sims: 200
discount: 0.99
action_selection_timeout_seconds: 0.5
`)

	f, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 200, f.NumSims)
	require.InDelta(t, 0.99, f.Discount, 1e-6)
	require.InDelta(t, 0.5, f.ActionSelectionSeconds, 1e-6)
}

func TestToPlannerConfigFallsBackToDefaults(t *testing.T) {
	f := File{NumSims: 123}
	cfg := f.ToPlannerConfig()

	require.Equal(t, 123, cfg.NumSims)
	def := pomcp.DefaultConfig()
	require.Equal(t, def.MaximumDepth, cfg.MaximumDepth)
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWatcherPicksUpReload(t *testing.T) {
	path := writeTempConfig(t, "num_sims: 10\n")
	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.Equal(t, 10, w.Current().NumSims)

	require.NoError(t, os.WriteFile(path, []byte("num_sims: 20\n"), 0o644))

	require.Eventually(t, func() bool {
		return w.Current().NumSims == 20
	}, 2*time.Second, 20*time.Millisecond)
}
