package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"app_2026-01-01_00-00-00.log",
		"app_2026-01-02_00-00-00.log",
		"app_2026-01-03_00-00-00.log",
		"app_2026-01-04_00-00-00.log",
		"worker_2026-01-01_00-00-00.log",
		"notes.txt",
	}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}

	cleanupLogs(dir, "app", 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"app_2026-01-03_00-00-00.log",
		"app_2026-01-04_00-00-00.log",
		"worker_2026-01-01_00-00-00.log",
		"notes.txt",
	}, left)
}

type recordingStopper struct {
	calls *[]string
	name  string
	err   error
}

func (r recordingStopper) Shutdown(context.Context) error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

func (r recordingStopper) Stop(context.Context) error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

func TestGracefulShutdown_Order(t *testing.T) {
	var calls []string

	GracefulShutdown(context.Background(), ShutdownComponents{
		Server:  recordingStopper{calls: &calls, name: "server", err: errors.New("busy")},
		Workers: map[string]Stopper{"queue": recordingStopper{calls: &calls, name: "queue"}, "skipped": nil},
		Closers: []func(){func() { calls = append(calls, "db") }},
	})

	assert.Equal(t, []string{"server", "queue", "db"}, calls)
}
