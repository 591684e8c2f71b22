package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srcinit/internal/sources"
	"srcinit/internal/templates"
)

// captureStdout runs fn and returns everything it printed to standard output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestRunListShowsLocalAndBundleTemplates(t *testing.T) {
	tstore := templates.Store{Root: filepath.Join(t.TempDir(), "templates")}
	src := filepath.Join(t.TempDir(), "go-cli")
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "main.go"), []byte("package main\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "template.yaml"),
		[]byte("name: go-cli\ndescription: A command-line skeleton\n"), 0644))
	_, err := tstore.Import(src)
	require.NoError(t, err)

	store := sources.Store{Dir: t.TempDir()}
	require.NoError(t, store.Add("main", "https://example.com/templates.zip"))

	sy := templates.Syncer{Dir: filepath.Join(t.TempDir(), "sync")}
	writeBundle(t, sy.BundlePath("main"), map[string]string{
		"web/index.html": "<html></html>",
	})

	out := captureStdout(t, func() {
		runList(store, tstore, sy, false)
	})
	assert.Contains(t, out, "go-cli (local): A command-line skeleton")
	assert.Contains(t, out, "web (main)")
}

func TestRunListLocalOnly(t *testing.T) {
	tstore := templates.Store{Root: filepath.Join(t.TempDir(), "templates")}
	src := filepath.Join(t.TempDir(), "go-cli")
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "main.go"), []byte("package main\n"), 0644))
	_, err := tstore.Import(src)
	require.NoError(t, err)

	store := sources.Store{Dir: t.TempDir()}
	require.NoError(t, store.Add("main", "https://example.com/templates.zip"))

	sy := templates.Syncer{Dir: filepath.Join(t.TempDir(), "sync")}
	writeBundle(t, sy.BundlePath("main"), map[string]string{
		"web/index.html": "<html></html>",
	})

	out := captureStdout(t, func() {
		runList(store, tstore, sy, true)
	})
	assert.Contains(t, out, "go-cli (local)")
	assert.NotContains(t, out, "web (main)")
}

func TestRunListEmpty(t *testing.T) {
	store := sources.Store{Dir: t.TempDir()}
	tstore := templates.Store{Root: filepath.Join(t.TempDir(), "templates")}
	sy := templates.Syncer{Dir: filepath.Join(t.TempDir(), "sync")}

	out := captureStdout(t, func() {
		runList(store, tstore, sy, false)
	})
	assert.Contains(t, out, "No entries to list, a proper sync might be required")
}
