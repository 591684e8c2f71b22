package cmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srcinit/internal/sources"
	"srcinit/internal/templates"
)

func TestRunSyncDownloadsEveryRemoteSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("bundle for " + r.URL.Path))
	}))
	t.Cleanup(srv.Close)

	store := sources.Store{Dir: t.TempDir()}
	require.NoError(t, store.Add("main", srv.URL+"/main.zip"))
	require.NoError(t, store.Add("extra", srv.URL+"/extra.zip"))

	sy := templates.Syncer{Dir: filepath.Join(t.TempDir(), "sync")}
	statePath := filepath.Join(t.TempDir(), "state.json")

	runSync(store, sy, statePath, false)

	// Both remote sources got a bundle; the reserved local source got none.
	assert.True(t, sy.HasBundle("main"))
	assert.True(t, sy.HasBundle("extra"))
	assert.False(t, sy.HasBundle(sources.LocalName))

	// Sync bookkeeping recorded both downloads.
	st := templates.LoadState(statePath)
	assert.Contains(t, st.Sources, "main")
	assert.Contains(t, st.Sources, "extra")
	assert.Equal(t, srv.URL+"/main.zip", st.Sources["main"].URL)
}

func TestRunSyncContinuesPastFailedSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad.zip" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(srv.Close)

	store := sources.Store{Dir: t.TempDir()}
	require.NoError(t, store.Add("bad", srv.URL+"/bad.zip"))
	require.NoError(t, store.Add("good", srv.URL+"/good.zip"))

	sy := templates.Syncer{Dir: filepath.Join(t.TempDir(), "sync")}
	statePath := filepath.Join(t.TempDir(), "state.json")

	runSync(store, sy, statePath, false)

	assert.False(t, sy.HasBundle("bad"))
	assert.True(t, sy.HasBundle("good"))

	st := templates.LoadState(statePath)
	assert.NotContains(t, st.Sources, "bad")
	assert.Contains(t, st.Sources, "good")
}

func TestRunSyncRollback(t *testing.T) {
	stubConfirm(t, true)

	store := sources.Store{Dir: t.TempDir()}
	require.NoError(t, store.Add("main", "https://example.com/templates.zip"))

	sy := templates.Syncer{Dir: filepath.Join(t.TempDir(), "sync")}
	require.NoError(t, os.MkdirAll(sy.Dir, 0755))
	require.NoError(t, os.WriteFile(sy.BundlePath("main"), []byte("bundle-v2"), 0644))
	require.NoError(t, os.WriteFile(sy.BundlePath("main")+".old", []byte("bundle-v1"), 0644))

	runSync(store, sy, filepath.Join(t.TempDir(), "state.json"), true)

	data, err := os.ReadFile(sy.BundlePath("main"))
	require.NoError(t, err)
	assert.Equal(t, "bundle-v1", string(data))
}

func TestRunSyncRollbackDeclined(t *testing.T) {
	stubConfirm(t, false)

	store := sources.Store{Dir: t.TempDir()}
	require.NoError(t, store.Add("main", "https://example.com/templates.zip"))

	sy := templates.Syncer{Dir: filepath.Join(t.TempDir(), "sync")}
	require.NoError(t, os.MkdirAll(sy.Dir, 0755))
	require.NoError(t, os.WriteFile(sy.BundlePath("main"), []byte("bundle-v2"), 0644))
	require.NoError(t, os.WriteFile(sy.BundlePath("main")+".old", []byte("bundle-v1"), 0644))

	runSync(store, sy, filepath.Join(t.TempDir(), "state.json"), true)

	// Declining the confirmation leaves both bundles in place.
	data, err := os.ReadFile(sy.BundlePath("main"))
	require.NoError(t, err)
	assert.Equal(t, "bundle-v2", string(data))
	_, err = os.Stat(sy.BundlePath("main") + ".old")
	assert.NoError(t, err)
}
