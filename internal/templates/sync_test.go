package templates

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempSyncer(t *testing.T) Syncer {
	t.Helper()
	return Syncer{Dir: filepath.Join(t.TempDir(), "sync")}
}

// bundleServer serves the given body for every request.
func bundleServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSyncDownloadsBundle(t *testing.T) {
	sy := tempSyncer(t)
	srv := bundleServer(t, http.StatusOK, "bundle-v1")

	require.NoError(t, sy.Sync("main", srv.URL))
	assert.True(t, sy.HasBundle("main"))

	data, err := os.ReadFile(sy.BundlePath("main"))
	require.NoError(t, err)
	assert.Equal(t, "bundle-v1", string(data))
}

func TestSyncParksPreviousBundle(t *testing.T) {
	sy := tempSyncer(t)
	srv := bundleServer(t, http.StatusOK, "bundle-v2")

	require.NoError(t, os.MkdirAll(sy.Dir, 0755))
	require.NoError(t, os.WriteFile(sy.BundlePath("main"), []byte("bundle-v1"), 0644))

	require.NoError(t, sy.Sync("main", srv.URL))

	data, err := os.ReadFile(sy.BundlePath("main"))
	require.NoError(t, err)
	assert.Equal(t, "bundle-v2", string(data))
	old, err := os.ReadFile(sy.BundlePath("main") + ".old")
	require.NoError(t, err)
	assert.Equal(t, "bundle-v1", string(old))
}

func TestSyncReportsHTTPFailure(t *testing.T) {
	sy := tempSyncer(t)
	srv := bundleServer(t, http.StatusNotFound, "missing")

	err := sy.Sync("main", srv.URL)
	assert.ErrorContains(t, err, "HTTP status 404")
	assert.False(t, sy.HasBundle("main"))
}

func TestRollbackRestoresPreviousBundle(t *testing.T) {
	sy := tempSyncer(t)
	require.NoError(t, os.MkdirAll(sy.Dir, 0755))
	require.NoError(t, os.WriteFile(sy.BundlePath("main"), []byte("bundle-v2"), 0644))
	require.NoError(t, os.WriteFile(sy.BundlePath("main")+".old", []byte("bundle-v1"), 0644))

	require.NoError(t, sy.Rollback("main"))

	data, err := os.ReadFile(sy.BundlePath("main"))
	require.NoError(t, err)
	assert.Equal(t, "bundle-v1", string(data))
	_, statErr := os.Stat(sy.BundlePath("main") + ".old")
	assert.True(t, os.IsNotExist(statErr))
}

func TestRollbackWithoutPreviousSync(t *testing.T) {
	sy := tempSyncer(t)
	assert.ErrorIs(t, sy.Rollback("main"), ErrNoPreviousSync)
}

func TestStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	st := &State{Sources: map[string]SourceSync{
		"main": {URL: "https://example.com/templates.zip", SyncedAt: time.Now().UTC().Truncate(time.Second)},
	}}
	SaveState(path, st)

	loaded := LoadState(path)
	require.Contains(t, loaded.Sources, "main")
	assert.Equal(t, st.Sources["main"].URL, loaded.Sources["main"].URL)
	assert.True(t, st.Sources["main"].SyncedAt.Equal(loaded.Sources["main"].SyncedAt))
}

func TestLoadStateMissingOrCorrupt(t *testing.T) {
	st := LoadState(filepath.Join(t.TempDir(), "absent.json"))
	require.NotNil(t, st)
	assert.NotNil(t, st.Sources)

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
	st = LoadState(path)
	require.NotNil(t, st)
	assert.NotNil(t, st.Sources)
}
