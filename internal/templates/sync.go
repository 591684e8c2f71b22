package templates

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"srcinit/internal/appdir"
	"srcinit/internal/logger"
)

// ErrNoPreviousSync is reported by Rollback when a source has no previous
// bundle to fall back to.
var ErrNoPreviousSync = errors.New("no previous sync to rollback")

// Syncer downloads template bundles from remote sources into the sync
// directory. The current bundle of a source lives at <Dir>/<source>.zip;
// the previous one, kept for rollback, at <Dir>/<source>.zip.old.
type Syncer struct {
	Dir    string
	Client *http.Client
}

// DefaultSyncer returns a syncer rooted at the platform data directory
// using the default HTTP client.
func DefaultSyncer() Syncer {
	return Syncer{Dir: appdir.SyncDir()}
}

// BundlePath returns the path of the current bundle for a source.
func (sy Syncer) BundlePath(source string) string {
	return filepath.Join(sy.Dir, source+".zip")
}

// oldBundlePath returns the path the previous bundle is parked at.
func (sy Syncer) oldBundlePath(source string) string {
	return sy.BundlePath(source) + ".old"
}

// HasBundle reports whether a source has a synced bundle on disk.
func (sy Syncer) HasBundle(source string) bool {
	info, err := os.Stat(sy.BundlePath(source))
	return err == nil && info.Mode().IsRegular()
}

// Sync downloads the bundle at url for the given source. An existing bundle
// is first parked as the previous sync, replacing any older one, so a bad
// download can be rolled back.
func (sy Syncer) Sync(source, url string) error {
	if err := os.MkdirAll(sy.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create sync directory %s: %w", sy.Dir, err)
	}

	bundle := sy.BundlePath(source)
	old := sy.oldBundlePath(source)
	if sy.HasBundle(source) {
		if _, err := os.Stat(old); err == nil {
			logger.Debug("remove: %q\n", old)
			if err := os.Remove(old); err != nil {
				return err
			}
		}
		logger.Debug("rename: %q -> %q\n", bundle, old)
		if err := os.Rename(bundle, old); err != nil {
			return err
		}
	}

	logger.Debug("syncing from remote url: %q\n", url)
	return sy.download(url, bundle)
}

// Rollback replaces the current bundle of a source with the previous sync,
// if one is available.
func (sy Syncer) Rollback(source string) error {
	old := sy.oldBundlePath(source)
	if _, err := os.Stat(old); err != nil {
		return ErrNoPreviousSync
	}

	bundle := sy.BundlePath(source)
	if sy.HasBundle(source) {
		logger.Debug("remove: %q\n", bundle)
		if err := os.Remove(bundle); err != nil {
			return err
		}
	}
	logger.Debug("rename: %q -> %q\n", old, bundle)
	return os.Rename(old, bundle)
}

// download fetches the content at url and writes it to destPath.
func (sy Syncer) download(url, destPath string) error {
	client := sy.Client
	if client == nil {
		client = http.DefaultClient
	}

	// Make an HTTP GET request to the given URL
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	// Ensure the response body stream is closed when the function returns,
	// avoiding resource leaks.
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to GET %s: HTTP status %d", url, resp.StatusCode)
	}

	// Create or truncate the file at destPath to write the downloaded content
	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Warn("Failed to close destination file: %v\n", cerr)
		}
	}()

	// Copy the entire response body (downloaded data) into the destination file
	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to file: %w", err)
	}

	logger.Debug("downloaded bundle to: %q\n", destPath)
	return nil
}
