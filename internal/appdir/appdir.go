package appdir

import (
	"path/filepath"

	"github.com/adrg/xdg" // Platform-appropriate config/data directory resolution
)

// appName is the package name used to key every srcinit directory.
// All paths below are derived from it and the XDG base directories,
// so the layout follows platform conventions on Linux, macOS, and Windows.
const appName = "srcinit"

// ConfigDir returns the local configuration directory for srcinit,
// e.g. ~/.config/srcinit on Linux. The xdg library always resolves a
// base directory (falling back to defaults derived from the home dir),
// so there is no error path here.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// DataDir returns the local data directory for srcinit, which holds
// synced template bundles and the local template store.
func DataDir() string {
	return filepath.Join(xdg.DataHome, appName)
}

// SourcesPath returns the path of the INI file holding the source registry.
func SourcesPath() string {
	return filepath.Join(ConfigDir(), "sources.ini")
}

// SyncDir returns the directory where synced template bundles are stored,
// one <source>.zip per remote source.
func SyncDir() string {
	return filepath.Join(DataDir(), "sync")
}

// StoreDir returns the root of the local template store. Each template
// occupies one subdirectory named after it.
func StoreDir() string {
	return filepath.Join(DataDir(), "templates")
}

// StatePath returns the path of the JSON file recording sync bookkeeping.
func StatePath() string {
	return filepath.Join(DataDir(), "state.json")
}
