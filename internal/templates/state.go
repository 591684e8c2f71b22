package templates

import (
	"encoding/json" // For JSON encoding and decoding of the state file
	"os"            // For file system operations like reading and writing files
	"time"

	"srcinit/internal/logger"
)

// SourceSync records the last successful sync of one remote source.
type SourceSync struct {
	URL      string    `json:"url"`       // Bundle URL the sync downloaded from
	SyncedAt time.Time `json:"synced_at"` // When the download completed
}

// State holds the sync bookkeeping persisted next to the bundles.
// It maps source names to their last successful sync.
type State struct {
	Sources map[string]SourceSync `json:"sources"`
}

// LoadState loads the saved state from a JSON file at the given path.
// If the file does not exist or cannot be read, it returns a new empty State
// struct. It ensures the Sources map is non-nil to prevent nil map writes.
func LoadState(path string) *State {
	file, err := os.ReadFile(path)
	if err != nil {
		// If file read fails (file missing, permission issues), return empty initialized state
		return &State{Sources: make(map[string]SourceSync)}
	}

	var st State
	_ = json.Unmarshal(file, &st)

	// Defensive: Ensure the map is initialized if JSON contained null for this field
	if st.Sources == nil {
		st.Sources = make(map[string]SourceSync)
	}
	return &st
}

// SaveState writes the given State struct to a JSON file at the given path.
// It pretty-prints the JSON with indentation for readability.
// Errors during marshalling or writing are logged but not propagated;
// stale sync bookkeeping only costs an extra download.
func SaveState(path string, st *State) {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal state: %v\n", err)
		return
	}

	logger.Debug("writing state to %q:\n%s\n", path, string(file))

	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("Failed to write state file %s: %v\n", path, err)
	}
}
