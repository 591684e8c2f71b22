package templates

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"srcinit/internal/logger"
)

// manifestFile is the optional metadata file a template may carry at its root.
const manifestFile = "template.yaml"

// Manifest is the optional descriptive metadata of a template, shown by the
// list command. Templates without one list by directory name alone.
type Manifest struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ReadManifest reads the template.yaml inside a template directory. The
// second return value reports whether a usable manifest was found; a missing
// or malformed manifest is not an error, the template just has no metadata.
func ReadManifest(dir string) (Manifest, bool) {
	raw, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if err != nil {
		return Manifest{}, false
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		logger.Debug("ignoring malformed manifest in %q: %v\n", dir, err)
		return Manifest{}, false
	}
	return m, true
}
