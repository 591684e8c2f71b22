package sources

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/asaskevich/govalidator" // URL well-formedness checks
	"gopkg.in/ini.v1"                   // INI parsing/serialization for the registry file

	"srcinit/internal/appdir"
	"srcinit/internal/logger"
)

// The registry always carries a reserved entry marking the implicit local
// template source. It is created with every fresh registry and can never be
// removed or edited through the source commands.
const (
	LocalName  = "local"
	LocalValue = "LOCAL"
)

// Sentinel errors for the validation outcomes the source commands report.
// The command layer wraps these into the single status line shown to the user.
var (
	ErrInvalidURL = errors.New("URL malformed or invalid")
	ErrExists     = errors.New("already exists")
	ErrNotFound   = errors.New("does not exist")
	ErrReserved   = errors.New("reserved entry")
)

// Registry is the flat name -> URL mapping persisted as sources.ini.
// All entries live in the INI global section.
type Registry struct {
	file *ini.File
}

// Store locates the registry on disk and performs all of its I/O.
// Commands use DefaultStore; tests point Dir at a temp directory.
type Store struct {
	Dir string
}

// DefaultStore returns the store rooted at the platform config directory.
func DefaultStore() Store {
	return Store{Dir: appdir.ConfigDir()}
}

// Path returns the full path of the sources.ini file.
func (s Store) Path() string {
	return filepath.Join(s.Dir, "sources.ini")
}

// Load reads and parses the registry file. A missing file is reported as-is
// so callers can distinguish it (errors.Is os.ErrNotExist) from a file that
// exists but cannot be parsed; the latter is never silently discarded.
func (s Store) Load() (*Registry, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return nil, err
	}
	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.Path(), err)
	}
	return &Registry{file: file}, nil
}

// LoadOrFresh returns the registry from disk, falling back to a fresh one
// when no registry file exists yet. Parse errors are surfaced to the caller
// instead of clobbering a possibly hand-edited file.
func (s Store) LoadOrFresh() (*Registry, error) {
	reg, err := s.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("no registry at %q, starting fresh\n", s.Path())
			return Fresh(), nil
		}
		return nil, err
	}
	return reg, nil
}

// Fresh constructs an empty registry pre-populated with the reserved
// local = LOCAL entry.
func Fresh() *Registry {
	file := ini.Empty()
	file.Section("").Key(LocalName).SetValue(LocalValue)
	return &Registry{file: file}
}

// Write serializes the registry to the sources file as a full rewrite,
// creating the parent directory if needed.
func (s Store) Write(reg *Registry) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", s.Dir, err)
	}
	logger.Debug("writing registry to %q\n", s.Path())
	return reg.file.SaveTo(s.Path())
}

// Has reports whether a source with the given name exists.
func (r *Registry) Has(name string) bool {
	return r.file.Section("").HasKey(name)
}

// URL returns the URL registered for the given source name, or "" if absent.
func (r *Registry) URL(name string) string {
	if !r.Has(name) {
		return ""
	}
	return r.file.Section("").Key(name).String()
}

// Names returns all source names in file order, the reserved local entry
// included.
func (r *Registry) Names() []string {
	return r.file.Section("").KeyStrings()
}

// Add inserts a new source and persists the registry. The URL is validated
// and the name checked for uniqueness before anything is written, so a
// rejected add leaves the registry file untouched (and uncreated, if it did
// not exist).
func (s Store) Add(name, url string) error {
	if !govalidator.IsURL(url) {
		return ErrInvalidURL
	}
	reg, err := s.LoadOrFresh()
	if err != nil {
		return err
	}
	if reg.Has(name) {
		return ErrExists
	}
	reg.file.Section("").Key(name).SetValue(url)
	return s.Write(reg)
}

// Edit overwrites the URL of an existing source in place and persists the
// registry. Editing a name that is not registered is rejected.
func (s Store) Edit(name, url string) error {
	if !govalidator.IsURL(url) {
		return ErrInvalidURL
	}
	reg, err := s.LoadOrFresh()
	if err != nil {
		return err
	}
	if !reg.Has(name) {
		return ErrNotFound
	}
	reg.file.Section("").Key(name).SetValue(url)
	return s.Write(reg)
}

// Remove deletes a source from the registry and persists it. The reserved
// local entry is refused.
func (s Store) Remove(name string) error {
	if name == LocalName {
		return ErrReserved
	}
	reg, err := s.LoadOrFresh()
	if err != nil {
		return err
	}
	if !reg.Has(name) {
		return ErrNotFound
	}
	reg.file.Section("").DeleteKey(name)
	return s.Write(reg)
}
