package templates

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"srcinit/internal/appdir"
	"srcinit/internal/logger"
)

// Validation outcomes for local store operations, wrapped into status lines
// by the command layer.
var (
	ErrTemplateExists   = errors.New("already exists")
	ErrTemplateNotFound = errors.New("does not exist")
)

// Store is the local template store rooted at the data directory. Each
// template is one subdirectory holding the files to generate.
type Store struct {
	Root string
}

// DefaultStore returns the store rooted at the platform data directory.
func DefaultStore() Store {
	return Store{Root: appdir.StoreDir()}
}

// Path returns the directory a template occupies (or would occupy) in the store.
func (s Store) Path(name string) string {
	return filepath.Join(s.Root, name)
}

// Has reports whether the store contains a template with the given name.
func (s Store) Has(name string) bool {
	info, err := os.Stat(s.Path(name))
	return err == nil && info.IsDir()
}

// List returns the names of all templates in the store, sorted. A store
// directory that does not exist yet simply lists as empty.
func (s Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Import brings a template into the local store from either an archive file
// or a plain directory, named after the file's base name. Duplicate names
// are rejected before anything is written.
func (s Store) Import(src string) (string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return "", err
	}

	var name string
	if info.IsDir() {
		name = filepath.Base(filepath.Clean(src))
	} else {
		if !IsArchive(src) {
			return "", fmt.Errorf("unsupported archive format: %s", src)
		}
		name = TemplateNameFromArchive(src)
	}
	if s.Has(name) {
		return name, ErrTemplateExists
	}

	dest := s.Path(name)
	if err := os.MkdirAll(dest, 0755); err != nil {
		return name, err
	}
	if info.IsDir() {
		err = copyTree(src, dest)
	} else {
		err = ExtractArchive(src, dest)
	}
	if err != nil {
		// A half-imported template would shadow future imports, remove it.
		if rerr := os.RemoveAll(dest); rerr != nil {
			logger.Warn("Failed to clean up %q after import error: %v\n", dest, rerr)
		}
		return name, err
	}
	return name, nil
}

// Export packs a template from the local store into <outDir>/<name>.zip and
// returns the archive path.
func (s Store) Export(name, outDir string) (string, error) {
	if !s.Has(name) {
		return "", ErrTemplateNotFound
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}
	dest := filepath.Join(outDir, name+".zip")
	if err := CreateZip(s.Path(name), dest); err != nil {
		return "", err
	}
	return dest, nil
}

// Remove deletes a template from the local store.
func (s Store) Remove(name string) error {
	if !s.Has(name) {
		return ErrTemplateNotFound
	}
	return os.RemoveAll(s.Path(name))
}

// CopyTo materializes a template from the local store into dest, preserving
// the directory layout.
func (s Store) CopyTo(name, dest string) error {
	if !s.Has(name) {
		return ErrTemplateNotFound
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	return copyTree(s.Path(name), dest)
}

// copyTree copies a directory tree from src to dst, creating directories as
// needed and preserving file permissions.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		logger.Debug("copy: %q -> %q\n", path, target)
		return copyFile(path, target, info.Mode())
	})
}

// copyFile copies a single file to dst with the given permissions,
// creating any missing parent directories.
func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	return nil
}
