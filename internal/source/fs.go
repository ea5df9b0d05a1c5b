// Package source provides filesystem-backed text sources. Reading and
// encoding live here so the parse pipeline stays free of I/O.
package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FS resolves location identifiers against an fs.FS.
type FS struct {
	fsys    fs.FS
	pattern string
}

// New constructs a source over the supplied filesystem. The pattern limits
// List results and defaults to "*.md".
func New(fsys fs.FS, pattern string) *FS {
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}
	return &FS{fsys: fsys, pattern: pattern}
}

// NewDir constructs a source rooted at the supplied directory.
func NewDir(path string, pattern string) (*FS, error) {
	if strings.TrimSpace(path) == "" {
		path = "."
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("source: stat base path %s: %w", path, err)
	}
	return New(os.DirFS(path), pattern), nil
}

// Text returns the full text of the document at the given location.
func (s *FS) Text(ctx context.Context, location string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	rel := filepath.ToSlash(filepath.Clean(location))
	data, err := fs.ReadFile(s.fsys, rel)
	if err != nil {
		return "", fmt.Errorf("source: read %s: %w", location, err)
	}
	return string(data), nil
}

// List walks the filesystem and returns the locations matching the
// configured pattern, sorted for deterministic iteration.
func (s *FS) List(ctx context.Context) ([]string, error) {
	var locations []string

	err := fs.WalkDir(s.fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		match, err := filepath.Match(s.pattern, filepath.Base(path))
		if err != nil {
			return err
		}
		if match {
			locations = append(locations, filepath.ToSlash(path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(locations)
	return locations, nil
}
