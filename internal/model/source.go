// Package model defines the data structures shared by the header checker
// and its companion maintenance tools.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Dir returns the directory that contains the path.
func (p Path) Dir() Path {
	return Path(filepath.Dir(string(p)))
}

// Ext returns the file name extension, including the leading dot.
func (p Path) Ext() string {
	return filepath.Ext(string(p))
}

// File represents a source or header file found while walking a tree.
type File struct {
	// FullPath is the path used to open the file.
	FullPath Path `yaml:"full_path"`
	// ShortPath is slash-separated and relative to the scanned root.
	ShortPath Path `yaml:"short_path"`
}

// NewFile builds a File for fullPath, deriving ShortPath relative to root.
// When the relative path cannot be computed the full path is used instead.
func NewFile(root, fullPath Path) File {
	short := string(fullPath)

	if rel, err := filepath.Rel(string(root), string(fullPath)); err == nil && !strings.HasPrefix(rel, "..") {
		short = rel
	}

	return File{
		FullPath:  fullPath,
		ShortPath: Path(filepath.ToSlash(short)),
	}
}

// Extensions is the set of file extensions eligible for scanning.
type Extensions map[string]struct{}

// NewExtensions builds an extension set. Entries without a leading dot get one.
func NewExtensions(exts ...string) Extensions {
	set := make(Extensions, len(exts))

	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		set[ext] = struct{}{}
	}

	return set
}

// Match reports whether path has one of the extensions in the set.
func (e Extensions) Match(path Path) bool {
	_, ok := e[path.Ext()]
	return ok
}
