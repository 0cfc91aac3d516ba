package detector

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxScanDepth bounds the directory walk during signal extraction.
const maxScanDepth = 4

var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".venv":        true,
	"venv":         true,
	"dist":         true,
	"build":        true,
	"bin":          true,
	"obj":          true,
	"target":       true,
	"vendor":       true,
}

var errNotDirectory = errors.New("not a directory")

// RawSignals is an immutable snapshot of file-presence facts about a project
// directory. It performs no inference; classification rules consume it.
type RawSignals struct {
	Files     []string
	ExtCounts map[string]int

	reader *FSReader
}

// Extract scans the directory at root and returns its raw signals.
// A directory with no recognizable markers still yields a (possibly empty)
// signal set; only an unreadable or non-directory path is an error.
func Extract(root string) (*RawSignals, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &PathError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &PathError{Path: root, Err: errNotDirectory}
	}
	return ExtractFS(os.DirFS(root))
}

// ExtractFS scans an abstract filesystem. Tests feed it fstest.MapFS.
func ExtractFS(fsys fs.FS) (*RawSignals, error) {
	reader := NewFSReader(fsys)
	files, extCounts, err := reader.ScanTree(maxScanDepth)
	if err != nil {
		return nil, err
	}
	return &RawSignals{
		Files:     files,
		ExtCounts: extCounts,
		reader:    reader,
	}, nil
}

// Has checks if a file exists at the given relative path
func (s *RawSignals) Has(rel string) bool {
	return s.reader.Has(rel)
}

// HasAny checks if any of the given files exist
func (s *RawSignals) HasAny(rels ...string) bool {
	for _, rel := range rels {
		if s.reader.Has(rel) {
			return true
		}
	}
	return false
}

// Read reads a file and returns its content, or "" when unreadable
func (s *RawSignals) Read(rel string) string {
	return s.reader.Read(rel)
}

// DirExists checks if a directory exists at the given relative path
func (s *RawSignals) DirExists(rel string) bool {
	return s.reader.DirExists(rel)
}

// HasExt checks whether any scanned file carries the given extension
func (s *RawSignals) HasExt(ext string) bool {
	return s.ExtCounts[strings.ToLower(ext)] > 0
}

// FilesWithExt returns all scanned files carrying the given extension
func (s *RawSignals) FilesWithExt(ext string) []string {
	var out []string
	for _, f := range s.Files {
		if strings.EqualFold(filepath.Ext(f), ext) {
			out = append(out, f)
		}
	}
	return out
}
