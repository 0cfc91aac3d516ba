package detector

import (
	"io"
	"io/fs"
	"path/filepath"
	"strings"
)

// FSReader provides filesystem operations abstracted over fs.FS
type FSReader struct {
	fsys fs.FS
}

// NewFSReader creates a new FSReader for the given filesystem
func NewFSReader(fsys fs.FS) *FSReader {
	return &FSReader{fsys: fsys}
}

// Has checks if a file exists at the given path
func (r *FSReader) Has(path string) bool {
	_, err := fs.Stat(r.fsys, path)
	return err == nil
}

// Read reads a file and returns its content as a string
func (r *FSReader) Read(path string) string {
	f, err := r.fsys.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return ""
	}
	return string(data)
}

// DirExists checks if a directory exists at the given path
func (r *FSReader) DirExists(path string) bool {
	fi, err := fs.Stat(r.fsys, path)
	return err == nil && fi.IsDir()
}

// ScanTree walks the filesystem down to maxDepth and returns all files and
// extension counts. Depth is bounded so scanning stays cheap on large
// repositories; marker files for every supported ecosystem live near the root.
func (r *FSReader) ScanTree(maxDepth int) ([]string, map[string]int, error) {
	var files []string
	extCounts := map[string]int{}

	err := fs.WalkDir(r.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		base := filepath.Base(p)
		if d.IsDir() {
			if skipDirs[base] {
				return fs.SkipDir
			}
			if p != "." && strings.Count(p, "/") >= maxDepth {
				return fs.SkipDir
			}
			return nil
		}

		files = append(files, p)
		ext := strings.ToLower(filepath.Ext(p))
		if ext != "" {
			extCounts[ext]++
		}
		return nil
	})

	return files, extCounts, err
}
