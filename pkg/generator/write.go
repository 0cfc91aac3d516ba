package generator

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrArtifactExists marks a refused write over an existing artifact.
var ErrArtifactExists = errors.New("already exists (re-run with --force to overwrite)")

// WriteArtifacts writes all artifact sets under root and returns the relative
// paths written, in order. Without overwrite, the first existing target
// refuses the whole run before anything is written; with overwrite, targets
// are replaced deterministically. A failed write is terminal: partially
// generated pipelines are unsafe, so no best-effort completion.
func WriteArtifacts(root string, sets []ArtifactSet, overwrite bool) ([]string, error) {
	if !overwrite {
		for _, set := range sets {
			for _, artifact := range set.Artifacts {
				if _, err := os.Stat(filepath.Join(root, artifact.Path)); err == nil {
					return nil, &WriteError{Path: artifact.Path, Err: ErrArtifactExists}
				}
			}
		}
	}

	var written []string
	for _, set := range sets {
		for _, artifact := range set.Artifacts {
			target := filepath.Join(root, artifact.Path)
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return nil, &WriteError{Path: artifact.Path, Err: err}
			}
			if err := os.WriteFile(target, artifact.Content, 0644); err != nil {
				return nil, &WriteError{Path: artifact.Path, Err: err}
			}
			written = append(written, artifact.Path)
		}
	}
	return written, nil
}
