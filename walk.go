package pathlib

import (
	"fmt"

	"github.com/spf13/afero"
)

// Glob returns the files directly inside root whose names match pattern.
// Directory names are never tested against the pattern and never appear in
// the result. Result order is the enumeration order of the filesystem.
func Glob(root Path, pattern string) (Paths, error) {
	return GlobFS(defaultFS, root, pattern)
}

// GlobFS works like Glob but uses the provided FileSystem.
func GlobFS(fsys FileSystem, root Path, pattern string) (Paths, error) {
	return walk(fsys, root, pattern, false)
}

// Rglob returns the files anywhere under root whose names match pattern,
// descending into every subdirectory. Subdirectories are traversed but,
// like Glob, never matched themselves.
func Rglob(root Path, pattern string) (Paths, error) {
	return RglobFS(defaultFS, root, pattern)
}

// RglobFS works like Rglob but uses the provided FileSystem.
func RglobFS(fsys FileSystem, root Path, pattern string) (Paths, error) {
	return walk(fsys, root, pattern, true)
}

// walk enumerates root (and, when recursive, every directory below it) with
// an explicit worklist, so call-stack usage stays constant however deep the
// tree is. A failure to list any directory aborts the whole walk; partial
// results are never returned.
func walk(fsys FileSystem, root Path, pattern string, recursive bool) (Paths, error) {
	isDir, err := afero.DirExists(fsys, root.String())
	if err != nil || !isDir {
		return nil, fmt.Errorf("glob root %q: %w", root.String(), ErrNotExist)
	}

	var results Paths
	pending := []Path{root}
	for len(pending) > 0 {
		dir := pending[0]
		pending = pending[1:]

		entries, err := afero.ReadDir(fsys, dir.String())
		if err != nil {
			return nil, fmt.Errorf("list %q: %w", dir.String(), err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				if recursive {
					pending = append(pending, dir.Child(entry.Name()))
				}
				continue
			}
			if Match(pattern, entry.Name()) {
				results.Add(dir.Child(entry.Name()))
			}
		}
	}
	return results, nil
}
