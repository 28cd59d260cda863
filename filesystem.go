package pathlib

import "github.com/spf13/afero"

// FileSystem abstracts the filesystem the package operates on. Any afero
// filesystem satisfies it, including in-memory ones for tests; the non-FS
// function variants use the real OS filesystem.
type FileSystem = afero.Fs

var defaultFS FileSystem = afero.NewOsFs()
