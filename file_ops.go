package pathlib

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// Mkdir creates the directory the path points to, along with any missing
// parents. It returns ErrExists (wrapped) when the directory already existed;
// the filesystem is in the requested state either way.
func Mkdir(p Path) error { return MkdirFS(defaultFS, p) }

// MkdirFS works like Mkdir but uses the provided FileSystem.
func MkdirFS(fsys FileSystem, p Path) error {
	if p.Len() == 0 {
		return nil
	}
	if IsDirFS(fsys, p) {
		return fmt.Errorf("mkdir %q: %w", p.String(), ErrExists)
	}
	if err := fsys.MkdirAll(p.String(), 0o755); err != nil {
		return fmt.Errorf("mkdir %q: %w", p.String(), err)
	}
	return nil
}

// Touch creates the file the path points to, along with any missing parent
// directories. It returns ErrExists (wrapped) when the file already existed.
func Touch(p Path) error { return TouchFS(defaultFS, p) }

// TouchFS works like Touch but uses the provided FileSystem.
func TouchFS(fsys FileSystem, p Path) error {
	if p.Len() == 0 {
		return nil
	}
	if p.Len() > 1 {
		if err := fsys.MkdirAll(p.Parent().String(), 0o755); err != nil {
			return fmt.Errorf("touch %q: %w", p.String(), err)
		}
	}
	if IsFileFS(fsys, p) {
		return fmt.Errorf("touch %q: %w", p.String(), ErrExists)
	}
	f, err := fsys.OpenFile(p.String(), os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("touch %q: %w", p.String(), err)
	}
	return f.Close()
}

// Unlink deletes the file or symlink the path points to. Missing paths yield
// ErrNotExist.
func Unlink(p Path) error { return UnlinkFS(defaultFS, p) }

// UnlinkFS works like Unlink but uses the provided FileSystem.
func UnlinkFS(fsys FileSystem, p Path) error {
	if !ExistsFS(fsys, p) {
		return fmt.Errorf("unlink %q: %w", p.String(), ErrNotExist)
	}
	if err := fsys.Remove(p.String()); err != nil {
		return fmt.Errorf("unlink %q: %w", p.String(), err)
	}
	return nil
}

// Rmdir deletes the directory the path points to. With removeContents the
// directory is emptied first; otherwise removing a non-empty directory fails.
// Missing paths yield ErrNotExist.
func Rmdir(p Path, removeContents bool) error { return RmdirFS(defaultFS, p, removeContents) }

// RmdirFS works like Rmdir but uses the provided FileSystem.
func RmdirFS(fsys FileSystem, p Path, removeContents bool) error {
	if !ExistsFS(fsys, p) {
		return fmt.Errorf("rmdir %q: %w", p.String(), ErrNotExist)
	}
	var err error
	if removeContents {
		err = fsys.RemoveAll(p.String())
	} else {
		err = fsys.Remove(p.String())
	}
	if err != nil {
		return fmt.Errorf("rmdir %q: %w", p.String(), err)
	}
	return nil
}

// ReadBytes returns the contents of the file the path points to. Missing
// files yield ErrNotExist.
func ReadBytes(p Path) ([]byte, error) { return ReadBytesFS(defaultFS, p) }

// ReadBytesFS works like ReadBytes but uses the provided FileSystem.
func ReadBytesFS(fsys FileSystem, p Path) ([]byte, error) {
	if !ExistsFS(fsys, p) {
		return nil, fmt.Errorf("read %q: %w", p.String(), ErrNotExist)
	}
	data, err := afero.ReadFile(fsys, p.String())
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", p.String(), err)
	}
	return data, nil
}

// ReadText returns the contents of the file as a string.
func ReadText(p Path) (string, error) { return ReadTextFS(defaultFS, p) }

// ReadTextFS works like ReadText but uses the provided FileSystem.
func ReadTextFS(fsys FileSystem, p Path) (string, error) {
	data, err := ReadBytesFS(fsys, p)
	return string(data), err
}

// WriteBytes writes data to the file the path points to, creating the file
// and any missing parent directories, and truncating an existing file.
func WriteBytes(p Path, data []byte) error { return WriteBytesFS(defaultFS, p, data) }

// WriteBytesFS works like WriteBytes but uses the provided FileSystem.
func WriteBytesFS(fsys FileSystem, p Path, data []byte) error {
	if p.Len() > 1 {
		if err := fsys.MkdirAll(p.Parent().String(), 0o755); err != nil {
			return fmt.Errorf("write %q: %w", p.String(), err)
		}
	}
	if err := afero.WriteFile(fsys, p.String(), data, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", p.String(), err)
	}
	return nil
}

// WriteText writes text to the file the path points to.
func WriteText(p Path, text string) error { return WriteBytesFS(defaultFS, p, []byte(text)) }

// WriteTextFS works like WriteText but uses the provided FileSystem.
func WriteTextFS(fsys FileSystem, p Path, text string) error {
	return WriteBytesFS(fsys, p, []byte(text))
}

// ListDir returns the entries of the directory, each joined onto p. Missing
// directories yield ErrNotExist.
func ListDir(p Path) (Paths, error) { return ListDirFS(defaultFS, p) }

// ListDirFS works like ListDir but uses the provided FileSystem.
func ListDirFS(fsys FileSystem, p Path) (Paths, error) {
	if !IsDirFS(fsys, p) {
		return nil, fmt.Errorf("listdir %q: %w", p.String(), ErrNotExist)
	}
	entries, err := afero.ReadDir(fsys, p.String())
	if err != nil {
		return nil, fmt.Errorf("listdir %q: %w", p.String(), err)
	}
	var out Paths
	for _, entry := range entries {
		out.Add(p.Child(entry.Name()))
	}
	return out, nil
}

// Cwd returns the current working directory. On failure it returns "." and
// the error, mirroring the usable-fallback behavior of the rest of the API.
func Cwd() (Path, error) {
	wd, err := os.Getwd()
	if err != nil {
		return FromString("."), fmt.Errorf("cwd: %w", err)
	}
	return FromString(wd), nil
}

// Home returns the current user's home directory.
func Home() (Path, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return FromString("."), fmt.Errorf("home: %w", err)
	}
	return FromString(home), nil
}

// TempDir returns the default directory for temporary files.
func TempDir() Path {
	return FromString(os.TempDir())
}
