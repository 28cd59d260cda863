package pathlib

import (
	"os"

	"github.com/spf13/afero"
)

// Exists reports whether the path exists at all.
func Exists(p Path) bool { return ExistsFS(defaultFS, p) }

// ExistsFS works like Exists but uses the provided FileSystem.
func ExistsFS(fsys FileSystem, p Path) bool {
	ok, err := afero.Exists(fsys, p.String())
	return err == nil && ok
}

// IsDir reports whether the path exists and is a directory.
func IsDir(p Path) bool { return IsDirFS(defaultFS, p) }

// IsDirFS works like IsDir but uses the provided FileSystem.
func IsDirFS(fsys FileSystem, p Path) bool {
	ok, err := afero.DirExists(fsys, p.String())
	return err == nil && ok
}

// IsFile reports whether the path exists and is a regular file.
func IsFile(p Path) bool { return IsFileFS(defaultFS, p) }

// IsFileFS works like IsFile but uses the provided FileSystem.
func IsFileFS(fsys FileSystem, p Path) bool {
	info, err := fsys.Stat(p.String())
	return err == nil && info.Mode().IsRegular()
}

// IsSymlink reports whether the path is a symbolic link. Backends without
// lstat support (in-memory filesystems) report false.
func IsSymlink(p Path) bool { return IsSymlinkFS(defaultFS, p) }

// IsSymlinkFS works like IsSymlink but uses the provided FileSystem.
func IsSymlinkFS(fsys FileSystem, p Path) bool {
	lst, ok := fsys.(afero.Lstater)
	if !ok {
		return false
	}
	info, lstatted, err := lst.LstatIfPossible(p.String())
	if err != nil || !lstatted {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// IsFifo reports whether the path is a named pipe.
func IsFifo(p Path) bool { return hasMode(defaultFS, p, os.ModeNamedPipe) }

// IsFifoFS works like IsFifo but uses the provided FileSystem.
func IsFifoFS(fsys FileSystem, p Path) bool { return hasMode(fsys, p, os.ModeNamedPipe) }

// IsSocket reports whether the path is a unix socket.
func IsSocket(p Path) bool { return hasMode(defaultFS, p, os.ModeSocket) }

// IsSocketFS works like IsSocket but uses the provided FileSystem.
func IsSocketFS(fsys FileSystem, p Path) bool { return hasMode(fsys, p, os.ModeSocket) }

// IsDevice reports whether the path is a block or character device.
func IsDevice(p Path) bool { return hasMode(defaultFS, p, os.ModeDevice) }

// IsDeviceFS works like IsDevice but uses the provided FileSystem.
func IsDeviceFS(fsys FileSystem, p Path) bool { return hasMode(fsys, p, os.ModeDevice) }

func hasMode(fsys FileSystem, p Path, mode os.FileMode) bool {
	info, err := fsys.Stat(p.String())
	return err == nil && info.Mode()&mode != 0
}
