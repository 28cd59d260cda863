package pathlib

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// testTree builds the fixture used by the walker tests:
//
//	/data/a.txt
//	/data/b.md
//	/data/sub/c.txt
//	/data/sub/deep/d.txt
func testTree(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/data/sub/deep", 0o755))
	for _, name := range []string{"/data/a.txt", "/data/b.md", "/data/sub/c.txt", "/data/sub/deep/d.txt"} {
		require.NoError(t, afero.WriteFile(fs, name, []byte("x"), 0o644))
	}
	return fs
}

func TestGlobTopLevelOnly(t *testing.T) {
	fs := testTree(t)

	got, err := GlobFS(fs, FromString("/data"), "*.txt")
	require.NoError(t, err)
	require.Equal(t, []string{"/data/a.txt"}, got.Strings())
}

func TestGlobNoMatches(t *testing.T) {
	fs := testTree(t)

	got, err := GlobFS(fs, FromString("/data"), "*.go")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestGlobDirectoriesNeverMatch(t *testing.T) {
	fs := testTree(t)

	// "sub" matches "*" as a name, but directories are excluded.
	got, err := GlobFS(fs, FromString("/data"), "*")
	require.NoError(t, err)
	require.Equal(t, []string{"/data/a.txt", "/data/b.md"}, got.Strings())
}

func TestRglobDescends(t *testing.T) {
	fs := testTree(t)

	got, err := RglobFS(fs, FromString("/data"), "*.txt")
	require.NoError(t, err)
	require.ElementsMatch(t,
		[]string{"/data/a.txt", "/data/sub/c.txt", "/data/sub/deep/d.txt"},
		got.Strings())
}

func TestRglobDirectoriesNeverMatch(t *testing.T) {
	fs := testTree(t)

	got, err := RglobFS(fs, FromString("/data"), "*")
	require.NoError(t, err)
	require.ElementsMatch(t,
		[]string{"/data/a.txt", "/data/b.md", "/data/sub/c.txt", "/data/sub/deep/d.txt"},
		got.Strings())
}

func TestGlobRootMissing(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := GlobFS(fs, FromString("/nope"), "*")
	require.ErrorIs(t, err, ErrNotExist)

	_, err = RglobFS(fs, FromString("/nope"), "*")
	require.ErrorIs(t, err, ErrNotExist)
}

func TestGlobRootIsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/plain", []byte("x"), 0o644))

	_, err := GlobFS(fs, FromString("/plain"), "*")
	require.ErrorIs(t, err, ErrNotExist)
}

// failFS denies Open on a single path, so listing that directory fails
// mid-walk.
type failFS struct {
	afero.Fs
	deny string
}

func (f *failFS) Open(name string) (afero.File, error) {
	if name == f.deny {
		return nil, fmt.Errorf("open %s: %w", name, os.ErrPermission)
	}
	return f.Fs.Open(name)
}

func TestRglobAbortDiscardsPartialResults(t *testing.T) {
	fs := &failFS{Fs: testTree(t), deny: "/data/sub/deep"}

	// /data and /data/sub list fine and would have produced matches before
	// the failure; the walk must still return nothing but the error.
	got, err := RglobFS(fs, FromString("/data"), "*.txt")
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrPermission))
	require.Nil(t, got)
}
