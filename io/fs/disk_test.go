package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupDisk(t *testing.T) (ReadFilesystem, string) {
	root := t.TempDir()

	public := filepath.Join(root, "public")

	require.NoError(t, os.MkdirAll(filepath.Join(public, "css"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "index.html"), []byte("<h1>index</h1>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(public, "css", "style.css"), []byte("body{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("secret"), 0644))

	fs, err := NewDiskFilesystem(DiskConfig{
		Dir: public,
	})
	require.NoError(t, err)

	return fs, public
}

func TestDiskBase(t *testing.T) {
	fs, public := setupDisk(t)

	require.Equal(t, public, fs.Base())
}

func TestDiskInvalidBase(t *testing.T) {
	_, err := NewDiskFilesystem(DiskConfig{})
	require.Error(t, err)
}

func TestDiskMissingBase(t *testing.T) {
	fs, err := NewDiskFilesystem(DiskConfig{
		Dir: filepath.Join(t.TempDir(), "missing"),
	})
	require.NoError(t, err)

	_, err = fs.ReadFile("/index.html")
	require.Error(t, err)
}

func TestDiskReadFile(t *testing.T) {
	fs, _ := setupDisk(t)

	data, err := fs.ReadFile("/index.html")
	require.NoError(t, err)
	require.Equal(t, []byte("<h1>index</h1>"), data)

	data, err = fs.ReadFile("css/style.css")
	require.NoError(t, err)
	require.Equal(t, []byte("body{}"), data)

	_, err = fs.ReadFile("/missing.html")
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = fs.ReadFile("/css")
	require.Error(t, err)
}

func TestDiskReadFileTraversal(t *testing.T) {
	fs, _ := setupDisk(t)

	_, err := fs.ReadFile("/../secret.txt")
	require.Error(t, err)

	_, err = fs.ReadFile("../../secret.txt")
	require.Error(t, err)

	data, err := fs.ReadFile("/css/../index.html")
	require.NoError(t, err)
	require.Equal(t, []byte("<h1>index</h1>"), data)
}

func TestDiskStat(t *testing.T) {
	fs, public := setupDisk(t)

	info, err := fs.Stat("/index.html")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(public, "index.html"), info.Name())
	require.Equal(t, int64(14), info.Size())
	require.Equal(t, false, info.IsDir())

	info, err = fs.Stat("/css")
	require.NoError(t, err)
	require.Equal(t, true, info.IsDir())

	_, err = fs.Stat("/missing")
	require.Error(t, err)
}
