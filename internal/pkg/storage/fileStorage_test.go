package storage

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSaveAndGet tests the write/read round trip, including nested paths.
func TestSaveAndGet(t *testing.T) {
	fs := NewFileStorage(t.TempDir())

	require.NoError(t, fs.Save(filepath.Join("nested", "dir", "file.txt"), strings.NewReader("payload")))

	reader, err := fs.Get(filepath.Join("nested", "dir", "file.txt"))
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

// TestSaveWithMode verifies the explicit permission contract.
func TestSaveWithMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file mode bits are not meaningful on windows")
	}

	dir := t.TempDir()
	fs := NewFileStorage(dir)

	require.NoError(t, fs.SaveWithMode("secret.json", strings.NewReader("{}"), 0600))

	info, err := os.Stat(filepath.Join(dir, "secret.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

// TestSaveOverwrites verifies that saving twice truncates the old content.
func TestSaveOverwrites(t *testing.T) {
	fs := NewFileStorage(t.TempDir())

	require.NoError(t, fs.Save("file.txt", strings.NewReader("first version")))
	require.NoError(t, fs.Save("file.txt", strings.NewReader("second")))

	reader, err := fs.Get("file.txt")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

// TestExistsAndDelete tests existence checks and removal.
func TestExistsAndDelete(t *testing.T) {
	fs := NewFileStorage(t.TempDir())

	assert.False(t, fs.Exists("file.txt"))

	require.NoError(t, fs.Save("file.txt", strings.NewReader("x")))
	assert.True(t, fs.Exists("file.txt"))

	require.NoError(t, fs.Delete("file.txt"))
	assert.False(t, fs.Exists("file.txt"))

	err := fs.Delete("file.txt")
	assert.True(t, os.IsNotExist(err))
}

// TestFullPath verifies base path joining.
func TestFullPath(t *testing.T) {
	fs := NewFileStorage("/base")
	assert.Equal(t, filepath.Join("/base", "a", "b.png"), fs.FullPath(filepath.Join("a", "b.png")))
}
