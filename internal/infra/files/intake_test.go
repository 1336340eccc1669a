package files

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := NewIntake(filepath.Join(dir, "uploads"))

	content := []byte{0x00, 0xff, 'a', '\n', 0x7f, 0x10}
	stored, err := in.Store("avatar.bin", bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), stored.Size)
	assert.Equal(t, filepath.Join(dir, "uploads", "avatar.bin"), stored.Path)

	got, err := os.ReadFile(stored.Path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestStoreLastWriteWins(t *testing.T) {
	in := NewIntake(t.TempDir())

	_, err := in.Store("notes.txt", strings.NewReader("first version, longer"))
	require.NoError(t, err)
	stored, err := in.Store("notes.txt", strings.NewReader("second"))
	require.NoError(t, err)

	got, err := os.ReadFile(stored.Path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestStoreRejectsNamesOutsideBase(t *testing.T) {
	in := NewIntake(t.TempDir())

	for _, name := range []string{"", ".", "..", "../escape.txt", "/etc/passwd", "a/b.txt"} {
		_, err := in.Store(name, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}
