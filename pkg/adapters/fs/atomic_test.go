package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "patterns.json")

		require.NoError(t, writeFileAtomic(filename, []byte("[]\n"), 0644))

		got, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(got))
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "patterns.json")
		require.NoError(t, os.WriteFile(filename, []byte("old"), 0644))

		require.NoError(t, writeFileAtomic(filename, []byte("new"), 0644))

		got, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "missing_folder", "patterns.json")
		assert.Error(t, writeFileAtomic(filename, []byte("x"), 0644))
	})
}

func TestReplaceFile_FailureKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "patterns.json")
	require.NoError(t, os.WriteFile(filename, []byte("previous"), 0644))

	boom := errors.New("encoder failed")
	err := replaceFile(filename, 0644, func(w io.Writer) error {
		_, _ = w.Write([]byte("half a data"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), TempFilePrefix), "temp file left behind: %s", e.Name())
	}
}
