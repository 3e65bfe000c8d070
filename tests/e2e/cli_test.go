package e2e

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const words = `- type: simple
  considerate: humankind
  inconsiderate: mankind
- type: or
  considerate:
    a-or-b: x
  inconsiderate:
    he: y
    she: x
`

func TestCLI(t *testing.T) {
	bin := buildEqualityBinary(t, t.TempDir())

	t.Run("Build", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "script", "words.yml"), words)

		out, code := runBinary(t, dir, bin, "build", "--dir", "script", "--out", "lib/patterns.json")
		require.Equal(t, 0, code, out)
		assert.Contains(t, out, "Compiled 2 patterns")

		data, err := os.ReadFile(filepath.Join(dir, "lib", "patterns.json"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"id": "mankind"`)
		assert.Contains(t, string(data), `"id": "he-she"`)
	})

	t.Run("Config File", func(t *testing.T) {
		dir := t.TempDir()
		out, code := runBinary(t, dir, bin, "init")
		require.Equal(t, 0, code, out)
		writeFile(t, filepath.Join(dir, "script", "words.yml"), words)

		out, code = runBinary(t, dir, bin, "build")
		require.Equal(t, 0, code, out)

		_, err := os.Stat(filepath.Join(dir, "lib", "patterns.json"))
		assert.NoError(t, err)

		out, code = runBinary(t, dir, bin, "init")
		assert.Equal(t, 1, code)
		assert.Contains(t, out, "already exists")
	})

	t.Run("Check Failures", func(t *testing.T) {
		cases := []struct {
			name    string
			content string
			code    int
			message string
		}{
			{"Schema", "- {type: or, inconsiderate: {he: a, him: a}}\n", 2, "Use `type: simple` for single entries with one category"},
			{"Dash", "- {type: simple, inconsiderate: he-man}\n", 3, "Refrain from using dashes inside inconsiderate terms"},
			{"Duplicate", "- {type: simple, inconsiderate: guys}\n- {type: simple, inconsiderate: guys}\n", 4, "Refrain from multiple entries"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				dir := t.TempDir()
				writeFile(t, filepath.Join(dir, "words.yml"), tc.content)

				out, code := runBinary(t, dir, bin, "build", "--dir", ".")
				assert.Equal(t, tc.code, code, out)
				assert.Contains(t, out, tc.message)

				_, err := os.Stat(filepath.Join(dir, "patterns.json"))
				assert.True(t, os.IsNotExist(err), "dataset must not be written")
			})
		}
	})

	t.Run("List", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "words.yml"), words)

		out, code := runBinary(t, dir, bin, "list", "--dir", ".")
		require.Equal(t, 0, code, out)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "mankind\tmankind", lines[0])
		assert.Equal(t, "he-she\the, she", lines[1])

		out, code = runBinary(t, dir, bin, "list", "--dir", ".", "--json", "--category", "y")
		require.Equal(t, 0, code, out)
		assert.Contains(t, out, `"id": "he-she"`)
		assert.NotContains(t, out, `"id": "mankind"`)
	})

	t.Run("Version", func(t *testing.T) {
		out, code := runBinary(t, t.TempDir(), bin, "version")
		require.Equal(t, 0, code)
		assert.Contains(t, out, "equality version")
	})
}
