package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates files below dir, including any missing
// parent directories. Names use forward slashes.
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// CreateTestTree creates a small repository-like tree and returns its root
func CreateTestTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	CreateTestFilesWithContent(t, root, map[string]string{
		"README.md":             "# project\n",
		"setup.py":              "from setuptools import setup\n",
		"docs/index.rst":        "Index\n=====\n",
		"src/modes/resolver.go": "package modes\n",
		"src/Makefile":          "all:\n",
	})
	return root
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
