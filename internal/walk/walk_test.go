package walk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestDiffPathsUnionOfBothRoots(t *testing.T) {
	root := t.TempDir()
	left := filepath.Join(root, "left")
	right := filepath.Join(root, "right")

	writeFile(t, filepath.Join(left, "a.txt"))
	writeFile(t, filepath.Join(left, "sub", "b.txt"))
	writeFile(t, filepath.Join(right, "a.txt"))
	writeFile(t, filepath.Join(right, "c.txt"))

	paths, err := DiffPaths(left, right)
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt", "c.txt", filepath.Join("sub", "b.txt")}, paths)
}

func TestDiffPathsMissingRootIsEmpty(t *testing.T) {
	root := t.TempDir()
	left := filepath.Join(root, "left")
	right := filepath.Join(root, "does-not-exist")
	writeFile(t, filepath.Join(left, "a.txt"))

	paths, err := DiffPaths(left, right)
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt"}, paths)
}
