package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.hcl"))
	touch(t, filepath.Join(root, "nested", "b.hcl"))
	touch(t, filepath.Join(root, "nested", "c.yaml"))

	got, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "nested", "b.hcl"),
	}, got)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(root, "") })
}

func TestFindFiles(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "set", "p1_dur.txt")
	b := filepath.Join(root, "set", "p1_ddl.txt")
	c := filepath.Join(root, "other", "p2_dur.txt")
	touch(t, a)
	touch(t, b)
	touch(t, c)

	got, err := FindFiles([]string{
		filepath.Join(root, "set"),
		a,
		c,
		b,
		filepath.Join(root, "missing"),
	}, "_dur.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{a, c}, got)
}
