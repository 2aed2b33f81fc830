package filex

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNested(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir), "must be idempotent")

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestWriteAtomic_WritesAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "net.txt")

	write := func(s string) error {
		return WriteAtomic(path, 0o600, func(w io.Writer) error {
			_, err := io.WriteString(w, s)
			return err
		})
	}

	require.NoError(t, write("first\n"))
	require.NoError(t, write("second\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second\n", string(data))

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}
}

func TestWriteAtomic_FailureKeepsOld(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "net.txt")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

	boom := errors.New("boom")
	err := WriteAtomic(path, 0o600, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "old\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must be cleaned up")
}
