package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirs(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "a", "b", "client.db")

	require.NoError(t, EnsureParentDir(target))

	fi, err := os.Stat(filepath.Join(tmp, "a", "b"))
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestEnsureParentDir_BareFileName(t *testing.T) {
	assert.NoError(t, EnsureParentDir("client.db"))
}

func TestReadLimited(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "avatar.png")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0o600))

	data, err := ReadLimited(path, 5)
	require.NoError(t, err)
	assert.Equal(t, []byte("12345"), data)

	_, err = ReadLimited(path, 4)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = ReadLimited(filepath.Join(tmp, "missing"), 10)
	assert.Error(t, err)
}
