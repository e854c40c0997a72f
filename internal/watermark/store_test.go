package watermark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_viewed")
	store := NewFileStore(path)

	require.NoError(t, store.Persist(1234))

	// A fresh store on the same path sees the value, like a new session would.
	assert.Equal(t, uint64(1234), NewFileStore(path).Load())
}

func TestLoadMissingFileYieldsZero(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Equal(t, uint64(0), store.Load())
}

func TestLoadCorruptFileYieldsZero(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "not a number"},
		{"negative", "-42"},
		{"empty", ""},
		{"partial write", "12a4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "last_viewed")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			assert.Equal(t, uint64(0), NewFileStore(path).Load())
		})
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_viewed")
	require.NoError(t, os.WriteFile(path, []byte("  77\n"), 0644))
	assert.Equal(t, uint64(77), NewFileStore(path).Load())
}

func TestPersistOverwritesPriorValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_viewed")
	store := NewFileStore(path)

	require.NoError(t, store.Persist(10))
	require.NoError(t, store.Persist(20))

	assert.Equal(t, uint64(20), store.Load())
}

func TestPersistCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "last_viewed")
	store := NewFileStore(path)

	require.NoError(t, store.Persist(5))
	assert.Equal(t, uint64(5), store.Load())
}

func TestPersistFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be makes the write fail.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "last_viewed"), 0755))

	store := NewFileStore(filepath.Join(dir, "last_viewed"))
	assert.Error(t, store.Persist(1))
}
