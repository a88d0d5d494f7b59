package history

import (
	"os"
	"strings"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.txt")
	store := NewFileStore(path, 3)

	lines, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, lines)

	for _, line := range []string{"help", "  ", "led red", "join home", "free"} {
		require.NoError(t, store.Append(line))
	}

	lines, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"led red", "join home", "free"}, lines)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "led red\njoin home\nfree\n", string(data))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	lines, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestFileStore_LoadTrimsOversizedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\n\nc\nd\n"), 0600))

	lines, err := NewFileStore(path, 2).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, lines)
}

func TestFileStore_LongLines(t *testing.T) {
	t.Run("append cuts oversized entries", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.txt")
		store := NewFileStore(path, 10)

		require.NoError(t, store.Append(strings.Repeat("x", 100*1024)))
		require.NoError(t, store.Append("free"))

		lines, err := store.Load()
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Len(t, lines[0], MaxLineBytes)
		assert.Equal(t, "free", lines[1])
	})

	t.Run("load reads lines longer than the scanner default", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.txt")
		long := strings.Repeat("y", 200*1024)
		require.NoError(t, os.WriteFile(path, []byte("help\n"+long+"\n"), 0600))
		store := NewFileStore(path, 10)

		lines, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"help", long}, lines)

		require.NoError(t, store.Append("free"))
		lines, err = store.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"help", long, "free"}, lines)
	})
}
