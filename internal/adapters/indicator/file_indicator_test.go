package indicator

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/devcon/internal/domain"
)

func TestFileIndicator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "indicator")

	color, err := ReadColor(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ColorOff, color)

	ind := NewFileIndicator(path)
	assert.Equal(t, domain.ColorOff, ind.Current())

	ind.Set(domain.ColorGreen)
	ind.Set(domain.ColorRed)

	assert.Equal(t, domain.ColorRed, ind.Current())
	color, err = ReadColor(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ColorRed, color)
}

func TestFileIndicator_LastWriterWins(t *testing.T) {
	ind := NewFileIndicator(filepath.Join(t.TempDir(), "indicator"))

	var wg sync.WaitGroup
	for _, c := range domain.Colors {
		wg.Add(1)
		go func(c domain.Color) {
			defer wg.Done()
			ind.Set(c)
		}(c)
	}
	wg.Wait()

	color, err := ReadColor(ind.path)
	require.NoError(t, err)
	assert.Equal(t, ind.Current(), color)
}

func TestReadColor_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indicator")
	require.NoError(t, os.WriteFile(path, []byte("purple\n"), 0644))

	_, err := ReadColor(path)
	assert.Error(t, err)
}
