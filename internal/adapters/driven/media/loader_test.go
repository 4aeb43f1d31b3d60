package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smallest valid PNG header plus padding so DetectContentType sees image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestLoadReturnsDataURL(t *testing.T) {
	path := writeTemp(t, "foto.png", pngHeader)

	got, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "data:image/png;base64,"), got)
}

func TestLoadRejectsNonImage(t *testing.T) {
	path := writeTemp(t, "notas.txt", []byte("esto no es una imagen"))

	_, err := NewLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debe ser una imagen")
}

func TestLoadRejectsOversized(t *testing.T) {
	big := make([]byte, 2*1024*1024+1)
	copy(big, pngHeader)
	path := writeTemp(t, "grande.png", big)

	_, err := NewLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2MB")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "no-existe.png"))
	require.Error(t, err)
}
