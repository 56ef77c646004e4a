package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSTag(t *testing.T) {
	tests := map[string]string{
		"windows": OSWindows,
		"darwin":  OSMac,
		"linux":   OSLinux,
		"freebsd": OSUnknown,
		"":        OSUnknown,
	}

	for goos, want := range tests {
		assert.Equal(t, want, osTag(goos), goos)
	}
}

func TestOSSystem_Files(t *testing.T) {
	sys := OSSystem()
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, sys.MkdirAll(dir))
	require.NoError(t, sys.MkdirAll(dir))

	_, err := sys.ReadFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, filepath.Join(dir, "x.json"), `{}`)
	data, err := sys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	assert.NotEmpty(t, sys.OS())
	assert.NotEmpty(t, sys.Environ())
}
