package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// fakeSystem is a System rooted in a temporary directory. Files are real;
// the home directory, executable, OS tag and environment are fixed.
type fakeSystem struct {
	home    string
	exe     string
	osName  string
	env     []string
	homeErr error
}

func (f *fakeSystem) OS() string                        { return f.osName }
func (f *fakeSystem) Environ() []string                 { return f.env }
func (f *fakeSystem) UserHomeDir() (string, error)      { return f.home, f.homeErr }
func (f *fakeSystem) Executable() (string, error)       { return f.exe, nil }
func (f *fakeSystem) MkdirAll(path string) error        { return os.MkdirAll(path, 0o755) }
func (f *fakeSystem) ReadFile(p string) ([]byte, error) { return os.ReadFile(p) }

func (f *fakeSystem) setenv(key, value string) {
	f.env = append(f.env, key+"="+value)
}

// installDir is the directory holding the fake executable.
func (f *fakeSystem) installDir() string {
	return filepath.Dir(f.exe)
}

func newFakeSystem(t *testing.T) *fakeSystem {
	t.Helper()
	root := t.TempDir()
	install := filepath.Join(root, "opt", "myapp")
	require.NoError(t, os.MkdirAll(install, 0o755))

	return &fakeSystem{
		home:   filepath.Join(root, "home"),
		exe:    filepath.Join(install, "myapp"),
		osName: OSLinux,
	}
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func sourcePaths(sources []Source) []string {
	out := make([]string, len(sources))
	for i, s := range sources {
		out[i] = s.Path
	}
	return out
}
