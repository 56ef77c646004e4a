package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPaths() Paths {
	return Paths{
		UserBase:      filepath.Join("/home", "u"),
		AppData:       filepath.Join("/home", "u", "myapp"),
		Config:        filepath.Join("/home", "u", "myapp"),
		InstallBase:   filepath.Join("/opt", "myapp"),
		InstallConfig: filepath.Join("/opt", "myapp", "config"),
	}
}

func TestBuildLayers_NoEnvironment(t *testing.T) {
	// Arrange
	p := testPaths()

	// Act
	sources := BuildLayers(LayerSpec{Paths: p, App: "myapp", OS: OSLinux})

	// Assert
	var want []string
	for _, dir := range []string{p.InstallConfig, p.InstallBase, p.Config} {
		want = append(want,
			filepath.Join(dir, "homeconfig.json"),
			filepath.Join(dir, "myapp.json"),
			filepath.Join(dir, "config.linux.json"),
			filepath.Join(dir, "myapp.linux.json"),
		)
	}
	assert.Equal(t, want, sourcePaths(sources))

	for i, s := range sources {
		assert.Equal(t, i, s.Rank)
		assert.False(t, s.Required)
		assert.Equal(t, OriginSearch, s.Origin)
	}
}

func TestBuildLayers_WithEnvironment(t *testing.T) {
	p := Paths{Config: filepath.Join("/home", "u", "myapp")}

	sources := BuildLayers(LayerSpec{Paths: p, App: "myapp", OS: OSWindows, Environment: " Production "})

	dir := p.Config
	assert.Equal(t, []string{
		filepath.Join(dir, "homeconfig.json"),
		filepath.Join(dir, "myapp.json"),
		filepath.Join(dir, "config.windows.json"),
		filepath.Join(dir, "myapp.windows.json"),
		filepath.Join(dir, "config.Production.json"),
		filepath.Join(dir, "myapp.Production.json"),
		filepath.Join(dir, "config.Production.windows.json"),
		filepath.Join(dir, "myapp.Production.windows.json"),
	}, sourcePaths(sources))
}

func TestBuildLayers_EnvFilesAndOverride(t *testing.T) {
	p := Paths{Config: filepath.Join("/home", "u", "myapp")}
	env := map[string]string{
		"myapp.config":         "/etc/myapp/base.json",
		"myapp.Staging.config": "/etc/myapp/staging.json",
		"other.config":         "/etc/other.json",
	}

	sources := BuildLayers(LayerSpec{
		Paths:       p,
		App:         "myapp",
		OS:          OSLinux,
		Environment: "Staging",
		Override:    "cli.json",
		Env:         env,
		EnvPrefix:   "myapp_",
	})

	require.Len(t, sources, 1+8+3)

	// the overlay sits below every file
	assert.Equal(t, Source{Path: "env:myapp_", Required: false, Rank: 0, Origin: OriginEnvVars}, sources[0])
	assert.Equal(t, filepath.Join(p.Config, "homeconfig.json"), sources[1].Path)

	tail := sources[9:]
	assert.Equal(t, Source{Path: "/etc/myapp/base.json", Required: true, Rank: 9, Origin: OriginEnvFile}, tail[0])
	assert.Equal(t, Source{Path: "/etc/myapp/staging.json", Required: true, Rank: 10, Origin: OriginEnvFile}, tail[1])
	assert.Equal(t, Source{Path: "cli.json", Required: true, Rank: 11, Origin: OriginOverride}, tail[2])
}

// TestBuildLayers_BlankEnvFileVariable verifies that a variable holding only
// whitespace adds no source.
func TestBuildLayers_BlankEnvFileVariable(t *testing.T) {
	sources := BuildLayers(LayerSpec{
		App: "myapp",
		OS:  OSLinux,
		Env: map[string]string{"myapp.config": "   "},
	})

	assert.Empty(t, sources)
}

// TestBuildLayers_EnvNameVariableNeedsEnvironment verifies that
// {app}.{env}.config is only consulted when an environment name is set.
func TestBuildLayers_EnvNameVariableNeedsEnvironment(t *testing.T) {
	sources := BuildLayers(LayerSpec{
		App: "myapp",
		OS:  OSLinux,
		Env: map[string]string{"myapp..config": "/tmp/x.json"},
	})

	assert.Empty(t, sources)
}

func TestBuildLayers_CollapsesDuplicates(t *testing.T) {
	// install base and user config point at the same directory
	dir := filepath.Join("/srv", "myapp")
	p := Paths{InstallBase: dir, Config: dir + string(filepath.Separator)}
	override := filepath.Join(dir, "myapp.json")

	sources := BuildLayers(LayerSpec{Paths: p, App: "myapp", OS: OSLinux, Override: override})

	assert.Equal(t, []string{
		filepath.Join(dir, "homeconfig.json"),
		filepath.Join(dir, "config.linux.json"),
		filepath.Join(dir, "myapp.linux.json"),
		filepath.Join(dir, "myapp.json"),
	}, sourcePaths(sources))

	// the override keeps the highest rank when it repeats a sweep file
	last := sources[len(sources)-1]
	assert.Equal(t, Source{Path: override, Required: true, Rank: 3, Origin: OriginOverride}, last)

	for i, s := range sources {
		assert.Equal(t, i, s.Rank)
	}
}

// TestBuildLayers_EnvFileCollapsesOntoSweep verifies that a file named by an
// environment variable that repeats a sweep file keeps the sweep rank but
// becomes required.
func TestBuildLayers_EnvFileCollapsesOntoSweep(t *testing.T) {
	dir := filepath.Join("/srv", "myapp")
	p := Paths{Config: dir}

	sources := BuildLayers(LayerSpec{
		Paths: p,
		App:   "myapp",
		OS:    OSLinux,
		Env:   map[string]string{"myapp.config": filepath.Join(dir, "homeconfig.json")},
	})

	require.Len(t, sources, 4)
	assert.Equal(t, Source{Path: filepath.Join(dir, "homeconfig.json"), Required: true, Rank: 0, Origin: OriginSearch}, sources[0])
}

func TestBuildLayers_OverrideOnly(t *testing.T) {
	sources := BuildLayers(LayerSpec{App: "myapp", OS: OSLinux, Override: "my.json"})

	require.Len(t, sources, 1)
	assert.Equal(t, Source{Path: "my.json", Required: true, Rank: 0, Origin: OriginOverride}, sources[0])
}

func TestLayers_WithDoesNotShareBacking(t *testing.T) {
	base := layers{}.with("a.json", false, OriginSearch)
	left := base.with("b.json", false, OriginSearch)
	right := base.with("c.json", false, OriginSearch)

	assert.Equal(t, "b.json", left[1].Path)
	assert.Equal(t, "c.json", right[1].Path)
	assert.Len(t, base, 1)
}

func TestEnvFileVariables(t *testing.T) {
	assert.Equal(t, []string{"app.config"}, EnvFileVariables("app", ""))
	assert.Equal(t, []string{"app.config", "app.Dev.config"}, EnvFileVariables("app", "Dev"))
}

func TestSource_String(t *testing.T) {
	s := Source{Path: "a.json", Required: true, Rank: 3, Origin: OriginOverride}
	assert.Equal(t, "#3 a.json (override, required)", s.String())
	assert.Equal(t, "origin(9)", Origin(9).String())
}
