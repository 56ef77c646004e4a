// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"strings"
)

// HomeConfigFileName is the application-independent file looked up in every
// search directory.
const HomeConfigFileName = "homeconfig.json"

// envOverlayScheme prefixes the Path of the environment-variable overlay.
const envOverlayScheme = "env:"

// LayerSpec is the input of [BuildLayers].
type LayerSpec struct {
	Paths Paths
	// App is the application folder name used in {app} file names.
	App string
	// OS is the OS tag used in {os} file names.
	OS string
	// Environment is the deployment environment name used in {env} file
	// names. Blank disables the environment-qualified files.
	Environment string
	// Override is the file requested on the command line, if any.
	Override string
	// Env is the environment snapshot used to resolve the {app}.config and
	// {app}.{env}.config variables.
	Env map[string]string
	// EnvPrefix enables the prefixed environment-variable overlay when
	// non-empty.
	EnvPrefix string
}

// layers accumulates sources in application order. Each with returns a new
// value; the slice handed to Merge is never shared with the builder.
type layers []Source

func (l layers) with(path string, required bool, origin Origin) layers {
	if strings.TrimSpace(path) == "" {
		return l
	}
	out := make(layers, len(l), len(l)+1)
	copy(out, l)
	return append(out, Source{Path: path, Required: required, Origin: origin})
}

// ranked collapses duplicate paths onto their first occurrence, keeping the
// strictest Required flag, and numbers the result. The override file is the
// exception: a path it shares with an earlier source moves to the override
// position so that it keeps the highest precedence.
func (l layers) ranked() []Source {
	out := make([]Source, 0, len(l))
	seen := make(map[string]int, len(l))

	for _, src := range l {
		key := src.Path
		if src.Origin != OriginEnvVars {
			key = filepath.Clean(src.Path)
		}
		if idx, ok := seen[key]; ok {
			if src.Origin != OriginOverride {
				out[idx].Required = out[idx].Required || src.Required
				continue
			}
			out = append(out[:idx], out[idx+1:]...)
			for k, i := range seen {
				if i > idx {
					seen[k] = i - 1
				}
			}
		}
		seen[key] = len(out)
		out = append(out, src)
	}

	for i := range out {
		out[i].Rank = i
	}
	return out
}

// searchFileNames returns the per-directory file names from lowest to
// highest precedence.
func searchFileNames(app, osName, envName string) []string {
	names := []string{
		HomeConfigFileName,
		app + ".json",
		"config." + osName + ".json",
		app + "." + osName + ".json",
	}

	if envName != "" {
		names = append(names,
			"config."+envName+".json",
			app+"."+envName+".json",
			"config."+envName+"."+osName+".json",
			app+"."+envName+"."+osName+".json",
		)
	}

	return names
}

// EnvFileVariables returns the names of the environment variables that may
// hold a configuration file path, from lowest to highest precedence.
func EnvFileVariables(app, envName string) []string {
	vars := []string{app + ".config"}
	if envName != "" {
		vars = append(vars, app+"."+envName+".config")
	}
	return vars
}

// BuildLayers returns the candidate sources for spec in application order
// (lowest precedence first):
//  1. the prefixed environment-variable overlay, when EnvPrefix is set;
//  2. the standard file names in the install-config, install-base and user
//     config directories, in that order (optional);
//  3. files named by the {app}.config and {app}.{env}.config environment
//     variables (required when the variable is set);
//  4. the --config override file (required).
func BuildLayers(spec LayerSpec) []Source {
	envName := strings.TrimSpace(spec.Environment)
	var l layers

	if spec.EnvPrefix != "" {
		l = l.with(envOverlayScheme+spec.EnvPrefix, false, OriginEnvVars)
	}

	for _, dir := range spec.Paths.SearchDirs() {
		for _, name := range searchFileNames(spec.App, spec.OS, envName) {
			l = l.with(filepath.Join(dir, name), false, OriginSearch)
		}
	}

	for _, variable := range EnvFileVariables(spec.App, envName) {
		l = l.with(strings.TrimSpace(spec.Env[variable]), true, OriginEnvFile)
	}

	l = l.with(spec.Override, true, OriginOverride)

	return l.ranked()
}
