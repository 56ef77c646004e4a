// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"dario.cat/mergo"

	"github.com/MKhiriev/homeconf/internal/cmdline"
	"github.com/MKhiriev/homeconf/internal/logger"
)

// Options controls how [Load] discovers configuration. Zero-valued fields
// are filled with defaults derived from AppFolder.
type Options struct {
	// AppFolder is the application folder name, e.g. "myapp". Required.
	// It names the user data directory and the {app} file variants.
	AppFolder string

	// ConfigSubFolder optionally places user config files in a sub-folder
	// of the app data directory, e.g. "config".
	ConfigSubFolder string

	// InstallConfigFolder is the folder below the executable's directory
	// searched first. Defaults to "config".
	InstallConfigFolder string

	// EnvironmentVariable names the variable holding the deployment
	// environment. Defaults to "EnvironmentName".
	EnvironmentVariable string

	// EnvPrefix selects the environment variables merged as keys, e.g.
	// "myapp_Logging__Level" for Logging:Level. They rank below every file.
	// Defaults to AppFolder + "_".
	EnvPrefix string

	// DisableEnvOverlay turns off the prefixed-variable overlay.
	DisableEnvOverlay bool

	// StrictArgs turns a --config flag without a filename into an error
	// instead of a warning.
	StrictArgs bool
}

func defaultOptions(appFolder string) Options {
	return Options{
		InstallConfigFolder: DefaultInstallConfigFolder,
		EnvironmentVariable: DefaultEnvironmentVariable,
		EnvPrefix:           appFolder + "_",
	}
}

// withDefaults fills the zero fields of opts.
func (opts Options) withDefaults() (Options, error) {
	opts.AppFolder = strings.TrimSpace(opts.AppFolder)
	if opts.AppFolder == "" {
		return opts, &ConfigurationError{Err: ErrMissingAppName}
	}

	if err := mergo.Merge(&opts, defaultOptions(opts.AppFolder)); err != nil {
		return opts, fmt.Errorf("error merging options: %w", err)
	}

	if opts.DisableEnvOverlay {
		opts.EnvPrefix = ""
	}

	return opts, nil
}

// Config is the result of [Load].
type Config struct {
	// Tree is the merged configuration.
	Tree *Tree
	// Args are the command-line arguments left after removing --config.
	Args []string
	// OverrideFile is the file requested with --config, if any.
	OverrideFile string
	// Dangling reports a --config flag that had no usable filename.
	Dangling bool
	// Environment is the deployment environment name, possibly empty.
	Environment string
	// OS is the OS tag used in file names.
	OS string
	// Paths are the resolved standard directories.
	Paths Paths
	// Sources are all candidate sources in application order.
	Sources []Source
	// Applied are the sources that existed and were merged.
	Applied []Source
}

// Get returns the value at key, or an empty string when it is absent.
func (c *Config) Get(key KeyPath) string {
	return c.Tree.Value(key)
}

// Lookup returns the value at key and whether it is present.
func (c *Config) Lookup(key KeyPath) (string, bool) {
	return c.Tree.Get(key)
}

// Load runs the full resolution pipeline:
//  1. remove the --config / -c request from args;
//  2. resolve the standard directories for opts.AppFolder;
//  3. build the candidate sources in precedence order;
//  4. merge every existing source into one tree.
//
// A blank app name, a missing required source or an unparsable file abort
// loading with a [*ConfigurationError].
func Load(opts Options, args []string, sys System, log *logger.Logger) (*Config, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	log = log.GetChildLogger("config")

	extraction := cmdline.Extract(args)
	if extraction.Dangling {
		if opts.StrictArgs {
			return nil, &ConfigurationError{Err: ErrMissingConfigValue}
		}
		log.Warn().Msg("--config flag given without a filename, ignoring it")
	}

	paths, err := ResolvePaths(sys, log, opts.AppFolder, opts.ConfigSubFolder, opts.InstallConfigFolder)
	if err != nil {
		return nil, err
	}

	snapshot := envSnapshot(sys)
	environment, err := parseEnvironmentName(snapshot, opts.EnvironmentVariable)
	if err != nil {
		return nil, fmt.Errorf("error reading environment name: %w", err)
	}

	osName := sys.OS()
	sources := BuildLayers(LayerSpec{
		Paths:       paths,
		App:         opts.AppFolder,
		OS:          osName,
		Environment: environment,
		Override:    extraction.File,
		Env:         snapshot,
		EnvPrefix:   opts.EnvPrefix,
	})

	tree, applied, err := NewMerger(sys, log, snapshot).Merge(sources)
	if err != nil {
		return nil, fmt.Errorf("error merging config sources: %w", err)
	}

	log.Info().
		Str("app", opts.AppFolder).
		Str("environment", environment).
		Str("os", osName).
		Int("candidates", len(sources)).
		Int("applied", len(applied)).
		Msg("configuration loaded")

	return &Config{
		Tree:         tree,
		Args:         extraction.Remaining,
		OverrideFile: extraction.File,
		Dangling:     extraction.Dangling,
		Environment:  environment,
		OS:           osName,
		Paths:        paths,
		Sources:      sources,
		Applied:      applied,
	}, nil
}
