// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/homeconf/internal/logger"
)

// DefaultInstallConfigFolder is the folder below the install base that is
// searched before the install base itself.
const DefaultInstallConfigFolder = "config"

// Paths holds the standard locations derived from the application folder
// name. Empty fields mean the location could not be determined and is not
// searched.
type Paths struct {
	// UserBase is the user's home directory, e.g. "/home/alice".
	UserBase string
	// AppData is UserBase joined with the application folder name.
	AppData string
	// Config is where user configuration files live: AppData, or a
	// sub-folder of it.
	Config string
	// InstallBase is the directory of the running executable.
	InstallBase string
	// InstallConfig is the config folder below InstallBase.
	InstallConfig string
	// DirErr holds the failures to create AppData or Config. They are not
	// fatal: install-relative sources still work.
	DirErr error
}

// SearchDirs returns the directories swept for configuration files, from
// lowest to highest precedence, skipping unknown ones.
func (p Paths) SearchDirs() []string {
	dirs := make([]string, 0, 3)
	for _, dir := range []string{p.InstallConfig, p.InstallBase, p.Config} {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// ResolvePaths computes the standard locations for appFolder and makes sure
// the user data and config directories exist.
//
// configSubFolder and installConfigFolder are optional; a blank
// installConfigFolder means [DefaultInstallConfigFolder]. A blank appFolder
// fails with [ErrMissingAppName] before anything else is computed.
func ResolvePaths(sys System, log *logger.Logger, appFolder, configSubFolder, installConfigFolder string) (Paths, error) {
	if strings.TrimSpace(appFolder) == "" {
		return Paths{}, &ConfigurationError{Err: ErrMissingAppName}
	}
	if strings.TrimSpace(installConfigFolder) == "" {
		installConfigFolder = DefaultInstallConfigFolder
	}

	var p Paths

	home, err := sys.UserHomeDir()
	if err != nil {
		log.Warn().Err(err).Msg("cannot determine user home directory, skipping user config")
	} else {
		p.UserBase = home
		p.AppData = filepath.Join(home, appFolder)
		p.Config = p.AppData
		dirs := []string{p.AppData}
		if sub := strings.TrimSpace(configSubFolder); sub != "" {
			p.Config = filepath.Join(p.AppData, sub)
			dirs = append(dirs, p.Config)
		}

		for _, dir := range dirs {
			if err := sys.MkdirAll(dir); err != nil {
				log.Warn().Err(err).Str("dir", dir).Msg("could not create config directory")
				p.DirErr = errors.Join(p.DirErr, fmt.Errorf("error creating %s: %w", dir, err))
			}
		}
	}

	exe, err := sys.Executable()
	if err != nil {
		log.Warn().Err(err).Msg("cannot determine executable path, skipping install config")
	} else {
		p.InstallBase = filepath.Dir(exe)
		p.InstallConfig = filepath.Join(p.InstallBase, installConfigFolder)
	}

	return p, nil
}
