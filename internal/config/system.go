// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"runtime"
)

// OS tags used in the per-OS file names (config.{os}.json, {app}.{os}.json).
const (
	OSWindows = "windows"
	OSMac     = "osx"
	OSLinux   = "linux"
	OSUnknown = "unknownos"
)

//go:generate mockgen -source=system.go -destination=../mock/system_mock.go -package=mock

// System is the set of operating system services the loader depends on.
// The production implementation is returned by [OSSystem]; tests substitute
// a mock or a fake rooted in a temporary directory.
type System interface {
	// OS returns the OS tag used in per-OS file names.
	OS() string

	// Environ returns the process environment as "key=value" pairs.
	Environ() []string

	// UserHomeDir returns the base directory for per-user application data.
	UserHomeDir() (string, error)

	// Executable returns the path of the running executable. Its directory
	// is the install base.
	Executable() (string, error)

	// MkdirAll creates path and any missing parents. It succeeds when the
	// directory already exists.
	MkdirAll(path string) error

	// ReadFile returns the contents of the file at path. A missing file must
	// produce an error matching fs.ErrNotExist.
	ReadFile(path string) ([]byte, error)
}

type osSystem struct{}

// OSSystem returns a [System] backed by the os and runtime packages.
func OSSystem() System {
	return osSystem{}
}

func (osSystem) OS() string {
	return osTag(runtime.GOOS)
}

func (osSystem) Environ() []string {
	return os.Environ()
}

func (osSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (osSystem) Executable() (string, error) {
	return os.Executable()
}

func (osSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (osSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// osTag maps a GOOS value to the tag used in configuration file names.
func osTag(goos string) string {
	switch goos {
	case "windows":
		return OSWindows
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	default:
		return OSUnknown
	}
}
