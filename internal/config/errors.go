// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Errors returned (wrapped in a [*ConfigurationError]) when the configuration
// cannot be assembled. All of them abort loading; there is no partially
// loaded state.
var (
	// ErrMissingAppName indicates that the application folder name is blank,
	// so none of the standard locations can be derived.
	ErrMissingAppName = errors.New("no app name: AppFolder must be set")
	// ErrSourceNotFound indicates that a required source (the --config file
	// or a file named by an environment variable) does not exist.
	ErrSourceNotFound = errors.New("source not found")
	// ErrParseFailure indicates that a source is not a valid JSON object.
	ErrParseFailure = errors.New("parse failure")
	// ErrMissingConfigValue indicates a --config flag without a usable
	// filename. Only returned when [Options.StrictArgs] is set.
	ErrMissingConfigValue = errors.New("config flag given without a filename")
)

// ConfigurationError reports a configuration failure together with the
// source path it concerns, if any.
type ConfigurationError struct {
	// Path is the offending source. Empty for failures not tied to a file.
	Path string
	// Err is one of the sentinel errors above, possibly joined with the
	// underlying cause.
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Path == "" {
		return "configuration error: " + e.Err.Error()
	}
	return "configuration error: " + e.Path + ": " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
