// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// homeconf command and its sub-commands.
//
// All Msg* constants are human-readable message strings that are written to
// stderr or into log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the CLI.
package app

const (
	// MsgKeyNotFound is reported by get when no source defines the key and
	// no default was given.
	MsgKeyNotFound = "key not found"

	// MsgEmptyKey is reported when a key argument is blank.
	MsgEmptyKey = "empty key provided"

	// MsgSectionNotFound is reported by keys and dump when the requested
	// section does not exist in the merged configuration.
	MsgSectionNotFound = "section not found"

	// MsgUnsupportedFormat is reported by dump for an unknown --format.
	MsgUnsupportedFormat = "unsupported output format"

	// MsgInvalidJSONPath is reported by query when the expression cannot be
	// parsed.
	MsgInvalidJSONPath = "invalid JSONPath expression"

	// MsgNoQueryMatches is reported by query --strict when the expression
	// selects nothing.
	MsgNoQueryMatches = "query matched nothing"

	// MsgInvalidSettings is reported when the process settings of the
	// homeconf command itself cannot be parsed.
	MsgInvalidSettings = "invalid homeconf settings"

	// MsgLoadFailed is reported when the configuration cannot be assembled.
	MsgLoadFailed = "error loading configuration"
)
