// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// Origin tells which layering rule produced a [Source].
type Origin int

const (
	// OriginSearch is a file found by sweeping the standard directories.
	OriginSearch Origin = iota
	// OriginEnvFile is a file whose path is held by an environment variable.
	OriginEnvFile
	// OriginEnvVars is the overlay built from prefixed environment variables.
	OriginEnvVars
	// OriginOverride is the file requested with --config / -c.
	OriginOverride
)

func (o Origin) String() string {
	switch o {
	case OriginSearch:
		return "search"
	case OriginEnvFile:
		return "env-file"
	case OriginEnvVars:
		return "env-vars"
	case OriginOverride:
		return "override"
	default:
		return fmt.Sprintf("origin(%d)", int(o))
	}
}

// Source is one candidate configuration location.
type Source struct {
	// Path is the file path, or "env:<prefix>" for the environment overlay.
	Path string
	// Required sources must exist; optional ones are skipped when missing.
	Required bool
	// Rank is the position in application order. Lower ranks are applied
	// first and are overridden by higher ones.
	Rank int
	// Origin is the rule that produced the source.
	Origin Origin
}

func (s Source) String() string {
	req := "optional"
	if s.Required {
		req = "required"
	}
	return fmt.Sprintf("#%d %s (%s, %s)", s.Rank, s.Path, s.Origin, req)
}
