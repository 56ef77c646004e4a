// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultEnvironmentVariable holds the deployment environment name
// (e.g. "Production") selecting the {env} file variants.
const DefaultEnvironmentVariable = "EnvironmentName"

// envKeySeparator separates nested keys in prefixed variable names:
// myapp_Logging__Level maps to Logging:Level.
const envKeySeparator = "__"

// environmentSettings is the part of the environment read through struct
// tags when the default variable name is in use.
type environmentSettings struct {
	EnvironmentName string `env:"EnvironmentName"`
}

// envSnapshot converts the "key=value" list of sys into a map.
func envSnapshot(sys System) map[string]string {
	return env.ToMap(sys.Environ())
}

// parseEnvironmentName reads the deployment environment name from snapshot.
// A renamed variable is read directly; the default one is parsed into
// environmentSettings.
func parseEnvironmentName(snapshot map[string]string, variable string) (string, error) {
	if variable != DefaultEnvironmentVariable {
		return strings.TrimSpace(snapshot[variable]), nil
	}

	var settings environmentSettings
	if err := env.ParseWithOptions(&settings, env.Options{Environment: snapshot}); err != nil {
		return "", fmt.Errorf("error getting env configs: %w", err)
	}

	return strings.TrimSpace(settings.EnvironmentName), nil
}

// envOverlay builds a tree from the variables starting with prefix, compared
// case-insensitively. The rest of the name is split on "__" into key
// segments. Variables with an empty segment are ignored. When a variable
// names a parent of another one, the nested key wins.
func envOverlay(snapshot map[string]string, prefix string) *Tree {
	tree := NewTree()
	if prefix == "" {
		return tree
	}

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		if hasPrefixFold(name, prefix) {
			names = append(names, name)
		}
	}
	// a nested key always lands after its parent
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		rest := name[len(prefix):]
		if rest == "" {
			continue
		}
		segments := strings.Split(rest, envKeySeparator)
		if hasEmpty(segments) {
			continue
		}
		tree.Set(Key(segments...), snapshot[name])
	}

	return tree
}

func hasEmpty(segments []string) bool {
	for _, s := range segments {
		if s == "" {
			return true
		}
	}
	return false
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
