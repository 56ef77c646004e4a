// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/MKhiriev/homeconf/internal/logger"
)

// Merger loads sources and folds them into one [Tree].
type Merger struct {
	sys System
	log *logger.Logger
	env map[string]string
}

// NewMerger returns a Merger reading files through sys. env is the
// environment snapshot used for the prefixed-variable overlay.
func NewMerger(sys System, log *logger.Logger, env map[string]string) *Merger {
	return &Merger{sys: sys, log: log, env: env}
}

// Merge applies sources in rank order; for every leaf key the value from the
// highest-ranked source that defines it wins.
//
// Missing optional sources are skipped. A missing required source fails with
// [ErrSourceNotFound] and an unparsable one with [ErrParseFailure]; both
// abort the whole merge. The second result lists the sources that were
// actually applied, in order.
func (m *Merger) Merge(sources []Source) (*Tree, []Source, error) {
	ordered := make([]Source, len(sources))
	copy(ordered, sources)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Rank < ordered[j].Rank })

	result := map[string]any{}
	applied := make([]Source, 0, len(ordered))

	for _, src := range ordered {
		tree, found, err := m.load(src)
		if err != nil {
			return nil, nil, err
		}
		if !found {
			m.log.Debug().Str("path", src.Path).Stringer("origin", src.Origin).Msg("config source not found, skipping")
			continue
		}

		m.log.Debug().Str("path", src.Path).Int("rank", src.Rank).Msg("applying config source")
		mergeInto(result, tree)
		applied = append(applied, src)
	}

	return newTreeFromMap(result), applied, nil
}

// load returns the decoded source and whether it exists.
func (m *Merger) load(src Source) (map[string]any, bool, error) {
	if src.Origin == OriginEnvVars {
		prefix := strings.TrimPrefix(src.Path, envOverlayScheme)
		return envOverlay(m.env, prefix).root, true, nil
	}

	data, err := m.sys.ReadFile(src.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if src.Required {
				return nil, false, &ConfigurationError{Path: src.Path, Err: ErrSourceNotFound}
			}
			return nil, false, nil
		}
		return nil, false, &ConfigurationError{Path: src.Path, Err: fmt.Errorf("error reading a json file: %w", err)}
	}

	obj, err := parseJSONObject(data)
	if err != nil {
		return nil, false, &ConfigurationError{Path: src.Path, Err: fmt.Errorf("%w: %w", ErrParseFailure, err)}
	}

	return obj, true, nil
}

// parseJSONObject decodes data, which must hold exactly one JSON object.
// Numbers keep their textual form. Blank input is an empty object.
func parseJSONObject(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level JSON object")
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level JSON value must be an object, got %T", v)
	}

	return obj, nil
}

// Merge folds sources read through sys into one tree. See [Merger.Merge].
func Merge(sys System, log *logger.Logger, sources []Source) (*Tree, error) {
	tree, _, err := NewMerger(sys, log, envSnapshot(sys)).Merge(sources)
	return tree, err
}
