// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/homeconf/internal/config"
)

// BuildInfo is injected at link time and printed by the version command.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewRootCommand returns the homeconf command tree bound to cfg.
//
// The caller feeds it cfg.Args, the arguments left after the --config
// request was extracted, and attaches a logger to the execution context.
func NewRootCommand(cfg *config.Config, info BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "homeconf",
		Short: "Inspect layered JSON configuration",
		Long: `homeconf merges the JSON configuration files found in the install
directory, the user's home directory, files named by environment variables
and an optional --config file, then lets you inspect the result.

Later sources override earlier ones key by key; "homeconf sources" lists
them in the order they are applied.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGetCommand(cfg),
		newKeysCommand(cfg),
		newDumpCommand(cfg),
		newQueryCommand(cfg),
		newSourcesCommand(cfg),
		newPathsCommand(cfg),
		newVersionCommand(info),
	)

	return root
}
