// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/homeconf/internal/app"
	"github.com/MKhiriev/homeconf/internal/config"
)

// ErrSectionNotFound is returned when a requested section is absent.
var ErrSectionNotFound = errors.New(app.MsgSectionNotFound)

func newKeysCommand(cfg *config.Config) *cobra.Command {
	var withValues bool

	cmd := &cobra.Command{
		Use:   "keys [section]",
		Short: "List leaf keys in sorted order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := selectTree(cfg, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, key := range tree.Keys() {
				if withValues {
					_, err = fmt.Fprintf(out, "%s=%s\n", key, tree.Value(key))
				} else {
					_, err = fmt.Fprintln(out, key)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&withValues, "values", "v", false, "print key=value pairs")

	return cmd
}

// selectTree returns the whole tree, or the section named by the optional
// first argument.
func selectTree(cfg *config.Config, args []string) (*config.Tree, error) {
	if len(args) == 0 {
		return cfg.Tree, nil
	}

	key, err := parseKey(args[0])
	if err != nil {
		return nil, err
	}

	section := cfg.Tree.Section(key)
	if section.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, key)
	}
	return section, nil
}
