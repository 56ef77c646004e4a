// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/homeconf/internal/app"
	"github.com/MKhiriev/homeconf/internal/config"
	"github.com/MKhiriev/homeconf/internal/logger"
)

var (
	// ErrInvalidJSONPath is returned when a query expression does not parse.
	ErrInvalidJSONPath = errors.New(app.MsgInvalidJSONPath)
	// ErrNoQueryMatches is returned by query --strict when nothing matched.
	ErrNoQueryMatches = errors.New(app.MsgNoQueryMatches)
)

func newQueryCommand(cfg *config.Config) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "query <jsonpath>",
		Short: "Evaluate a JSONPath expression such as $.Servers[*].Host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := query(cfg.Tree, args[0])
			if err != nil {
				return err
			}

			logger.FromContext(cmd.Context()).Debug().
				Str("expr", args[0]).
				Int("matches", len(results)).
				Msg("query evaluated")

			if len(results) == 0 && strict {
				return fmt.Errorf("%w: %s", ErrNoQueryMatches, args[0])
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				line, err := json.Marshal(r)
				if err != nil {
					return fmt.Errorf("error encoding query result: %w", err)
				}
				if _, err = fmt.Fprintln(out, string(line)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the expression matches nothing")

	return cmd
}

// query evaluates the JSONPath expression expr against tree.
func query(tree *config.Tree, expr string) ([]any, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSONPath, err)
	}
	return x.Get(plain(tree.Map())), nil
}
