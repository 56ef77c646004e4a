// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/homeconf/internal/app"
	"github.com/MKhiriev/homeconf/internal/config"
	"github.com/MKhiriev/homeconf/internal/logger"
)

var (
	// ErrKeyNotFound is returned by get for an absent key without a default.
	ErrKeyNotFound = errors.New(app.MsgKeyNotFound)
	// ErrEmptyKey is returned when a key argument is blank.
	ErrEmptyKey = errors.New(app.MsgEmptyKey)
)

func newGetCommand(cfg *config.Config) *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value of a key such as Logging:Level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKey(args[0])
			if err != nil {
				return err
			}

			value, ok := cfg.Lookup(key)
			if !ok {
				if !cmd.Flags().Changed("default") {
					logger.FromContext(cmd.Context()).Debug().Str("key", key.String()).Msg(app.MsgKeyNotFound)
					return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
				}
				value = fallback
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}

	cmd.Flags().StringVar(&fallback, "default", "", "value printed when the key is absent")

	return cmd
}

// parseKey trims arg and rejects blank keys.
func parseKey(arg string) (config.KeyPath, error) {
	key := strings.TrimSpace(arg)
	if key == "" {
		return "", ErrEmptyKey
	}
	return config.KeyPath(key), nil
}
