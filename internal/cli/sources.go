// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/homeconf/internal/config"
)

func newSourcesCommand(cfg *config.Config) *cobra.Command {
	var appliedOnly bool

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List candidate sources from lowest to highest precedence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeSources(cmd.OutOrStdout(), cfg, appliedOnly)
		},
	}

	cmd.Flags().BoolVar(&appliedOnly, "applied", false, "only show sources that were merged")

	return cmd
}

func writeSources(w io.Writer, cfg *config.Config, appliedOnly bool) error {
	st := newStyles(w)

	applied := make(map[int]bool, len(cfg.Applied))
	for _, s := range cfg.Applied {
		applied[s.Rank] = true
	}

	var b strings.Builder
	b.WriteString(st.title.Render("Sources (lowest precedence first)"))
	b.WriteByte('\n')

	for _, s := range cfg.Sources {
		ok := applied[s.Rank]
		if appliedOnly && !ok {
			continue
		}

		status, style := "applied", st.applied
		if !ok {
			status, style = "missing", st.missing
		}
		need := "optional"
		if s.Required {
			need = "required"
		}

		line := fmt.Sprintf("%3d  %-8s  %-8s  %-8s  %s", s.Rank, s.Origin, need, status, s.Path)
		b.WriteString(style.Render(line))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func newPathsCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Show the resolved standard directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writePaths(cmd.OutOrStdout(), cfg)
		},
	}
}

func writePaths(w io.Writer, cfg *config.Config) error {
	st := newStyles(w)
	p := cfg.Paths

	rows := []struct {
		label, value string
	}{
		{"UserBase", p.UserBase},
		{"AppData", p.AppData},
		{"Config", p.Config},
		{"InstallBase", p.InstallBase},
		{"InstallConfig", p.InstallConfig},
		{"Environment", cfg.Environment},
		{"OS", cfg.OS},
		{"Override", cfg.OverrideFile},
	}

	var b strings.Builder
	b.WriteString(st.title.Render("Paths"))
	b.WriteByte('\n')
	for _, row := range rows {
		value := row.value
		if value == "" {
			value = st.help.Render("-")
		}
		b.WriteString(st.label.Render(row.label))
		b.WriteString(value)
		b.WriteByte('\n')
	}
	if p.DirErr != nil {
		b.WriteString(st.help.Render("warning: " + p.DirErr.Error()))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
