// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to the renderer of one output stream, so colours are
// dropped automatically when it is not a terminal.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	applied lipgloss.Style
	missing lipgloss.Style
	help    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true),
		label:   r.NewStyle().Width(14),
		applied: r.NewStyle().Foreground(lipgloss.Color("2")),
		missing: r.NewStyle().Faint(true),
		help:    r.NewStyle().Faint(true),
	}
}
