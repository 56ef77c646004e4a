// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cmdline pulls a configuration file request out of a raw argument
// list before the rest of the command line is handed to a flag parser.
//
// The request may be written as a single token (--config=app.json,
// "--config app.json", -c=app.json), as two tokens (--config app.json,
// --config= app.json, --config =app.json) or as three tokens
// (--config = app.json). The long flag is matched case-insensitively; the
// short flag must be a lower-case -c. Filenames wrapped in double quotes are
// unquoted.
package cmdline

import "strings"

// ParseState is the position of the extractor inside a config flag unit.
type ParseState int

const (
	// Start means no config flag has been seen yet.
	Start ParseState = iota
	// FlagMatched means the flag was seen and an optional "=" or the
	// filename is expected next.
	FlagMatched
	// EqualsMatched means the flag and a separating "=" were seen and only
	// the filename is still missing.
	EqualsMatched
)

// String returns a readable name of the state, used in log messages.
func (s ParseState) String() string {
	switch s {
	case Start:
		return "start"
	case FlagMatched:
		return "flag"
	case EqualsMatched:
		return "equals"
	default:
		return "unknown"
	}
}

const (
	longFlag  = "--config"
	shortFlag = "-c"
	blanks    = " \t"
)

// Extraction is the outcome of a single [Extract] pass.
type Extraction struct {
	// File is the requested configuration file, unquoted and trimmed.
	// Empty unless Found is true.
	File string
	// Found reports whether a complete flag + filename unit was removed.
	Found bool
	// Dangling reports that a config flag was consumed but no usable
	// filename followed it. The flag tokens are dropped from Remaining.
	Dangling bool
	// Remaining holds every other token in its original order.
	Remaining []string
}

type outcome int

const (
	outSkip    outcome = iota // token is not part of the unit
	outFlag                   // flag seen, filename pending
	outEquals                 // flag and "=" seen, filename pending
	outPending                // blank token while waiting for the filename
	outFile                   // filename found
	outFail                   // unit cannot be completed
)

type match struct {
	outcome outcome
	file    string
}

// matchers selects the token matcher for the current state.
var matchers = map[ParseState]func(token string) match{
	Start:         matchFlag,
	FlagMatched:   matchAfterFlag,
	EqualsMatched: matchAfterEquals,
}

// Extract scans tokens once and removes the first config flag unit it finds.
//
// Tokens that precede the flag, follow the unit, or sit between the parts of
// the unit without belonging to it keep their relative order. When no flag is
// present the returned Remaining is an unchanged copy of tokens. Only the
// first flag occurrence is honoured; later ones are left in Remaining.
func Extract(tokens []string) Extraction {
	state := Start
	flagIndex, equalsIndex := -1, -1

	for i, token := range tokens {
		m := matchers[state](token)

		switch m.outcome {
		case outSkip, outPending:
			continue
		case outFlag:
			flagIndex = i
			state = FlagMatched
		case outEquals:
			if state == Start {
				flagIndex = i
			}
			equalsIndex = i
			state = EqualsMatched
		case outFile:
			if state == Start {
				flagIndex = i
			}
			return Extraction{
				File:      m.file,
				Found:     true,
				Remaining: without(tokens, flagIndex, equalsIndex, i),
			}
		case outFail:
			if state == Start {
				flagIndex = i
			}
			return Extraction{
				Dangling:  true,
				Remaining: without(tokens, flagIndex, equalsIndex),
			}
		}
	}

	if state != Start {
		return Extraction{
			Dangling:  true,
			Remaining: without(tokens, flagIndex, equalsIndex),
		}
	}

	return Extraction{Remaining: without(tokens)}
}

// matchFlag recognises a token that starts a config flag unit, possibly
// carrying the "=" and the filename in the same token.
func matchFlag(token string) match {
	s := strings.TrimLeft(token, blanks)

	var rest string
	switch {
	case len(s) >= len(longFlag) && strings.EqualFold(s[:len(longFlag)], longFlag):
		rest = s[len(longFlag):]
	case strings.HasPrefix(s, shortFlag):
		rest = s[len(shortFlag):]
	default:
		return match{outcome: outSkip}
	}

	value := strings.TrimLeft(rest, blanks)
	separated := len(value) < len(rest)

	equals := strings.HasPrefix(value, "=")
	if equals {
		value = strings.TrimLeft(value[1:], blanks)
	}

	// -clack or --configuration are different flags entirely.
	if rest != "" && !separated && !equals {
		return match{outcome: outSkip}
	}

	value = strings.TrimSpace(value)
	switch {
	case value == "" && equals:
		return match{outcome: outEquals}
	case value == "":
		return match{outcome: outFlag}
	default:
		return filename(value)
	}
}

// matchAfterFlag handles the token that follows a bare flag: a lone "=",
// "=<file>" or "<file>".
func matchAfterFlag(token string) match {
	s := strings.TrimSpace(token)
	if s == "" {
		return match{outcome: outFail}
	}

	if strings.HasPrefix(s, "=") {
		value := strings.TrimSpace(s[1:])
		if value == "" {
			return match{outcome: outEquals}
		}
		return filename(value)
	}

	return filename(s)
}

// matchAfterEquals handles the tokens that follow "--config =". Blank tokens
// keep the filename pending.
func matchAfterEquals(token string) match {
	s := strings.TrimSpace(token)
	if s == "" {
		return match{outcome: outPending}
	}

	return filename(s)
}

func filename(value string) match {
	if strings.HasPrefix(value, "=") {
		return match{outcome: outFail}
	}

	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}

	if strings.TrimSpace(value) == "" {
		return match{outcome: outFail}
	}

	return match{outcome: outFile, file: value}
}

// without returns a copy of tokens with the given indexes removed. Negative
// indexes are ignored.
func without(tokens []string, skip ...int) []string {
	out := make([]string, 0, len(tokens))
	for i, token := range tokens {
		if containsIndex(skip, i) {
			continue
		}
		out = append(out, token)
	}
	return out
}

func containsIndex(indexes []int, i int) bool {
	for _, idx := range indexes {
		if idx == i {
			return true
		}
	}
	return false
}
