// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the homeconf command tree.
//
// The commands operate on a configuration that has already been loaded:
// the --config request is removed from the raw arguments by
// [config.Load] before cobra sees them, so cobra never parses it.
//
// Sub-commands:
//
//	get <key>          print one value
//	keys [section]     list leaf keys
//	dump [section]     print the merged tree as JSON or YAML
//	query <jsonpath>   evaluate a JSONPath expression against the tree
//	sources            list candidate sources in precedence order
//	paths              show the resolved standard directories
//	version            show build information
package cli
