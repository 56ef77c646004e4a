// Package config discovers, layers and merges JSON configuration files for
// command-line applications.
//
// Sources are applied from lowest to highest precedence (later sources
// override earlier ones key by key):
//  1. {app}_-prefixed environment variables
//  2. homeconfig.json, {app}.json, config.{os}.json, {app}.{os}.json and,
//     when an environment name is set, config.{env}.json, {app}.{env}.json,
//     config.{env}.{os}.json and {app}.{env}.{os}.json, searched in the
//     install config folder, the install folder and the user config folder
//  3. files named by the {app}.config and {app}.{env}.config environment
//     variables
//  4. the file given with --config / -c on the command line
//
// The main entry point is [Load]. Values are read from the resulting
// [Tree] by ":"-separated [KeyPath]; keys match case-insensitively.
package config
