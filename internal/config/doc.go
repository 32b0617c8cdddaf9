// Package config loads optional user configuration for the calculator.
//
// The config file is JSONC (JSON with comments and trailing commas), parsed
// with github.com/tidwall/jsonc before encoding/json. It can rename the app
// and override any user-facing message of the interactive menu. Keys that
// are absent keep their defaults.
//
// Lookup order for `calc start`:
//  1. the --config flag (a missing file is an error)
//  2. .calc.jsonc in the current directory
//  3. built-in defaults
package config
