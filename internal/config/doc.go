// Package config loads the engine configuration from a TOML file and
// watches it for changes.
//
// Load layers the file over Default, so a partial file only overrides
// the keys it names and a missing file yields the defaults unchanged.
// Watcher reloads on write with a short debounce, letting hosts apply
// setting changes without restarting the keyboard.
package config
