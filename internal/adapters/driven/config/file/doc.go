// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage (~/.computor/config.toml),
//     optionally reloaded on change through fsnotify (Watch)
package file
