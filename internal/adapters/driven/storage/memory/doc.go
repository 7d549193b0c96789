// Package memory provides in-memory implementations of driven port
// interfaces. They back unit tests and the --ephemeral CLI mode, where
// nothing is written to disk.
package memory
