// Package domain defines the core entities for computor.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Term: A coefficient paired with a non-negative exponent
//   - Solution: The tagged outcome of solving a reduced polynomial
//   - Report: A recorded solve, including failures
//   - AppSettings: Display, parser and history preferences
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
