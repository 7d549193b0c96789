// Package services implements the driving port interfaces.
// Services contain the core orchestration and call out to driven ports
// (adapters) for configuration and history persistence.
//
// Services are pure Go with no CGO or external dependencies beyond ID
// generation.
package services
