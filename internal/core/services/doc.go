// Package services implements the driving port interfaces.
// Services contain the core conversion contract and delegate the actual
// layout work to driven ports (renderers).
//
// Services are pure Go with no CGO or external dependencies.
package services
