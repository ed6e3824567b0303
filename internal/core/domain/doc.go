// Package domain defines the core types shared by the HTML-to-text
// converter, its renderer and its adapters.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines:
//
//   - RenderOptions: The rendering knobs (wrap width only)
//   - Sentinel errors: ErrParseFailure and friends
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
