package driven

import "github.com/custodia-labs/htmlparser/internal/core/domain"

// Renderer converts HTML markup into a plain-text rendering.
// Implementations must hold no shared mutable state between calls.
type Renderer interface {
	// Render parses html and returns its text rendering.
	// Any failure wraps domain.ErrParseFailure.
	Render(html string, opts domain.RenderOptions) (string, error)
}
