// Package renderers provides implementations of the driven.Renderer
// interface. Each renderer turns a parsed HTML document into a textual
// representation.
//
// Sub-packages:
//   - text: plain-text rendering with wrapping, list markers and link footnotes
package renderers
