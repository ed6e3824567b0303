// Package cgo provides the C ABI surface of the converter.
// This package isolates all CGO code from the pure Go core.
//
// Sub-packages:
//   - htmlparser: exports convert_to_text for C and C++ hosts
package cgo
