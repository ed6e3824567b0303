package htmlparser

import (
	"strings"

	"github.com/custodia-labs/htmlparser/internal/core/ports/driving"
	"github.com/custodia-labs/htmlparser/internal/core/services"
	"github.com/custodia-labs/htmlparser/internal/renderers/text"
)

// converter is shared by every exported call; it holds no mutable state.
var converter driving.Converter = services.NewConverterService(text.New())

// convertToText is the Go half of the exported functions. It never fails:
// conversion errors are logged and yield "".
// The result is returned as a NUL-terminated C string, so any NUL left in
// the text is replaced with U+FFFD rather than truncating it.
func convertToText(html string, width int) string {
	return strings.ReplaceAll(converter.Convert(html, width), "\x00", "\uFFFD")
}
