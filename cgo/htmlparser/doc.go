// Package htmlparser exports the HTML-to-text converter over the C ABI.
//
// Strings cross the boundary by value: the input is copied into Go memory
// before conversion and the result is returned in a freshly malloc'ed,
// NUL-terminated buffer owned by the host, which must release it with
// free_text.
//
//	char *convert_to_text(const char *html, size_t len);
//	char *convert_to_text_width(const char *html, size_t len, int width);
//	void free_text(char *text);
//
// Build requires:
//   - A C toolchain (CGO_ENABLED=1)
//   - go build -buildmode=c-shared ./cmd/htmlparser, or -buildmode=c-archive
package htmlparser
