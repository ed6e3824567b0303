// Command htmlparser builds the HTML-to-text bridge as a C library:
//
//	go build -buildmode=c-shared -o libhtmlparser.so ./cmd/htmlparser
//	go build -buildmode=c-archive -o libhtmlparser.a ./cmd/htmlparser
//
// The generated header declares convert_to_text, convert_to_text_width
// and free_text.
package main

import _ "github.com/custodia-labs/htmlparser/cgo/htmlparser"

func main() {}
