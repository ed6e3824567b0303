//go:build cgo

package htmlparser

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// convert_to_text converts len bytes of HTML at html to plain text,
// effectively unwrapped. The caller owns the returned string.
//
//export convert_to_text
func convert_to_text(html *C.char, length C.size_t) *C.char {
	return C.CString(convertToText(copyIn(html, length), 0))
}

// convert_to_text_width is convert_to_text with an explicit wrap width.
// A width <= 0 behaves like convert_to_text.
//
//export convert_to_text_width
func convert_to_text_width(html *C.char, length C.size_t, width C.int) *C.char {
	return C.CString(convertToText(copyIn(html, length), int(width)))
}

// free_text releases a string returned by convert_to_text.
//
//export free_text
func free_text(text *C.char) {
	C.free(unsafe.Pointer(text))
}

// copyIn copies the host buffer into Go memory so no pointer is retained
// after the call returns.
func copyIn(html *C.char, length C.size_t) string {
	if html == nil || length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(html)), int(length)))
}
