package text

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/htmlparser/internal/core/domain"
)

// frame is a line prefix owned by an open block (list item, quote, heading).
// The first line written inside the block gets first, later lines get rest.
type frame struct {
	first string
	rest  string
	used  bool
}

// marker is an inline decoration such as emphasis or a link.
// Its opening text is written lazily, in front of the first visible
// character, so empty elements and leading whitespace leave no trace.
type marker struct {
	open    string
	close   string
	emitted bool
	ever    bool
}

// writer accumulates inline text into paragraphs and lays them out as
// wrapped, prefixed lines.
type writer struct {
	width int
	out   strings.Builder

	frames  []*frame
	markers []*marker

	segs  []string
	cur   strings.Builder
	space bool

	wrote bool
	blank bool
	pre   int

	err error
}

func newWriter(width int) *writer {
	return &writer{width: width}
}

func isCollapsible(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// text appends character data to the current paragraph.
func (w *writer) text(s string) {
	if w.pre > 0 {
		w.cur.WriteString(s)
		return
	}
	for _, r := range s {
		if isCollapsible(r) {
			w.space = true
			continue
		}
		w.visible()
		w.cur.WriteRune(r)
	}
}

// atom appends an indivisible piece of visible text, e.g. an image label.
func (w *writer) atom(s string) {
	if s == "" {
		return
	}
	w.visible()
	w.cur.WriteString(s)
}

// separator appends s between two non-empty runs and swallows pending space.
func (w *writer) separator(s string) {
	if w.cur.Len() > 0 {
		w.cur.WriteString(s)
	}
	w.space = false
}

func (w *writer) visible() {
	if w.space && w.cur.Len() > 0 && !strings.HasSuffix(w.cur.String(), " ") {
		w.cur.WriteByte(' ')
	}
	w.space = false
	for _, m := range w.markers {
		if !m.emitted {
			w.cur.WriteString(m.open)
			m.emitted = true
			m.ever = true
		}
	}
}

func (w *writer) open(openText, closeText string) {
	w.markers = append(w.markers, &marker{open: openText, close: closeText})
}

// close ends the innermost marker and reports whether it ever wrapped
// visible text.
func (w *writer) close() bool {
	top := w.markers[len(w.markers)-1]
	w.markers = w.markers[:len(w.markers)-1]
	if top.emitted {
		w.cur.WriteString(top.close)
	}
	return top.ever
}

func (w *writer) lineBreak() {
	if w.pre > 0 {
		w.cur.WriteByte('\n')
		return
	}
	w.closeMarkers()
	w.segs = append(w.segs, w.cur.String())
	w.cur.Reset()
	w.space = false
}

// closeMarkers closes every emitted marker at the end of a line. Markers
// still open reopen in front of the next visible character.
func (w *writer) closeMarkers() {
	for i := len(w.markers) - 1; i >= 0; i-- {
		if m := w.markers[i]; m.emitted {
			w.cur.WriteString(m.close)
			m.emitted = false
		}
	}
}

func (w *writer) push(f *frame) {
	w.frames = append(w.frames, f)
}

func (w *writer) pop() {
	w.frames = w.frames[:len(w.frames)-1]
}

// block ends the current paragraph. With blank set, the next line written
// is preceded by an empty line.
func (w *writer) block(blank bool) {
	w.flush()
	if blank && w.wrote {
		w.blank = true
	}
}

// flush lays out the current paragraph.
func (w *writer) flush() {
	w.closeMarkers()

	segs := append(w.segs, w.cur.String())
	w.segs = nil
	w.cur.Reset()
	w.space = false

	if w.err != nil {
		return
	}

	if w.pre > 0 {
		w.preformatted(strings.Join(segs, ""))
		return
	}

	for len(segs) > 0 && strings.TrimSpace(segs[len(segs)-1]) == "" {
		segs = segs[:len(segs)-1]
	}
	for _, seg := range segs {
		w.wrap(strings.TrimRight(seg, " "))
		if w.err != nil {
			return
		}
	}
}

func (w *writer) preformatted(s string) {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for _, line := range lines {
		w.endLine(w.startLine(), line)
	}
}

// wrap writes seg as one or more lines no wider than the available width.
// Only ASCII spaces are break opportunities.
func (w *writer) wrap(seg string) {
	var words []string
	for _, word := range strings.Split(seg, " ") {
		if word != "" {
			words = append(words, word)
		}
	}
	if len(words) == 0 {
		w.endLine(w.startLine(), "")
		return
	}

	for len(words) > 0 {
		prefix := w.startLine()
		avail, ok := w.available(prefix)
		if !ok {
			return
		}

		var line strings.Builder
		used, n := 0, 0
		for n < len(words) {
			ww := runewidth.StringWidth(words[n])
			sep := 0
			if used > 0 {
				sep = 1
			}
			if used+sep+ww > avail {
				break
			}
			if sep > 0 {
				line.WriteByte(' ')
			}
			line.WriteString(words[n])
			used += sep + ww
			n++
		}

		if n == 0 {
			head, tail := splitWidth(words[0], avail)
			line.WriteString(head)
			if tail == "" {
				words = words[1:]
			} else {
				words[0] = tail
			}
		} else {
			words = words[n:]
		}
		w.endLine(prefix, line.String())
	}
}

// rule writes a horizontal line across the available width.
func (w *writer) rule() {
	w.block(true)
	if w.err != nil {
		return
	}
	prefix := w.startLine()
	avail, ok := w.available(prefix)
	if !ok {
		return
	}
	w.endLine(prefix, strings.Repeat("-", avail))
	w.block(true)
}

func (w *writer) available(prefix string) (int, bool) {
	avail := w.width - runewidth.StringWidth(prefix)
	if avail < 1 {
		w.err = fmt.Errorf("%w: width %d leaves no room after prefix %q", domain.ErrParseFailure, w.width, prefix)
		return 0, false
	}
	return avail, true
}

// startLine writes a pending blank line and returns the prefix for the
// next line, consuming the first-line prefix of fresh frames.
func (w *writer) startLine() string {
	if w.blank && w.wrote {
		var b strings.Builder
		for _, f := range w.frames {
			if f.used {
				b.WriteString(f.rest)
			}
		}
		w.out.WriteString(strings.TrimRight(b.String(), " "))
		w.out.WriteByte('\n')
	}
	w.blank = false

	var b strings.Builder
	for _, f := range w.frames {
		if f.used {
			b.WriteString(f.rest)
		} else {
			b.WriteString(f.first)
			f.used = true
		}
	}
	return b.String()
}

func (w *writer) endLine(prefix, content string) {
	w.out.WriteString(strings.TrimRight(prefix+content, " "))
	w.out.WriteByte('\n')
	w.wrote = true
}

func (w *writer) String() string {
	return w.out.String()
}

// splitWidth cuts s after at most width display columns. At least one rune
// is always taken so that callers make progress.
func splitWidth(s string, width int) (string, string) {
	used := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > width && i > 0 {
			return s[:i], s[i:]
		}
		used += rw
	}
	return s, ""
}
