package text

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/htmlparser/internal/core/domain"
	"github.com/custodia-labs/htmlparser/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// maxDepth bounds element nesting in the walk. The parser already rejects
// documents whose open-element stack exceeds the same limit; this guards
// trees that reach the walker by other means.
const maxDepth = 512

// prunedSelector matches elements whose content is never rendered. The
// parser keeps the content of the raw text elements (iframe, noembed,
// noframes, textarea, title, xmp, plaintext) as literal text, tags
// included, so they are dropped along with the non-content elements.
const prunedSelector = "head, title, script, style, noscript, template, svg, " +
	"iframe, noembed, noframes, object, textarea, xmp, plaintext"

// Blocks separated from their neighbours by an empty line.
var paragraphBlocks = map[atom.Atom]bool{
	atom.P:     true,
	atom.Table: true,
	atom.Dl:    true,
}

// Blocks that only start a new line.
var lineBlocks = map[atom.Atom]bool{
	atom.Html:       true,
	atom.Body:       true,
	atom.Div:        true,
	atom.Section:    true,
	atom.Article:    true,
	atom.Header:     true,
	atom.Footer:     true,
	atom.Nav:        true,
	atom.Main:       true,
	atom.Aside:      true,
	atom.Address:    true,
	atom.Figure:     true,
	atom.Figcaption: true,
	atom.Form:       true,
	atom.Fieldset:   true,
	atom.Legend:     true,
	atom.Details:    true,
	atom.Summary:    true,
	atom.Center:     true,
	atom.Caption:    true,
	atom.Dt:         true,
}

// Renderer renders HTML documents as plain text.
// It is stateless; every call builds its own layout state.
type Renderer struct{}

// New creates a new text renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render parses input and returns its text rendering wrapped at
// opts.EffectiveWidth(input) columns.
func (r *Renderer) Render(input string, opts domain.RenderOptions) (string, error) {
	if !utf8.ValidString(input) {
		return "", fmt.Errorf("%w: input is not valid UTF-8", domain.ErrParseFailure)
	}
	if strings.TrimSpace(input) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrParseFailure, err)
	}
	doc.Find(prunedSelector).Remove()

	s := newState(opts.EffectiveWidth(input))
	for _, n := range doc.Nodes {
		if err := s.walk(n, 0); err != nil {
			return "", err
		}
	}
	return s.finish()
}

// state is the per-call layout state.
type state struct {
	w     *writer
	links []string
	items int
	cell  int
}

func newState(width int) *state {
	return &state{w: newWriter(width)}
}

func (s *state) finish() (string, error) {
	s.w.flush()
	if s.w.err != nil {
		return "", s.w.err
	}
	if len(s.links) > 0 {
		s.w.blank = true
		for i, href := range s.links {
			s.w.endLine(s.w.startLine(), fmt.Sprintf("[%d]: %s", i+1, href))
		}
	}
	return s.w.String(), nil
}

func (s *state) walk(n *html.Node, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("%w: elements nested deeper than %d", domain.ErrParseFailure, maxDepth)
	}

	switch n.Type {
	case html.TextNode:
		s.w.text(n.Data)
		return nil
	case html.DocumentNode:
		return s.children(n, depth)
	case html.ElementNode:
		return s.element(n, depth)
	default:
		return nil
	}
}

func (s *state) children(n *html.Node, depth int) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := s.walk(c, depth+1); err != nil {
			return err
		}
		if s.w.err != nil {
			return s.w.err
		}
	}
	return nil
}

func (s *state) element(n *html.Node, depth int) error {
	switch n.DataAtom {
	case atom.Br:
		s.w.lineBreak()
		return nil
	case atom.Hr:
		s.w.rule()
		return s.w.err
	case atom.Img:
		if alt := strings.Join(strings.Fields(attr(n, "alt")), " "); alt != "" {
			s.w.atom("[" + alt + "]")
		}
		return nil
	case atom.Em, atom.I:
		return s.inline(n, depth, "*")
	case atom.Strong, atom.B:
		return s.inline(n, depth, "**")
	case atom.Code, atom.Kbd, atom.Samp, atom.Tt:
		return s.inline(n, depth, "`")
	case atom.A:
		return s.link(n, depth)
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		level, _ := strconv.Atoi(n.Data[1:])
		prefix := strings.Repeat("#", level) + " "
		return s.block(n, depth, true, &frame{first: prefix, rest: prefix})
	case atom.Blockquote:
		return s.block(n, depth, true, &frame{first: "> ", rest: "> "})
	case atom.Dd:
		return s.block(n, depth, false, &frame{first: "  ", rest: "  "})
	case atom.Pre:
		return s.pre(n, depth)
	case atom.Ul, atom.Ol:
		return s.list(n, depth)
	case atom.Li:
		return s.item(n, depth, "* ")
	case atom.Tr:
		return s.row(n, depth)
	case atom.Td, atom.Th:
		if s.cell > 0 {
			s.w.separator(" | ")
		}
		s.cell++
		return s.children(n, depth)
	}

	switch {
	case paragraphBlocks[n.DataAtom]:
		return s.block(n, depth, true, nil)
	case lineBlocks[n.DataAtom]:
		return s.block(n, depth, false, nil)
	default:
		return s.children(n, depth)
	}
}

func (s *state) block(n *html.Node, depth int, blank bool, f *frame) error {
	s.w.block(blank)
	if f != nil {
		s.w.push(f)
	}
	err := s.children(n, depth)
	s.w.flush()
	if f != nil {
		s.w.pop()
	}
	s.w.block(blank)
	return firstErr(err, s.w.err)
}

func (s *state) inline(n *html.Node, depth int, decoration string) error {
	if s.w.pre > 0 {
		return s.children(n, depth)
	}
	s.w.open(decoration, decoration)
	err := s.children(n, depth)
	s.w.close()
	return err
}

// link renders the anchor text as [text][N] and records the target as
// footnote N. Anchors without a target or without text are rendered plain.
func (s *state) link(n *html.Node, depth int) error {
	href := strings.TrimSpace(attr(n, "href"))
	if href == "" || s.w.pre > 0 {
		return s.children(n, depth)
	}

	s.links = append(s.links, href)
	s.w.open("[", fmt.Sprintf("][%d]", len(s.links)))
	err := s.children(n, depth)
	if !s.w.close() {
		s.links = s.links[:len(s.links)-1]
	}
	return err
}

func (s *state) pre(n *html.Node, depth int) error {
	s.w.block(true)
	s.w.pre++
	err := s.children(n, depth)
	s.w.flush()
	s.w.pre--
	s.w.block(true)
	return firstErr(err, s.w.err)
}

func (s *state) list(n *html.Node, depth int) error {
	nested := s.items > 0
	s.w.block(!nested)

	ordered := n.DataAtom == atom.Ol
	num := 1
	if v, err := strconv.Atoi(strings.TrimSpace(attr(n, "start"))); err == nil {
		num = v
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		var err error
		if c.Type == html.ElementNode && c.DataAtom == atom.Li {
			bullet := "* "
			if ordered {
				bullet = strconv.Itoa(num) + ". "
				num++
			}
			err = s.item(c, depth+1, bullet)
		} else {
			err = s.walk(c, depth+1)
		}
		if err != nil {
			return err
		}
	}

	s.w.block(!nested)
	return s.w.err
}

func (s *state) item(n *html.Node, depth int, bullet string) error {
	s.w.flush()
	s.items++
	s.w.push(&frame{first: bullet, rest: strings.Repeat(" ", len(bullet))})
	err := s.children(n, depth)
	s.w.flush()
	s.w.pop()
	s.items--
	return firstErr(err, s.w.err)
}

func (s *state) row(n *html.Node, depth int) error {
	s.w.flush()
	saved := s.cell
	s.cell = 0
	err := s.children(n, depth)
	s.cell = saved
	s.w.flush()
	return firstErr(err, s.w.err)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			// The tokenizer leaves NUL in attribute values.
			return strings.ReplaceAll(a.Val, "\x00", "\uFFFD")
		}
	}
	return ""
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
