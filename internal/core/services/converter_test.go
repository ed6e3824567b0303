package services

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/htmlparser/internal/core/domain"
	"github.com/custodia-labs/htmlparser/internal/core/ports/driving"
	"github.com/custodia-labs/htmlparser/internal/logger"
	"github.com/custodia-labs/htmlparser/internal/renderers/text"
)

// stubRenderer is a driven.Renderer with scripted behaviour.
type stubRenderer struct {
	render func(html string, opts domain.RenderOptions) (string, error)
}

func (r *stubRenderer) Render(html string, opts domain.RenderOptions) (string, error) {
	return r.render(html, opts)
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
	})
	return &buf
}

func TestNewConverterService(t *testing.T) {
	svc := NewConverterService(text.New())
	require.NotNil(t, svc)
}

func TestConverterService_InterfaceCompliance(t *testing.T) {
	var _ driving.Converter = (*ConverterService)(nil)
}

func TestConverterService_Convert(t *testing.T) {
	svc := NewConverterService(text.New())

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", svc.Convert("", 0))
	})

	t.Run("paragraph", func(t *testing.T) {
		result := svc.Convert("<p>Hello</p>", 0)
		assert.Contains(t, result, "Hello")
		assert.NotContains(t, result, "<p>")
		assert.NotContains(t, result, "</p>")
	})

	t.Run("list items on separate lines in order", func(t *testing.T) {
		result := svc.Convert("<ul><li>A</li><li>B</li></ul>", 0)
		lines := strings.Split(strings.TrimSpace(result), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "A")
		assert.Contains(t, lines[1], "B")
	})

	t.Run("width is passed through", func(t *testing.T) {
		assert.Equal(t, "aaa\nbbb\n", svc.Convert("<p>aaa bbb</p>", 4))
	})
}

func TestConverterService_Convert_FailSoft(t *testing.T) {
	t.Run("invalid bytes yield empty text and a diagnostic", func(t *testing.T) {
		buf := captureLog(t)
		svc := NewConverterService(text.New())

		result := svc.Convert("\xff\xfe\xfd<p>x</p>", 0)

		assert.Equal(t, "", result)
		assert.Contains(t, buf.String(), "html to text conversion failed")
		assert.Contains(t, buf.String(), "parse failure")
	})

	t.Run("renderer error", func(t *testing.T) {
		buf := captureLog(t)
		svc := NewConverterService(&stubRenderer{
			render: func(string, domain.RenderOptions) (string, error) {
				return "partial", fmt.Errorf("%w: broken", domain.ErrParseFailure)
			},
		})

		assert.Equal(t, "", svc.Convert("<p>x</p>", 0))
		assert.Contains(t, buf.String(), "broken")
	})

	t.Run("renderer panic", func(t *testing.T) {
		buf := captureLog(t)
		svc := NewConverterService(&stubRenderer{
			render: func(string, domain.RenderOptions) (string, error) {
				panic("index out of range")
			},
		})

		assert.NotPanics(t, func() {
			assert.Equal(t, "", svc.Convert("<p>x</p>", 0))
		})
		assert.Contains(t, buf.String(), "index out of range")
	})

	t.Run("success logs nothing when not verbose", func(t *testing.T) {
		buf := captureLog(t)
		svc := NewConverterService(text.New())

		svc.Convert("<p>fine</p>", 0)

		assert.Zero(t, buf.Len())
	})
}

func TestConverterService_Render(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := NewConverterService(text.New())
		result, err := svc.Render("<p>Hello</p>", 0)
		require.NoError(t, err)
		assert.Equal(t, "Hello\n", result)
	})

	t.Run("options forwarded", func(t *testing.T) {
		var got domain.RenderOptions
		svc := NewConverterService(&stubRenderer{
			render: func(_ string, opts domain.RenderOptions) (string, error) {
				got = opts
				return "", nil
			},
		})

		_, err := svc.Render("<p>x</p>", 33)
		require.NoError(t, err)
		assert.Equal(t, 33, got.Width)
	})

	t.Run("parse failure is distinguishable", func(t *testing.T) {
		captureLog(t)
		svc := NewConverterService(text.New())
		result, err := svc.Render("\xff", 0)
		assert.ErrorIs(t, err, domain.ErrParseFailure)
		assert.Empty(t, result)
	})

	t.Run("panic becomes parse failure", func(t *testing.T) {
		svc := NewConverterService(&stubRenderer{
			render: func(string, domain.RenderOptions) (string, error) {
				panic(errors.New("boom"))
			},
		})

		result, err := svc.Render("<p>x</p>", 0)
		assert.ErrorIs(t, err, domain.ErrParseFailure)
		assert.Contains(t, err.Error(), "boom")
		assert.Empty(t, result)
	})

	t.Run("renderer called exactly once", func(t *testing.T) {
		calls := 0
		svc := NewConverterService(&stubRenderer{
			render: func(string, domain.RenderOptions) (string, error) {
				calls++
				return "", domain.ErrParseFailure
			},
		})

		_, err := svc.Render("<p>x</p>", 0)
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestConverterService_ConcurrentCallsAreIndependent(t *testing.T) {
	svc := NewConverterService(text.New())

	const callers = 64
	results := make([]string, callers)

	var g errgroup.Group
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			input := fmt.Sprintf(`<h2>Doc %d</h2><ul><li>item-%d</li></ul><p><a href="/doc/%d">link</a></p>`, i, i, i)
			results[i] = svc.Convert(input, 0)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, result := range results {
		expected := fmt.Sprintf("## Doc %d\n\n* item-%d\n\n[link][1]\n\n[1]: /doc/%d\n", i, i, i)
		assert.Equal(t, expected, result, "caller %d", i)
	}
}
