package services

import (
	"fmt"

	"github.com/custodia-labs/htmlparser/internal/core/domain"
	"github.com/custodia-labs/htmlparser/internal/core/ports/driven"
	"github.com/custodia-labs/htmlparser/internal/core/ports/driving"
	"github.com/custodia-labs/htmlparser/internal/logger"
)

// Ensure ConverterService implements the interface.
var _ driving.Converter = (*ConverterService)(nil)

// ConverterService converts HTML to text on top of a driven.Renderer.
// It keeps no state between calls and is safe for concurrent use.
type ConverterService struct {
	renderer driven.Renderer
}

// NewConverterService creates a new converter service.
func NewConverterService(renderer driven.Renderer) *ConverterService {
	return &ConverterService{renderer: renderer}
}

// Convert returns the text rendering of html, or "" if it cannot be
// rendered. The failure is logged, never returned, so an optional text
// extraction can not abort the caller.
func (s *ConverterService) Convert(html string, width int) string {
	text, err := s.Render(html, width)
	if err != nil {
		logger.Error("html to text conversion failed: %v", err)
		return ""
	}
	return text
}

// Render returns the text rendering of html. Errors, including a panic
// inside the renderer, wrap domain.ErrParseFailure. It is attempted once.
func (s *ConverterService) Render(html string, width int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: renderer fault: %v", domain.ErrParseFailure, r)
		}
	}()

	logger.Debug("Converting %d bytes of HTML, width %d", len(html), width)

	text, err = s.renderer.Render(html, domain.RenderOptions{Width: width})
	if err != nil {
		return "", err
	}
	return text, nil
}
