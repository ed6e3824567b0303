package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderOptions_EffectiveWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		input    string
		expected int
	}{
		{"explicit width", 40, "<p>Hello</p>", 40},
		{"zero falls back to input length", 0, "<p>Hello</p>", 12},
		{"negative falls back to input length", -3, "<p>Hello</p>", 12},
		{"length is counted in bytes", 0, "é", 2},
		{"empty input", 0, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := RenderOptions{Width: tt.width}
			assert.Equal(t, tt.expected, opts.EffectiveWidth(tt.input))
		})
	}
}
