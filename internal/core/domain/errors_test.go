package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrParseFailure", ErrParseFailure},
		{"ErrInvalidInput", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrParseFailure(t *testing.T) {
	assert.Equal(t, "parse failure", ErrParseFailure.Error())
	assert.False(t, errors.Is(ErrParseFailure, ErrInvalidInput))
}

func TestErrParseFailure_Wrapped(t *testing.T) {
	err := fmt.Errorf("%w: input is not valid UTF-8", ErrParseFailure)

	assert.True(t, errors.Is(err, ErrParseFailure))
	assert.Equal(t, "parse failure: input is not valid UTF-8", err.Error())
}
