package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrMissingSolverService, ErrInvalidPorts))
	assert.Contains(t, ErrMissingSolverService.Error(), "tui:")
	assert.Contains(t, ErrInvalidPorts.Error(), "tui:")
}
