package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureOf(t *testing.T) {
	tests := []struct {
		err  error
		want FailureKind
	}{
		{nil, FailureNone},
		{ErrMultipleIndeterminates, FailureMultipleIndeterminates},
		{fmt.Errorf("wrapped: %w", ErrPolynomialDegreeTooHigh), FailureDegreeTooHigh},
		{fmt.Errorf("left side: %w", fmt.Errorf("%w: x", ErrInvalidPolynomial)), FailureInvalidPolynomial},
		{ErrNegativeDiscriminant, FailureNegativeDiscriminant},
		{errors.New("disk full"), FailureNone},
		{ErrNotFound, FailureNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FailureOf(tt.err))
	}
}

func TestFailureKind_ErrRoundTrip(t *testing.T) {
	kinds := []FailureKind{
		FailureMultipleIndeterminates,
		FailureDegreeTooHigh,
		FailureNegativeDiscriminant,
		FailureInvalidPolynomial,
	}

	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			assert.Equal(t, k, FailureOf(k.Err()))
			assert.NotEqual(t, unknownDescription, k.Description())
		})
	}
	assert.NoError(t, FailureNone.Err())
}

func TestSolutionKind(t *testing.T) {
	for _, k := range []SolutionKind{SolutionIdentity, SolutionNone, SolutionSingle, SolutionTwo} {
		assert.True(t, k.IsValid())
		assert.NotEqual(t, unknownDescription, k.Description())
	}
	assert.False(t, SolutionKind("complex").IsValid())
	assert.Equal(t, unknownDescription, SolutionKind("complex").Description())
}

func TestReport_Failed(t *testing.T) {
	assert.False(t, (&Report{}).Failed())
	assert.True(t, (&Report{Failure: FailureNegativeDiscriminant}).Failed())
}
