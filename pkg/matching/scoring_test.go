package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorer_ExactMatch(t *testing.T) {
	s := NewScorer()

	assert.Equal(t, 1.0, s.ExactMatch("loan amount", "loan amount"))
	assert.Equal(t, 0.0, s.ExactMatch("loan amount", "Loan Amount"))
	assert.Equal(t, 1.0, s.ExactMatch("", ""))
}

func TestScorer_SequenceRatio(t *testing.T) {
	s := NewScorer()

	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"identical", "borrower name", "borrower name", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "borrower", "", 0.0},
		{"disjoint", "xyz", "qpw", 0.0},
		{"known ratio", "abcd", "bcde", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, s.SequenceRatio(tt.a, tt.b), 0.0001)
		})
	}
}

func TestScorer_SequenceRatioSymmetricBounds(t *testing.T) {
	s := NewScorer()

	pairs := [][2]string{
		{"borrower name", "borower name"},
		{"purpose of loan", "loan purpose"},
		{"monthly income", "gross monthly income"},
	}

	for _, pair := range pairs {
		ab := s.SequenceRatio(pair[0], pair[1])
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.LessOrEqual(t, ab, 1.0)
		assert.Greater(t, ab, 0.0, "overlapping names should score above zero")
	}
}

func TestScorer_WordOverlap(t *testing.T) {
	s := NewScorer()

	assert.Equal(t, 1.0, s.WordOverlap("loan amount", "amount loan"))
	assert.InDelta(t, 1.0/3.0, s.WordOverlap("loan amount", "loan term"), 0.0001)
	assert.Equal(t, 0.0, s.WordOverlap("", "loan"))
	assert.Equal(t, 0.0, s.WordOverlap("borrower", "property"))
}
