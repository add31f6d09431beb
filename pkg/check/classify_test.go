package check

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyNumber(t *testing.T) {
	tests := []struct {
		value int
		want  Label
	}{
		{2, LabelPositiveEven},
		{1, LabelPositiveOdd},
		{-2, LabelNegativeEven},
		{-1, LabelNegativeOdd},
		{0, LabelUnknown},
		// Negative parity must be sign-agnostic
		{-4, LabelNegativeEven},
		{-3, LabelNegativeOdd},
		{100, LabelPositiveEven},
		{99, LabelPositiveOdd},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.value), func(t *testing.T) {
			if got := ClassifyNumber(tt.value); got != tt.want {
				t.Errorf("ClassifyNumber(%d) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

// TestClassifyNumberIdempotent confirms repeated calls with the same input
// yield the same label.
func TestClassifyNumberIdempotent(t *testing.T) {
	for _, v := range []int{-7, 0, 8} {
		first := ClassifyNumber(v)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, ClassifyNumber(v), "ClassifyNumber(%d) changed between calls", v)
		}
	}
}

func TestDescribePaths(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  []string
	}{
		{"positive even path", 10, []string{"positive", "even"}},
		{"positive odd path", 7, []string{"positive", "odd"}},
		{"non-positive path", -5, []string{"non-positive"}},
		{"zero is non-positive", 0, []string{"non-positive"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.value))
		})
	}
}
