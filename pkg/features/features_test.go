package features

import (
	"bytes"
	"testing"
)

func TestCombinationExercise(t *testing.T) {
	tests := []struct {
		name string
		c    Combination
		want string
	}{
		{"A and B", Combination{A: true, B: true}, "Testing Feature A\nTesting Feature B\n"},
		{"A and C", Combination{A: true, C: true}, "Testing Feature A\nTesting Feature C\n"},
		{"B and C", Combination{B: true, C: true}, "Testing Feature B\nTesting Feature C\n"},
		{"all three", Combination{A: true, B: true, C: true}, "Testing Feature A\nTesting Feature B\nTesting Feature C\n"},
		{"only B", Combination{B: true}, "Testing Feature B\n"},
		{"empty set", Combination{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.c.Exercise(&buf)
			if got := buf.String(); got != tt.want {
				t.Errorf("Exercise() wrote %q, want %q", got, tt.want)
			}
		})
	}
}
