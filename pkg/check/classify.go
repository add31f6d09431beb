package check

import "github.com/golang/glog"

// Label is one of the five fixed classifications produced by ClassifyNumber.
type Label string

const (
	LabelPositiveEven Label = "Positive and Even"
	LabelPositiveOdd  Label = "Positive and Odd"
	LabelNegativeEven Label = "Negative and Even"
	LabelNegativeOdd  Label = "Negative and Odd"
	LabelUnknown      Label = "Unknown Classification"
)

// ClassifyNumber labels an integer by the conjunction of its sign and parity.
// Zero is neither positive nor negative and maps to LabelUnknown.
//
// Parity is tested with value%2 == 0 / != 0, which is sign-agnostic under
// Go's truncated division: -4%2 is 0 and -3%2 is -1, so negative evens and
// odds classify correctly.
func ClassifyNumber(value int) Label {
	switch {
	case value > 0 && value%2 == 0:
		return LabelPositiveEven
	case value > 0 && value%2 != 0:
		return LabelPositiveOdd
	case value < 0 && value%2 == 0:
		return LabelNegativeEven
	case value < 0 && value%2 != 0:
		return LabelNegativeOdd
	}
	glog.V(3).Infof("ClassifyNumber(%d): no sign/parity branch matched", value)
	return LabelUnknown
}

// Describe returns the ordered branch labels visited when classifying value
// by sign and then, for positives, by parity. It exists to make every
// conditional path observable for coverage demonstrations.
func Describe(value int) []string {
	if value <= 0 {
		return []string{"non-positive"}
	}
	if value%2 == 0 {
		return []string{"positive", "even"}
	}
	return []string{"positive", "odd"}
}
