package check

import (
	"github.com/golang/glog"
)

// ProcessValue classifies an integer by sign: negative values fail, zero and
// positive values succeed. The three equivalence classes (negative, zero,
// positive) collapse to two outcomes.
func ProcessValue(value int) Status {
	if value < 0 {
		glog.V(2).Infof("ProcessValue(%d): negative class -> Failure", value)
		return Failure
	}
	if value == 0 {
		return Success
	}
	return Success
}

// CheckRange reports whether value lies in the closed interval [1, 100].
// Both endpoints are inclusive.
func CheckRange(value int) Status {
	if value < 1 || value > 100 {
		glog.V(2).Infof("CheckRange(%d): outside [1,100] -> Failure", value)
		return Failure
	}
	return Success
}

// EvaluateCombination validates the pairing of an integer and a parity rule.
// The combination is valid when a is inside [0, 10] and its parity matches b:
// b true requires a even, b false requires a odd. The range check runs before
// the parity check.
func EvaluateCombination(a int, b bool) Status {
	if a < 0 || a > 10 {
		glog.V(2).Infof("EvaluateCombination(%d, %t): a outside [0,10] -> Failure", a, b)
		return Failure
	}
	if b && a%2 == 0 {
		return Success
	}
	if !b && a%2 != 0 {
		return Success
	}
	glog.V(2).Infof("EvaluateCombination(%d, %t): parity mismatch -> Failure", a, b)
	return Failure
}
