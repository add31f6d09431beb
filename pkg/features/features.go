// Package features demonstrates set-based feature-combination testing: each
// combination of three independent flags is a subset of {A, B, C}.
package features

import (
	"fmt"
	"io"

	"github.com/golang/glog"
)

// Combination describes which of three independent feature flags are enabled.
type Combination struct {
	A, B, C bool
}

// Exercise writes a notice to w for each enabled feature in the combination.
// The flags are evaluated independently; a combination with no flags set
// emits nothing.
func (c Combination) Exercise(w io.Writer) {
	glog.V(2).Infof("exercising combination A=%t B=%t C=%t", c.A, c.B, c.C)
	if c.A {
		fmt.Fprintln(w, "Testing Feature A")
	}
	if c.B {
		fmt.Fprintln(w, "Testing Feature B")
	}
	if c.C {
		fmt.Fprintln(w, "Testing Feature C")
	}
}
