// checklab walks through the library's test subjects section by section,
// feeding each one a fixed set of example inputs and printing the outcomes.
// The assertions live in the package tests; this binary only narrates.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"

	"github.com/hdwhdw/checklab/pkg/check"
	"github.com/hdwhdw/checklab/pkg/features"
	"github.com/hdwhdw/checklab/pkg/numeric"
	"github.com/hdwhdw/checklab/pkg/seq"
)

var sectionsFlag = flag.String("sections", "", "comma-separated section numbers to run (default: all)")

type section struct {
	number int
	title  string
	run    func()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	enabled := parseSections(*sectionsFlag)

	sections := []section{
		{1, "Set Theory: Feature Combinations", runFeatureCombinations},
		{2, "Equivalence-Class Testing", runEquivalenceClasses},
		{3, "Path Coverage", runPathCoverage},
		{4, "Boundary-Value Analysis", runBoundaries},
		{5, "Combinatorial Testing", runCombinations},
		{6, "Sortedness Check", runSortedness},
		{7, "Number Classification", runClassification},
		{8, "Factorial", runFactorial},
		{9, "Fibonacci", runFibonacci},
		{10, "Primality", runPrimality},
	}

	for _, s := range sections {
		if enabled != nil && !enabled[s.number] {
			glog.V(1).Infof("skipping section %d (%s)", s.number, s.title)
			continue
		}
		fmt.Printf("%d. %s\n", s.number, s.title)
		s.run()
		fmt.Println("=======================")
	}
}

// parseSections turns "1,4,10" into a membership set. An empty spec returns
// nil, meaning all sections run.
func parseSections(spec string) map[int]bool {
	if spec == "" {
		return nil
	}
	enabled := make(map[int]bool)
	for _, part := range strings.Split(spec, ",") {
		var n int
		if _, err := fmt.Sscanf(strings.TrimSpace(part), "%d", &n); err != nil {
			glog.Warningf("ignoring bad section %q: %v", part, err)
			continue
		}
		enabled[n] = true
	}
	return enabled
}

func runFeatureCombinations() {
	combinations := []features.Combination{
		{A: true, B: true},
		{A: true, C: true},
		{B: true, C: true},
		{A: true, B: true, C: true},
	}
	for _, c := range combinations {
		c.Exercise(os.Stdout)
		fmt.Println("------")
	}
}

func runEquivalenceClasses() {
	for _, v := range []int{-5, 0, 10} {
		fmt.Printf("ProcessValue(%d) = %s\n", v, check.ProcessValue(v))
	}
}

func runPathCoverage() {
	for _, v := range []int{10, 7, -5} {
		fmt.Printf("Describe(%d) = %s\n", v, strings.Join(check.Describe(v), ", "))
	}
}

func runBoundaries() {
	for _, v := range []int{1, 100, 0, 101} {
		fmt.Printf("CheckRange(%d) = %s\n", v, check.CheckRange(v))
	}
}

func runCombinations() {
	pairs := []struct {
		a int
		b bool
	}{
		{0, true},
		{1, false},
		{2, false},
		{3, true},
	}
	for _, p := range pairs {
		fmt.Printf("EvaluateCombination(%d, %t) = %s\n", p.a, p.b, check.EvaluateCombination(p.a, p.b))
	}
}

func runSortedness() {
	arrays := [][]int{
		{1, 2, 3, 4, 5},
		{5, 3, 1},
	}
	for _, arr := range arrays {
		fmt.Printf("IsSorted(%v) = %t\n", arr, seq.IsSorted(arr))
	}
}

func runClassification() {
	for _, v := range []int{2, 1, -2, -1, 0} {
		fmt.Printf("ClassifyNumber(%d) = %s\n", v, check.ClassifyNumber(v))
	}
}

func runFactorial() {
	for _, n := range []int{0, 1, 2, 3, 4} {
		result, err := numeric.Factorial(n)
		if err != nil {
			glog.Errorf("Factorial(%d): %v", n, err)
			continue
		}
		fmt.Printf("Factorial(%d) = %d\n", n, result)
	}
	if _, err := numeric.Factorial(-1); err != nil {
		fmt.Printf("Factorial(-1) rejected: %v\n", err)
	}
}

func runFibonacci() {
	for _, n := range []int{0, 1, 2, 3, 4, 5} {
		result, err := numeric.Fibonacci(n)
		if err != nil {
			glog.Errorf("Fibonacci(%d): %v", n, err)
			continue
		}
		fmt.Printf("Fibonacci(%d) = %d\n", n, result)
	}
	if _, err := numeric.Fibonacci(-1); err != nil {
		fmt.Printf("Fibonacci(-1) rejected: %v\n", err)
	}
}

func runPrimality() {
	for _, n := range []int{2, 3, 4, 5, 10, 13} {
		fmt.Printf("IsPrime(%d) = %t\n", n, numeric.IsPrime(n))
	}
}
