// Package numeric provides elementary integer computations (factorial,
// Fibonacci, primality) used as test subjects. A negative index is a caller
// error and is signaled with a gRPC InvalidArgument status; everything else
// is reported through the return value.
package numeric

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Factorial computes n! iteratively. It returns an InvalidArgument error
// when n is negative; 0! is 1 (the loop body never runs).
//
// No overflow detection is performed: results wrap silently in int once n!
// exceeds the platform's int range (n > 20 on 64-bit).
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, status.Errorf(codes.InvalidArgument, "factorial is undefined for negative input: %d", n)
	}
	result := 1
	for i := 1; i <= n; i++ {
		result *= i
	}
	return result, nil
}

// Fibonacci returns the n-th Fibonacci number with F(0)=0 and F(1)=1,
// computed iteratively in O(n) time and O(1) space. It returns an
// InvalidArgument error when n is negative.
func Fibonacci(n int) (int, error) {
	if n < 0 {
		return 0, status.Errorf(codes.InvalidArgument, "fibonacci is undefined for negative input: %d", n)
	}
	if n == 0 {
		return 0, nil
	}
	if n == 1 {
		return 1, nil
	}
	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b, nil
}

// IsPrime reports whether n is prime using trial division with wheel
// factorization by 6: after eliminating n <= 1, the primes 2 and 3, and
// multiples of 2 and 3, only candidates of the form 6k±1 are tested, up to
// and including the last candidate i with i*i <= n. Runs in O(sqrt n).
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
