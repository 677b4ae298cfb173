package hermite

import (
	"fmt"
	"math"
)

// Eval returns He_n(x). It panics if n is negative.
func Eval(n int, x float64) float64 {
	if n < 0 {
		panic(fmt.Sprintf("hermite: order must be >= 0: %d", n))
	}
	if n == 0 {
		return 1
	}

	prev, cur := 1.0, x
	for k := 2; k <= n; k++ {
		prev, cur = cur, x*cur-float64(k-1)*prev
	}
	return cur
}

// EvalAll fills dst[k] with He_k(x) for k in [0, len(dst)).
func EvalAll(dst []float64, x float64) {
	if len(dst) == 0 {
		return
	}
	dst[0] = 1
	if len(dst) == 1 {
		return
	}
	dst[1] = x
	for k := 2; k < len(dst); k++ {
		dst[k] = x*dst[k-1] - float64(k-1)*dst[k-2]
	}
}

// Coefficients returns the monomial coefficients c of He_n, lowest degree
// first, so that He_n(x) = sum c[k]*x^k.
func Coefficients(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("hermite order must be >= 0: %d", n)
	}

	prev := []float64{1}
	if n == 0 {
		return prev, nil
	}
	cur := []float64{0, 1}
	for k := 2; k <= n; k++ {
		next := make([]float64, k+1)
		for i, c := range cur {
			next[i+1] += c
		}
		for i, c := range prev {
			next[i] -= float64(k-1) * c
		}
		prev, cur = cur, next
	}
	return cur, nil
}

// Function returns He_n(x) * exp(-x^2/2) / sqrt(n!).
//
// The Gaussian factor and the 1/sqrt(k!) scaling are carried through every
// step of the recurrence
//
//	phi_k = (x*phi_{k-1} - sqrt(k-1)*phi_{k-2}) / sqrt(k)
//
// so the result stays finite for orders where He_n(x) alone overflows.
// It panics if n is negative.
func Function(n int, x float64) float64 {
	if n < 0 {
		panic(fmt.Sprintf("hermite: order must be >= 0: %d", n))
	}
	prev := math.Exp(-0.5 * x * x)
	if n == 0 {
		return prev
	}

	cur := x * prev
	for k := 2; k <= n; k++ {
		prev, cur = cur, (x*cur-math.Sqrt(float64(k-1))*prev)/math.Sqrt(float64(k))
	}
	return cur
}
