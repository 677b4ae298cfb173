// Package hermite evaluates probabilists' Hermite polynomials He_n(x).
//
// The polynomials are defined by the three-term recurrence
//
//	He_0(x) = 1
//	He_1(x) = x
//	He_k(x) = x*He_{k-1}(x) - (k-1)*He_{k-2}(x)
//
// and satisfy d^n/dx^n exp(-x^2/2) = (-1)^n He_n(x) exp(-x^2/2), which is the
// relation the wavelet package uses to build Gaussian-derivative pulses.
package hermite
