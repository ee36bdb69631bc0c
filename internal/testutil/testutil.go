// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"math"
	"testing"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertNear fails the test unless got is within tol of want.
func AssertNear(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		t.Errorf("got %g, want %g (tol %g)", got, want, tol)
	}
}

// AssertFinite fails the test if v is NaN or infinite.
func AssertFinite(t *testing.T, v float64) {
	t.Helper()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		t.Errorf("value is not finite: %v", v)
	}
}

// ISSLine1 and ISSLine2 are a well-formed element pair used across parser
// and propagation tests.
const (
	ISSName  = "ISS (ZARYA)"
	ISSLine1 = "1 25544U 98067A   24001.50000000  .00016717  00000-0  10270-3 0  9993"
	ISSLine2 = "2 25544  51.6416 247.4627 0006703 130.5360 325.0288 15.72125391423756"
)

// Vanguard 1 (catalog 5), the classic propagator validation object.
const (
	VanguardName  = "VANGUARD 1"
	VanguardLine1 = "1 00005U 58002B   00179.78495062  .00000023  00000-0  28098-4 0  4753"
	VanguardLine2 = "2 00005  34.2682 348.7242 1859667 331.7664  19.3264 10.82419157413667"
)
