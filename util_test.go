package codewheel

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const epsilon = 1e-9

// approx compares floats to within epsilon.
var approx = cmpopts.EquateApprox(0, epsilon)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
