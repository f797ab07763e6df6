package design

import (
	"math"
	"math/cmplx"
	"testing"
)

const tol = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func almostEqualC(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol
}

// assertConjugatePairs checks that roots[2i+1] is the exact conjugate of
// roots[2i]. With withReal set, the final root must lie on the real axis.
func assertConjugatePairs(t *testing.T, roots []complex128, withReal bool) {
	t.Helper()

	n := len(roots)
	if withReal {
		if n == 0 {
			t.Fatalf("expected a trailing real root, got none")
		}
		if imag(roots[n-1]) != 0 {
			t.Fatalf("trailing root %v is not real", roots[n-1])
		}
		n--
	}

	if n%2 != 0 {
		t.Fatalf("expected conjugate pairs, got %d unpaired roots", n)
	}
	for i := 0; i < n; i += 2 {
		if roots[i+1] != cmplx.Conj(roots[i]) {
			t.Fatalf("roots %d,%d are not conjugates: %v vs %v", i, i+1, roots[i], roots[i+1])
		}
	}
}

// assertStablePoles checks that every pole lies strictly in the open left
// half-plane.
func assertStablePoles(t *testing.T, poles []complex128) {
	t.Helper()

	for i, p := range poles {
		if !(real(p) < 0) {
			t.Fatalf("pole %d = %v is not in the left half-plane", i, p)
		}
	}
}

// containsRoot reports whether want appears in roots within tol.
func containsRoot(roots []complex128, want complex128, tol float64) bool {
	for _, r := range roots {
		if cmplx.Abs(r-want) <= tol {
			return true
		}
	}

	return false
}

// assertSameRoots checks that got and want contain the same multiset of
// roots within tol, ignoring order.
func assertSameRoots(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("root count mismatch: got %d, want %d", len(got), len(want))
	}

	used := make([]bool, len(want))
	for _, r := range got {
		found := false
		for j, w := range want {
			if !used[j] && cmplx.Abs(r-w) <= tol {
				used[j] = true
				found = true

				break
			}
		}
		if !found {
			t.Fatalf("root %v has no counterpart within %g in %v", r, tol, want)
		}
	}
}
