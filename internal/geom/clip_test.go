package geom

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func containsVertex(r Ring, p Point) bool {
	for _, v := range r {
		if scalar.EqualWithinAbs(v.X, p.X, 1e-9) && scalar.EqualWithinAbs(v.Y, p.Y, 1e-9) {
			return true
		}
	}
	return false
}

func TestClipSubjectInsideClip(t *testing.T) {
	subject := Ring{{1, 1}, {3, 1}, {3, 3}, {1, 3}}
	clip := Ring{{0, 0}, {8, 0}, {8, 8}, {0, 8}}
	got := Clip(subject, clip)
	if len(got) != 4 {
		t.Fatalf("clip of contained subject: %d vertices, want 4 (%v)", len(got), got)
	}
	for _, want := range subject {
		if !containsVertex(got, want) {
			t.Errorf("vertex %v missing from result %v", want, got)
		}
	}
	if !scalar.EqualWithinAbs(got.Area(), subject.Area(), 1e-9) {
		t.Errorf("area=%g, want %g", got.Area(), subject.Area())
	}
}

func TestClipHalfOverlap(t *testing.T) {
	// Clip rectangle covers the right half of the subject; the cut at
	// x=2 falls within the clip edge's span, so the result is exact.
	subject := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	clip := Ring{{2, -1}, {7, -1}, {7, 7}, {2, 7}}
	got := Clip(subject, clip)
	if got == nil {
		t.Fatal("overlapping rectangles clipped to nothing")
	}
	if !scalar.EqualWithinAbs(got.Area(), 8, 1e-9) {
		t.Fatalf("area=%g, want 8 (%v)", got.Area(), got)
	}
	for _, want := range []Point{{2, 0}, {4, 0}, {4, 4}, {2, 4}} {
		if !containsVertex(got, want) {
			t.Errorf("corner %v missing from result %v", want, got)
		}
	}
}

func TestClipWindingIndependent(t *testing.T) {
	subject := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	ccw := Ring{{2, -1}, {7, -1}, {7, 7}, {2, 7}}
	cw := Ring{{2, -1}, {2, 7}, {7, 7}, {7, -1}}
	a := Clip(subject, ccw)
	b := Clip(subject, cw)
	if a == nil || b == nil {
		t.Fatalf("clip failed: ccw=%v cw=%v", a, b)
	}
	if !scalar.EqualWithinAbs(a.Area(), 8, 1e-9) || !scalar.EqualWithinAbs(b.Area(), 8, 1e-9) {
		t.Errorf("areas differ by clip winding: ccw=%g cw=%g, want 8", a.Area(), b.Area())
	}
	for _, want := range []Point{{2, 0}, {4, 0}, {4, 4}, {2, 4}} {
		if !containsVertex(a, want) || !containsVertex(b, want) {
			t.Errorf("corner %v missing: ccw=%v cw=%v", want, a, b)
		}
	}
}

func TestClipDisjoint(t *testing.T) {
	subject := Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	clip := Ring{{5, 5}, {9, 5}, {9, 9}, {5, 9}}
	if got := Clip(subject, clip); got != nil {
		t.Errorf("disjoint clip returned %v", got)
	}
}

func TestClipSharedEdgeOnly(t *testing.T) {
	// Squares touching along x=4 share a boundary but no area.
	subject := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	clip := Ring{{4, 0}, {8, 0}, {8, 4}, {4, 4}}
	got := Clip(subject, clip)
	if got != nil && got.Area() > 1e-9 {
		t.Errorf("edge-touching squares produced area %g (%v)", got.Area(), got)
	}
}

func TestClipDegenerateInput(t *testing.T) {
	square := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	if Clip(Ring{{0, 0}, {1, 0}}, square) != nil {
		t.Error("2-vertex subject should clip to nothing")
	}
	if Clip(square, Ring{{0, 0}, {1, 0}}) != nil {
		t.Error("2-vertex clip ring should clip to nothing")
	}
}

func TestClipNonConvexSubject(t *testing.T) {
	// The subject may be any isothetic polygon; only the clip ring must
	// be convex. The clip cuts the ell's lower arm off at y=1.
	ell := Ring{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}
	clip := Ring{{-1, 1}, {5, 1}, {5, 5}, {-1, 5}}
	got := Clip(ell, clip)
	if got == nil {
		t.Fatal("ell clipped to nothing")
	}
	// Same region as the grid decomposition of the two shapes.
	want := totalArea(IntersectPair(ell, clip))
	if !scalar.EqualWithinAbs(got.Area(), want, 1e-9) {
		t.Errorf("clip area=%g, grid decomposition area=%g", got.Area(), want)
	}
	for _, corner := range []Point{{0, 1}, {4, 1}, {2, 4}, {0, 4}} {
		if !containsVertex(got, corner) {
			t.Errorf("corner %v missing from result %v", corner, got)
		}
	}
}
