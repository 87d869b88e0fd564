package geom

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func totalArea(cells []Rect) float64 {
	sum := 0.0
	for _, c := range cells {
		sum += c.Area()
	}
	return sum
}

// Cells of a decomposition are disjoint, so their union's bounding box
// can be compared against an expected region.
func cellsBounds(cells []Rect) Rect {
	if len(cells) == 0 {
		return Rect{}
	}
	bb := cells[0]
	for _, c := range cells[1:] {
		if c.MinX < bb.MinX {
			bb.MinX = c.MinX
		}
		if c.MinY < bb.MinY {
			bb.MinY = c.MinY
		}
		if c.MaxX > bb.MaxX {
			bb.MaxX = c.MaxX
		}
		if c.MaxY > bb.MaxY {
			bb.MaxY = c.MaxY
		}
	}
	return bb
}

func TestIntersectPairSelfIsIdempotent(t *testing.T) {
	// Integer-coordinate isothetic polygons self-intersect to their own
	// area.
	vs := []struct {
		name string
		ring Ring
		area float64
	}{
		{name: "square", ring: Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, area: 16},
		{name: "ell", ring: Ring{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}, area: 12},
		{name: "staircase", ring: Ring{{0, 0}, {3, 0}, {3, 1}, {2, 1}, {2, 2}, {1, 2}, {1, 3}, {0, 3}}, area: 6},
	}
	for _, v := range vs {
		cells := IntersectPair(v.ring, v.ring)
		if len(cells) == 0 {
			t.Errorf("%s: self-intersection is empty", v.name)
			continue
		}
		if got := totalArea(cells); !scalar.EqualWithinAbs(got, v.area, 1e-9) {
			t.Errorf("%s: self-intersection area=%g, want %g", v.name, got, v.area)
		}
	}
}

func TestIntersectPairCommutes(t *testing.T) {
	a := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	b := Ring{{2, 2}, {6, 2}, {6, 6}, {2, 6}}
	ab := IntersectPair(a, b)
	ba := IntersectPair(b, a)
	if len(ab) != len(ba) {
		t.Fatalf("cell counts differ: %d vs %d", len(ab), len(ba))
	}
	if !scalar.EqualWithinAbs(totalArea(ab), totalArea(ba), 1e-9) {
		t.Errorf("areas differ: %g vs %g", totalArea(ab), totalArea(ba))
	}
}

func TestIntersectPairOverlappingSquares(t *testing.T) {
	a := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	b := Ring{{2, 2}, {6, 2}, {6, 6}, {2, 6}}
	cells := IntersectPair(a, b)
	if got := totalArea(cells); !scalar.EqualWithinAbs(got, 4, 1e-9) {
		t.Fatalf("intersection area=%g, want 4", got)
	}
	want := Rect{MinX: 2, MinY: 2, MaxX: 4, MaxY: 4}
	if got := cellsBounds(cells); got != want {
		t.Errorf("intersection bounds=%v, want %v", got, want)
	}
}

func TestIntersectPairDisjoint(t *testing.T) {
	a := Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	b := Ring{{10, 10}, {12, 10}, {12, 12}, {10, 12}}
	if cells := IntersectPair(a, b); len(cells) != 0 {
		t.Errorf("disjoint polygons yielded %d cells", len(cells))
	}
}

func TestIntersectPairDegenerateInput(t *testing.T) {
	square := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	if cells := IntersectPair(Ring{{0, 0}, {4, 0}}, square); cells != nil {
		t.Error("2-vertex ring should intersect to nothing")
	}
	if cells := IntersectPair(square, nil); cells != nil {
		t.Error("empty ring should intersect to nothing")
	}
}

func TestIntersectPairNotchedOverlap(t *testing.T) {
	// The ell's notch must be excluded from the overlap with the square
	// covering the notch region.
	ell := Ring{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}
	square := Ring{{1, 1}, {4, 1}, {4, 4}, {1, 4}}
	cells := IntersectPair(ell, square)
	// Overlap region: [1,4]x[1,2] plus [1,2]x[2,4] = 3 + 2 = 5.
	if got := totalArea(cells); !scalar.EqualWithinAbs(got, 5, 1e-9) {
		t.Errorf("notched overlap area=%g, want 5", got)
	}
	for _, c := range cells {
		center := c.Center()
		if center.X > 2 && center.Y > 2 {
			t.Errorf("cell %v lies in the notch", c)
		}
	}
}

func TestIntersectAllTwoSquares(t *testing.T) {
	a := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	b := Ring{{2, 2}, {6, 2}, {6, 6}, {2, 6}}
	cells, err := IntersectAll([]Ring{a, b})
	if err != nil {
		t.Fatalf("IntersectAll: %v", err)
	}
	if got := totalArea(cells); !scalar.EqualWithinAbs(got, 4, 1e-9) {
		t.Fatalf("area=%g, want 4", got)
	}
	want := Rect{MinX: 2, MinY: 2, MaxX: 4, MaxY: 4}
	if got := cellsBounds(cells); got != want {
		t.Errorf("bounds=%v, want %v", got, want)
	}
}

func TestIntersectAllDisjointThirdEmpties(t *testing.T) {
	a := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	b := Ring{{2, 2}, {6, 2}, {6, 6}, {2, 6}}
	c := Ring{{10, 10}, {12, 10}, {12, 12}, {10, 12}}
	cells, err := IntersectAll([]Ring{a, b, c})
	if err != nil {
		t.Fatalf("IntersectAll: %v", err)
	}
	if len(cells) != 0 {
		t.Errorf("expected empty result, got %d cells", len(cells))
	}
}

func TestIntersectAllThreeWayOverlap(t *testing.T) {
	a := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	b := Ring{{2, 2}, {6, 2}, {6, 6}, {2, 6}}
	// c covers the whole A∩B region, so every cell survives the fold.
	c := Ring{{0, 0}, {6, 0}, {6, 6}, {0, 6}}
	cells, err := IntersectAll([]Ring{a, b, c})
	if err != nil {
		t.Fatalf("IntersectAll: %v", err)
	}
	if got := totalArea(cells); !scalar.EqualWithinAbs(got, 4, 1e-9) {
		t.Errorf("area=%g, want 4", got)
	}
}

func TestIntersectAllPrecondition(t *testing.T) {
	square := Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	for _, rings := range [][]Ring{nil, {}, {square}} {
		cells, err := IntersectAll(rings)
		if !errors.Is(err, ErrNeedTwoPolygons) {
			t.Errorf("IntersectAll(%d rings) err=%v, want ErrNeedTwoPolygons", len(rings), err)
		}
		if cells != nil {
			t.Errorf("IntersectAll(%d rings) returned cells with precondition failure", len(rings))
		}
	}
}
