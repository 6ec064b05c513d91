package wiretile

import (
	"math"
	"testing"
)

func TestIntersectUV(t *testing.T) {
	// y = z and y = -z + 1 cross at (0.5, 0.5)
	p, err := IntersectUV(0, 1, 0, -1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p.Z-0.5) > epsilon || math.Abs(p.Y-0.5) > epsilon {
		t.Errorf("got (%v, %v), want (0.5, 0.5)", p.Z, p.Y)
	}

	// same lines expressed in a frame shifted by 2 along Z
	p, err = IntersectUV(2, 1, 0, -1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p.Z-2.5) > epsilon || math.Abs(p.Y-0.5) > epsilon {
		t.Errorf("got (%v, %v), want (2.5, 0.5)", p.Z, p.Y)
	}
}

func TestIntersectUVDegenerate(t *testing.T) {
	_, err := IntersectUV(0, 1, 0, 1, 2)
	if err != ErrDegenerateIntersection {
		t.Errorf("got %v, want ErrDegenerateIntersection", err)
	}
	_, err = IntersectUV(0, 1, 0, 1+epsilon/2, 2)
	if err != ErrDegenerateIntersection {
		t.Errorf("near parallel lines: got %v, want ErrDegenerateIntersection", err)
	}
}

func TestIntersectY(t *testing.T) {
	p := IntersectY(0, 2, 0.5, 1)
	if math.Abs(p.Z-2) > epsilon || math.Abs(p.Y-2) > epsilon {
		t.Errorf("got (%v, %v), want (2, 2)", p.Z, p.Y)
	}
}

func TestCellCenter(t *testing.T) {
	square := []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	c := cellCenter(square)
	if math.Abs(c.Z-0.5) > epsilon || math.Abs(c.Y-0.5) > epsilon {
		t.Errorf("got (%v, %v), want (0.5, 0.5)", c.Z, c.Y)
	}
}

func TestCellArea(t *testing.T) {
	// clockwise unit square in (Z, Y)
	cw := []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	if a := cellArea(cw); math.Abs(a-1) > epsilon {
		t.Errorf("clockwise square: got area %v, want 1", a)
	}

	// counter-clockwise winding flips the sign
	ccw := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	if a := cellArea(ccw); math.Abs(a+1) > epsilon {
		t.Errorf("counter-clockwise square: got area %v, want -1", a)
	}
}

func TestSortVerticesCW(t *testing.T) {
	shuffled := []Point{{1, 0}, {0, 1}, {0, 0}, {1, 1}}
	sorted := sortVerticesCW(shuffled)

	want := []Point{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	if len(sorted) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(sorted), len(want))
	}
	for i := range want {
		if sorted[i] != want[i] {
			t.Errorf("vertex %d: got %v, want %v", i, sorted[i], want[i])
		}
	}

	if a := cellArea(sorted); a <= 0 {
		t.Errorf("sorted polygon area %v, want > 0", a)
	}
}

func TestSortVerticesCWSmall(t *testing.T) {
	single := []Point{{3, 4}}
	if got := sortVerticesCW(single); len(got) != 1 || got[0] != single[0] {
		t.Errorf("single vertex: got %v", got)
	}
	if got := sortVerticesCW(nil); len(got) != 0 {
		t.Errorf("empty: got %v", got)
	}
}
