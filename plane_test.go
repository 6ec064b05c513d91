package wiretile

import (
	"math"
	"testing"
)

func testGeometry(t *testing.T, s Settings) *geometry {
	t.Helper()
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	g, err := newGeometry(s)
	if err != nil {
		t.Fatal(err)
	}
	return &g
}

func TestBuildWiresBaseline(t *testing.T) {
	g := testGeometry(t, DefaultSettings())

	ywires := g.buildWires(PlaneY)
	if len(ywires) != 10 {
		t.Fatalf("got %d Y wires, want 10", len(ywires))
	}
	for i, w := range ywires {
		wantZ := 0.15 + 0.3*float64(i)
		if math.Abs(w.Location-wantZ) > epsilon {
			t.Errorf("Y wire %d at z=%v, want %v", i, w.Location, wantZ)
		}
		if w.P0.Z != w.P1.Z {
			t.Errorf("Y wire %d endpoints not vertical: %v %v", i, w.P0, w.P1)
		}
		if w.P0.Y != 0 || w.P1.Y != g.maxHeight {
			t.Errorf("Y wire %d does not span the full height: %v %v", i, w.P0, w.P1)
		}
	}

	uwires := g.buildWires(PlaneU)
	vwires := g.buildWires(PlaneV)
	if len(uwires) != len(vwires) {
		t.Errorf("symmetric angles: %d U wires != %d V wires", len(uwires), len(vwires))
	}
	if len(uwires) != 8 {
		t.Errorf("got %d U wires, want 8", len(uwires))
	}
}

func TestBuildWiresEndpointsInFace(t *testing.T) {
	g := testGeometry(t, DefaultSettings())

	for _, plane := range []Plane{PlaneU, PlaneV, PlaneY} {
		for _, w := range g.buildWires(plane) {
			for _, p := range []Point{w.P0, w.P1} {
				if p.Z < g.faceZMin-epsilon || p.Z > g.faceZMax+epsilon {
					t.Errorf("%v wire %d endpoint z=%v outside [%v, %v]",
						plane, w.ID, p.Z, g.faceZMin, g.faceZMax)
				}
				if p.Y < -epsilon || p.Y > g.maxHeight+epsilon {
					t.Errorf("%v wire %d endpoint y=%v outside [0, %v]",
						plane, w.ID, p.Y, g.maxHeight)
				}
			}
		}
	}
}

func TestBuildWiresEndpointsOnLine(t *testing.T) {
	g := testGeometry(t, DefaultSettings())

	for _, w := range g.buildWires(PlaneU) {
		for _, p := range []Point{w.P0, w.P1} {
			if d := math.Abs(g.uWireY(w.ID, p.Z) - p.Y); d > 1e-9 {
				t.Errorf("U wire %d endpoint %v off its line by %v", w.ID, p, d)
			}
		}
	}
	for _, w := range g.buildWires(PlaneV) {
		for _, p := range []Point{w.P0, w.P1} {
			if d := math.Abs(g.vWireY(w.ID, p.Z) - p.Y); d > 1e-9 {
				t.Errorf("V wire %d endpoint %v off its line by %v", w.ID, p, d)
			}
		}
	}
}

func TestBuildWiresSingleYWire(t *testing.T) {
	s := DefaultSettings()
	s.NumYWires = 1
	g := testGeometry(t, s)

	if n := len(g.buildWires(PlaneY)); n != 1 {
		t.Fatalf("got %d Y wires, want 1", n)
	}
	// degenerate diagonal: no inclined wire fits
	if n := len(g.buildWires(PlaneU)); n != 0 {
		t.Errorf("got %d U wires, want 0", n)
	}
	if n := len(g.buildWires(PlaneV)); n != 0 {
		t.Errorf("got %d V wires, want 0", n)
	}
}

func TestWireIDRoundTrip(t *testing.T) {
	g := testGeometry(t, DefaultSettings())

	for id := 0; id < g.wireCount(PlaneU); id++ {
		z := 1.5 // a Z inside the face
		y := g.uWireY(id, z)
		if got := g.uWireID(y, z); got != id {
			t.Errorf("U wire id round trip: got %d, want %d", got, id)
		}
	}
	for id := 0; id < g.wireCount(PlaneV); id++ {
		z := 1.5
		y := g.vWireY(id, z)
		if got := g.vWireID(y, z); got != id {
			t.Errorf("V wire id round trip: got %d, want %d", got, id)
		}
	}
	for id := 0; id < g.numYWires; id++ {
		if got := g.yWireID(g.yWireZ(id)); got != id {
			t.Errorf("Y wire id round trip: got %d, want %d", got, id)
		}
	}
}

func TestSettingsValidate(t *testing.T) {
	cases := []struct {
		name  string
		tweak func(*Settings)
	}{
		{"angleU low", func(s *Settings) { s.AngleU = 0 }},
		{"angleU high", func(s *Settings) { s.AngleU = 180 }},
		{"angleV low", func(s *Settings) { s.AngleV = -10 }},
		{"no Y wires", func(s *Settings) { s.NumYWires = 0 }},
		{"zero pitch", func(s *Settings) { s.WirePitchU = 0 }},
		{"negative pitch", func(s *Settings) { s.WirePitchY = -0.3 }},
		{"flat face", func(s *Settings) { s.HeightToWidthRatio = 0 }},
	}
	for _, c := range cases {
		s := DefaultSettings()
		c.tweak(&s)
		if err := s.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", c.name)
		}
	}

	if err := DefaultSettings().Validate(); err != nil {
		t.Errorf("default settings: Validate() = %v", err)
	}
}

func TestVOffsetRebase(t *testing.T) {
	g := testGeometry(t, DefaultSettings())

	// the rebased V offset is reduced into one V spacing
	if g.vOffsetY < -g.vSpacing || g.vOffsetY > g.vSpacing {
		t.Errorf("rebased V offset %v outside one spacing (%v)", g.vOffsetY, g.vSpacing)
	}

	// with a null U offset the rebase depends only on the face height
	want := g.maxHeight - math.Floor(g.maxHeight/g.uSpacing)*g.uSpacing
	for want > g.vSpacing-epsilon {
		want -= g.vSpacing
	}
	if math.Abs(g.vOffsetY-want) > epsilon {
		t.Errorf("rebased V offset %v, want %v", g.vOffsetY, want)
	}
}
