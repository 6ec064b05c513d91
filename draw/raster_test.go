package draw

import (
	"image/color"
	"testing"

	"github.com/arl/wiretile"
)

func testTiling(t *testing.T) *wiretile.Tiling {
	t.Helper()
	s := wiretile.DefaultSettings()
	s.NumYWires = 4
	tl, err := wiretile.New(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	return tl
}

func TestRenderSize(t *testing.T) {
	tl := testTiling(t)

	img := Render(tl, 200)
	if img.Bounds().Dx() != 200 {
		t.Errorf("image width %d, want 200", img.Bounds().Dx())
	}
	if img.Bounds().Dy() < 1 {
		t.Errorf("image height %d, want >= 1", img.Bounds().Dy())
	}

	// the face aspect ratio is preserved
	wantDy := int(0.5 + float64(200)*tl.MaxHeight()/(tl.FaceZMax()-tl.FaceZMin()))
	dy := img.Bounds().Dy()
	if dy < wantDy-1 || dy > wantDy+1 {
		t.Errorf("image height %d, want about %d", dy, wantDy)
	}
}

func TestRenderDrawsWires(t *testing.T) {
	tl := testTiling(t)
	img := Render(tl, 200)

	// at least the wires must show on the white background
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X && !found; x++ {
			if img.RGBAAt(x, y) != white {
				found = true
			}
		}
	}
	if !found {
		t.Error("rendered image is fully white")
	}
}

func TestRenderShadesHits(t *testing.T) {
	tl := testTiling(t)

	// find an indexable cell and deposit a charge
	target := -1
	for _, c := range tl.Cells() {
		u, v, y := tl.WiresOfCell(c.ID)
		if u != nil && v != nil && y != nil {
			target = c.ID
			break
		}
	}
	if target == -1 {
		t.Fatal("no indexable cell")
	}
	if err := tl.InjectCharge(target, 5); err != nil {
		t.Fatal(err)
	}
	tl.ClassifyHits()

	img := Render(tl, 400)

	// some pixel must carry the real-hit red component
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X && !found; x++ {
			px := img.RGBAAt(x, y)
			if px.R == 0xff && px.G < 0xff && px.B < 0xff {
				found = true
			}
		}
	}
	if !found {
		t.Error("no real-hit pixel in the rendered image")
	}
}

func TestCellColor(t *testing.T) {
	if _, ok := cellColor(wiretile.Cell{Hit: wiretile.HitNone}, 1); ok {
		t.Error("no-hit cells should not be filled")
	}
	if _, ok := cellColor(wiretile.Cell{Hit: wiretile.HitReal, TrueCharge: 1}, 1); !ok {
		t.Error("real-hit cells should be filled")
	}
	if _, ok := cellColor(wiretile.Cell{Hit: wiretile.HitFake}, 1); !ok {
		t.Error("fake-hit cells should be filled")
	}
}
