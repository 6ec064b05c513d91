// Package draw renders a wire-cell tiling for inspection: rasterized
// images of the cell map and Wavefront OBJ exports of the cell
// polygons. The core package stays free of any drawing concern.
package draw

import (
	"image"
	"image/color"
	stddraw "image/draw"
	"math"

	"github.com/arl/gogeo/f32"
	"github.com/arl/math32"
	"golang.org/x/image/vector"

	"github.com/arl/wiretile"
)

// Shading floors, so that even faint charges remain visible.
const (
	shadeMinCellTrue = 0.5
	shadeMinCellFake = 0.3
	shadeMinWire     = 0.1
)

// Render rasterizes the tiling into an RGBA image of the given pixel
// width; the height follows from the face aspect ratio. Cells are
// filled according to their hit label and charge, wires drawn on top.
func Render(t *wiretile.Tiling, width int) *image.RGBA {
	zmin, zmax := t.FaceZMin(), t.FaceZMax()
	scale := float64(width) / (zmax - zmin)
	height := int(math.Ceil(t.MaxHeight() * scale))
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stddraw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, stddraw.Src)

	// face coordinates to pixels, Y axis flipped
	toPx := func(p wiretile.Point) (x, y float32) {
		return float32((p.Z - zmin) * scale), float32((t.MaxHeight() - p.Y) * scale)
	}

	var maxCharge float32
	for _, c := range t.Cells() {
		if q := float32(c.TrueCharge); q > maxCharge {
			maxCharge = q
		}
	}

	for _, c := range t.Cells() {
		col, ok := cellColor(c, maxCharge)
		if !ok {
			continue
		}
		pts := make([][2]float32, len(c.Vertices))
		for i, v := range c.Vertices {
			pts[i][0], pts[i][1] = toPx(v)
		}
		fillPoly(img, pts, col)
	}

	var maxWireCharge float32
	for _, plane := range []wiretile.Plane{wiretile.PlaneU, wiretile.PlaneV, wiretile.PlaneY} {
		for _, w := range t.Wires(plane) {
			if q := float32(w.Charge); q > maxWireCharge {
				maxWireCharge = q
			}
		}
	}
	for _, plane := range []wiretile.Plane{wiretile.PlaneU, wiretile.PlaneV, wiretile.PlaneY} {
		for _, w := range t.Wires(plane) {
			x0, y0 := toPx(w.P0)
			x1, y1 := toPx(w.P1)
			strokeSegment(img, x0, y0, x1, y1, 0.5, wireColor(w, maxWireCharge))
		}
	}

	return img
}

// cellColor maps a cell to its fill color: a charge-shaded red for
// real hits, a flat blue-gray for fakes, nothing for no-hit cells.
func cellColor(c wiretile.Cell, maxCharge float32) (color.Color, bool) {
	switch c.Hit {
	case wiretile.HitReal:
		var shade float32 = shadeMinCellTrue
		if maxCharge > 0 {
			shade = f32.Clamp(math32.Sqrt(float32(c.TrueCharge)/maxCharge), shadeMinCellTrue, 1)
		}
		return color.RGBA{R: 0xff, G: uint8(0xa0 * (1 - shade)), B: uint8(0xa0 * (1 - shade)), A: 0xff}, true
	case wiretile.HitFake:
		return color.RGBA{R: 0xb0, G: 0xb8, B: 0xd0, A: 0xff}, true
	}
	return nil, false
}

// wireColor darkens charged wires so coincidences stand out.
func wireColor(w wiretile.Wire, maxCharge float32) color.Color {
	if w.Charge <= 0 || maxCharge <= 0 {
		return color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	}
	shade := f32.Clamp(float32(w.Charge)/maxCharge, shadeMinWire, 1)
	v := uint8(0xc8 * (1 - shade))
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// fillPoly fills a closed polygon, given in pixel coordinates.
func fillPoly(dst *image.RGBA, pts [][2]float32, col color.Color) {
	if len(pts) < 3 {
		return
	}
	r := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	r.DrawOp = stddraw.Over
	r.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		r.LineTo(p[0], p[1])
	}
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}

// strokeSegment draws a segment as a thin filled quad of the given
// half width, in pixels.
func strokeSegment(dst *image.RGBA, x0, y0, x1, y1, hw float32, col color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math32.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return
	}
	// perpendicular, scaled to the half width
	px, py := -dy/length*hw, dx/length*hw
	fillPoly(dst, [][2]float32{
		{x0 + px, y0 + py},
		{x1 + px, y1 + py},
		{x1 - px, y1 - py},
		{x0 - px, y0 - py},
	}, col)
}
