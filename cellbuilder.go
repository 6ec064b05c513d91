package wiretile

import "math"

// Face edges used by the vertex trimming, numbered so that an edge
// value outside [edgeLeft, edgeTop] leaves the polygon untouched.
const (
	edgeLeft = 1 + iota
	edgeRight
	edgeBottom
	edgeTop
)

// cellBuilder walks the Y wires left to right and emits, for each, the
// chain of cells sharing that wire. The U and V running offsets track
// the Y coordinate of the next relevant inclined wire crossing on the
// current Y strip.
type cellBuilder struct {
	geo *geometry
	ctx *BuildContext

	cells []Cell
}

// formsCell reports whether the U and V crossings at Y coordinates uY
// and vY on the current Y strip bound a common cell.
func (b *cellBuilder) formsCell(uY, vY float64) bool {
	g := b.geo

	// Signed gap between the two strips, larger band first.
	var deltaY float64
	if uY > vY {
		deltaY = (uY - g.uSpacing/2) - (vY + g.vSpacing/2)
	} else {
		deltaY = (vY - g.vSpacing/2) - (uY + g.uSpacing/2)
	}

	switch {
	case uY+g.uSpacing/2 < -epsilon && vY+g.vSpacing/2 < -epsilon:
		// both bands below the face
		return false
	case uY-g.uSpacing/2 > g.maxHeight+epsilon && vY-g.vSpacing/2 > g.maxHeight+epsilon:
		// both bands above the face
		return false
	case deltaY < epsilon:
		// bands overlap or touch
		return true
	case uY == vY:
		return true
	case math.Abs(g.tanU*g.tanV*deltaY/(g.tanU+g.tanV))-g.pitchY/2 < epsilon:
		return true
	}
	return false
}

// cellVertices computes the polygon of the cell bounded by the Y strip
// centered at yZ and the U and V strips crossing it at uY and vY. The
// returned vertices are sorted clockwise and trimmed to the face; fewer
// than 3 vertices means no acceptable cell.
func (b *cellBuilder) cellVertices(yZ, uY, vY float64) []Point {
	g := b.geo

	uSlope := 1 / g.tanU
	u1 := uY - g.uSpacing/2
	u2 := uY + g.uSpacing/2

	vSlope := -1 / g.tanV
	v1 := vY - g.vSpacing/2
	v2 := vY + g.vSpacing/2

	y1Z := yZ - g.pitchY/2
	y2Z := yZ + g.pitchY/2

	// The four intersections of the U bounding lines with the V
	// bounding lines, and their bounding box.
	uv := [4]Point{
		intersectUV(yZ, uSlope, u1, vSlope, v1),
		intersectUV(yZ, uSlope, u1, vSlope, v2),
		intersectUV(yZ, uSlope, u2, vSlope, v1),
		intersectUV(yZ, uSlope, u2, vSlope, v2),
	}
	minZ, maxZ := uv[0].Z, uv[0].Z
	minY, maxY := uv[0].Y, uv[0].Y
	for _, p := range uv[1:] {
		if p.Z < minZ+epsilon {
			minZ = p.Z
		}
		if p.Z > maxZ-epsilon {
			maxZ = p.Z
		}
		if p.Y < minY+epsilon {
			minY = p.Y
		}
		if p.Y > maxY-epsilon {
			maxY = p.Y
		}
	}

	// A Y-edge crossing with a U or V bounding line is a vertex when
	// it falls strictly inside the U/V bounding box.
	var vertices []Point
	lines := [4]struct{ slope, intercept float64 }{
		{uSlope, u1}, {uSlope, u2}, {vSlope, v1}, {vSlope, v2},
	}
	for _, edgeZ := range [2]float64{y1Z, y2Z} {
		for _, l := range lines {
			p := intersectY(yZ, edgeZ, l.slope, l.intercept)
			if insideOpen(p.Y, minY, maxY) && insideOpen(p.Z, minZ, maxZ) {
				vertices = append(vertices, p)
			}
		}
	}

	// A U/V intersection is a vertex when it falls inside the Y strip.
	for _, p := range uv {
		if p.Z >= y1Z-epsilon && p.Z <= y2Z+epsilon {
			vertices = append(vertices, p)
		}
	}

	vertices = sortVerticesCW(vertices)

	// Trim against each face edge the U/V bounding box sticks out of.
	if minZ < g.faceZMin+epsilon {
		vertices = trimEdgeCellVertices(vertices, edgeLeft, g.faceZMin)
	}
	if maxZ > g.faceZMax-epsilon {
		vertices = trimEdgeCellVertices(vertices, edgeRight, g.faceZMax)
	}
	if minY < epsilon {
		vertices = trimEdgeCellVertices(vertices, edgeBottom, 0)
	}
	if maxY > g.maxHeight-epsilon {
		vertices = trimEdgeCellVertices(vertices, edgeTop, g.maxHeight)
	}

	return vertices
}

// vertexOutsideBoundary reports whether the vertex lies on the exterior
// side of the given face edge.
func vertexOutsideBoundary(v Point, edgeType int, edgeVal float64) bool {
	switch edgeType {
	case edgeLeft:
		return v.Z < edgeVal-epsilon
	case edgeRight:
		return v.Z > edgeVal+epsilon
	case edgeBottom:
		return v.Y < edgeVal-epsilon
	case edgeTop:
		return v.Y > edgeVal+epsilon
	}
	return false
}

// trimEdgeCellVertices clips the polygon against one face edge: every
// polygon edge straddling the clip line contributes its crossing point,
// and every original vertex not on the exterior side is retained. The
// result is re-sorted clockwise.
func trimEdgeCellVertices(vertices []Point, edgeType int, edgeVal float64) []Point {
	if edgeType < edgeLeft || edgeType > edgeTop {
		return vertices
	}

	numOutside := 0
	for _, v := range vertices {
		if vertexOutsideBoundary(v, edgeType, edgeVal) {
			numOutside++
		}
	}
	if numOutside == 0 {
		return vertices
	}

	var trimmed []Point
	for i := range vertices {
		j := (i + 1) % len(vertices)

		z1, y1 := vertices[i].Z, vertices[i].Y
		z2, y2 := vertices[j].Z, vertices[j].Y

		straddles := func(a, b float64) bool {
			return (edgeVal > a+epsilon && edgeVal < b-epsilon) ||
				(edgeVal > b+epsilon && edgeVal < a-epsilon)
		}

		if z1 != z2 {
			slope := (y2 - y1) / (z2 - z1)
			intercept := y1 - slope*z1

			switch edgeType {
			case edgeLeft, edgeRight:
				if straddles(z1, z2) {
					trimmed = append(trimmed, Point{Z: edgeVal, Y: slope*edgeVal + intercept})
				}
			case edgeBottom, edgeTop:
				if straddles(y1, y2) {
					trimmed = append(trimmed, Point{Z: (edgeVal - intercept) / slope, Y: edgeVal})
				}
			}
		} else if edgeType == edgeBottom || edgeType == edgeTop {
			// vertical polygon edge
			if straddles(y1, y2) {
				trimmed = append(trimmed, Point{Z: z1, Y: edgeVal})
			}
		}
	}

	for _, v := range vertices {
		if !vertexOutsideBoundary(v, edgeType, edgeVal) {
			trimmed = append(trimmed, v)
		}
	}

	return sortVerticesCW(trimmed)
}

// buildCell assembles the cell at (yZ, uY, vY), or returns false when
// the trimmed polygon keeps fewer than 3 vertices.
func (b *cellBuilder) buildCell(id int, yZ, uY, vY float64) (Cell, bool) {
	vertices := b.cellVertices(yZ, uY, vY)
	if len(vertices) < 3 {
		return Cell{}, false
	}

	g := b.geo
	cell := Cell{
		ID:       id,
		Vertices: vertices,
		Center:   cellCenter(vertices),
		Area:     cellArea(vertices),
		UWireID:  g.uWireID(uY, yZ),
		VWireID:  g.vWireID(vY, yZ),
		YWireID:  g.yWireID(yZ),
		Hit:      HitNone,
	}
	return cell, true
}

// buildChain emits the cells sharing the Y wire at yZ, scanning the U
// and V crossings from the running offsets uOffset and vOffset.
func (b *cellBuilder) buildChain(yZ, uOffset, vOffset float64) {
	g := b.geo

	numUcrosses := int(math.Ceil(((g.uDeltaY-g.uSpacing)/2+uOffset)/g.uSpacing)) + 1
	numVcrosses := int(math.Ceil((g.maxHeight-(g.vDeltaY+g.vSpacing)/2-vOffset)/g.vSpacing)) + 1

	for i := 0; i < numUcrosses; i++ {
		// Once a cell has been emitted for this U crossing, the first
		// later V crossing that fails ends the scan: the lattice is
		// monotone along V.
		emitted, done := false, false
		for j := 0; j < numVcrosses && !done; j++ {
			uY := uOffset - float64(i)*g.uSpacing
			vY := vOffset + float64(j)*g.vSpacing
			if b.formsCell(uY, vY) {
				emitted = true
				if cell, ok := b.buildCell(len(b.cells), yZ, uY, vY); ok {
					b.cells = append(b.cells, cell)
				}
			} else if emitted {
				done = true
			}
		}
	}
}

// normalizeUOffset raises the U running offset back into the band of
// crossings relevant to the current Y strip.
func (b *cellBuilder) normalizeUOffset(uOffset float64) float64 {
	g := b.geo
	for uOffset < g.maxHeight-(g.uSpacing-g.uDeltaY)/2-epsilon {
		uOffset += g.uSpacing
	}
	return uOffset
}

// normalizeVOffset reduces a too-high V running offset, then raises a
// too-low one. At most one of the loops runs.
func (b *cellBuilder) normalizeVOffset(vOffset float64) float64 {
	g := b.geo
	for vOffset > (g.vSpacing+g.vDeltaY)/2+epsilon {
		vOffset -= g.vSpacing
	}
	for vOffset < (g.vDeltaY-g.vSpacing)/2-epsilon {
		vOffset += g.vSpacing
	}
	return vOffset
}

// build walks all Y wires and returns the emitted cells, ids dense
// from 0 in emission order.
func (b *cellBuilder) build() []Cell {
	g := b.geo

	yZ := g.firstYWireZ
	uOffset := b.normalizeUOffset(g.maxHeight - g.uOffsetY)
	vOffset := b.normalizeVOffset(g.vOffsetY)

	for i := 0; i < g.numYWires; i++ {
		b.ctx.Progressf("cell chain %d: z=%g uOffset=%g vOffset=%g", i, yZ, uOffset, vOffset)
		b.buildChain(yZ, uOffset, vOffset)

		yZ += g.pitchY
		uOffset = b.normalizeUOffset(uOffset + g.uDeltaY)
		vOffset = b.normalizeVOffset(vOffset + g.vDeltaY)
	}

	return b.cells
}
