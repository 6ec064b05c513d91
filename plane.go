package wiretile

import "math"

// wireCount returns the number of wires of a plane that intersect the
// face. For the inclined planes the count is derived from the face
// diagonal: a wire exists as long as its strip crosses the diagonal.
func (g *geometry) wireCount(plane Plane) int {
	if plane == PlaneY {
		return g.numYWires
	}

	maxZ := float64(g.numYWires-1) * g.pitchY
	maxY := float64(g.numYWires-1) * g.pitchY * g.ratio
	diagLength := math.Sqrt(maxZ*maxZ + maxY*maxY)
	diagAngle := math.Atan2(1, g.ratio) // diagonal angle from the face height axis

	var angle, pitch, offsetY float64
	switch plane {
	case PlaneU:
		angle, pitch, offsetY = g.angleURad, g.pitchU, g.uOffsetY
	case PlaneV:
		angle, pitch, offsetY = g.angleVRad, g.pitchV, g.vOffsetY
	}

	offset := offsetY * math.Sin(angle) / math.Sin(math.Pi-diagAngle-angle)
	n := int(math.Floor((diagLength - offset) * math.Sin(diagAngle+angle) / pitch))
	if n < 0 {
		n = 0
	}
	return n
}

// buildWires generates the ordered wire sequence of one plane, with
// endpoints clipped to the face rectangle.
func (g *geometry) buildWires(plane Plane) []Wire {
	var (
		location, pitch float64
	)
	switch plane {
	case PlaneU:
		location = g.uOffsetY * math.Sin(g.angleURad)
		pitch = g.pitchU
	case PlaneV:
		location = g.vOffsetY * math.Sin(g.angleVRad)
		pitch = g.pitchV
	case PlaneY:
		location = g.firstYWireZ
		pitch = g.pitchY
	}

	n := g.wireCount(plane)
	wires := make([]Wire, 0, n)
	for id := 0; id < n; id++ {
		p0, p1 := g.wireEndpoints(plane, id)
		wires = append(wires, Wire{
			ID:       id,
			Plane:    plane,
			Location: location,
			P0:       p0,
			P1:       p1,
		})
		location += pitch
	}
	return wires
}

// wireEndpoints returns the two endpoints of a wire clipped to the
// face rectangle.
func (g *geometry) wireEndpoints(plane Plane, id int) (p0, p1 Point) {
	switch plane {
	case PlaneU:
		p0 = Point{
			Z: math.Max(g.faceZMin, g.uWireZ(id, 0)),
			Y: math.Max(0, g.uWireY(id, g.faceZMin)),
		}
		p1 = Point{
			Z: math.Min(g.faceZMax, g.uWireZ(id, g.maxHeight)),
			Y: math.Min(g.maxHeight, g.uWireY(id, g.faceZMax)),
		}
	case PlaneV:
		p0 = Point{
			Z: math.Max(g.faceZMin, g.vWireZ(id, g.maxHeight)),
			Y: math.Min(g.maxHeight, g.vWireY(id, g.faceZMin)),
		}
		p1 = Point{
			Z: math.Min(g.faceZMax, g.vWireZ(id, 0)),
			Y: math.Max(0, g.vWireY(id, g.faceZMax)),
		}
	case PlaneY:
		z := g.yWireZ(id)
		p0 = Point{Z: z, Y: 0}
		p1 = Point{Z: z, Y: g.maxHeight}
	}
	return p0, p1
}
