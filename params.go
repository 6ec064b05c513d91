package wiretile

import (
	"fmt"
	"math"
)

// geometry holds the values derived once from the Settings and shared
// by the plane generator and the cell builder. It is immutable after
// newGeometry returns.
type geometry struct {
	numYWires int

	pitchY, pitchU, pitchV float64

	angleURad, angleVRad float64
	tanU, tanV           float64

	// ratio is the face height to width ratio.
	ratio float64

	// maxHeight is the face height, ratio*pitchY*numYWires.
	maxHeight float64

	// firstYWireZ is the Z of Y wire 0, pitchY/2.
	firstYWireZ float64

	// uOffsetY is the input U offset; vOffsetY is the V offset after
	// rebasing onto the U intersection lattice.
	uOffsetY, vOffsetY float64

	// uSpacing and vSpacing are the spacings of consecutive U (resp.
	// V) wire crossings measured along a Y wire.
	uSpacing, vSpacing float64

	// uDeltaY and vDeltaY are the Y shifts of a U (resp. V) crossing
	// when stepping one Y wire to the right. vDeltaY is negative: V
	// leans opposite to U.
	uDeltaY, vDeltaY float64

	faceZMin, faceZMax float64

	leftEdgeOffsetZ, rightEdgeOffsetZ float64
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// newGeometry derives the tiling geometry from validated settings.
func newGeometry(s Settings) (geometry, error) {
	g := geometry{
		numYWires:        s.NumYWires,
		pitchY:           s.WirePitchY,
		pitchU:           s.WirePitchU,
		pitchV:           s.WirePitchV,
		angleURad:        radians(s.AngleU),
		angleVRad:        radians(s.AngleV),
		leftEdgeOffsetZ:  s.LeftEdgeOffsetZ,
		rightEdgeOffsetZ: s.RightEdgeOffsetZ,
	}

	if math.Sin(g.angleURad) == 0 || math.Tan(g.angleURad) == 0 {
		return geometry{}, fmt.Errorf("%w: angleU %v", ErrDegenerateGeometry, s.AngleU)
	}
	if math.Sin(g.angleVRad) == 0 || math.Tan(g.angleVRad) == 0 {
		return geometry{}, fmt.Errorf("%w: angleV %v", ErrDegenerateGeometry, s.AngleV)
	}

	g.tanU = math.Tan(g.angleURad)
	g.tanV = math.Tan(g.angleVRad)

	g.ratio = s.HeightToWidthRatio
	g.maxHeight = g.ratio * g.pitchY * float64(g.numYWires)
	g.firstYWireZ = g.pitchY / 2

	g.uSpacing = math.Abs(g.pitchU / math.Sin(g.angleURad))
	g.vSpacing = math.Abs(g.pitchV / math.Sin(g.angleVRad))
	g.uDeltaY = g.pitchY / g.tanU
	g.vDeltaY = -g.pitchY / g.tanV

	g.faceZMin = g.firstYWireZ - g.pitchY/2 + g.leftEdgeOffsetZ
	g.faceZMax = g.firstYWireZ + (float64(g.numYWires)-0.5)*g.pitchY - g.rightEdgeOffsetZ

	// Rebase the V offset so that the V crossing lattice lines up
	// with the U lattice: reduce the U offset into one U spacing,
	// reflect it about the face top, then reduce into one V spacing.
	tempU := s.FirstYWireUOffset
	for tempU > g.uSpacing-epsilon {
		tempU -= g.uSpacing
	}
	vOff := g.maxHeight - tempU
	vOff -= math.Floor(vOff/g.uSpacing) * g.uSpacing
	for vOff > g.vSpacing-epsilon {
		vOff -= g.vSpacing
	}

	g.uOffsetY = s.FirstYWireUOffset
	g.vOffsetY = vOff

	return g, nil
}

// Wire line evaluators. U and V wire lines are parameterized by the
// wire id within their plane; y and z are face coordinates in cm.

func (g *geometry) uWireY(id int, z float64) float64 {
	return z/g.tanU + g.maxHeight - g.firstYWireZ/g.tanU - g.uOffsetY - g.uSpacing*float64(id)
}

func (g *geometry) uWireZ(id int, y float64) float64 {
	return g.tanU * (y - g.maxHeight + g.firstYWireZ/g.tanU + g.uOffsetY + g.uSpacing*float64(id))
}

func (g *geometry) vWireY(id int, z float64) float64 {
	return -z/g.tanV + g.firstYWireZ/g.tanV + g.vOffsetY + g.vSpacing*float64(id)
}

func (g *geometry) vWireZ(id int, y float64) float64 {
	return g.tanV * (g.firstYWireZ/g.tanV + g.vOffsetY + g.vSpacing*float64(id) - y)
}

func (g *geometry) yWireZ(id int) float64 {
	return g.firstYWireZ + g.pitchY*float64(id)
}

// Nearest-wire ids for a face point. The returned id may fall outside
// the range of physically generated wires ("virtual" id).

func (g *geometry) uWireID(y, z float64) int {
	return int(math.Round((z/g.tanU + g.maxHeight - g.firstYWireZ/g.tanU - g.uOffsetY - y) / g.uSpacing))
}

func (g *geometry) vWireID(y, z float64) int {
	return int(math.Round((z/g.tanV - g.firstYWireZ/g.tanV - g.vOffsetY + y) / g.vSpacing))
}

func (g *geometry) yWireID(z float64) int {
	return int(math.Round((z - g.firstYWireZ) / g.pitchY))
}
