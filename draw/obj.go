package draw

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arl/gogeo/f32/d3"

	"github.com/arl/wiretile"
)

// WriteOBJ writes the cell polygons as a Wavefront OBJ mesh. Cells are
// embedded in 3D on the x = 0 plane, face coordinates mapping to
// (0, y, z); each face carries its normal.
func WriteOBJ(w io.Writer, t *wiretile.Tiling) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# wiretile cell map")
	fmt.Fprintf(bw, "# %d cells\n", len(t.Cells()))

	vertIdx := 1
	for _, c := range t.Cells() {
		for _, v := range c.Vertices {
			fmt.Fprintf(bw, "v 0 %v %v\n", v.Y, v.Z)
		}

		n := faceNormal(c)
		fmt.Fprintf(bw, "vn %v %v %v\n", n.X(), n.Y(), n.Z())

		fmt.Fprint(bw, "f")
		for k := range c.Vertices {
			fmt.Fprintf(bw, " %d//%d", vertIdx+k, c.ID+1)
		}
		fmt.Fprintln(bw)

		vertIdx += len(c.Vertices)
	}

	return bw.Flush()
}

// faceNormal computes the normal of a cell polygon from its first two
// edges. All cells lie on the x = 0 plane, so the normal is axial.
func faceNormal(c wiretile.Cell) d3.Vec3 {
	v0, v1, v2 := c.Vertices[0], c.Vertices[1], c.Vertices[2]
	e1 := d3.NewVec3XYZ(0, float32(v1.Y-v0.Y), float32(v1.Z-v0.Z))
	e2 := d3.NewVec3XYZ(0, float32(v2.Y-v1.Y), float32(v2.Z-v1.Z))
	n := e1.Cross(e2)
	n.Normalize()
	return n
}
