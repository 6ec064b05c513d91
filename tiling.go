package wiretile

import (
	"fmt"

	assert "github.com/arl/assertgo"
)

// Tiling owns the three wire planes and the cell set of one detector
// face. Wires and cells reference each other through stable integer
// ids; both vectors are append-only and nothing is ever removed.
type Tiling struct {
	settings Settings
	geo      geometry

	uwires []Wire
	vwires []Wire
	ywires []Wire
	cells  []Cell
}

// New builds the tiling for the given detector settings: wire planes
// first, then the cell set, then the wire-to-cell index. ctx may be
// nil, in which case neither log nor timers are recorded.
func New(s Settings, ctx *BuildContext) (*Tiling, error) {
	if ctx == nil {
		ctx = NewBuildContext(false)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	geo, err := newGeometry(s)
	if err != nil {
		return nil, err
	}

	t := &Tiling{settings: s, geo: geo}

	ctx.StartTimer(TimerBuildTotal)

	ctx.StartTimer(TimerBuildPlanes)
	t.uwires = geo.buildWires(PlaneU)
	t.vwires = geo.buildWires(PlaneV)
	t.ywires = geo.buildWires(PlaneY)
	ctx.StopTimer(TimerBuildPlanes)
	ctx.Progressf("planes: %d U, %d V, %d Y wires",
		len(t.uwires), len(t.vwires), len(t.ywires))

	ctx.StartTimer(TimerBuildCells)
	builder := cellBuilder{geo: &t.geo, ctx: ctx}
	t.cells = builder.build()
	ctx.StopTimer(TimerBuildCells)
	ctx.Progressf("%d cells", len(t.cells))

	ctx.StartTimer(TimerBuildIndex)
	t.fillWireIndex()
	ctx.StopTimer(TimerBuildIndex)

	ctx.StopTimer(TimerBuildTotal)
	return t, nil
}

// fillWireIndex appends each cell id to the cell list of its three
// bounding wires. Virtual wire ids are skipped: such cells exist but
// cannot be reached from the wire side.
func (t *Tiling) fillWireIndex() {
	for i := range t.cells {
		c := &t.cells[i]
		assert.True(c.ID == i, "cell ids not dense: %d at index %d", c.ID, i)
		if w := wireAt(t.uwires, c.UWireID); w != nil {
			w.CellIDs = append(w.CellIDs, c.ID)
		}
		if w := wireAt(t.vwires, c.VWireID); w != nil {
			w.CellIDs = append(w.CellIDs, c.ID)
		}
		if w := wireAt(t.ywires, c.YWireID); w != nil {
			w.CellIDs = append(w.CellIDs, c.ID)
		}
	}
}

// wireAt returns the wire with the given id, or nil when the id is
// virtual for this plane.
func wireAt(wires []Wire, id int) *Wire {
	if id < 0 || id >= len(wires) {
		return nil
	}
	return &wires[id]
}

// Settings returns the settings the tiling was built from.
func (t *Tiling) Settings() Settings { return t.settings }

// MaxHeight returns the face height in cm.
func (t *Tiling) MaxHeight() float64 { return t.geo.maxHeight }

// FaceZMin and FaceZMax bound the face along Z, in cm.
func (t *Tiling) FaceZMin() float64 { return t.geo.faceZMin }
func (t *Tiling) FaceZMax() float64 { return t.geo.faceZMax }

// Wires returns the wire sequence of one plane, ordered by id.
func (t *Tiling) Wires(plane Plane) []Wire {
	switch plane {
	case PlaneU:
		return t.uwires
	case PlaneV:
		return t.vwires
	case PlaneY:
		return t.ywires
	}
	return nil
}

// Cells returns all cells of the tiling, ordered by id.
func (t *Tiling) Cells() []Cell { return t.cells }

// CellsOnWire returns the ids of the cells bounded by the given wire,
// in insertion order, or nil when the wire id is out of range.
func (t *Tiling) CellsOnWire(plane Plane, wireID int) []int {
	w := wireAt(t.Wires(plane), wireID)
	if w == nil {
		return nil
	}
	return w.CellIDs
}

// WiresOfCell returns the three wires bounding a cell. A nil entry
// means the corresponding wire id is virtual (outside the generated
// range for its plane).
func (t *Tiling) WiresOfCell(cellID int) (u, v, y *Wire) {
	if cellID < 0 || cellID >= len(t.cells) {
		return nil, nil, nil
	}
	c := &t.cells[cellID]
	return wireAt(t.uwires, c.UWireID),
		wireAt(t.vwires, c.VWireID),
		wireAt(t.ywires, c.YWireID)
}

// CellForTriple returns the id of the unique cell bounded by the given
// wire triple. The second return value is false when no cell matches.
// Should several cells match (which the lattice construction rules
// out), the first in insertion order wins.
func (t *Tiling) CellForTriple(uID, vID, yID int) (int, bool) {
	for i := range t.cells {
		c := &t.cells[i]
		if c.UWireID == uID && c.VWireID == vID && c.YWireID == yID {
			return c.ID, true
		}
	}
	return 0, false
}

// InjectCharge deposits amount into a cell's true charge and
// accumulates the same amount onto the cell's three bounding wires,
// skipping virtual wire ids. Charges are additive and non-negative by
// contract.
func (t *Tiling) InjectCharge(cellID int, amount float64) error {
	if cellID < 0 || cellID >= len(t.cells) {
		return fmt.Errorf("inject charge: no cell with id %d", cellID)
	}
	assert.True(amount >= 0, "negative charge %v injected in cell %d", amount, cellID)

	c := &t.cells[cellID]
	c.TrueCharge += amount
	if w := wireAt(t.uwires, c.UWireID); w != nil {
		w.Charge += amount
	}
	if w := wireAt(t.vwires, c.VWireID); w != nil {
		w.Charge += amount
	}
	if w := wireAt(t.ywires, c.YWireID); w != nil {
		w.Charge += amount
	}
	return nil
}

// ClassifyHits labels every cell from the current charge state: a cell
// whose three bounding wires all carry charge is a real hit when it
// holds a true deposit and a fake hit (ghost) otherwise; any uncharged
// or virtual wire makes it a no-hit. Idempotent for a given charge
// state.
func (t *Tiling) ClassifyHits() {
	for i := range t.cells {
		c := &t.cells[i]

		var uCharge, vCharge, yCharge float64
		if w := wireAt(t.uwires, c.UWireID); w != nil {
			uCharge = w.Charge
		}
		if w := wireAt(t.vwires, c.VWireID); w != nil {
			vCharge = w.Charge
		}
		if w := wireAt(t.ywires, c.YWireID); w != nil {
			yCharge = w.Charge
		}

		switch {
		case uCharge > 0 && vCharge > 0 && yCharge > 0:
			if c.TrueCharge > 0 {
				c.Hit = HitReal
			} else {
				c.Hit = HitFake
			}
		default:
			c.Hit = HitNone
		}
	}
}
