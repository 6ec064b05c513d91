package wiretile

import (
	"fmt"
	"io"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

// On-disk form of a tiling: the settings plus the frozen wire and cell
// geometry. Charges and hit labels are runtime state and are not
// persisted.

type wireRecord struct {
	ID       int     `yaml:"id"`
	Location float64 `yaml:"location"`
	P0       Point   `yaml:"p0"`
	P1       Point   `yaml:"p1"`
}

type cellRecord struct {
	ID       int     `yaml:"id"`
	Vertices []Point `yaml:"vertices"`
	Center   Point   `yaml:"center"`
	Area     float64 `yaml:"area"`
	UWireID  int     `yaml:"uwire"`
	VWireID  int     `yaml:"vwire"`
	YWireID  int     `yaml:"ywire"`
}

type tilingFile struct {
	Settings Settings     `yaml:"settings"`
	UWires   []wireRecord `yaml:"uwires"`
	VWires   []wireRecord `yaml:"vwires"`
	YWires   []wireRecord `yaml:"ywires"`
	Cells    []cellRecord `yaml:"cells"`
}

func wireRecords(wires []Wire) []wireRecord {
	recs := make([]wireRecord, len(wires))
	for i, w := range wires {
		recs[i] = wireRecord{ID: w.ID, Location: w.Location, P0: w.P0, P1: w.P1}
	}
	return recs
}

func wiresFromRecords(recs []wireRecord, plane Plane) []Wire {
	wires := make([]Wire, len(recs))
	for i, r := range recs {
		wires[i] = Wire{ID: r.ID, Plane: plane, Location: r.Location, P0: r.P0, P1: r.P1}
	}
	return wires
}

// Save writes the tiling to w in YAML form.
func (t *Tiling) Save(w io.Writer) error {
	file := tilingFile{
		Settings: t.settings,
		UWires:   wireRecords(t.uwires),
		VWires:   wireRecords(t.vwires),
		YWires:   wireRecords(t.ywires),
		Cells:    make([]cellRecord, len(t.cells)),
	}
	for i, c := range t.cells {
		file.Cells[i] = cellRecord{
			ID:       c.ID,
			Vertices: c.Vertices,
			Center:   c.Center,
			Area:     c.Area,
			UWireID:  c.UWireID,
			VWireID:  c.VWireID,
			YWireID:  c.YWireID,
		}
	}

	buf, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("tiling save: %v", err)
	}
	_, err = w.Write(buf)
	return err
}

// Load reads a tiling saved with Save. Charge accumulators and hit
// labels start from zero; the wire-to-cell index is rebuilt.
func Load(r io.Reader) (*Tiling, error) {
	buf, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var file tilingFile
	if err := yaml.Unmarshal(buf, &file); err != nil {
		return nil, fmt.Errorf("tiling load: %v", err)
	}
	if err := file.Settings.Validate(); err != nil {
		return nil, err
	}
	geo, err := newGeometry(file.Settings)
	if err != nil {
		return nil, err
	}

	t := &Tiling{
		settings: file.Settings,
		geo:      geo,
		uwires:   wiresFromRecords(file.UWires, PlaneU),
		vwires:   wiresFromRecords(file.VWires, PlaneV),
		ywires:   wiresFromRecords(file.YWires, PlaneY),
		cells:    make([]Cell, len(file.Cells)),
	}
	for i, c := range file.Cells {
		t.cells[i] = Cell{
			ID:       c.ID,
			Vertices: c.Vertices,
			Center:   c.Center,
			Area:     c.Area,
			UWireID:  c.UWireID,
			VWireID:  c.VWireID,
			YWireID:  c.YWireID,
			Hit:      HitNone,
		}
	}
	t.fillWireIndex()
	return t, nil
}
