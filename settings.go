package wiretile

import "fmt"

// Settings gathers the detector parameters of a tiling. All lengths
// are in cm, angles in degrees.
type Settings struct {
	// Inclination of the U wires, in degrees, in (0, 180).
	AngleU float64 `yaml:"angleU"`

	// Inclination of the V wires, in degrees, in (0, 180).
	AngleV float64 `yaml:"angleV"`

	// Number of axial (Y) wires. [Limit: >= 1]
	NumYWires int `yaml:"numYWires"`

	// Wire pitch of each plane, in cm. [Limit: > 0]
	WirePitchY float64 `yaml:"wirePitchY"`
	WirePitchU float64 `yaml:"wirePitchU"`
	WirePitchV float64 `yaml:"wirePitchV"`

	// Ratio of the face height to its width.
	HeightToWidthRatio float64 `yaml:"heightToWidthRatio"`

	// Y offset of the first U (resp. V) wire where it crosses the
	// first Y wire, in cm. The V offset is rebased at construction so
	// that the V intersection lattice aligns with U.
	FirstYWireUOffset float64 `yaml:"firstYWireUOffset"`
	FirstYWireVOffset float64 `yaml:"firstYWireVOffset"`

	// Dead margins on the left and right face edges, in cm.
	LeftEdgeOffsetZ  float64 `yaml:"leftEdgeOffsetZ"`
	RightEdgeOffsetZ float64 `yaml:"rightEdgeOffsetZ"`

	// PlotMode is recognized for compatibility with settings files of
	// older drawing tools. The core ignores it.
	PlotMode int `yaml:"plotMode"`
}

// DefaultSettings returns the Settings used by the reference detector
// layout: symmetric 60 degree planes, 10 axial wires, 3 mm pitches.
func DefaultSettings() Settings {
	return Settings{
		AngleU:             60.0,
		AngleV:             60.0,
		NumYWires:          10,
		WirePitchY:         0.30,
		WirePitchU:         0.30,
		WirePitchV:         0.30,
		HeightToWidthRatio: 0.50,
		FirstYWireUOffset:  0.0,
		FirstYWireVOffset:  0.0,
		LeftEdgeOffsetZ:    0.0,
		RightEdgeOffsetZ:   0.0,
		PlotMode:           0,
	}
}

// Validate checks the settings against their limits. It returns an
// error wrapping ErrInvalidParameters for out of range values.
func (s Settings) Validate() error {
	if s.AngleU <= 0 || s.AngleU >= 180 {
		return fmt.Errorf("%w: angleU %v not in (0, 180)", ErrInvalidParameters, s.AngleU)
	}
	if s.AngleV <= 0 || s.AngleV >= 180 {
		return fmt.Errorf("%w: angleV %v not in (0, 180)", ErrInvalidParameters, s.AngleV)
	}
	if s.NumYWires < 1 {
		return fmt.Errorf("%w: numYWires %v < 1", ErrInvalidParameters, s.NumYWires)
	}
	if s.WirePitchY <= 0 || s.WirePitchU <= 0 || s.WirePitchV <= 0 {
		return fmt.Errorf("%w: wire pitches must be > 0 (got %v, %v, %v)",
			ErrInvalidParameters, s.WirePitchY, s.WirePitchU, s.WirePitchV)
	}
	if s.HeightToWidthRatio <= 0 {
		return fmt.Errorf("%w: heightToWidthRatio %v <= 0", ErrInvalidParameters, s.HeightToWidthRatio)
	}
	return nil
}
