// Package mapdef builds hex maps from declarative YAML definitions: a
// shape (hexagonal or rectangular extent), a pixel layout, and an
// obstacle set given explicitly and/or seeded by density. The core
// geometry packages stay pure; mapdef is the configuration surface that
// feeds them.
package mapdef

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RH2/hexnav/hex"
)

// Def is a declarative map definition.
type Def struct {
	// Shape is "hexagon" (Radius around the origin) or "rectangle"
	// (Width x Height in offset coordinates under OffsetScheme).
	Shape  string `yaml:"shape"`
	Radius int    `yaml:"radius"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// OffsetScheme names the offset parity scheme for rectangular maps
	// and for the Obstacles list: odd-r, even-r, odd-q or even-q.
	OffsetScheme string `yaml:"offset_scheme"`

	// Layout and HexSize describe the pixel mapping handed to renderers.
	Layout  string  `yaml:"layout"`
	HexSize float64 `yaml:"hex_size"`

	// Obstacles lists blocked cells as [col, row] pairs in OffsetScheme.
	Obstacles [][2]int `yaml:"obstacles"`

	// ObstacleDensity in [0,1) additionally blocks that fraction of
	// cells, chosen deterministically from Seed.
	ObstacleDensity float64 `yaml:"obstacle_density"`
	Seed            int64   `yaml:"seed"`
}

// Map is a compiled definition ready for the geometry packages.
type Map struct {
	Cells   hex.Set
	Blocked hex.Set
	Layout  hex.Layout
	Scheme  hex.Scheme
	HexSize float64
}

// Load reads and parses a map definition from a YAML file.
func Load(path string) (*Def, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map definition: %w", err)
	}
	return Parse(data)
}

// Parse parses a map definition from YAML and applies defaults: a
// pointy-top odd-r hexagonal map of radius 5 with hex size 10.
func Parse(data []byte) (*Def, error) {
	var def Def
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse map definition: %w", err)
	}

	if def.Shape == "" {
		def.Shape = "hexagon"
	}
	if def.Shape == "hexagon" && def.Radius == 0 {
		def.Radius = 5
	}
	if def.OffsetScheme == "" {
		def.OffsetScheme = "odd-r"
	}
	if def.Layout == "" {
		def.Layout = "pointy"
	}
	if def.HexSize == 0 {
		def.HexSize = 10
	}

	return &def, nil
}

// Build compiles the definition into cell and obstacle sets.
func (d *Def) Build() (*Map, error) {
	scheme, err := parseScheme(d.OffsetScheme)
	if err != nil {
		return nil, err
	}
	layout, err := parseLayout(d.Layout)
	if err != nil {
		return nil, err
	}
	if d.HexSize <= 0 {
		return nil, fmt.Errorf("hex_size must be positive, got %v", d.HexSize)
	}
	if d.ObstacleDensity < 0 || d.ObstacleDensity >= 1 {
		return nil, fmt.Errorf("obstacle_density must be in [0,1), got %v", d.ObstacleDensity)
	}

	var cells hex.Set
	switch d.Shape {
	case "hexagon":
		if d.Radius < 0 {
			return nil, fmt.Errorf("radius must be non-negative, got %d", d.Radius)
		}
		cells = hex.Hexagon(hex.Cube{}, d.Radius)
	case "rectangle":
		if d.Width <= 0 || d.Height <= 0 {
			return nil, fmt.Errorf("rectangle needs positive width and height, got %dx%d", d.Width, d.Height)
		}
		cells = hex.Rectangle(d.Width, d.Height, scheme)
	default:
		return nil, fmt.Errorf("unknown map shape %q", d.Shape)
	}

	blocked := make(hex.Set)
	for _, o := range d.Obstacles {
		c := hex.Offset{Col: o[0], Row: o[1], Scheme: scheme}.ToCube()
		if !cells[c] {
			return nil, fmt.Errorf("obstacle [%d, %d] lies outside the map", o[0], o[1])
		}
		blocked[c] = true
	}
	if d.ObstacleDensity > 0 {
		scatter(cells, blocked, d.Seed, d.ObstacleDensity)
	}

	return &Map{
		Cells:   cells,
		Blocked: blocked,
		Layout:  layout,
		Scheme:  scheme,
		HexSize: d.HexSize,
	}, nil
}

func parseScheme(name string) (hex.Scheme, error) {
	switch name {
	case "odd-r":
		return hex.OddR, nil
	case "even-r":
		return hex.EvenR, nil
	case "odd-q":
		return hex.OddQ, nil
	case "even-q":
		return hex.EvenQ, nil
	}
	return 0, fmt.Errorf("unknown offset scheme %q", name)
}

func parseLayout(name string) (hex.Layout, error) {
	switch name {
	case "pointy":
		return hex.Pointy, nil
	case "flat":
		return hex.Flat, nil
	}
	return 0, fmt.Errorf("unknown layout %q", name)
}
