// Package terrain fills voxel grids with procedural landscapes for the
// mesher to work on.
package terrain

import (
	"fmt"
	"math"
	"strings"

	"cullmesh/internal/voxel"
)

// Generator fills a grid. top is the block placed on every exposed column
// surface; what lies below is up to the generator.
type Generator interface {
	Populate(g *voxel.Grid, top voxel.Block)
}

// Names lists the generators ByName knows.
var Names = []string{"hill", "flat", "noise", "density"}

// ByName returns a generator by its CLI name.
func ByName(name string, seed int64) (Generator, error) {
	switch strings.ToLower(name) {
	case "", "hill":
		return Hill{Step: 4}, nil
	case "flat":
		return Flat{}, nil
	case "noise":
		return NewHeightfield(seed), nil
	case "density":
		return NewDensity(seed), nil
	}
	return nil, fmt.Errorf("terrain: unknown generator %q (want one of %s)", name, strings.Join(Names, ", "))
}

// column raises one column of height col: filler below, top on top.
func column(g *voxel.Grid, x, z, col int, filler, top voxel.Block) {
	if col <= 0 {
		return
	}
	g.Fill(x, 0, z, x+1, col-1, z+1, filler)
	g.Set(x, col-1, z, top)
}

// Flat fills the lower half of the grid, or Height layers when set.
type Flat struct {
	Height int
}

func (f Flat) Populate(g *voxel.Grid, top voxel.Block) {
	d := g.Dims()
	h := f.Height
	if h <= 0 {
		h = max(1, d.H/2)
	}
	h = min(h, d.H)
	for z := 0; z < d.D; z++ {
		for x := 0; x < d.W; x++ {
			column(g, x, z, h, voxel.BlockDirt, top)
		}
	}
}

// Hill is a round hill centered on the grid, cut into flat terraces Step
// blocks tall. Every column is at least one block high.
type Hill struct {
	Step int
}

func (h Hill) Populate(g *voxel.Grid, top voxel.Block) {
	d := g.Dims()
	if d.Empty() {
		return
	}
	step := max(h.Step, 1)

	cx, cz := float64(d.W-1)/2, float64(d.D-1)/2
	radius := math.Max(math.Hypot(cx, cz), 1)

	for z := 0; z < d.D; z++ {
		for x := 0; x < d.W; x++ {
			t := 1 - math.Hypot(float64(x)-cx, float64(z)-cz)/radius
			col := int(t * float64(d.H))
			col -= col % step
			column(g, x, z, max(1, min(col, d.H)), voxel.BlockDirt, top)
		}
	}
}

// Heightfield raises columns from 2D octave noise.
type Heightfield struct {
	Seed    int64
	Scale   float64
	Octaves Octaves
}

// NewHeightfield creates a heightfield generator with default settings.
func NewHeightfield(seed int64) *Heightfield {
	return &Heightfield{
		Seed:    seed,
		Scale:   1.0 / 32.0,
		Octaves: DefaultOctaves,
	}
}

// HeightAt returns the column height at (x, z) for a grid h blocks tall.
// Heights span the upper three quarters of the grid.
func (n *Heightfield) HeightAt(x, z, h int) int {
	v := n.Octaves.Noise2D(float64(x)*n.Scale, float64(z)*n.Scale, n.Seed)
	base := float64(h) / 4
	return int(math.Floor(base + v*(float64(h)-base)))
}

func (n *Heightfield) Populate(g *voxel.Grid, top voxel.Block) {
	d := g.Dims()
	for z := 0; z < d.D; z++ {
		for x := 0; x < d.W; x++ {
			column(g, x, z, min(n.HeightAt(x, z, d.H), d.H), voxel.BlockStone, top)
		}
	}
}

// Density carves 3D terrain from a density field, allowing overhangs and
// floating pieces. A cell is solid when its density is positive.
type Density struct {
	Seed    int64
	Scale   float64
	Octaves Octaves
}

// NewDensity creates a density generator with default settings.
func NewDensity(seed int64) *Density {
	return &Density{
		Seed:    seed,
		Scale:   1.0 / 24.0,
		Octaves: DefaultOctaves,
	}
}

// DensityAt combines noise in [-1,1] with a gradient that falls from +1 at
// the bottom of a grid h blocks tall to -1 at its top.
func (n *Density) DensityAt(x, y, z, h int) float64 {
	v := n.Octaves.Noise3D(float64(x)*n.Scale, float64(y)*n.Scale, float64(z)*n.Scale, n.Seed)
	v = v*2 - 1
	gradient := 1 - 2*float64(y)/float64(max(h-1, 1))
	return v + gradient
}

func (n *Density) Populate(g *voxel.Grid, top voxel.Block) {
	d := g.Dims()
	for z := 0; z < d.D; z++ {
		for x := 0; x < d.W; x++ {
			// Walk down so the first solid cell under air gets the top block.
			exposed := true
			for y := d.H - 1; y >= 0; y-- {
				if n.DensityAt(x, y, z, d.H) <= 0 {
					exposed = true
					continue
				}
				if exposed {
					g.Set(x, y, z, top)
				} else {
					g.Set(x, y, z, voxel.BlockStone)
				}
				exposed = false
			}
		}
	}
}
