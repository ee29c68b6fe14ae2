package voxel

// Grid is a dense volume of blocks in the flat layout described by Dims.
type Grid struct {
	dims   Dims
	blocks []Block
}

// NewGrid allocates an all-air grid.
func NewGrid(d Dims) *Grid {
	return &Grid{
		dims:   d,
		blocks: make([]Block, d.Len()),
	}
}

// Dims returns the grid size.
func (g *Grid) Dims() Dims {
	return g.dims
}

// Blocks returns the backing slice, suitable for the mesher.
func (g *Grid) Blocks() []Block {
	return g.blocks
}

// Get returns the block at (x, y, z); out of range reads are air.
func (g *Grid) Get(x, y, z int) Block {
	if !g.dims.Contains(x, y, z) {
		return BlockAir
	}
	return g.blocks[g.dims.Index(x, y, z)]
}

// Set stores a block; out of range writes are ignored.
func (g *Grid) Set(x, y, z int, b Block) {
	if !g.dims.Contains(x, y, z) {
		return
	}
	g.blocks[g.dims.Index(x, y, z)] = b
}

// Fill sets every cell of the box [x0,x1)x[y0,y1)x[z0,z1), clipped to the grid.
func (g *Grid) Fill(x0, y0, z0, x1, y1, z1 int, b Block) {
	x0, x1 = clampSpan(x0, x1, g.dims.W)
	y0, y1 = clampSpan(y0, y1, g.dims.H)
	z0, z1 = clampSpan(z0, z1, g.dims.D)
	for z := z0; z < z1; z++ {
		for y := y0; y < y1; y++ {
			row := g.dims.Index(0, y, z)
			for x := x0; x < x1; x++ {
				g.blocks[row+x] = b
			}
		}
	}
}

// Count returns the number of visible blocks.
func (g *Grid) Count() int {
	n := 0
	for _, b := range g.blocks {
		if b.Visibility().IsVisible() {
			n++
		}
	}
	return n
}

func clampSpan(lo, hi, size int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > size {
		hi = size
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
