package voxel

// ChunkCoord addresses a cubic chunk of a grid in chunk units.
type ChunkCoord struct {
	X, Y, Z int
}

// Chunk describes one cubic region of a grid: its coordinate, the origin
// of its first cell in grid cells and its actual size (edge chunks may be
// smaller than the nominal chunk size).
type Chunk struct {
	Coord  ChunkCoord
	Origin [3]int
	Dims   Dims
}

// Chunks splits the grid into chunks of the given edge length, z outer,
// then y, then x, matching the mesher scan order.
func (g *Grid) Chunks(size int) []Chunk {
	if size <= 0 || g.dims.Empty() {
		return nil
	}
	nx := (g.dims.W + size - 1) / size
	ny := (g.dims.H + size - 1) / size
	nz := (g.dims.D + size - 1) / size

	chunks := make([]Chunk, 0, nx*ny*nz)
	for cz := 0; cz < nz; cz++ {
		for cy := 0; cy < ny; cy++ {
			for cx := 0; cx < nx; cx++ {
				ox, oy, oz := cx*size, cy*size, cz*size
				chunks = append(chunks, Chunk{
					Coord:  ChunkCoord{X: cx, Y: cy, Z: cz},
					Origin: [3]int{ox, oy, oz},
					Dims: Dims{
						W: min(size, g.dims.W-ox),
						H: min(size, g.dims.H-oy),
						D: min(size, g.dims.D-oz),
					},
				})
			}
		}
	}
	return chunks
}

// PaddedChunk returns the chunk already padded for the mesher. Border cells
// hold the real neighbors from the grid, so faces between two chunks are
// culled exactly as they would be inside one chunk. Border cells outside the
// grid are absent.
func (g *Grid) PaddedChunk(c Chunk) []Cell[Block] {
	p := c.Dims.Padded()
	out := make([]Cell[Block], p.Len())
	for z := 0; z < p.D; z++ {
		for y := 0; y < p.H; y++ {
			for x := 0; x < p.W; x++ {
				gx, gy, gz := c.Origin[0]+x-1, c.Origin[1]+y-1, c.Origin[2]+z-1
				if !g.dims.Contains(gx, gy, gz) {
					continue
				}
				out[p.Index(x, y, z)] = Present(g.blocks[g.dims.Index(gx, gy, gz)])
			}
		}
	}
	return out
}
