package voxel

import "fmt"

// Block is the voxel type used by the grid, the heightmap loader and the
// CLI. Any non-air block is solid and therefore visible.
type Block uint16

const (
	BlockAir Block = iota
	BlockStone
	BlockDirt
	BlockGrass
	BlockSand
	BlockSnow
)

var blockNames = map[Block]string{
	BlockAir:   "air",
	BlockStone: "stone",
	BlockDirt:  "dirt",
	BlockGrass: "grass",
	BlockSand:  "sand",
	BlockSnow:  "snow",
}

var blocksByName = func() map[string]Block {
	m := make(map[string]Block, len(blockNames))
	for b, n := range blockNames {
		m[n] = b
	}
	return m
}()

// ID implements Voxel.
func (b Block) ID() Block {
	return b
}

// Visibility implements Visibler: air is hidden, everything else visible.
func (b Block) Visibility() Visibility {
	if b == BlockAir {
		return Hidden
	}
	return Visible
}

func (b Block) String() string {
	if n, ok := blockNames[b]; ok {
		return n
	}
	return fmt.Sprintf("block#%d", uint16(b))
}

// ParseBlock resolves a block by name.
func ParseBlock(name string) (Block, error) {
	if b, ok := blocksByName[name]; ok {
		return b, nil
	}
	return BlockAir, fmt.Errorf("voxel: unknown block %q", name)
}
