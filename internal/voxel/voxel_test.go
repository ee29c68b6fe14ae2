package voxel

import (
	"strings"
	"testing"
)

func TestBlockCapability(t *testing.T) {
	if BlockAir.Visibility() != Hidden {
		t.Errorf("air should be hidden")
	}
	for _, b := range []Block{BlockStone, BlockDirt, BlockGrass, BlockSand, BlockSnow} {
		if !b.Visibility().IsVisible() {
			t.Errorf("%s should be visible", b)
		}
		if b.ID() != b {
			t.Errorf("%s: ID() = %v", b, b.ID())
		}
	}
	var _ Voxel[Block] = BlockStone
}

func TestParseBlock(t *testing.T) {
	b, err := ParseBlock("grass")
	if err != nil || b != BlockGrass {
		t.Fatalf("ParseBlock(grass) = %v, %v", b, err)
	}
	if _, err := ParseBlock("unobtainium"); err == nil {
		t.Error("expected error for unknown block")
	}
	if s := Block(999).String(); s != "block#999" {
		t.Errorf("unknown block String: got %q", s)
	}
}

func TestCell(t *testing.T) {
	c := Present(BlockDirt)
	if !c.IsPresent() || c.Visibility() != Visible {
		t.Fatalf("present cell: %+v", c)
	}
	if v, ok := c.Lookup(); !ok || v != BlockDirt {
		t.Errorf("Lookup: got %v, %v", v, ok)
	}
	if id := CellID[Block](c); id != BlockDirt {
		t.Errorf("CellID: got %v", id)
	}

	a := Absent[Block]()
	if a.IsPresent() || a.Visibility() != Hidden {
		t.Fatalf("absent cell should be hidden: %+v", a)
	}
	if _, ok := a.Lookup(); ok {
		t.Error("Lookup on absent cell reported ok")
	}

	// An absent cell wrapping a visible type is still hidden.
	var zero Cell[Block]
	if zero.Visibility() != Hidden {
		t.Error("zero cell should be hidden")
	}
}

func TestAbsentCellIdentityPanics(t *testing.T) {
	for name, fn := range map[string]func(){
		"CellID": func() { CellID[Block](Absent[Block]()) },
		"Voxel":  func() { Absent[Block]().Voxel() },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s on absent cell did not panic", name)
				}
			}()
			fn()
		})
	}
}

func TestDimsIndex(t *testing.T) {
	d := Dims{W: 3, H: 4, D: 5}
	if d.Len() != 60 {
		t.Fatalf("Len: got %d", d.Len())
	}
	if got := d.Index(1, 2, 3); got != 1+2*3+3*3*4 {
		t.Errorf("Index(1,2,3) = %d", got)
	}
	for i := 0; i < d.Len(); i++ {
		x, y, z := d.Coords(i)
		if d.Index(x, y, z) != i {
			t.Fatalf("Coords(%d) = %d,%d,%d does not round trip", i, x, y, z)
		}
	}
	if p := d.Padded(); p != (Dims{W: 5, H: 6, D: 7}) {
		t.Errorf("Padded: got %v", p)
	}
	if d.Contains(3, 0, 0) || d.Contains(-1, 0, 0) || !d.Contains(2, 3, 4) {
		t.Error("Contains bounds are wrong")
	}
	for _, e := range []Dims{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}, {-1, 1, 1}, {-1, -1, 1}, {2, 3, -4}} {
		if !e.Empty() {
			t.Errorf("%v should be empty", e)
		}
		if e.Len() != 0 {
			t.Errorf("%v: Len = %d, want 0", e, e.Len())
		}
	}
}

func TestNegativeDimsAreEmpty(t *testing.T) {
	d := Dims{W: -1, H: -1, D: 1}
	if got := Pad([]Block{}, d); got != nil {
		t.Errorf("Pad: got %d cells, want nil", len(got))
	}
	g := NewGrid(d)
	if len(g.Blocks()) != 0 || g.Chunks(2) != nil {
		t.Errorf("grid over %v holds %d blocks", d, len(g.Blocks()))
	}
	g.Set(0, 0, 0, BlockStone)
	if g.Count() != 0 {
		t.Error("Set wrote into an empty grid")
	}
}

func TestPad(t *testing.T) {
	d := Dims{W: 2, H: 1, D: 1}
	padded := Pad([]Block{BlockStone, BlockDirt}, d)

	p := d.Padded()
	if len(padded) != p.Len() {
		t.Fatalf("padded length: got %d, want %d", len(padded), p.Len())
	}
	present := 0
	for i, c := range padded {
		if !c.IsPresent() {
			continue
		}
		present++
		x, y, z := p.Coords(i)
		if x < 1 || x > d.W || y < 1 || y > d.H || z < 1 || z > d.D {
			t.Errorf("present cell in border at %d,%d,%d", x, y, z)
		}
	}
	if present != 2 {
		t.Errorf("present cells: got %d, want 2", present)
	}
	if padded[p.Index(1, 1, 1)].Voxel() != BlockStone || padded[p.Index(2, 1, 1)].Voxel() != BlockDirt {
		t.Error("interior cells not copied in order")
	}
}

func TestPadShortVolumePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "needs 8") {
			t.Errorf("unexpected panic message %v", r)
		}
	}()
	Pad(make([]Block, 3), Dims{W: 2, H: 2, D: 2})
}

func TestGrid(t *testing.T) {
	g := NewGrid(Dims{W: 4, H: 3, D: 2})
	g.Set(1, 2, 1, BlockSand)
	g.Set(9, 9, 9, BlockSand)
	if g.Get(1, 2, 1) != BlockSand || g.Get(-1, 0, 0) != BlockAir {
		t.Fatal("Get/Set mismatch")
	}
	g.Fill(-5, 0, 0, 10, 1, 1, BlockStone)
	if got := g.Count(); got != 5 {
		t.Errorf("Count: got %d, want 5", got)
	}
}

func TestChunks(t *testing.T) {
	g := NewGrid(Dims{W: 5, H: 2, D: 3})
	chunks := g.Chunks(2)
	if len(chunks) != 3*1*2 {
		t.Fatalf("chunk count: got %d", len(chunks))
	}
	total := 0
	for _, c := range chunks {
		total += c.Dims.Len()
	}
	if total != g.Dims().Len() {
		t.Errorf("chunks cover %d cells, grid has %d", total, g.Dims().Len())
	}
	last := chunks[len(chunks)-1]
	if last.Coord != (ChunkCoord{X: 2, Y: 0, Z: 1}) || last.Dims != (Dims{W: 1, H: 2, D: 1}) {
		t.Errorf("edge chunk: %+v", last)
	}
	if g.Chunks(0) != nil {
		t.Error("zero chunk size should yield nothing")
	}
}

func TestPaddedChunkSeesNeighbors(t *testing.T) {
	g := NewGrid(Dims{W: 4, H: 1, D: 1})
	g.Fill(0, 0, 0, 4, 1, 1, BlockStone)

	chunks := g.Chunks(2)
	first := chunks[0]
	padded := g.PaddedChunk(first)
	p := first.Dims.Padded()

	// Right border of the first chunk holds the grid cell x=2.
	if c := padded[p.Index(3, 1, 1)]; !c.IsPresent() || c.Voxel() != BlockStone {
		t.Errorf("right border should be the neighbor chunk's block, got %+v", c)
	}
	// Left border lies outside the grid.
	if c := padded[p.Index(0, 1, 1)]; c.IsPresent() {
		t.Errorf("left border should be absent, got %+v", c)
	}
}
