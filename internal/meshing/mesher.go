package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"cullmesh/internal/voxel"
)

// Result is the output of one meshing pass. Quads are in scan order:
// z outer, y, x, then faces in ordinal order.
type Result struct {
	Quads []Quad
}

// Len returns the number of quads; a nil result has none.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Quads)
}

// Bounds returns the axis aligned box around every quad corner of the
// result. An empty result has zero bounds.
func (r *Result) Bounds() (lo, hi mgl32.Vec3) {
	if r == nil {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	return Bounds(r.Quads)
}

// Bounds returns the axis aligned box around every corner of quads.
func Bounds(quads []Quad) (lo, hi mgl32.Vec3) {
	if len(quads) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	lo = quads[0].Points[0].Mgl()
	hi = lo
	for _, q := range quads {
		for _, p := range q.Points {
			v := p.Mgl()
			for i := range 3 {
				lo[i] = min(lo[i], v[i])
				hi[i] = max(hi[i], v[i])
			}
		}
	}
	return lo, hi
}

// Mesher is the meshing capability for one voxel type.
type Mesher[V voxel.Visibler] interface {
	// Eval meshes an already padded volume.
	Eval(volume []V) (*Result, bool)
	// EvalAppendBorder pads the volume first.
	EvalAppendBorder(volume []V) (*Result, bool)
}

type cullingMesher[V voxel.Visibler] struct {
	c *Culling
}

// For exposes a Culling mesher through the Mesher interface.
func For[V voxel.Visibler](c *Culling) Mesher[V] {
	return cullingMesher[V]{c: c}
}

func (m cullingMesher[V]) Eval(volume []V) (*Result, bool) {
	return Eval(m.c, volume)
}

func (m cullingMesher[V]) EvalAppendBorder(volume []V) (*Result, bool) {
	return EvalAppendBorder(m.c, volume)
}
