package meshing

import (
	"fmt"

	"cullmesh/internal/config"
	"cullmesh/internal/face"
	"cullmesh/internal/vecmath"
	"cullmesh/internal/voxel"
)

// Culling emits one quad per visible face transition: a face is drawn
// whenever a visible voxel's neighbor on that side has a different
// visibility. Faces are never merged.
//
// A Culling value holds no per-call state, so the same value may mesh many
// volumes concurrently.
type Culling struct {
	Dims     voxel.Dims
	Faces    face.Table
	Settings config.Mesh
}

// NewCulling creates a mesher for volumes of the given (unpadded) size. It
// panics if faces is not a valid orientation table.
func NewCulling(d voxel.Dims, faces face.Table, s config.Mesh) *Culling {
	if err := faces.Validate(); err != nil {
		panic(fmt.Sprintf("meshing: %v", err))
	}
	return &Culling{
		Dims:     d,
		Faces:    faces,
		Settings: s,
	}
}

// NewCullingFor derives the orientation table from the configured handedness.
func NewCullingFor(d voxel.Dims, s config.Mesh) *Culling {
	return NewCulling(d, face.ForHandedness(s.Handedness), s)
}

// InBounds reports whether a padded coordinate addresses the interior.
// Padded addressing is 1-based: 0 and W+1 are border cells.
func (c *Culling) InBounds(x, y, z int) bool {
	return x >= 1 && x <= c.Dims.W &&
		y >= 1 && y <= c.Dims.H &&
		z >= 1 && z <= c.Dims.D
}

// neighborStates reads the visibility of the six neighbors of (x, y, z) in
// face ordinal order. The coordinate must be an interior one.
func neighborStates[V voxel.Visibler](c *Culling, volume []V, x, y, z int) [face.Count]bool {
	b := c.Dims.Padded()
	var states [face.Count]bool
	for f, off := range c.Faces {
		id := b.Index(x+int(off.X), y+int(off.Y), z+int(off.Z))
		states[f] = volume[id].Visibility().IsVisible()
	}
	return states
}

// Eval meshes a volume that is already padded: it must hold
// (W+2)*(H+2)*(D+2) cells with the real volume at 1-based coordinates.
// Passing an unpadded volume is a programming error and panics.
//
// The boolean is false, with a nil result, when any dimension is zero.
func Eval[V voxel.Visibler](c *Culling, volume []V) (*Result, bool) {
	if c.Dims.Empty() {
		return nil, false
	}

	b := c.Dims.Padded()
	if len(volume) < b.Len() {
		panic(fmt.Sprintf("meshing: padded volume has %d cells, %s needs %d", len(volume), b, b.Len()))
	}

	cubeFaces := UnitCube(c.Faces, c.Settings.UVOrigin)

	result := &Result{
		Quads: make([]Quad, 0, c.Dims.Len()*face.Count),
	}

	// Border depth layers are never centers; border rows and columns are
	// visited and rejected by InBounds.
	for z := 1; z < b.D-1; z++ {
		for y := 0; y < b.H; y++ {
			for x := 0; x < b.W; x++ {
				if !c.InBounds(x, y, z) {
					continue
				}

				state := volume[b.Index(x, y, z)].Visibility().IsVisible()
				if !state {
					continue
				}

				// Remove the border from the coordinates
				pos := vecmath.V3(float32(x-1), float32(y-1), float32(z-1))
				neighbors := neighborStates(c, volume, x, y, z)

				for f := range face.Count {
					if state == neighbors[f] {
						continue
					}
					result.Quads = append(result.Quads, place(cubeFaces[f], pos))
				}
			}
		}
	}

	return result, true
}

// EvalAppendBorder pads volume (W*H*D cells) with a hidden border and
// meshes it.
func EvalAppendBorder[V voxel.Visibler](c *Culling, volume []V) (*Result, bool) {
	if c.Dims.Empty() {
		return nil, false
	}
	return Eval(c, voxel.Pad(volume, c.Dims))
}

// place moves a unit cube face to pos and runs the UV remap. The remap
// brackets the UV space between corners 0 and 2 and re-interpolates every
// corner inside that bracket; keep the arithmetic as is, emitted UVs depend
// on it.
func place(q Quad, pos vecmath.Vec3[float32]) Quad {
	q = q.Translate(pos)

	uvSpace := [2]vecmath.Vec2[float32]{
		vecmath.Lerp2(q.UV[0], q.UV[2], vecmath.V2[float32](0, 0)),
		vecmath.Lerp2(q.UV[0], q.UV[2], vecmath.V2[float32](1, 1)),
	}
	for i := range q.UV {
		q.UV[i] = vecmath.Lerp2(uvSpace[0], uvSpace[1], q.UV[i])
	}
	return q
}
