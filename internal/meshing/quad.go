package meshing

import (
	"cullmesh/internal/config"
	"cullmesh/internal/vecmath"
)

// QuadSize is the number of corners of a quad.
const QuadSize = 4

// Quad is one emitted face. Points are in a consistent rotational order;
// UV[i] belongs to Points[i].
type Quad struct {
	Points [QuadSize]vecmath.Vec3[float32]
	Normal vecmath.Vec3[float32]
	UV     [QuadSize]vecmath.Vec2[float32]
}

// NewQuad builds a quad with a zero normal and zero UVs.
func NewQuad(a, b, c, d vecmath.Vec3[float32]) Quad {
	return Quad{Points: [QuadSize]vecmath.Vec3[float32]{a, b, c, d}}
}

var (
	clockwiseTriangles        = [6]uint32{0, 1, 2, 0, 2, 3}
	counterClockwiseTriangles = [6]uint32{2, 1, 0, 3, 2, 0}
)

// Triangles returns the two triangles of the quad as corner indices for
// the configured winding.
func (q Quad) Triangles(w config.Winding) [6]uint32 {
	if w == config.CounterClockwise {
		return counterClockwiseTriangles
	}
	return clockwiseTriangles
}

// Translate moves every corner by off.
func (q Quad) Translate(off vecmath.Vec3[float32]) Quad {
	for i := range q.Points {
		q.Points[i] = q.Points[i].Add(off)
	}
	return q
}

// computeNormal derives the normal from the first three corners.
func (q Quad) computeNormal() vecmath.Vec3[float32] {
	cb := q.Points[2].Sub(q.Points[1])
	ab := q.Points[0].Sub(q.Points[1])
	return vecmath.Cross(cb, ab)
}
