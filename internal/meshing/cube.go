package meshing

import (
	"cullmesh/internal/config"
	"cullmesh/internal/face"
	"cullmesh/internal/vecmath"
)

// Corner UVs, listed in quad corner order.
var (
	topLeftUVs = [QuadSize]vecmath.Vec2[float32]{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
	bottomLeftUVs = [QuadSize]vecmath.Vec2[float32]{
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: 0},
		{X: 0, Y: 0},
	}
)

// CornerUVs returns the four corner UVs for an origin convention.
func CornerUVs(origin config.UVOrigin) [QuadSize]vecmath.Vec2[float32] {
	if origin == config.UVBottomLeft {
		return bottomLeftUVs
	}
	return topLeftUVs
}

// UnitCube builds the six faces of the unit cube [0,1]^3 for an orientation
// table, indexed by face ordinal. Every normal points along the face's
// table offset.
func UnitCube(t face.Table, origin config.UVOrigin) [face.Count]Quad {
	// Map {-1,0,1} offsets onto {0,1}.
	var unit [face.Count]vecmath.Vec3[float32]
	for i, d := range t {
		unit[i] = vecmath.Float32(d.Add(vecmath.V3[int32](1, 1, 1)).DivInt(2))
	}

	corner := func(x, y, z face.Face) vecmath.Vec3[float32] {
		return unit[x].Add(unit[y]).Add(unit[z])
	}

	// Named by their left/right, down/up, front/back components.
	ldf := corner(face.Left, face.Down, face.Front)
	rdf := corner(face.Right, face.Down, face.Front)
	luf := corner(face.Left, face.Up, face.Front)
	ruf := corner(face.Right, face.Up, face.Front)
	ldb := corner(face.Left, face.Down, face.Back)
	rdb := corner(face.Right, face.Down, face.Back)
	lub := corner(face.Left, face.Up, face.Back)
	rub := corner(face.Right, face.Up, face.Back)

	quads := [face.Count]Quad{
		face.Right: NewQuad(ruf, rub, rdb, rdf),
		face.Back:  NewQuad(rub, lub, ldb, rdb),
		face.Up:    NewQuad(lub, rub, ruf, luf),
		face.Left:  NewQuad(lub, luf, ldf, ldb),
		face.Front: NewQuad(luf, ruf, rdf, ldf),
		face.Down:  NewQuad(rdb, ldb, ldf, rdf),
	}

	uvs := CornerUVs(origin)
	for f := range quads {
		configureQuad(&quads[f], t[f], uvs)
	}
	return quads
}

// configureQuad sets the normal and UVs. The corner orders above wind all
// six faces the same way, clockwise seen from outside in the table's own
// handedness, so the corners are left alone. The cross product convention
// leaves some computed normals pointing into the cube; those are negated so
// every normal equals its face offset.
func configureQuad(q *Quad, outward vecmath.Vec3[int32], uvs [QuadSize]vecmath.Vec2[float32]) {
	n := q.computeNormal()
	if n.Dot(vecmath.Float32(outward)) < 0 {
		n = n.Neg()
	}
	q.Normal = n
	q.UV = uvs
}
