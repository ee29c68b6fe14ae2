package export

import (
	"github.com/go-gl/mathgl/mgl32"

	"cullmesh/internal/config"
	"cullmesh/internal/meshing"
)

// Vertices holds the flat vertex streams of a triangulated quad list.
// Positions, Normals and UVs are parallel; Indices reference them three
// per triangle.
type Vertices struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// Len returns the number of vertices.
func (v *Vertices) Len() int {
	return len(v.Positions)
}

// Triangulate expands every quad into four vertices and two triangles
// wound according to w.
func Triangulate(quads []meshing.Quad, w config.Winding) Vertices {
	out := Vertices{
		Positions: make([]mgl32.Vec3, 0, len(quads)*meshing.QuadSize),
		Normals:   make([]mgl32.Vec3, 0, len(quads)*meshing.QuadSize),
		UVs:       make([]mgl32.Vec2, 0, len(quads)*meshing.QuadSize),
		Indices:   make([]uint32, 0, len(quads)*6),
	}
	for _, q := range quads {
		base := uint32(len(out.Positions))
		n := q.Normal.Mgl()
		for i, p := range q.Points {
			out.Positions = append(out.Positions, p.Mgl())
			out.Normals = append(out.Normals, n)
			out.UVs = append(out.UVs, q.UV[i].Mgl())
		}
		for _, idx := range q.Triangles(w) {
			out.Indices = append(out.Indices, base+idx)
		}
	}
	return out
}
