package meshing

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"

	"cullmesh/internal/config"
	"cullmesh/internal/face"
	"cullmesh/internal/profiling"
	"cullmesh/internal/voxel"
)

// ChunkMesh is the mesh of one grid chunk. Quad positions are local to the
// chunk; add Chunk.Origin to place them in the grid.
type ChunkMesh struct {
	Chunk voxel.Chunk
	Quads []Quad
}

// MeshChunks splits the grid into chunks of the given size and meshes them
// on a pool of workers. Each chunk is padded with its real neighbors, so no
// faces appear on chunk seams. Results come back in chunk order (see
// voxel.Grid.Chunks); chunks without quads are kept with a nil slice.
func MeshChunks(ctx context.Context, g *voxel.Grid, size int, s config.Mesh, workers int) ([]ChunkMesh, error) {
	defer profiling.Track("meshing.MeshChunks")()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("meshing: mesh chunks: %w", err)
	}

	chunks := g.Chunks(size)
	if len(chunks) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = 1
	}

	faces := face.ForHandedness(s.Handedness)

	pool := pond.NewResultPool[ChunkMesh](workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for _, ch := range chunks {
		group.SubmitErr(func() (ChunkMesh, error) {
			if err := ctx.Err(); err != nil {
				return ChunkMesh{}, err
			}
			defer profiling.Track("meshing.chunk")()

			out := ChunkMesh{Chunk: ch}
			res, ok := Eval(NewCulling(ch.Dims, faces, s), g.PaddedChunk(ch))
			if ok {
				out.Quads = res.Quads
			}
			return out, nil
		})
	}

	meshes, err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("meshing: mesh chunks: %w", err)
	}
	return meshes, nil
}

// CountQuads sums the quads of every chunk.
func CountQuads(meshes []ChunkMesh) int {
	n := 0
	for _, m := range meshes {
		n += len(m.Quads)
	}
	return n
}

// MeshBounds returns the grid space box around every quad of meshes. Each
// chunk's local bounds are shifted by its origin. Chunks without quads are
// skipped; if none has any, both corners are zero.
func MeshBounds(meshes []ChunkMesh) (lo, hi mgl32.Vec3) {
	first := true
	for _, m := range meshes {
		if len(m.Quads) == 0 {
			continue
		}
		origin := mgl32.Vec3{float32(m.Chunk.Origin[0]), float32(m.Chunk.Origin[1]), float32(m.Chunk.Origin[2])}
		cl, ch := Bounds(m.Quads)
		cl, ch = cl.Add(origin), ch.Add(origin)
		if first {
			lo, hi, first = cl, ch, false
			continue
		}
		for i := range 3 {
			lo[i] = min(lo[i], cl[i])
			hi[i] = max(hi[i], ch[i])
		}
	}
	return lo, hi
}
