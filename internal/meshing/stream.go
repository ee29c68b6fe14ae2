package meshing

import (
	"context"
	"fmt"

	"cullmesh/internal/config"
	"cullmesh/internal/profiling"
	"cullmesh/internal/voxel"
)

// StreamChunks meshes the grid chunk by chunk on a WorkerPool and calls
// onChunk as each chunk finishes, in completion order. onChunk runs on the
// calling goroutine and may be nil. The returned slice is in chunk order,
// the same as MeshChunks.
func StreamChunks(ctx context.Context, g *voxel.Grid, size int, s config.Mesh, workers int, onChunk func(ChunkMesh)) ([]ChunkMesh, error) {
	defer profiling.Track("meshing.StreamChunks")()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("meshing: stream chunks: %w", err)
	}

	chunks := g.Chunks(size)
	if len(chunks) == 0 {
		return nil, nil
	}

	index := make(map[voxel.ChunkCoord]int, len(chunks))
	for i, ch := range chunks {
		index[ch.Coord] = i
	}

	pool := NewWorkerPool[voxel.Cell[voxel.Block]](workers, workers*2, s)
	defer pool.Shutdown()

	results := make(chan MeshResult, len(chunks))
	go func() {
		for _, ch := range chunks {
			job := MeshJob[voxel.Cell[voxel.Block]]{
				Coord:      ch.Coord,
				Dims:       ch.Dims,
				Volume:     g.PaddedChunk(ch),
				Padded:     true,
				ResultChan: results,
			}
			if !pool.SubmitJobBlocking(job) {
				return
			}
		}
	}()

	meshes := make([]ChunkMesh, len(chunks))
	for range chunks {
		select {
		case r := <-results:
			if r.Error != nil {
				return nil, fmt.Errorf("meshing: stream chunks: %w", r.Error)
			}
			i := index[r.Coord]
			meshes[i] = ChunkMesh{Chunk: chunks[i], Quads: r.Quads}
			if onChunk != nil {
				onChunk(meshes[i])
			}
		case <-ctx.Done():
			return nil, fmt.Errorf("meshing: stream chunks: %w", ctx.Err())
		}
	}
	return meshes, nil
}
