package meshing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cullmesh/internal/config"
	"cullmesh/internal/face"
	"cullmesh/internal/profiling"
	"cullmesh/internal/voxel"
)

// MeshJob represents a meshing job request
type MeshJob[V voxel.Visibler] struct {
	Coord voxel.ChunkCoord
	// Dims is the unpadded size of the volume.
	Dims   voxel.Dims
	Volume []V
	// Padded marks Volume as already carrying its border, in which case it
	// goes straight to Eval instead of EvalAppendBorder.
	Padded bool
	// Result channel - will be sent the result when done
	ResultChan chan MeshResult
}

// MeshResult contains the result of a meshing operation
type MeshResult struct {
	Coord voxel.ChunkCoord
	Quads []Quad
	// Empty is set when the job had a zero dimension.
	Empty bool
	Error error
}

// WorkerPool manages goroutines for mesh generation. The mesher itself is
// single threaded; the pool only runs independent jobs side by side.
type WorkerPool[V voxel.Visibler] struct {
	jobQueue chan MeshJob[V]
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	faces    face.Table
	settings config.Mesh
}

// NewWorkerPool creates a new mesh worker pool
func NewWorkerPool[V voxel.Visibler](workers int, queueSize int, s config.Mesh) *WorkerPool[V] {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	pool := &WorkerPool[V]{
		jobQueue: make(chan MeshJob[V], queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
		faces:    face.ForHandedness(s.Handedness),
		settings: s,
	}

	// Start worker goroutines
	for i := range workers {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// SubmitJob submits a mesh generation job to the pool
// Returns true if job was submitted successfully, false if queue is full
func (p *WorkerPool[V]) SubmitJob(job MeshJob[V]) bool {
	select {
	case <-p.ctx.Done():
		return false
	default:
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false // Queue is full
	}
}

// SubmitJobBlocking submits a job and blocks until it's queued or the pool
// shuts down.
func (p *WorkerPool[V]) SubmitJobBlocking(job MeshJob[V]) bool {
	select {
	case p.jobQueue <- job:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// worker is the worker goroutine that processes mesh jobs
func (p *WorkerPool[V]) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			result := p.process(job)

			// Send result back
			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// process meshes one job. Precondition panics from the mesher (a volume
// shorter than its dimensions) are reported as the job's error.
func (p *WorkerPool[V]) process(job MeshJob[V]) (result MeshResult) {
	result.Coord = job.Coord

	start := time.Now()
	defer func() {
		profiling.Record("meshing.job", time.Since(start))
		if r := recover(); r != nil {
			result.Quads = nil
			result.Error = fmt.Errorf("meshing: chunk %v: %v", job.Coord, r)
		}
	}()

	c := NewCulling(job.Dims, p.faces, p.settings)

	var (
		res *Result
		ok  bool
	)
	if job.Padded {
		res, ok = Eval(c, job.Volume)
	} else {
		res, ok = EvalAppendBorder(c, job.Volume)
	}
	if !ok {
		result.Empty = true
		return result
	}
	result.Quads = res.Quads
	return result
}

// Shutdown gracefully shuts down the worker pool. Jobs still queued are
// dropped.
func (p *WorkerPool[V]) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// GetQueueLength returns the current number of jobs in the queue
func (p *WorkerPool[V]) GetQueueLength() int {
	return len(p.jobQueue)
}
