package main

import (
	"context"
	"flag"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/xlab/closer"

	"cullmesh/internal/config"
	"cullmesh/internal/export"
	"cullmesh/internal/heightmap"
	"cullmesh/internal/meshing"
	"cullmesh/internal/profiling"
	"cullmesh/internal/terrain"
	"cullmesh/internal/voxel"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cullmesh: ")

	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	input := flag.String("in", "", "Heightmap image (png, jpeg, bmp, tiff); empty generates terrain")
	output := flag.String("out", "", "Output .glb file (default: mesh.glb)")
	width := flag.Int("w", 0, "Grid width (default: 64)")
	height := flag.Int("h", 0, "Grid height (default: 64)")
	depth := flag.Int("d", 0, "Grid depth (default: 64)")
	chunk := flag.Int("chunk", 0, "Chunk edge length (default: 16)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	block := flag.String("block", "", "Top block of every column (default: stone)")
	stream := flag.Bool("stream", false, "Mesh through the job queue and log each chunk as it finishes")
	gen := flag.String("terrain", "", "Generator without -in: "+strings.Join(terrain.Names, ", ")+" (default: hill)")

	var flags config.Flags
	flag.Func("seed", "Terrain seed (default: 0)", func(s string) error {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		flags.Seed = &v
		return nil
	})
	flag.Func("uv", "UV origin: top-left or bottom-left", func(s string) error {
		var v config.UVOrigin
		if err := v.UnmarshalText([]byte(s)); err != nil {
			return err
		}
		flags.UVOrigin = &v
		return nil
	})
	flag.Func("winding", "Triangle winding: cw or ccw", func(s string) error {
		var v config.Winding
		if err := v.UnmarshalText([]byte(s)); err != nil {
			return err
		}
		flags.Winding = &v
		return nil
	})
	flag.Func("hand", "Coordinate system: right or left", func(s string) error {
		var v config.Handedness
		if err := v.UnmarshalText([]byte(s)); err != nil {
			return err
		}
		flags.Handedness = &v
		return nil
	})

	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	closer.Bind(cancel)
	closer.Bind(func() {
		if top := profiling.TopN(5); top != "" {
			log.Printf("timings: %s", top)
		}
	})
	defer closer.Close()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			closer.Fatalln(err)
		}
	}

	// CLI flags override config file
	flags.Input = *input
	flags.Output = *output
	flags.Width = *width
	flags.Height = *height
	flags.Depth = *depth
	flags.ChunkSize = *chunk
	flags.Workers = *workers
	flags.Block = *block
	flags.Terrain = *gen
	flags.Stream = *stream
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		closer.Fatalln(err)
	}
	config.SetMesh(cfg.Mesh)

	top, err := voxel.ParseBlock(cfg.Block)
	if err != nil {
		closer.Fatalln(err)
	}

	grid, err := buildGrid(cfg, top)
	if err != nil {
		closer.Fatalln(err)
	}
	log.Printf("grid %s, %d solid blocks, mesh %s", grid.Dims(), grid.Count(), config.GetMesh())

	start := time.Now()
	var meshes []meshing.ChunkMesh
	if cfg.Stream {
		meshes, err = meshing.StreamChunks(ctx, grid, cfg.ChunkSize, config.GetMesh(), cfg.Workers, func(m meshing.ChunkMesh) {
			log.Printf("chunk %v: %d quads", m.Chunk.Coord, len(m.Quads))
		})
	} else {
		meshes, err = meshing.MeshChunks(ctx, grid, cfg.ChunkSize, config.GetMesh(), cfg.Workers)
	}
	if err != nil {
		closer.Fatalln(err)
	}
	log.Printf("meshed %d chunks into %d quads in %v", len(meshes), meshing.CountQuads(meshes), time.Since(start))
	lo, hi := meshing.MeshBounds(meshes)
	log.Printf("bounds %v - %v", lo, hi)

	doc, err := export.Document(meshes, config.GetMesh().Winding)
	if err != nil {
		closer.Fatalln(err)
	}
	if err := export.SaveGLB(cfg.Output, doc); err != nil {
		closer.Fatalln(err)
	}
	log.Printf("wrote %s (%d nodes)", cfg.Output, len(doc.Nodes))
}

func buildGrid(cfg config.Config, top voxel.Block) (*voxel.Grid, error) {
	defer profiling.Track("main.buildGrid")()

	if cfg.Input == "" {
		gen, err := terrain.ByName(cfg.Terrain, cfg.Seed)
		if err != nil {
			return nil, err
		}
		g := voxel.NewGrid(voxel.Dims{W: cfg.Width, H: cfg.Height, D: cfg.Depth})
		gen.Populate(g, top)
		return g, nil
	}
	img, err := heightmap.Load(cfg.Input)
	if err != nil {
		return nil, err
	}
	return heightmap.ToGrid(img, cfg.Width, cfg.Height, cfg.Depth, top)
}
