package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
)

const (
	DefaultGridSize  = 64
	DefaultChunkSize = 16
	MaxChunkSize     = 64
)

// Config holds everything a cullmesh run needs. Fields map 1:1 to the JSON
// config file; CLI flags override them through Resolve.
type Config struct {
	Input  string `json:"input"`
	Output string `json:"output"`

	Width  int `json:"width"`
	Height int `json:"height"`
	Depth  int `json:"depth"`

	ChunkSize int    `json:"chunk_size"`
	Workers   int    `json:"workers"`
	Block     string `json:"block"`

	// Terrain and Seed pick the generator used when there is no Input.
	Terrain string `json:"terrain"`
	Seed    int64  `json:"seed"`

	// Stream meshes through the job queue and reports each chunk as it
	// completes.
	Stream bool `json:"stream"`

	Mesh Mesh `json:"mesh"`
}

// Flags holds CLI flag values that override config file settings. Zero
// values and nil pointers mean "not given".
type Flags struct {
	Input     string
	Output    string
	Width     int
	Height    int
	Depth     int
	ChunkSize int
	Workers   int
	Block     string
	Terrain   string
	Seed      *int64
	Stream    bool

	UVOrigin   *UVOrigin
	Winding    *Winding
	Handedness *Handedness
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values, which are also the
// default mesh conventions.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI overrides and fills the remaining gaps with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Input != "" {
		c.Input = flags.Input
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Depth > 0 {
		c.Depth = flags.Depth
	}
	if flags.ChunkSize > 0 {
		c.ChunkSize = flags.ChunkSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Block != "" {
		c.Block = flags.Block
	}
	if flags.Terrain != "" {
		c.Terrain = flags.Terrain
	}
	if flags.Seed != nil {
		c.Seed = *flags.Seed
	}
	if flags.Stream {
		c.Stream = true
	}
	if flags.UVOrigin != nil {
		c.Mesh.UVOrigin = *flags.UVOrigin
	}
	if flags.Winding != nil {
		c.Mesh.Winding = *flags.Winding
	}
	if flags.Handedness != nil {
		c.Mesh.Handedness = *flags.Handedness
	}

	if c.Output == "" {
		c.Output = "mesh.glb"
	}
	if c.Width <= 0 {
		c.Width = DefaultGridSize
	}
	if c.Height <= 0 {
		c.Height = DefaultGridSize
	}
	if c.Depth <= 0 {
		c.Depth = DefaultGridSize
	}

	// Clamp to reasonable values
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.ChunkSize > MaxChunkSize {
		c.ChunkSize = MaxChunkSize
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Block == "" {
		c.Block = "stone"
	}
	if c.Terrain == "" {
		c.Terrain = "hill"
	}
}

// Validate reports settings Resolve cannot repair.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Mesh.UVOrigin.MarshalText(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Mesh.Winding.MarshalText(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Mesh.Handedness.MarshalText(); err != nil {
		errs = append(errs, err)
	}
	if c.Width < 0 || c.Height < 0 || c.Depth < 0 {
		errs = append(errs, fmt.Errorf("config: negative grid size %dx%dx%d", c.Width, c.Height, c.Depth))
	}
	return errors.Join(errs...)
}
