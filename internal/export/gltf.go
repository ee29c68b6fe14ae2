package export

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"

	"cullmesh/internal/config"
	"cullmesh/internal/meshing"
)

const gltfVersion = "2.0"

// ErrEmptyMesh is returned when no chunk produced any quad.
var ErrEmptyMesh = errors.New("export: mesh is empty")

func newDocument() *gltf.Document {
	doc := &gltf.Document{}
	doc.Asset.Version = gltfVersion
	doc.Asset.Generator = "cullmesh"
	scene := uint32(0)
	doc.Scene = &scene
	doc.Scenes = append(doc.Scenes, &gltf.Scene{})
	doc.Buffers = append(doc.Buffers, &gltf.Buffer{})
	return doc
}

// Document builds a glTF document with one mesh and one node per non-empty
// chunk. Chunk quads are local, so each node is translated to its chunk
// origin. All vertex data shares a single buffer.
func Document(meshes []meshing.ChunkMesh, w config.Winding) (*gltf.Document, error) {
	doc := newDocument()
	for _, m := range meshes {
		if len(m.Quads) == 0 {
			continue
		}
		v := Triangulate(m.Quads, w)
		lo, hi := meshing.Bounds(m.Quads)
		if err := appendMesh(doc, &v, lo, hi, m.Chunk.Origin); err != nil {
			return nil, fmt.Errorf("export: chunk %v: %w", m.Chunk.Coord, err)
		}
	}
	if len(doc.Meshes) == 0 {
		return nil, ErrEmptyMesh
	}
	return doc, nil
}

func appendMesh(doc *gltf.Document, v *Vertices, lo, hi mgl32.Vec3, origin [3]int) error {
	buffer := doc.Buffers[0]

	indices, err := writeView(doc, v.Indices)
	if err != nil {
		return err
	}
	positions, err := writeView(doc, v.Positions)
	if err != nil {
		return err
	}
	normals, err := writeView(doc, v.Normals)
	if err != nil {
		return err
	}
	uvs, err := writeView(doc, v.UVs)
	if err != nil {
		return err
	}

	count := uint32(v.Len())

	idxAcc := addAccessor(doc, &gltf.Accessor{
		BufferView:    &indices,
		ComponentType: gltf.ComponentUint,
		Type:          gltf.AccessorScalar,
		Count:         uint32(len(v.Indices)),
	})
	posAcc := addAccessor(doc, &gltf.Accessor{
		BufferView:    &positions,
		ComponentType: gltf.ComponentFloat,
		Type:          gltf.AccessorVec3,
		Count:         count,
		Min:           lo[:],
		Max:           hi[:],
	})
	nlAcc := addAccessor(doc, &gltf.Accessor{
		BufferView:    &normals,
		ComponentType: gltf.ComponentFloat,
		Type:          gltf.AccessorVec3,
		Count:         count,
	})
	uvAcc := addAccessor(doc, &gltf.Accessor{
		BufferView:    &uvs,
		ComponentType: gltf.ComponentFloat,
		Type:          gltf.AccessorVec2,
		Count:         count,
	})

	meshIdx := uint32(len(doc.Meshes))
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Primitives: []*gltf.Primitive{{
			Indices: &idxAcc,
			Attributes: gltf.Attribute{
				"POSITION":   posAcc,
				"NORMAL":     nlAcc,
				"TEXCOORD_0": uvAcc,
			},
			Mode: gltf.PrimitiveTriangles,
		}},
	})

	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)))
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Mesh:        &meshIdx,
		Translation: [3]float32{float32(origin[0]), float32(origin[1]), float32(origin[2])},
		Rotation:    [4]float32{0, 0, 0, 1},
		Scale:       [3]float32{1, 1, 1},
	})

	buffer.ByteLength = uint32(len(buffer.Data))
	return nil
}

// writeView appends data to the shared buffer as a new buffer view and
// returns the view index. Every stream is made of 4 byte components, so
// views stay aligned.
func writeView(doc *gltf.Document, data any) (uint32, error) {
	buffer := doc.Buffers[0]
	buf := bytes.NewBuffer(nil)
	if err := binary.Write(buf, binary.LittleEndian, data); err != nil {
		return 0, err
	}
	view := &gltf.BufferView{
		Buffer:     0,
		ByteOffset: uint32(len(buffer.Data)),
		ByteLength: uint32(buf.Len()),
	}
	buffer.Data = append(buffer.Data, buf.Bytes()...)
	idx := uint32(len(doc.BufferViews))
	doc.BufferViews = append(doc.BufferViews, view)
	return idx, nil
}

func addAccessor(doc *gltf.Document, a *gltf.Accessor) uint32 {
	idx := uint32(len(doc.Accessors))
	doc.Accessors = append(doc.Accessors, a)
	return idx
}

// WriteGLB encodes doc as binary glTF.
func WriteGLB(w io.Writer, doc *gltf.Document) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}
	return nil
}

// SaveGLB writes doc to path as binary glTF.
func SaveGLB(path string, doc *gltf.Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()
	return WriteGLB(f, doc)
}
