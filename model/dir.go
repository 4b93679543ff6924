package model

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/astei/schem2mesh/mesh"
)

// modelSchema constrains a model document before it is trusted; a typo
// in an asset pack should fail with a schema path, not a mystery mesh.
const modelSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["vertices"],
  "properties": {
    "texture": {"type": "string"},
    "doubleSided": {"type": "boolean"},
    "vertices": {"type": "array", "items": {"type": "number"}, "minItems": 3},
    "normals": {"type": "array", "items": {"type": "number"}},
    "uvs": {"type": "array", "items": {"type": "number"}},
    "indices": {"type": "array", "items": {"type": "integer", "minimum": 0}}
  },
  "additionalProperties": false
}`

var compiledSchema = jsonschema.MustCompileString("model.schema.json", modelSchema)

type modelFile struct {
	Texture     string    `json:"texture"`
	DoubleSided bool      `json:"doubleSided"`
	Vertices    []float32 `json:"vertices"`
	Normals     []float32 `json:"normals"`
	UVs         []float32 `json:"uvs"`
	Indices     []uint32  `json:"indices"`
}

// Dir resolves models from "<root>/<name>.json" documents. Resolved
// models are memoized for the provider's lifetime; the per-pass model
// cache in the compiler stays separate.
type Dir struct {
	root string
	// Fallback serves a plain unit cube for block types without a model
	// file instead of failing the group.
	Fallback bool

	mu    sync.Mutex
	cache map[string]cached
}

type cached struct {
	geometry mesh.Geometry
	material mesh.Material
	err      error
}

func NewDir(root string) *Dir {
	return &Dir{root: root, cache: make(map[string]cached)}
}

func (d *Dir) Resolve(ctx context.Context, name string, _ []string) (mesh.Geometry, mesh.Material, error) {
	if err := ctx.Err(); err != nil {
		return mesh.Geometry{}, mesh.Material{}, err
	}

	d.mu.Lock()
	c, ok := d.cache[name]
	d.mu.Unlock()
	if !ok {
		c = d.load(name)
		d.mu.Lock()
		d.cache[name] = c
		d.mu.Unlock()
	}
	return c.geometry, c.material, c.err
}

func (d *Dir) load(name string) cached {
	path := filepath.Join(d.root, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && d.Fallback {
			return cached{geometry: UnitCube(), material: mesh.Material{Texture: name}}
		}
		return cached{err: fmt.Errorf("model %q: %w", name, err)}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return cached{err: fmt.Errorf("model %q: %w", name, err)}
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return cached{err: fmt.Errorf("model %q: %w", name, err)}
	}

	var mf modelFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return cached{err: fmt.Errorf("model %q: %w", name, err)}
	}
	if err := checkBuffers(mf); err != nil {
		return cached{err: fmt.Errorf("model %q: %w", name, err)}
	}

	material := mesh.Material{Texture: mf.Texture, DoubleSided: mf.DoubleSided}
	if material.Texture == "" {
		material.Texture = name
	}
	return cached{
		geometry: mesh.Geometry{
			Positions: mf.Vertices,
			Normals:   mf.Normals,
			UVs:       mf.UVs,
			Indices:   mf.Indices,
		},
		material: material,
	}
}

func checkBuffers(mf modelFile) error {
	vertexCount := len(mf.Vertices) / 3
	if len(mf.Vertices)%3 != 0 {
		return fmt.Errorf("vertex buffer length %d is not a multiple of 3", len(mf.Vertices))
	}
	if len(mf.Normals) != 0 && len(mf.Normals) != len(mf.Vertices) {
		return fmt.Errorf("normal buffer length %d does not match %d vertices", len(mf.Normals), vertexCount)
	}
	if len(mf.UVs) != 0 && len(mf.UVs) != vertexCount*2 {
		return fmt.Errorf("uv buffer length %d does not match %d vertices", len(mf.UVs), vertexCount)
	}
	for _, idx := range mf.Indices {
		if int(idx) >= vertexCount {
			return fmt.Errorf("index %d out of range for %d vertices", idx, vertexCount)
		}
	}
	return nil
}
