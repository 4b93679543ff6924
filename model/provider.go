// Package model supplies per-block-type base geometry to the compiler.
package model

import (
	"context"
	"fmt"

	"github.com/astei/schem2mesh/mesh"
)

// Static serves fixed geometry per block name. Intended for tests and
// for embedding a tiny built-in model set.
type Static struct {
	models map[string]entry
}

type entry struct {
	geometry mesh.Geometry
	material mesh.Material
}

func NewStatic() *Static {
	return &Static{models: make(map[string]entry)}
}

// Register associates a name with base geometry and its appearance.
func (s *Static) Register(name string, geometry mesh.Geometry, material mesh.Material) {
	s.models[name] = entry{geometry: geometry, material: material}
}

func (s *Static) Resolve(_ context.Context, name string, _ []string) (mesh.Geometry, mesh.Material, error) {
	e, ok := s.models[name]
	if !ok {
		return mesh.Geometry{}, mesh.Material{}, fmt.Errorf("model: no model registered for %q", name)
	}
	return e.geometry, e.material, nil
}

// UnitCube returns an indexed unit cube spanning [0,1]^3 with per-face
// normals and a full-face UV layout. The stand-in model for block types
// without a dedicated one.
func UnitCube() mesh.Geometry {
	// 4 vertices per face, 6 faces, two triangles each.
	return mesh.Geometry{
		Positions: []float32{
			// +Y
			0, 1, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1,
			// -Y
			0, 0, 1, 1, 0, 1, 1, 0, 0, 0, 0, 0,
			// +Z
			0, 0, 1, 0, 1, 1, 1, 1, 1, 1, 0, 1,
			// -Z
			1, 0, 0, 1, 1, 0, 0, 1, 0, 0, 0, 0,
			// +X
			1, 0, 1, 1, 1, 1, 1, 1, 0, 1, 0, 0,
			// -X
			0, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1,
		},
		Normals: []float32{
			0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0,
			0, -1, 0, 0, -1, 0, 0, -1, 0, 0, -1, 0,
			0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1,
			0, 0, -1, 0, 0, -1, 0, 0, -1, 0, 0, -1,
			1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0,
			-1, 0, 0, -1, 0, 0, -1, 0, 0, -1, 0, 0,
		},
		UVs: []float32{
			0, 0, 1, 0, 1, 1, 0, 1,
			0, 0, 1, 0, 1, 1, 0, 1,
			0, 0, 0, 1, 1, 1, 1, 0,
			0, 0, 0, 1, 1, 1, 1, 0,
			0, 0, 0, 1, 1, 1, 1, 0,
			0, 0, 0, 1, 1, 1, 1, 0,
		},
		Indices: []uint32{
			0, 1, 2, 0, 2, 3,
			4, 5, 6, 4, 6, 7,
			8, 9, 10, 8, 10, 11,
			12, 13, 14, 12, 14, 15,
			16, 17, 18, 16, 18, 19,
			20, 21, 22, 20, 22, 23,
		},
	}
}
