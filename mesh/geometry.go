package mesh

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrAttributeMismatch = errors.New("mesh: attribute presence mismatch")

// Geometry holds flat vertex attribute buffers plus an optional index
// buffer. Positions are required; normals, UVs and indices may be empty,
// but every geometry merged into one batch must agree on which are
// present.
type Geometry struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32
}

// Material is an appearance reference handed through to the renderer.
type Material struct {
	Texture     string
	DoubleSided bool
}

// Batch is one renderable unit: merged or per-instance geometry plus its
// material. Ownership passes to the caller on return from compilation.
type Batch struct {
	Name     string
	Material Material
	Geometry Geometry
}

func (g Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// FaceCount returns the triangle count: indexed geometry divides the
// index buffer, unindexed geometry the vertex buffer.
func (g Geometry) FaceCount() int {
	if len(g.Indices) > 0 {
		return len(g.Indices) / 3
	}
	return g.VertexCount() / 3
}

// Clone deep-copies the buffers so per-instance transforms never touch
// the cached base geometry.
func (g Geometry) Clone() Geometry {
	clone := Geometry{}
	if len(g.Positions) > 0 {
		clone.Positions = append([]float32(nil), g.Positions...)
	}
	if len(g.Normals) > 0 {
		clone.Normals = append([]float32(nil), g.Normals...)
	}
	if len(g.UVs) > 0 {
		clone.UVs = append([]float32(nil), g.UVs...)
	}
	if len(g.Indices) > 0 {
		clone.Indices = append([]uint32(nil), g.Indices...)
	}
	return clone
}

// Translate shifts every vertex position in place.
func (g *Geometry) Translate(dx, dy, dz float32) {
	for i := 0; i+2 < len(g.Positions); i += 3 {
		g.Positions[i] += dx
		g.Positions[i+1] += dy
		g.Positions[i+2] += dz
	}
}

// Apply rotates the geometry about the unit-cell center and moves it to
// the given cell, honoring the transform's extra offset. Normals rotate
// without translating.
func (g *Geometry) Apply(t Transform, x, y, z int) {
	off := t.Offset.Add(mgl32.Vec3{float32(x), float32(y), float32(z)})
	if t.IsIdentity() {
		g.Translate(off[0], off[1], off[2])
		return
	}

	rot := t.Rotation()
	center := mgl32.Vec3{0.5, 0.5, 0.5}
	for i := 0; i+2 < len(g.Positions); i += 3 {
		v := mgl32.Vec3{g.Positions[i], g.Positions[i+1], g.Positions[i+2]}
		v = rot.Mul3x1(v.Sub(center)).Add(center).Add(off)
		g.Positions[i], g.Positions[i+1], g.Positions[i+2] = v[0], v[1], v[2]
	}
	for i := 0; i+2 < len(g.Normals); i += 3 {
		n := rot.Mul3x1(mgl32.Vec3{g.Normals[i], g.Normals[i+1], g.Normals[i+2]})
		g.Normals[i], g.Normals[i+1], g.Normals[i+2] = n[0], n[1], n[2]
	}
}

// Merge concatenates geometries into one buffer set. Index buffers are
// concatenated with each geometry's indices offset by the running vertex
// count of everything merged before it. All inputs must agree on the
// presence of normals, UVs and indices, else ErrAttributeMismatch.
func Merge(parts []Geometry) (Geometry, error) {
	if len(parts) == 0 {
		return Geometry{}, nil
	}

	hasNormals := len(parts[0].Normals) > 0
	hasUVs := len(parts[0].UVs) > 0
	hasIndices := len(parts[0].Indices) > 0

	var merged Geometry
	offset := uint32(0)
	for _, p := range parts {
		if (len(p.Normals) > 0) != hasNormals ||
			(len(p.UVs) > 0) != hasUVs ||
			(len(p.Indices) > 0) != hasIndices {
			return Geometry{}, ErrAttributeMismatch
		}
		merged.Positions = append(merged.Positions, p.Positions...)
		merged.Normals = append(merged.Normals, p.Normals...)
		merged.UVs = append(merged.UVs, p.UVs...)
		for _, idx := range p.Indices {
			merged.Indices = append(merged.Indices, idx+offset)
		}
		offset += uint32(p.VertexCount())
	}
	return merged, nil
}
