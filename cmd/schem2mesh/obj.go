package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/astei/schem2mesh/mesh"
)

// writeOBJ emits batches as one Wavefront OBJ document, one object per
// batch. OBJ indices are global and 1-based, so each batch's faces are
// shifted by the vertices written before it.
func writeOBJ(w io.Writer, batches []mesh.Batch) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# exported by schem2mesh")

	offset := 1
	for i, b := range batches {
		g := b.Geometry
		fmt.Fprintf(bw, "o %s_%d\n", objName(b.Name), i)
		if b.Material.Texture != "" {
			fmt.Fprintf(bw, "usemtl %s\n", objName(b.Material.Texture))
		}

		for v := 0; v+2 < len(g.Positions); v += 3 {
			fmt.Fprintf(bw, "v %g %g %g\n", g.Positions[v], g.Positions[v+1], g.Positions[v+2])
		}
		for v := 0; v+1 < len(g.UVs); v += 2 {
			fmt.Fprintf(bw, "vt %g %g\n", g.UVs[v], g.UVs[v+1])
		}
		for v := 0; v+2 < len(g.Normals); v += 3 {
			fmt.Fprintf(bw, "vn %g %g %g\n", g.Normals[v], g.Normals[v+1], g.Normals[v+2])
		}

		hasUVs := len(g.UVs) > 0
		hasNormals := len(g.Normals) > 0
		writeFace := func(a, b, c int) {
			fmt.Fprintf(bw, "f %s %s %s\n",
				objVertex(a+offset, hasUVs, hasNormals),
				objVertex(b+offset, hasUVs, hasNormals),
				objVertex(c+offset, hasUVs, hasNormals))
		}

		if len(g.Indices) > 0 {
			for f := 0; f+2 < len(g.Indices); f += 3 {
				writeFace(int(g.Indices[f]), int(g.Indices[f+1]), int(g.Indices[f+2]))
			}
		} else {
			for f := 0; f+2 < g.VertexCount(); f += 3 {
				writeFace(f, f+1, f+2)
			}
		}
		offset += g.VertexCount()
	}
	return bw.Flush()
}

// objVertex renders one face corner reference. Vertex, UV and normal
// buffers are written per-vertex, so all three share the same index.
func objVertex(idx int, hasUVs, hasNormals bool) string {
	switch {
	case hasUVs && hasNormals:
		return fmt.Sprintf("%d/%d/%d", idx, idx, idx)
	case hasUVs:
		return fmt.Sprintf("%d/%d", idx, idx)
	case hasNormals:
		return fmt.Sprintf("%d//%d", idx, idx)
	default:
		return fmt.Sprintf("%d", idx)
	}
}

func objName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
}
