package mesh

import (
	"strings"

	"github.com/astei/schem2mesh/schematic"
)

// Group collects every voxel sharing one block type and state. Positions
// stay in grid-scan order (y outer, x middle, z inner), which fixes the
// batch emission order for identical input.
type Group struct {
	Name       string // normalized, namespace and waxed_ prefix stripped
	Properties []string
	Positions  [][3]int
}

// Key returns the canonical serialization of the group identity.
func (g *Group) Key() string {
	if len(g.Properties) == 0 {
		return g.Name
	}
	return g.Name + "[" + strings.Join(g.Properties, ",") + "]"
}

// Rotated reports whether the group's state orients its geometry.
func (g *Group) Rotated() bool {
	return HasRotation(g.Properties)
}

// NormalizeName strips the namespace prefix and the waxed_ alias, both
// cosmetic names for the same base geometry.
func NormalizeName(name string) string {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimPrefix(name, "waxed_")
}

// GroupBlocks partitions the grid's non-air voxels into groups, returned
// in first-seen order.
func GroupBlocks(grid *schematic.Grid) []*Group {
	var groups []*Group
	index := make(map[string]*Group)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			for z := 0; z < grid.Length; z++ {
				if !grid.Occupied(x, y, z) {
					continue
				}
				b := grid.At(x, y, z)
				g := &Group{
					Name:       NormalizeName(b.Name),
					Properties: b.Properties,
				}
				key := g.Key()
				if existing, ok := index[key]; ok {
					g = existing
				} else {
					index[key] = g
					groups = append(groups, g)
				}
				g.Positions = append(g.Positions, [3]int{x, y, z})
			}
		}
	}
	return groups
}

// InstanceCount sums the voxel counts of all groups.
func InstanceCount(groups []*Group) int {
	total := 0
	for _, g := range groups {
		total += len(g.Positions)
	}
	return total
}
