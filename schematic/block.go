package schematic

import "strings"

// AirName is the qualified name of the air sentinel. Air cells are never
// grouped or rendered.
const AirName = "minecraft:air"

// Block is the resolved identity of one voxel: a qualified name plus an
// ordered list of "key=value" state properties. Two blocks are equal iff
// the name and the property sequence match.
type Block struct {
	Name       string
	Properties []string
}

// Air is the sentinel stored for empty, unresolved and unmatched cells.
var Air = Block{Name: AirName}

func (b Block) IsAir() bool {
	return b.Name == AirName
}

// String renders the block in the palette key form, "name[p1,p2]".
func (b Block) String() string {
	if len(b.Properties) == 0 {
		return b.Name
	}
	return b.Name + "[" + strings.Join(b.Properties, ",") + "]"
}
