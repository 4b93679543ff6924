package schematic

import "github.com/astei/schem2mesh/nbt"

// Format identifies the container variant of a decoded tag tree.
type Format int

const (
	FormatUnknown Format = iota
	// FormatPalette stores per-voxel indices into a state-string palette.
	FormatPalette
	// FormatLegacy stores direct 0-255 numeric ids plus a side data nibble.
	FormatLegacy
)

func (f Format) String() string {
	switch f {
	case FormatPalette:
		return "palette"
	case FormatLegacy:
		return "legacy"
	}
	return "unknown"
}

// DetectFormat classifies the container. Both variants carry the same
// Width/Height/Length field names, so detection must run before any
// dimension read is trusted.
func DetectFormat(root *nbt.Tag) (Format, error) {
	if root == nil || root.Kind != nbt.TagCompound {
		return FormatUnknown, ErrUnknownFormat
	}
	if root.Has("Palette") && root.Has("BlockData") {
		return FormatPalette, nil
	}
	if root.Has("Blocks") {
		return FormatLegacy, nil
	}
	return FormatUnknown, ErrUnknownFormat
}
