package schematic

import "github.com/astei/schem2mesh/nbt"

// Decoded is the result of interpreting one container tag tree.
type Decoded struct {
	Format Format
	Grid   *Grid

	// PaletteMisses counts ids the palette could not resolve, per id.
	// Populated only for the palette variant.
	PaletteMisses map[int32]int
	// UnknownLegacy counts legacy ids absent from the id table, per id.
	// Populated only for the legacy variant.
	UnknownLegacy map[int]int
}

// Decode detects the container variant and builds the dense voxel grid.
// Structural problems (missing fields, wrong tag kinds, short arrays)
// abort with an error; resolution gaps never do and only show up in the
// miss counters.
func Decode(root *nbt.Tag) (*Decoded, error) {
	format, err := DetectFormat(root)
	if err != nil {
		return nil, err
	}

	acc, err := NewAccessor(root)
	if err != nil {
		return nil, err
	}
	width, err := acc.Int("Width")
	if err != nil {
		return nil, err
	}
	height, err := acc.Int("Height")
	if err != nil {
		return nil, err
	}
	length, err := acc.Int("Length")
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatPalette:
		return decodePalette(acc, width, height, length)
	default:
		return decodeLegacy(acc, width, height, length)
	}
}

func decodePalette(acc *Accessor, width, height, length int) (*Decoded, error) {
	paletteTag, err := acc.Compound("Palette")
	if err != nil {
		return nil, err
	}
	palette, err := NewPalette(paletteTag)
	if err != nil {
		return nil, err
	}
	data, err := acc.BlockData("BlockData")
	if err != nil {
		return nil, err
	}

	grid, err := BuildGrid(width, height, length, func(i int) (Block, error) {
		if i >= len(data) {
			return Air, ErrTruncatedData
		}
		return palette.Resolve(data[i]), nil
	})
	if err != nil {
		return nil, err
	}
	return &Decoded{
		Format:        FormatPalette,
		Grid:          grid,
		PaletteMisses: palette.Misses,
	}, nil
}

func decodeLegacy(acc *Accessor, width, height, length int) (*Decoded, error) {
	blocks, err := acc.ByteArray("Blocks")
	if err != nil {
		return nil, err
	}
	// The side data array is optional and, when present, parallel.
	var data []byte
	if acc.root.Has("Data") {
		if data, err = acc.ByteArray("Data"); err != nil {
			return nil, err
		}
	}

	mapper := NewLegacyMapper()
	grid, err := BuildGrid(width, height, length, func(i int) (Block, error) {
		if i >= len(blocks) {
			return Air, ErrTruncatedData
		}
		id := NormalizeID(int(int8(blocks[i])))
		nibble := 0
		if i < len(data) {
			nibble = int(data[i] & 0x0f)
		}
		return mapper.Resolve(id, nibble), nil
	})
	if err != nil {
		return nil, err
	}
	return &Decoded{
		Format:        FormatLegacy,
		Grid:          grid,
		UnknownLegacy: mapper.Unknown,
	}, nil
}
