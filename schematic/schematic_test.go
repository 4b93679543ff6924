package schematic

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/astei/schem2mesh/nbt"
)

func paletteRoot(w, h, l int16, palette map[string]int32, order []string, data []byte) *nbt.Tag {
	root := nbt.NewCompound()
	root.Set("Width", nbt.NewShort(w))
	root.Set("Height", nbt.NewShort(h))
	root.Set("Length", nbt.NewShort(l))
	p := nbt.NewCompound()
	for _, key := range order {
		p.Set(key, nbt.NewInt(palette[key]))
	}
	root.Set("Palette", p)
	root.Set("BlockData", nbt.NewByteArray(data))
	return root
}

func legacyRoot(w, h, l int16, blocks []byte, data []byte) *nbt.Tag {
	root := nbt.NewCompound()
	root.Set("Width", nbt.NewShort(w))
	root.Set("Height", nbt.NewShort(h))
	root.Set("Length", nbt.NewShort(l))
	root.Set("Blocks", nbt.NewByteArray(blocks))
	if data != nil {
		root.Set("Data", nbt.NewByteArray(data))
	}
	return root
}

func TestDetectFormat(t *testing.T) {
	pal := paletteRoot(1, 1, 1, map[string]int32{"minecraft:air": 0}, []string{"minecraft:air"}, []byte{0})
	if f, err := DetectFormat(pal); err != nil || f != FormatPalette {
		t.Errorf("palette root: format %v err %v", f, err)
	}

	leg := legacyRoot(1, 1, 1, []byte{1}, nil)
	if f, err := DetectFormat(leg); err != nil || f != FormatLegacy {
		t.Errorf("legacy root: format %v err %v", f, err)
	}

	// A Palette without BlockData is not the palette variant, and with no
	// Blocks either it is nothing at all.
	bad := nbt.NewCompound()
	bad.Set("Palette", nbt.NewCompound())
	if _, err := DetectFormat(bad); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestAccessorErrors(t *testing.T) {
	root := nbt.NewCompound()
	root.Set("Width", nbt.NewString("three"))
	acc, err := NewAccessor(root)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := acc.Int("Height"); !errors.Is(err, ErrMissingField) {
		t.Errorf("missing field err = %v, want ErrMissingField", err)
	}
	if _, err := acc.Int("Width"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("type mismatch err = %v, want ErrTypeMismatch", err)
	}
	if _, err := NewAccessor(nbt.NewInt(1)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("non-compound root err = %v, want ErrTypeMismatch", err)
	}
}

func TestParseStateKey(t *testing.T) {
	tests := []struct {
		key       string
		wantName  string
		wantProps []string
	}{
		{"minecraft:stone", "minecraft:stone", nil},
		{"minecraft:oak_stairs[facing=north,half=bottom]", "minecraft:oak_stairs", []string{"facing=north", "half=bottom"}},
		{"minecraft:barrel[]", "minecraft:barrel", nil},
		{"minecraft:lever[powered=true]", "minecraft:lever", []string{"powered=true"}},
	}
	for _, tt := range tests {
		got := ParseStateKey(tt.key)
		if got.Name != tt.wantName {
			t.Errorf("ParseStateKey(%q).Name = %q, want %q", tt.key, got.Name, tt.wantName)
		}
		if diff := cmp.Diff(tt.wantProps, got.Properties); diff != "" {
			t.Errorf("ParseStateKey(%q) properties (-want +got):\n%s", tt.key, diff)
		}
	}
}

func TestPaletteMissResolvesToAir(t *testing.T) {
	p := nbt.NewCompound()
	p.Set("minecraft:stone", nbt.NewInt(1))
	palette, err := NewPalette(p)
	if err != nil {
		t.Fatal(err)
	}

	if b := palette.Resolve(1); b.Name != "minecraft:stone" {
		t.Errorf("Resolve(1) = %v", b)
	}
	if b := palette.Resolve(9); !b.IsAir() {
		t.Errorf("Resolve(9) = %v, want air", b)
	}
	if palette.Misses[9] != 1 {
		t.Errorf("Misses[9] = %d, want 1", palette.Misses[9])
	}
}

func TestNormalizeID(t *testing.T) {
	tests := []struct{ raw, want int }{
		{0, 0},
		{127, 127},
		{-1, 255},
		{-128, 128},
	}
	for _, tt := range tests {
		if got := NormalizeID(tt.raw); got != tt.want {
			t.Errorf("NormalizeID(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestLegacyMapper(t *testing.T) {
	m := NewLegacyMapper()

	if b := m.Resolve(1, 0); b.Name != "minecraft:stone" || len(b.Properties) != 0 {
		t.Errorf("Resolve(1, 0) = %v", b)
	}
	if b := m.Resolve(17, 2); len(b.Properties) != 1 || b.Properties[0] != "data=2" {
		t.Errorf("Resolve(17, 2) = %v, want data=2 property", b)
	}
	if b := m.Resolve(0, 3); !b.IsAir() {
		t.Errorf("Resolve(0, 3) = %v, want air", b)
	}

	b := m.Resolve(253, 0)
	if b.Name != "minecraft:unknown_253" {
		t.Errorf("Resolve(253, 0) = %v", b)
	}
	if m.Unknown[253] != 1 {
		t.Errorf("Unknown[253] = %d, want 1", m.Unknown[253])
	}
}

// The grid must invert its own linear index formula: the block stored at
// (y,x,z) is the one the flat array held at x + z*w + y*w*l.
func TestGridIndexInversion(t *testing.T) {
	const w, h, l = 3, 4, 5
	flat := make([]Block, w*h*l)
	for i := range flat {
		flat[i] = Block{Name: "minecraft:block", Properties: []string{"i=" + strconv.Itoa(i)}}
	}

	grid, err := BuildGrid(w, h, l, func(i int) (Block, error) { return flat[i], nil })
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for z := 0; z < l; z++ {
				want := flat[x+z*w+y*w*l]
				if diff := cmp.Diff(want, grid.At(x, y, z)); diff != "" {
					t.Fatalf("At(%d,%d,%d) (-want +got):\n%s", x, y, z, diff)
				}
			}
		}
	}
	if grid.NonAir() != w*h*l {
		t.Errorf("NonAir = %d, want %d", grid.NonAir(), w*h*l)
	}
}

func TestBuildGridRejectsBadDimensions(t *testing.T) {
	if _, err := BuildGrid(0, 1, 1, nil); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := BuildGrid(1<<10, 1<<10, 1<<10, nil); !errors.Is(err, ErrTooLarge) {
		t.Errorf("oversized grid err = %v, want ErrTooLarge", err)
	}
}

func TestDecodePaletteTruncated(t *testing.T) {
	root := paletteRoot(2, 2, 2,
		map[string]int32{"minecraft:air": 0}, []string{"minecraft:air"},
		[]byte{0, 0, 0}) // 3 ids for 8 cells
	if _, err := Decode(root); !errors.Is(err, ErrTruncatedData) {
		t.Errorf("err = %v, want ErrTruncatedData", err)
	}
}

func TestDecodePaletteAirOnly(t *testing.T) {
	root := paletteRoot(1, 1, 1,
		map[string]int32{"minecraft:air": 0}, []string{"minecraft:air"},
		[]byte{0})
	d, err := Decode(root)
	if err != nil {
		t.Fatal(err)
	}
	if d.Format != FormatPalette {
		t.Errorf("format = %v", d.Format)
	}
	if d.Grid.NonAir() != 0 {
		t.Errorf("NonAir = %d, want 0", d.Grid.NonAir())
	}
}

func TestDecodePaletteVarintBlockData(t *testing.T) {
	// Id 130 encodes as the two-byte varint 0x82 0x01.
	palette := map[string]int32{"minecraft:air": 0, "minecraft:stone": 130}
	root := paletteRoot(2, 1, 1, palette,
		[]string{"minecraft:air", "minecraft:stone"},
		[]byte{0x82, 0x01, 0x00})
	d, err := Decode(root)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Grid.At(0, 0, 0); got.Name != "minecraft:stone" {
		t.Errorf("At(0,0,0) = %v, want stone", got)
	}
	if got := d.Grid.At(1, 0, 0); !got.IsAir() {
		t.Errorf("At(1,0,0) = %v, want air", got)
	}
}

func TestDecodeLegacy(t *testing.T) {
	d, err := Decode(legacyRoot(2, 1, 1, []byte{1, 2}, nil))
	if err != nil {
		t.Fatal(err)
	}
	if d.Format != FormatLegacy {
		t.Errorf("format = %v", d.Format)
	}
	if got := d.Grid.At(0, 0, 0).Name; got != "minecraft:stone" {
		t.Errorf("At(0,0,0) = %q", got)
	}
	if got := d.Grid.At(1, 0, 0).Name; got != "minecraft:grass_block" {
		t.Errorf("At(1,0,0) = %q", got)
	}
	for _, b := range []Block{d.Grid.At(0, 0, 0), d.Grid.At(1, 0, 0)} {
		if len(b.Properties) != 0 {
			t.Errorf("no Data field must mean no data property, got %v", b.Properties)
		}
	}
}

func TestDecodeLegacySignedIDs(t *testing.T) {
	// Raw byte 0xff is signed -1 and must normalize to id 255.
	d, err := Decode(legacyRoot(1, 1, 1, []byte{0xff}, nil))
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Grid.At(0, 0, 0).Name; got != "minecraft:structure_block" {
		t.Errorf("At(0,0,0) = %q, want minecraft:structure_block", got)
	}
}
