package schematic

import "strconv"

// LegacyMapper resolves the legacy variant's numeric ids. Legacy ids
// carry no block state; the side data nibble surfaces as a single
// synthetic "data=<n>" property when nonzero.
type LegacyMapper struct {
	// Unknown counts lookups of ids absent from the table, per id.
	Unknown map[int]int
}

func NewLegacyMapper() *LegacyMapper {
	return &LegacyMapper{Unknown: make(map[int]int)}
}

// NormalizeID folds a signed 8-bit stored value into [0,255]. The
// storage unit is a signed byte, so an id like 255 arrives as -1 and
// must be normalized before the table lookup.
func NormalizeID(raw int) int {
	return ((raw % 256) + 256) % 256
}

// Resolve maps a normalized id and data nibble to a block. Ids missing
// from the table synthesize "minecraft:unknown_<id>" and are counted in
// Unknown; they never fail the decode.
func (m *LegacyMapper) Resolve(id, data int) Block {
	name, ok := legacyNames[id]
	if !ok {
		m.Unknown[id]++
		name = "minecraft:unknown_" + strconv.Itoa(id)
	}
	if name == AirName {
		return Air
	}
	b := Block{Name: name}
	if data != 0 {
		b.Properties = []string{"data=" + strconv.Itoa(data)}
	}
	return b
}
