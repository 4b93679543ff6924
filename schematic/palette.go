package schematic

import (
	"fmt"
	"strings"

	"github.com/astei/schem2mesh/nbt"
)

// Palette resolves the palette variant's numeric ids to blocks. The
// stored mapping runs state-string -> id; it is inverted once at
// construction so per-voxel lookups are O(1) instead of a scan per cell.
type Palette struct {
	byID map[int32]Block

	// Misses counts resolutions that found no palette entry, per id.
	// Unmatched ids resolve to air rather than failing; the count is the
	// only trace a corrupt palette leaves.
	Misses map[int32]int
}

// NewPalette builds a palette from its compound tag. Every entry value
// must be an integral tag.
func NewPalette(tag *nbt.Tag) (*Palette, error) {
	p := &Palette{
		byID:   make(map[int32]Block),
		Misses: make(map[int32]int),
	}
	for _, key := range tag.Keys() {
		entry, _ := tag.Child(key)
		if !entry.Kind.IsIntegral() {
			return nil, fmt.Errorf("%w: palette entry %q is %s, expected an integral tag",
				ErrTypeMismatch, key, entry.Kind)
		}
		p.byID[int32(entry.Num)] = ParseStateKey(key)
	}
	return p, nil
}

// Len returns the number of distinct palette entries.
func (p *Palette) Len() int {
	return len(p.byID)
}

// Resolve maps a numeric id to its block. Ids without a palette entry
// resolve to air and are counted in Misses.
func (p *Palette) Resolve(id int32) Block {
	b, ok := p.byID[id]
	if !ok {
		p.Misses[id]++
		return Air
	}
	return b
}

// ParseStateKey splits a palette key of the form "name[p1,p2]" into a
// qualified name and its ordered property list. A key without a bracket
// is a bare name with no properties.
func ParseStateKey(key string) Block {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return Block{Name: key}
	}
	name := key[:open]
	inner := strings.TrimSuffix(key[open+1:], "]")
	if inner == "" {
		return Block{Name: name}
	}
	return Block{Name: name, Properties: strings.Split(inner, ",")}
}
