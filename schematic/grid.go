package schematic

import (
	"fmt"

	"github.com/willf/bitset"
)

// Pathological allocation guard: 256^3 cells, far above any sane export.
const maxVolume = 1 << 24

// Grid is the dense voxel grid of one decoded schematic. It is built
// once and never mutated afterwards.
type Grid struct {
	Width, Height, Length int

	cells    []Block
	occupied *bitset.BitSet
}

// Index computes the linear cell index for (x,y,z). Both container
// variants store cells in this order.
func (g *Grid) Index(x, y, z int) int {
	return x + z*g.Width + y*g.Width*g.Length
}

// At returns the block at (x,y,z). Coordinates must lie inside the grid.
func (g *Grid) At(x, y, z int) Block {
	return g.cells[g.Index(x, y, z)]
}

// Occupied reports whether the cell at (x,y,z) holds a non-air block.
func (g *Grid) Occupied(x, y, z int) bool {
	return g.occupied.Test(uint(g.Index(x, y, z)))
}

// NonAir returns the number of non-air cells.
func (g *Grid) NonAir() int {
	return int(g.occupied.Count())
}

// Volume returns the total cell count, width*height*length.
func (g *Grid) Volume() int {
	return len(g.cells)
}

// BuildGrid fills a grid by visiting every coordinate with y outer, x
// middle, z inner and asking resolve for the block at its linear index.
// resolve returning ErrTruncatedData (or any other error) aborts the
// build; no partial grid is ever returned.
func BuildGrid(width, height, length int, resolve func(index int) (Block, error)) (*Grid, error) {
	if width <= 0 || height <= 0 || length <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%dx%d",
			ErrTypeMismatch, width, height, length)
	}
	volume := width * height * length
	if volume > maxVolume {
		return nil, fmt.Errorf("%w: %dx%dx%d is %d cells", ErrTooLarge, width, height, length, volume)
	}

	g := &Grid{
		Width:    width,
		Height:   height,
		Length:   length,
		cells:    make([]Block, volume),
		occupied: bitset.New(uint(volume)),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for z := 0; z < length; z++ {
				i := g.Index(x, y, z)
				b, err := resolve(i)
				if err != nil {
					return nil, err
				}
				g.cells[i] = b
				if !b.IsAir() {
					g.occupied.Set(uint(i))
				}
			}
		}
	}
	return g, nil
}
