package schematic

import (
	"errors"
	"fmt"

	"github.com/astei/schem2mesh/nbt"
)

var (
	ErrMissingField  = errors.New("schematic: missing field")
	ErrTypeMismatch  = errors.New("schematic: type mismatch")
	ErrUnknownFormat = errors.New("schematic: unknown container format")
	ErrTruncatedData = errors.New("schematic: truncated block data")
	ErrTooLarge      = errors.New("schematic: dimensions too large")
)

// Accessor reads named fields out of a compound tag. Every field the
// decoder needs goes through it so malformed input fails with a uniform,
// named error instead of a stray panic or an unrelated message.
type Accessor struct {
	root *nbt.Tag
}

func NewAccessor(root *nbt.Tag) (*Accessor, error) {
	if root == nil || root.Kind != nbt.TagCompound {
		return nil, fmt.Errorf("%w: root is not %s", ErrTypeMismatch, nbt.TagCompound)
	}
	return &Accessor{root: root}, nil
}

func (a *Accessor) child(name string, want nbt.Kind) (*nbt.Tag, error) {
	c, ok := a.root.Child(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, name)
	}
	if c.Kind != want {
		return nil, fmt.Errorf("%w: %q is %s, expected %s", ErrTypeMismatch, name, c.Kind, want)
	}
	return c, nil
}

// Int reads a whole-number field of any integral tag kind. Dimension
// fields are shorts in files written by world editors but ints in some
// other exporters.
func (a *Accessor) Int(name string) (int, error) {
	c, ok := a.root.Child(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingField, name)
	}
	if !c.Kind.IsIntegral() {
		return 0, fmt.Errorf("%w: %q is %s, expected an integral tag", ErrTypeMismatch, name, c.Kind)
	}
	return int(c.Num), nil
}

func (a *Accessor) ByteArray(name string) ([]byte, error) {
	c, err := a.child(name, nbt.TagByteArray)
	if err != nil {
		return nil, err
	}
	return c.Bytes, nil
}

func (a *Accessor) Compound(name string) (*nbt.Tag, error) {
	return a.child(name, nbt.TagCompound)
}

// BlockData reads the palette variant's id array. Exporters store it as
// a byte array of unsigned varints; a plain int array is accepted too.
func (a *Accessor) BlockData(name string) ([]int32, error) {
	c, ok := a.root.Child(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, name)
	}
	switch c.Kind {
	case nbt.TagIntArray:
		return c.Ints, nil
	case nbt.TagByteArray:
		ids, err := decodeVarints(c.Bytes)
		if err != nil {
			return nil, fmt.Errorf("schematic: %q: %w", name, err)
		}
		return ids, nil
	default:
		return nil, fmt.Errorf("%w: %q is %s, expected %s or %s",
			ErrTypeMismatch, name, c.Kind, nbt.TagIntArray, nbt.TagByteArray)
	}
}

// decodeVarints expands a stream of unsigned LEB128 varints.
func decodeVarints(data []byte) ([]int32, error) {
	ids := make([]int32, 0, len(data))
	for i := 0; i < len(data); {
		var v uint32
		var shift uint
		for {
			if i >= len(data) {
				return nil, ErrTruncatedData
			}
			b := data[i]
			i++
			v |= uint32(b&0x7f) << shift
			if b&0x80 == 0 {
				break
			}
			shift += 7
			if shift > 28 {
				return nil, errors.New("varint wider than 32 bits")
			}
		}
		ids = append(ids, int32(v))
	}
	return ids, nil
}
