package nbt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	ErrInvalidTag = errors.New("nbt: invalid tag kind")
	ErrTooDeep    = errors.New("nbt: nesting too deep")
	ErrTooLarge   = errors.New("nbt: declared length too large")
)

// Limits on hostile input. Real schematics stay far below both.
const (
	maxDepth       = 64
	maxPayloadSize = 1 << 28
)

// Read decodes a single named tag from r, which is expected to start with
// the root TAG_Compound of a container. The returned name is the root
// tag's name ("Schematic" for most exporters, often empty).
func Read(r io.Reader) (name string, tag *Tag, err error) {
	d := &decoder{r: bufio.NewReader(r)}
	kind, err := d.readKind()
	if err != nil {
		return "", nil, err
	}
	if kind == TagEnd {
		return "", nil, fmt.Errorf("nbt: root tag is %s", TagEnd)
	}
	name, err = d.readString()
	if err != nil {
		return "", nil, err
	}
	tag, err = d.readPayload(kind, 0)
	return name, tag, err
}

type decoder struct {
	r *bufio.Reader
}

func (d *decoder) readKind() (Kind, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return TagEnd, err
	}
	k := Kind(b)
	if k > TagLongArray {
		return TagEnd, fmt.Errorf("%w: 0x%02x", ErrInvalidTag, b)
	}
	return k, nil
}

func (d *decoder) readPayload(kind Kind, depth int) (*Tag, error) {
	if depth > maxDepth {
		return nil, ErrTooDeep
	}

	switch kind {
	case TagByte:
		v, err := d.r.ReadByte()
		if err != nil {
			return nil, err
		}
		return NewByte(int8(v)), nil

	case TagShort:
		v, err := d.readInt16()
		return NewShort(v), err

	case TagInt:
		v, err := d.readInt32()
		return NewInt(v), err

	case TagLong:
		v, err := d.readInt64()
		return NewLong(v), err

	case TagFloat:
		v, err := d.readFloat32()
		return NewFloat(v), err

	case TagDouble:
		v, err := d.readFloat64()
		return NewDouble(v), err

	case TagByteArray:
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(d.r, buf); err != nil {
			return nil, err
		}
		return NewByteArray(buf), nil

	case TagString:
		s, err := d.readString()
		return NewString(s), err

	case TagIntArray:
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		vals := make([]int32, n)
		for i := range vals {
			if vals[i], err = d.readInt32(); err != nil {
				return nil, err
			}
		}
		return NewIntArray(vals), nil

	case TagLongArray:
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		vals := make([]int64, n)
		for i := range vals {
			if vals[i], err = d.readInt64(); err != nil {
				return nil, err
			}
		}
		return NewLongArray(vals), nil

	case TagList:
		elem, err := d.readKind()
		if err != nil {
			return nil, err
		}
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		if elem == TagEnd && n > 0 {
			return nil, fmt.Errorf("nbt: non-empty list of %s", TagEnd)
		}
		list := &Tag{Kind: TagList, Elem: elem}
		for i := 0; i < n; i++ {
			item, err := d.readPayload(elem, depth+1)
			if err != nil {
				return nil, err
			}
			list.List = append(list.List, item)
		}
		return list, nil

	case TagCompound:
		compound := NewCompound()
		for {
			childKind, err := d.readKind()
			if err != nil {
				return nil, err
			}
			if childKind == TagEnd {
				return compound, nil
			}
			name, err := d.readString()
			if err != nil {
				return nil, err
			}
			child, err := d.readPayload(childKind, depth+1)
			if err != nil {
				return nil, err
			}
			compound.Set(name, child)
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidTag, kind)
	}
}

func (d *decoder) readString() (string, error) {
	n, err := d.readInt16()
	if err != nil {
		return "", err
	}
	buf := make([]byte, uint16(n))
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func (d *decoder) readLength() (int, error) {
	n, err := d.readInt32()
	if err != nil {
		return 0, err
	}
	if n < 0 || n > maxPayloadSize {
		return 0, fmt.Errorf("%w: %d", ErrTooLarge, n)
	}
	return int(n), nil
}

func (d *decoder) readInt16() (int16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		return 0, err
	}
	return int16(buf[0])<<8 | int16(buf[1]), nil
}

func (d *decoder) readInt32() (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		return 0, err
	}
	return int32(buf[0])<<24 | int32(buf[1])<<16 | int32(buf[2])<<8 | int32(buf[3]), nil
}

func (d *decoder) readFloat32() (float32, error) {
	v, err := d.readInt32()
	return math.Float32frombits(uint32(v)), err
}

func (d *decoder) readFloat64() (float64, error) {
	v, err := d.readInt64()
	return math.Float64frombits(uint64(v)), err
}

func (d *decoder) readInt64() (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		return 0, err
	}
	return int64(buf[0])<<56 | int64(buf[1])<<48 | int64(buf[2])<<40 | int64(buf[3])<<32 |
		int64(buf[4])<<24 | int64(buf[5])<<16 | int64(buf[6])<<8 | int64(buf[7]), nil
}
