package nbt

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// Write encodes a named tag to w in the big-endian binary form. Mostly
// used to produce fixtures and round-trip tests; the core pipeline only
// reads.
func Write(w io.Writer, name string, tag *Tag) error {
	e := &encoder{w: w}
	if err := e.writeNamed(name, tag); err != nil {
		return err
	}
	return nil
}

type encoder struct {
	w io.Writer
}

func (e *encoder) writeNamed(name string, tag *Tag) error {
	if tag == nil {
		return errors.New("nbt: nil tag")
	}
	if _, err := e.w.Write([]byte{byte(tag.Kind)}); err != nil {
		return err
	}
	if err := e.writeString(name); err != nil {
		return err
	}
	return e.writePayload(tag)
}

func (e *encoder) writePayload(tag *Tag) error {
	switch tag.Kind {
	case TagByte:
		_, err := e.w.Write([]byte{byte(tag.Num)})
		return err

	case TagShort:
		return e.writeInt16(int16(tag.Num))

	case TagInt:
		return e.writeInt32(int32(tag.Num))

	case TagLong:
		return e.writeInt64(tag.Num)

	case TagFloat:
		return e.writeInt32(int32(math.Float32bits(float32(tag.Flt))))

	case TagDouble:
		return e.writeInt64(int64(math.Float64bits(tag.Flt)))

	case TagByteArray:
		if err := e.writeInt32(int32(len(tag.Bytes))); err != nil {
			return err
		}
		_, err := e.w.Write(tag.Bytes)
		return err

	case TagString:
		return e.writeString(tag.Str)

	case TagIntArray:
		if err := e.writeInt32(int32(len(tag.Ints))); err != nil {
			return err
		}
		for _, v := range tag.Ints {
			if err := e.writeInt32(v); err != nil {
				return err
			}
		}
		return nil

	case TagLongArray:
		if err := e.writeInt32(int32(len(tag.Longs))); err != nil {
			return err
		}
		for _, v := range tag.Longs {
			if err := e.writeInt64(v); err != nil {
				return err
			}
		}
		return nil

	case TagList:
		if _, err := e.w.Write([]byte{byte(tag.Elem)}); err != nil {
			return err
		}
		if err := e.writeInt32(int32(len(tag.List))); err != nil {
			return err
		}
		for _, item := range tag.List {
			if item.Kind != tag.Elem {
				return fmt.Errorf("nbt: %s in list of %s", item.Kind, tag.Elem)
			}
			if err := e.writePayload(item); err != nil {
				return err
			}
		}
		return nil

	case TagCompound:
		for _, name := range tag.order {
			if err := e.writeNamed(name, tag.children[name]); err != nil {
				return err
			}
		}
		_, err := e.w.Write([]byte{byte(TagEnd)})
		return err

	default:
		return fmt.Errorf("%w: %s", ErrInvalidTag, tag.Kind)
	}
}

func (e *encoder) writeString(s string) error {
	if err := e.writeInt16(int16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, s)
	return err
}

func (e *encoder) writeInt16(n int16) error {
	_, err := e.w.Write([]byte{byte(n >> 8), byte(n)})
	return err
}

func (e *encoder) writeInt32(n int32) error {
	_, err := e.w.Write([]byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)})
	return err
}

func (e *encoder) writeInt64(n int64) error {
	_, err := e.w.Write([]byte{
		byte(n >> 56), byte(n >> 48), byte(n >> 40), byte(n >> 32),
		byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)})
	return err
}
