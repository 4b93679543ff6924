package nbt

// Kind identifies the payload type of a tag.
type Kind byte

const (
	TagEnd Kind = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

var kindNames = [...]string{
	"TAG_End", "TAG_Byte", "TAG_Short", "TAG_Int", "TAG_Long",
	"TAG_Float", "TAG_Double", "TAG_Byte_Array", "TAG_String",
	"TAG_List", "TAG_Compound", "TAG_Int_Array", "TAG_Long_Array",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "TAG_Invalid"
}

// IsIntegral reports whether the kind stores a whole number payload.
func (k Kind) IsIntegral() bool {
	switch k {
	case TagByte, TagShort, TagInt, TagLong:
		return true
	}
	return false
}

// Tag is one node of a decoded tag tree. Exactly one payload field is
// populated, selected by Kind. Trees are not mutated after decoding.
type Tag struct {
	Kind Kind

	Num   int64   // TagByte, TagShort, TagInt, TagLong
	Flt   float64 // TagFloat, TagDouble
	Str   string  // TagString
	Bytes []byte  // TagByteArray
	Ints  []int32 // TagIntArray
	Longs []int64 // TagLongArray

	Elem Kind   // element kind of a TagList
	List []*Tag // TagList

	children map[string]*Tag // TagCompound
	order    []string        // TagCompound, insertion order
}

// Child returns the named child of a compound tag.
func (t *Tag) Child(name string) (*Tag, bool) {
	if t == nil || t.Kind != TagCompound {
		return nil, false
	}
	c, ok := t.children[name]
	return c, ok
}

// Has reports whether a compound tag contains the named child.
func (t *Tag) Has(name string) bool {
	_, ok := t.Child(name)
	return ok
}

// Keys returns the child names of a compound tag in insertion order.
func (t *Tag) Keys() []string {
	if t == nil || t.Kind != TagCompound {
		return nil
	}
	return t.order
}

// Set adds or replaces a child of a compound tag, preserving the
// insertion order of first appearance.
func (t *Tag) Set(name string, child *Tag) {
	if t.children == nil {
		t.children = make(map[string]*Tag)
	}
	if _, exists := t.children[name]; !exists {
		t.order = append(t.order, name)
	}
	t.children[name] = child
}

// Constructors, mostly useful for building trees in tests and tools.

func NewCompound() *Tag { return &Tag{Kind: TagCompound} }

func NewByte(v int8) *Tag   { return &Tag{Kind: TagByte, Num: int64(v)} }
func NewShort(v int16) *Tag { return &Tag{Kind: TagShort, Num: int64(v)} }
func NewInt(v int32) *Tag   { return &Tag{Kind: TagInt, Num: int64(v)} }
func NewLong(v int64) *Tag  { return &Tag{Kind: TagLong, Num: v} }

func NewFloat(v float32) *Tag  { return &Tag{Kind: TagFloat, Flt: float64(v)} }
func NewDouble(v float64) *Tag { return &Tag{Kind: TagDouble, Flt: v} }

func NewString(v string) *Tag     { return &Tag{Kind: TagString, Str: v} }
func NewByteArray(v []byte) *Tag  { return &Tag{Kind: TagByteArray, Bytes: v} }
func NewIntArray(v []int32) *Tag  { return &Tag{Kind: TagIntArray, Ints: v} }
func NewLongArray(v []int64) *Tag { return &Tag{Kind: TagLongArray, Longs: v} }

func NewList(elem Kind, items ...*Tag) *Tag {
	return &Tag{Kind: TagList, Elem: elem, List: items}
}
