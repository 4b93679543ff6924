package main

import (
	"bufio"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/astei/schem2mesh/nbt"
)

// readTagTree opens a schematic file and decodes its tag tree. Most
// exporters gzip the stream, some deflate it, a few write it raw; the
// compression is sniffed from the leading bytes.
func readTagTree(path string) (*nbt.Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	head, err := br.Peek(2)
	if err != nil {
		return nil, err
	}

	var r io.Reader = br
	switch {
	case head[0] == 0x1f && head[1] == 0x8b:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	case head[0] == 0x78:
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}

	_, root, err := nbt.Read(r)
	if err != nil {
		return nil, err
	}

	// Newer exporters nest the container fields one level down inside a
	// "Schematic" child compound.
	if !root.Has("Width") {
		if inner, ok := root.Child("Schematic"); ok && inner.Kind == nbt.TagCompound {
			return inner, nil
		}
	}
	return root, nil
}
