package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/astei/schem2mesh/mesh"
	"github.com/astei/schem2mesh/nbt"
)

func TestWriteOBJ(t *testing.T) {
	batch := mesh.Batch{
		Name:     "stone",
		Material: mesh.Material{Texture: "block/stone"},
		Geometry: mesh.Geometry{
			Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
			Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
			UVs:       []float32{0, 0, 1, 0, 0, 1},
			Indices:   []uint32{0, 1, 2},
		},
	}

	var buf bytes.Buffer
	if err := writeOBJ(&buf, []mesh.Batch{batch, batch}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "o stone_0\n") || !strings.Contains(out, "o stone_1\n") {
		t.Errorf("missing object headers:\n%s", out)
	}
	if !strings.Contains(out, "usemtl block_stone\n") {
		t.Errorf("missing material reference:\n%s", out)
	}
	// The second batch's face indices start after the first's 3 vertices.
	if !strings.Contains(out, "f 1/1/1 2/2/2 3/3/3\n") {
		t.Errorf("missing first face:\n%s", out)
	}
	if !strings.Contains(out, "f 4/4/4 5/5/5 6/6/6\n") {
		t.Errorf("missing offset face:\n%s", out)
	}
}

func TestWriteOBJPositionsOnly(t *testing.T) {
	batch := mesh.Batch{
		Name: "bare",
		Geometry: mesh.Geometry{
			Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		},
	}
	var buf bytes.Buffer
	if err := writeOBJ(&buf, []mesh.Batch{batch}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "f 1 2 3\n") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestReadTagTreeGzip(t *testing.T) {
	root := nbt.NewCompound()
	root.Set("Width", nbt.NewShort(1))
	root.Set("Height", nbt.NewShort(1))
	root.Set("Length", nbt.NewShort(1))
	root.Set("Blocks", nbt.NewByteArray([]byte{1}))

	var raw bytes.Buffer
	if err := nbt.Write(&raw, "Schematic", root); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "test.schematic")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write(raw.Bytes()); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	tag, err := readTagTree(path)
	if err != nil {
		t.Fatal(err)
	}
	if !tag.Has("Blocks") {
		t.Error("decoded tree lacks Blocks")
	}
}

func TestReadTagTreeUnwrapsNestedRoot(t *testing.T) {
	inner := nbt.NewCompound()
	inner.Set("Width", nbt.NewShort(1))
	outer := nbt.NewCompound()
	outer.Set("Schematic", inner)

	var raw bytes.Buffer
	if err := nbt.Write(&raw, "", outer); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "nested.schem")
	if err := os.WriteFile(path, raw.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	tag, err := readTagTree(path)
	if err != nil {
		t.Fatal(err)
	}
	if !tag.Has("Width") {
		t.Error("nested root was not unwrapped")
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ChunkSize != mesh.DefaultChunkSize || cfg.Models != "models" || !cfg.CubeFallback {
		t.Errorf("defaults = %+v", cfg)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "models: assets/blocks\nchunk_size: 8\ncube_fallback: false\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Models != "assets/blocks" || cfg.ChunkSize != 8 || cfg.CubeFallback {
		t.Errorf("loaded = %+v", cfg)
	}

	cfg.ChunkSize = 0
	if err := cfg.validate(); err == nil {
		t.Error("zero chunk size validated")
	}
}
