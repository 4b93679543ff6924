package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/astei/schem2mesh/mesh"
)

type config struct {
	// Models is the directory of per-block model JSON files.
	Models string `yaml:"models"`
	// ChunkSize is the number of groups compiled between progress events.
	ChunkSize int `yaml:"chunk_size"`
	// CubeFallback substitutes a unit cube for block types without a
	// model file instead of skipping them.
	CubeFallback bool `yaml:"cube_fallback"`
}

func defaults() config {
	return config{
		Models:       "models",
		ChunkSize:    mesh.DefaultChunkSize,
		CubeFallback: true,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.Models == "" {
		return fmt.Errorf("models directory must be set")
	}
	return nil
}
