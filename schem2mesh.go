// Package schem2mesh decodes voxel schematics and compiles them into
// batched renderable geometry.
package schem2mesh

import (
	"context"
	"time"

	"github.com/astei/schem2mesh/mesh"
	"github.com/astei/schem2mesh/nbt"
	"github.com/astei/schem2mesh/schematic"
)

// Config tunes a decode-and-compile pass.
type Config struct {
	// ChunkSize is the number of groups compiled between progress events.
	// Zero means mesh.DefaultChunkSize.
	ChunkSize int
	// Reporter receives advisory statistics events. Nil discards them.
	Reporter mesh.Reporter
}

// DecodeAndCompile runs the full pipeline: detect the container variant,
// build the dense voxel grid, group non-air voxels by block type and
// state, and compile the groups into geometry batches.
//
// Structural problems in the container abort with an error. Resolution
// gaps (unmatched palette ids, unknown legacy ids, failed models) never
// do; they are only visible in the returned report.
func DecodeAndCompile(ctx context.Context, root *nbt.Tag, provider mesh.ModelProvider, cfg Config) ([]mesh.Batch, *mesh.Report, error) {
	start := time.Now()
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = mesh.NopReporter{}
	}

	decoded, err := schematic.Decode(root)
	if err != nil {
		return nil, nil, err
	}
	grid := decoded.Grid
	reporter.GridDecoded(grid.Width, grid.Height, grid.Length, grid.NonAir())

	groups := mesh.GroupBlocks(grid)
	reporter.Grouped(len(groups), mesh.InstanceCount(groups))

	batches, report, err := mesh.Compile(ctx, groups, provider, mesh.Config{
		ChunkSize: cfg.ChunkSize,
		Reporter:  reporter,
	})
	if err != nil {
		return nil, nil, err
	}

	report.Width, report.Height, report.Length = grid.Width, grid.Height, grid.Length
	report.NonAir = grid.NonAir()
	report.PaletteMisses = decoded.PaletteMisses
	report.UnknownLegacy = decoded.UnknownLegacy
	report.Elapsed = time.Since(start)
	reporter.Done(report)

	return batches, report, nil
}
