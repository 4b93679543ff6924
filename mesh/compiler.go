package mesh

import (
	"context"
	"sync"
)

// ModelProvider supplies base geometry and appearance for a block type.
// Resolution may hit the network or disk and may fail per call; failures
// skip the group, they never abort compilation.
type ModelProvider interface {
	Resolve(ctx context.Context, name string, properties []string) (Geometry, Material, error)
}

// Config tunes one compilation pass.
type Config struct {
	// ChunkSize is the number of groups merged between progress events
	// and context checks. It never affects the compiled output.
	ChunkSize int
	Reporter  Reporter
}

const (
	DefaultChunkSize = 32

	// Groups below this instance count are emitted per instance; setting
	// up a merged buffer is not worth it for them.
	smallGroupMax = 5
)

func (c Config) withDefaults() Config {
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.Reporter == nil {
		c.Reporter = NopReporter{}
	}
	return c
}

type resolvedModel struct {
	geometry Geometry
	material Material
	err      error
}

// Compile turns block groups into geometry batches, in group order.
// Model resolution for all groups runs concurrently up front; merging is
// chunked with a context check between chunks so a caller can abort and
// discard the whole pass. No partial batch list is ever returned.
func Compile(ctx context.Context, groups []*Group, provider ModelProvider, cfg Config) ([]Batch, *Report, error) {
	cfg = cfg.withDefaults()

	report := &Report{
		Groups:    len(groups),
		Instances: InstanceCount(groups),
		Skipped:   make(map[string]int),
	}

	models := resolveModels(ctx, groups, provider)
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	for _, m := range models {
		if m.err != nil {
			report.ModelsFailed++
		} else {
			report.ModelsLoaded++
		}
	}
	cfg.Reporter.ModelsResolved(report.ModelsLoaded, report.ModelsFailed)

	var batches []Batch
	for start := 0; start < len(groups); start += cfg.ChunkSize {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}

		end := start + cfg.ChunkSize
		if end > len(groups) {
			end = len(groups)
		}
		for i := start; i < end; i++ {
			group, model := groups[i], models[i]
			if model.err != nil {
				report.Skipped[group.Name] += len(group.Positions)
				continue
			}
			for _, b := range compileGroup(group, model) {
				report.Meshes++
				report.Vertices += b.Geometry.VertexCount()
				report.Faces += b.Geometry.FaceCount()
				batches = append(batches, b)
			}
		}
		cfg.Reporter.Progress(end, len(groups), report.Meshes, report.Vertices, report.Faces)
	}
	return batches, report, nil
}

// resolveModels fans out one resolution per group and waits for every
// result, bounding model-loading time by the slowest request instead of
// the sum. Results land at the group's own index, so ordering is
// unaffected by completion order.
func resolveModels(ctx context.Context, groups []*Group, provider ModelProvider) []resolvedModel {
	models := make([]resolvedModel, len(groups))
	var wg sync.WaitGroup
	wg.Add(len(groups))
	for i, group := range groups {
		go func(i int, group *Group) {
			defer wg.Done()
			geom, mat, err := provider.Resolve(ctx, group.Name, group.Properties)
			models[i] = resolvedModel{geometry: geom, material: mat, err: err}
		}(i, group)
	}
	wg.Wait()
	return models
}

func compileGroup(group *Group, model resolvedModel) []Batch {
	transform := ResolveTransform(group.Properties)

	if group.Rotated() || len(group.Positions) < smallGroupMax {
		return instanceBatches(group, model, transform)
	}

	parts := make([]Geometry, 0, len(group.Positions))
	for _, pos := range group.Positions {
		part := model.geometry.Clone()
		part.Translate(float32(pos[0]), float32(pos[1]), float32(pos[2]))
		parts = append(parts, part)
	}
	merged, err := Merge(parts)
	if err != nil {
		// Degrade to unmerged instances rather than dropping the group.
		return instanceBatches(group, model, transform)
	}
	return []Batch{{Name: group.Key(), Material: model.material, Geometry: merged}}
}

func instanceBatches(group *Group, model resolvedModel, transform Transform) []Batch {
	batches := make([]Batch, 0, len(group.Positions))
	for _, pos := range group.Positions {
		instance := model.geometry.Clone()
		instance.Apply(transform, pos[0], pos[1], pos[2])
		batches = append(batches, Batch{
			Name:     group.Key(),
			Material: model.material,
			Geometry: instance,
		})
	}
	return batches
}
