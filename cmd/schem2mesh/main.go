package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/astei/schem2mesh"
	"github.com/astei/schem2mesh/mesh"
	"github.com/astei/schem2mesh/model"
)

func main() {
	app := &cli.App{
		Name:  "schem2mesh",
		Usage: "compiles voxel schematics into batched render geometry",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file",
			},
			&cli.StringFlag{
				Name:  "models",
				Usage: "directory holding per-block model JSON files",
			},
			&cli.IntFlag{
				Name:  "chunk-size",
				Usage: "groups compiled between progress events",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "suppress progress logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "decode a schematic and print compilation statistics",
				ArgsUsage: "<file>",
				Action:    runInfo,
			},
			{
				Name:      "obj",
				Usage:     "compile a schematic and write it as Wavefront OBJ",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output path (default: input name with .obj)",
					},
				},
				Action: runObj,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func compileFile(c *cli.Context) ([]mesh.Batch, *mesh.Report, error) {
	if c.NArg() != 1 {
		return nil, nil, fmt.Errorf("need exactly one schematic file, got %d arguments", c.NArg())
	}
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	if c.IsSet("models") {
		cfg.Models = c.String("models")
	}
	if c.IsSet("chunk-size") {
		cfg.ChunkSize = c.Int("chunk-size")
	}
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	root, err := readTagTree(c.Args().Get(0))
	if err != nil {
		return nil, nil, err
	}

	provider := model.NewDir(cfg.Models)
	provider.Fallback = cfg.CubeFallback

	var reporter mesh.Reporter
	if !c.Bool("quiet") {
		reporter = mesh.LogReporter{Logger: log.New(os.Stderr, "", log.LstdFlags)}
	}

	return schem2mesh.DecodeAndCompile(context.Background(), root, provider, schem2mesh.Config{
		ChunkSize: cfg.ChunkSize,
		Reporter:  reporter,
	})
}

func runInfo(c *cli.Context) error {
	_, report, err := compileFile(c)
	if err != nil {
		return err
	}

	fmt.Printf("dimensions: %dx%dx%d (%d non-air blocks)\n",
		report.Width, report.Height, report.Length, report.NonAir)
	fmt.Printf("groups:     %d (%d instances)\n", report.Groups, report.Instances)
	fmt.Printf("models:     %d loaded, %d failed\n", report.ModelsLoaded, report.ModelsFailed)
	fmt.Printf("geometry:   %d meshes, %d vertices, %d faces\n",
		report.Meshes, report.Vertices, report.Faces)
	fmt.Printf("elapsed:    %s\n", report.Elapsed)

	printHistogram("skipped blocks", report.Skipped)
	if len(report.PaletteMisses) > 0 {
		fmt.Printf("palette misses: %d distinct ids\n", len(report.PaletteMisses))
	}
	if len(report.UnknownLegacy) > 0 {
		fmt.Printf("unknown legacy ids: %d distinct ids\n", len(report.UnknownLegacy))
	}
	return nil
}

func runObj(c *cli.Context) error {
	batches, report, err := compileFile(c)
	if err != nil {
		return err
	}

	output := c.String("output")
	if output == "" {
		input := c.Args().Get(0)
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".obj"
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := writeOBJ(f, batches); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("wrote %d meshes (%d vertices, %d faces) to %s\n",
		report.Meshes, report.Vertices, report.Faces, output)
	return nil
}

func printHistogram(label string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("%s:\n", label)
	for _, name := range names {
		fmt.Printf("  %-30s %d\n", name, counts[name])
	}
}
