package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/df07/go-raytracer/pkg/config"
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/loaders"
	"github.com/df07/go-raytracer/pkg/renderer"
	"github.com/df07/go-raytracer/pkg/scene"
	"github.com/spf13/cobra"
)

// allScenes renders every registered scene in name order
const allScenes = "all"

type renderFlags struct {
	configPath string
	cfg        config.Config
}

func newRenderCmd() *cobra.Command {
	flags := &renderFlags{cfg: config.Default()}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to a PNG file",
		Long: `Render one of the built-in scenes, or every scene with --scene all. Settings come
from the defaults, then the optional --config YAML file, then any flags given explicitly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			names := []string{cfg.Scene}
			if cfg.Scene == allScenes {
				names = scene.Names()
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				cfg.Scene = name
				filename, stats, err := runRender(cfg)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Render completed in %v (%d samples, %.0f samples/s)\n",
					stats.Elapsed, stats.TotalSamples, stats.SamplesPerSecond())
				fmt.Fprintf(out, "Render saved as %s\n", filename)
			}
			return nil
		},
	}

	f := renderCmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file")
	f.StringVarP(&flags.cfg.Scene, "scene", "s", flags.cfg.Scene, "Scene to render (see 'raytracer scenes'), or 'all'")
	f.IntVarP(&flags.cfg.Width, "width", "w", flags.cfg.Width, "Image width in pixels")
	f.IntVar(&flags.cfg.Samples, "samples", flags.cfg.Samples, "Samples per pixel")
	f.IntVarP(&flags.cfg.Depth, "depth", "d", flags.cfg.Depth, "Maximum bounces per path")
	f.IntVar(&flags.cfg.Workers, "workers", flags.cfg.Workers, "Parallel render workers (0 = one per CPU)")
	f.Int64Var(&flags.cfg.Seed, "seed", flags.cfg.Seed, "Random seed for the scene layout and the render")
	f.IntVar(&flags.cfg.BandHeight, "band-height", flags.cfg.BandHeight, "Rows per scheduled band")
	f.StringVarP(&flags.cfg.OutputDir, "output", "o", flags.cfg.OutputDir, "Output directory")
	f.StringVar(&flags.cfg.TextureDir, "textures", flags.cfg.TextureDir, "Directory holding image textures")

	return renderCmd
}

// resolveConfig layers explicitly set flags over the config file over the defaults
func resolveConfig(cmd *cobra.Command, flags *renderFlags) (config.Config, error) {
	if flags.configPath == "" {
		return flags.cfg, flags.cfg.Validate()
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("scene") {
		cfg.Scene = flags.cfg.Scene
	}
	if f.Changed("width") {
		cfg.Width = flags.cfg.Width
	}
	if f.Changed("samples") {
		cfg.Samples = flags.cfg.Samples
	}
	if f.Changed("depth") {
		cfg.Depth = flags.cfg.Depth
	}
	if f.Changed("workers") {
		cfg.Workers = flags.cfg.Workers
	}
	if f.Changed("seed") {
		cfg.Seed = flags.cfg.Seed
	}
	if f.Changed("band-height") {
		cfg.BandHeight = flags.cfg.BandHeight
	}
	if f.Changed("output") {
		cfg.OutputDir = flags.cfg.OutputDir
	}
	if f.Changed("textures") {
		cfg.TextureDir = flags.cfg.TextureDir
	}
	return cfg, cfg.Validate()
}

// runRender builds, renders and saves the configured scene, returning the written file
func runRender(cfg config.Config) (string, renderer.RenderStats, error) {
	s, err := scene.Build(cfg.Scene, scene.Options{
		Width:      cfg.Width,
		Samples:    cfg.Samples,
		Depth:      cfg.Depth,
		TextureDir: cfg.TextureDir,
		Sampler:    core.NewSeededSampler(cfg.Seed),
	})
	if err != nil {
		return "", renderer.RenderStats{}, err
	}

	camera, err := renderer.NewCamera(s.Camera)
	if err != nil {
		return "", renderer.RenderStats{}, fmt.Errorf("scene %s: %w", s.Name, err)
	}

	buffer, stats, err := camera.Render(s.World, renderer.RenderOptions{
		Workers:    cfg.Workers,
		Seed:       cfg.Seed,
		BandHeight: cfg.BandHeight,
	})
	if err != nil {
		return "", stats, err
	}

	filename := filepath.Join(cfg.OutputDir, loaders.OutputFilename(s.Name, cfg.Width, cfg.Samples, cfg.Depth))
	if err := loaders.SavePNG(buffer, filename); err != nil {
		return "", stats, err
	}
	core.Logger().Debug("image saved", "scene", s.Name, "file", filename)
	return filename, stats, nil
}
