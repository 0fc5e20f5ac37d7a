package renderer

import (
	"errors"
	"time"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
)

// DefaultBandHeight is the number of rows per band when RenderOptions.BandHeight is unset
const DefaultBandHeight = 8

// RenderOptions controls how a render is scheduled
type RenderOptions struct {
	Workers    int   // Parallel workers (<= 0 uses runtime.NumCPU)
	Seed       int64 // Base seed; band k samples from Seed + k
	BandHeight int   // Rows per band (<= 0 uses DefaultBandHeight)
}

// Render traces the world into a new buffer, blocking until every band is done.
// The image depends only on the world, the camera and Seed, not on the worker count.
func (c *Camera) Render(world geometry.Hittable, opts RenderOptions) (*Buffer, RenderStats, error) {
	if world == nil {
		return nil, RenderStats{}, errors.New("render: world is nil")
	}

	start := time.Now()
	logger := core.Logger()

	bandHeight := opts.BandHeight
	if bandHeight <= 0 {
		bandHeight = DefaultBandHeight
	}

	width, height := c.Width(), c.Height()
	buffer := NewBuffer(width, height)
	bands := splitBands(height, bandHeight)

	if bvh, ok := world.(*geometry.BVHNode); ok {
		stats := bvh.Stats()
		logger.Debug("bvh built",
			"nodes", stats.TotalNodes,
			"objects", stats.LeafObjects,
			"maxDepth", stats.MaxDepth,
			"avgDepth", stats.AvgDepth)
	}

	pool := NewWorkerPool(c, world, buffer, opts.Workers, len(bands))
	logger.Info("render started",
		"width", width,
		"height", height,
		"samples", c.config.SamplesPerPixel,
		"depth", c.config.MaxDepth,
		"workers", pool.GetNumWorkers(),
		"bands", len(bands))

	pool.Start()
	for _, band := range bands {
		pool.SubmitTask(BandTask{Band: band, Seed: opts.Seed + int64(band.Index)})
	}

	stats := RenderStats{
		TotalPixels: width * height,
		Bands:       len(bands),
		Workers:     pool.GetNumWorkers(),
	}
	for range bands {
		result, _ := pool.GetResult()
		stats.TotalSamples += result.Samples
	}
	pool.Stop()

	stats.Elapsed = time.Since(start)
	logger.Info("render finished",
		"elapsed", stats.Elapsed,
		"samples", stats.TotalSamples,
		"samplesPerSecond", stats.SamplesPerSecond())

	return buffer, stats, nil
}

// splitBands partitions rows [0, height) into consecutive bands of at most bandHeight rows
func splitBands(height, bandHeight int) []Band {
	bands := make([]Band, 0, (height+bandHeight-1)/bandHeight)
	for start := 0; start < height; start += bandHeight {
		bands = append(bands, Band{
			Index:    len(bands),
			StartRow: start,
			EndRow:   min(start+bandHeight, height),
		})
	}
	return bands
}
