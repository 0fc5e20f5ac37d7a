package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
)

// Band is a contiguous range of image rows [StartRow, EndRow)
type Band struct {
	Index    int
	StartRow int
	EndRow   int
}

// BandTask represents a band rendering task for the worker pool
type BandTask struct {
	Band Band
	Seed int64 // Seed of the band's sampler
}

// BandResult contains the result from rendering a band
type BandResult struct {
	BandIndex int
	WorkerID  int
	Samples   int
}

// WorkerPool manages parallel band rendering into a shared buffer
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual band rendering tasks
type Worker struct {
	ID          int
	camera      *Camera
	world       geometry.Hittable
	buffer      *Buffer
	taskQueue   chan BandTask
	resultQueue chan BandResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks bounds the number of tasks that may be queued without blocking.
func NewWorkerPool(camera *Camera, world geometry.Hittable, buffer *Buffer, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan BandTask, maxTasks),
		resultQueue: make(chan BandResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			camera:      camera,
			world:       world,
			buffer:      buffer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue and waits for every worker to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a band task to the worker pool
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() (BandResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Bands cover disjoint rows, so writes to the shared buffer never overlap
		samples := w.renderBand(task.Band, core.NewSeededSampler(task.Seed))

		w.resultQueue <- BandResult{
			BandIndex: task.Band.Index,
			WorkerID:  w.ID,
			Samples:   samples,
		}
	}
}

// renderBand traces every sample of every pixel in the band and returns the number of samples
func (w *Worker) renderBand(band Band, sampler core.Sampler) int {
	config := w.camera.config
	samples := 0

	for j := band.StartRow; j < band.EndRow; j++ {
		for i := 0; i < w.buffer.Width; i++ {
			var pixel PixelStats
			for s := 0; s < config.SamplesPerPixel; s++ {
				ray := w.camera.GetRay(i, j, sampler)
				pixel.AddSample(RayColor(ray, w.world, config.MaxDepth, w.camera.background, sampler))
			}
			w.buffer.Set(i, j, PackColor(pixel.GetColor()))
			samples += pixel.SampleCount
		}
	}

	return samples
}
