package loaders

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/df07/go-raytracer/pkg/renderer"
)

// SavePNG encodes the buffer as a PNG file, creating parent directories as needed
func SavePNG(buffer *renderer.Buffer, filename string) error {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := png.Encode(file, buffer.ToImage()); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// OutputFilename returns the conventional file name for a render of scene at the given settings
func OutputFilename(scene string, width, samples, depth int) string {
	return fmt.Sprintf("%s_w%d_s%d_d%d.png", scene, width, samples, depth)
}
