package images

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// ResizeColorImage scales a colored label map with nearest-neighbour sampling so
// that no new colors are introduced on upscaling. A zero width or height preserves
// the aspect ratio.
//
// Arguments:
// - img: The colored label map.
// - width: The target width.
// - height: The target height.
//
// Returns:
// - The resized image.
// - error if width or height is negative.
//
// @example
//
//	rgba, _ := images.ColorTensorToRGBA(colored)
//	frameSized, err := images.ResizeColorImage(rgba, 1920, 1080)
func ResizeColorImage(img image.Image, width, height int) (image.Image, error) {
	if width < 0 || height < 0 {
		return nil, errors.Errorf("invalid resize dimensions: %dx%d", width, height)
	}
	return resize.Resize(uint(width), uint(height), img, resize.NearestNeighbor), nil
}
