// Package images - Conversions from colored label maps to the image types consumed
// downstream (image.Image and OpenCV matrices via gocv).
package images

import (
	"image"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-colormap/colormap"
)

// ColorImage is a colored label map together with its dimensions.
type ColorImage struct {
	// The dataset whose colormap produced the colors.
	Dataset colormap.Dataset `json:"dataset" yaml:"dataset"`
	// Row-major RGB bytes, 3 per pixel.
	Data []byte `json:"data" yaml:"data"`
	// The width of the image.
	Width int `json:"width" yaml:"width"`
	// The height of the image.
	Height int `json:"height" yaml:"height"`
}

// NewColorImage wraps an (H, W, 3) uint8 color tensor produced by
// colormap.LabelToColorImage.
//
// Arguments:
// - ds: The dataset the colors came from.
// - colors: The color tensor.
//
// Returns:
// - The ColorImage sharing the tensor's backing data.
// - error if the tensor does not have shape (H, W, 3) and dtype uint8.
//
// @example
//
//	colored, _ := colormap.LabelToColorImage(labels, colormap.DatasetPascal)
//	img, err := images.NewColorImage(colormap.DatasetPascal, colored)
func NewColorImage(ds colormap.Dataset, colors *tensor.Dense) (*ColorImage, error) {
	data, height, width, err := colormap.ColorTensorData(colors)
	if err != nil {
		return nil, errors.Wrap(err, "invalid color tensor")
	}
	return &ColorImage{Dataset: ds, Data: data, Width: width, Height: height}, nil
}

// Validate checks that Data holds exactly Width*Height RGB triples.
func (c *ColorImage) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return errors.Errorf("invalid color image dimensions: %dx%d", c.Width, c.Height)
	}
	if expected := c.Width * c.Height * 3; len(c.Data) != expected {
		return errors.Errorf("color image %dx%d needs %d bytes, has %d",
			c.Width, c.Height, expected, len(c.Data))
	}
	return nil
}

// ToRGBA converts the color image to an opaque *image.RGBA.
//
// Returns:
// - The RGBA image with bounds (0, 0)-(Width, Height).
// - error if the image fails Validate.
//
// @example
//
//	rgba, err := img.ToRGBA()
//	if err != nil {
//	    return err
//	}
//	_ = png.Encode(w, rgba)
func (c *ColorImage) ToRGBA() (*image.RGBA, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	out := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for i, j := 0, 0; i+2 < len(c.Data); i, j = i+3, j+4 {
		out.Pix[j] = c.Data[i]
		out.Pix[j+1] = c.Data[i+1]
		out.Pix[j+2] = c.Data[i+2]
		out.Pix[j+3] = 255
	}
	return out, nil
}

// ColorTensorToRGBA converts an (H, W, 3) uint8 color tensor to an *image.RGBA.
func ColorTensorToRGBA(colors *tensor.Dense) (*image.RGBA, error) {
	img, err := NewColorImage("", colors)
	if err != nil {
		return nil, err
	}
	return img.ToRGBA()
}

// LabelsToRGBA colors a rank-2 label tensor and returns it as an *image.RGBA.
//
// Arguments:
// - provider: The colormap provider.
// - labels: The label tensor.
// - ds: The dataset whose colormap to use.
//
// Returns:
// - The colored image.
// - error from provider.LabelToColorImage.
func LabelsToRGBA(provider *colormap.Provider, labels tensor.Tensor, ds colormap.Dataset) (*image.RGBA, error) {
	colors, err := provider.LabelToColorImage(labels, ds)
	if err != nil {
		return nil, err
	}
	return ColorTensorToRGBA(colors)
}
