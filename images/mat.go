package images

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
	"gorgonia.org/tensor"
)

// ToMat converts the color image to a BGR CV_8UC3 gocv.Mat. The caller owns the
// returned Mat and must Close it.
//
// Returns:
// - The Mat with Height rows and Width columns.
// - error if the image fails Validate or the Mat cannot be allocated.
//
// @example
//
//	mat, err := img.ToMat()
//	if err != nil {
//	    return err
//	}
//	defer mat.Close()
//	gocv.IMWrite("labels.png", mat)
func (c *ColorImage) ToMat() (gocv.Mat, error) {
	if err := c.Validate(); err != nil {
		return gocv.NewMat(), err
	}
	bgr := make([]byte, len(c.Data))
	for i := 0; i+2 < len(c.Data); i += 3 {
		bgr[i] = c.Data[i+2]
		bgr[i+1] = c.Data[i+1]
		bgr[i+2] = c.Data[i]
	}

	view, err := gocv.NewMatFromBytes(c.Height, c.Width, gocv.MatTypeCV8UC3, bgr)
	if err != nil {
		return gocv.NewMat(), errors.Wrap(err, "failed to create mat")
	}
	defer view.Close()

	// The view may alias bgr; the clone owns its pixels.
	return view.Clone(), nil
}

// ColorTensorToMat converts an (H, W, 3) uint8 color tensor to a BGR gocv.Mat.
func ColorTensorToMat(colors *tensor.Dense) (gocv.Mat, error) {
	img, err := NewColorImage("", colors)
	if err != nil {
		return gocv.NewMat(), err
	}
	return img.ToMat()
}
