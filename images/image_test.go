package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-colormap/colormap"
)

func cityscapesColors(t *testing.T) *tensor.Dense {
	t.Helper()
	labels, err := colormap.LabelGridToTensor([][]int{{0, 1}, {2, 18}})
	require.NoError(t, err)
	colors, err := colormap.LabelToColorImage(labels, colormap.DatasetCityscapes)
	require.NoError(t, err)
	return colors
}

func TestNewColorImage(t *testing.T) {
	img, err := NewColorImage(colormap.DatasetCityscapes, cityscapesColors(t))
	require.NoError(t, err)
	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Len(t, img.Data, 12)
	assert.Equal(t, colormap.DatasetCityscapes, img.Dataset)

	labels := tensor.New(tensor.WithShape(2, 2), tensor.WithBacking([]uint8{0, 1, 2, 3}))
	_, err = NewColorImage(colormap.DatasetPascal, labels)
	assert.Error(t, err, "a rank-2 tensor is not a color image")
}

func TestColorTensorToRGBA(t *testing.T) {
	rgba, err := ColorTensorToRGBA(cityscapesColors(t))
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 2, 2), rgba.Bounds())
	assert.Equal(t, color.RGBA{R: 128, G: 64, B: 128, A: 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 244, G: 35, B: 232, A: 255}, rgba.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{R: 70, G: 70, B: 70, A: 255}, rgba.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{R: 119, G: 11, B: 32, A: 255}, rgba.RGBAAt(1, 1))
}

func TestLabelsToRGBA(t *testing.T) {
	provider := colormap.NewProvider()
	labels, err := colormap.LabelGridToTensor([][]int{{0, 20}})
	require.NoError(t, err)

	rgba, err := LabelsToRGBA(provider, labels, colormap.DatasetPascal)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{A: 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 0, G: 64, B: 128, A: 255}, rgba.RGBAAt(1, 0))

	_, err = LabelsToRGBA(provider, labels, colormap.DatasetCityscapes)
	assert.ErrorIs(t, err, colormap.ErrLabelOutOfRange)
}

// TestResizeColorImageUpscale validates that nearest-neighbour upscaling replicates
// each label color into a block without blending.
func TestResizeColorImageUpscale(t *testing.T) {
	rgba, err := ColorTensorToRGBA(cityscapesColors(t))
	require.NoError(t, err)

	resized, err := ResizeColorImage(rgba, 4, 4)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 4), resized.Bounds())

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			expected := rgba.RGBAAt(x/2, y/2)
			r, g, b, a := resized.At(x, y).RGBA()
			actual := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
			assert.Equal(t, expected, actual, "pixel (%d, %d)", x, y)
		}
	}
}

func TestResizeColorImageAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	resized, err := ResizeColorImage(src, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), resized.Bounds())
}

func TestResizeColorImageNegative(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))

	for _, dims := range [][2]int{{-1, 4}, {4, -1}, {-2, -2}} {
		resized, err := ResizeColorImage(src, dims[0], dims[1])
		assert.Error(t, err, "dimensions %v", dims)
		assert.Nil(t, resized)
	}
}

// TestColorImageValidate checks that images whose Data does not match their
// dimensions are rejected instead of converted.
func TestColorImageValidate(t *testing.T) {
	tests := []struct {
		name    string
		img     ColorImage
		wantErr bool
	}{
		{"exact", ColorImage{Width: 2, Height: 1, Data: make([]byte, 6)}, false},
		{"empty", ColorImage{}, false},
		{"too long", ColorImage{Width: 1, Height: 1, Data: make([]byte, 6)}, true},
		{"too short", ColorImage{Width: 2, Height: 2, Data: make([]byte, 9)}, true},
		{"negative width", ColorImage{Width: -1, Height: 1, Data: nil}, true},
		{"negative height", ColorImage{Width: 1, Height: -3, Data: nil}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := tt.img
			rgba, err := img.ToRGBA()
			_, sumErr := img.Checksum()
			if tt.wantErr {
				assert.Error(t, img.Validate())
				assert.Error(t, err)
				assert.Nil(t, rgba)
				assert.Error(t, sumErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, sumErr)
			assert.Equal(t, image.Rect(0, 0, img.Width, img.Height), rgba.Bounds())
		})
	}
}

// TestColorImageChecksum validates that identical colorings hash identically and
// different ones do not.
func TestColorImageChecksum(t *testing.T) {
	first, err := NewColorImage(colormap.DatasetCityscapes, cityscapesColors(t))
	require.NoError(t, err)
	second, err := NewColorImage(colormap.DatasetCityscapes, cityscapesColors(t))
	require.NoError(t, err)

	firstSum, err := first.Checksum()
	require.NoError(t, err)
	secondSum, err := second.Checksum()
	require.NoError(t, err)
	assert.Equal(t, firstSum, secondSum)
	assert.Len(t, firstSum, 32)

	second.Data[0] = 0
	changed, err := second.Checksum()
	require.NoError(t, err)
	assert.NotEqual(t, firstSum, changed)

	wide := &ColorImage{Width: 2, Height: 1, Data: make([]byte, 6)}
	tall := &ColorImage{Width: 1, Height: 2, Data: make([]byte, 6)}
	wideSum, err := wide.Checksum()
	require.NoError(t, err)
	tallSum, err := tall.Checksum()
	require.NoError(t, err)
	assert.NotEqual(t, wideSum, tallSum, "dimensions are part of the checksum")
}
