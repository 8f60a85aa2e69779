package colormap

import (
	"image/color"
)

// RGB is a single colormap entry with channels in R, G, B order.
type RGB [3]uint8

// RGBA converts the entry to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// Colormap is an ordered table mapping a class index to its color.
type Colormap []RGB

// At returns the color for a class index and whether the index is in range.
func (m Colormap) At(idx int) (RGB, bool) {
	if idx < 0 || idx >= len(m) {
		return RGB{}, false
	}
	return m[idx], true
}

// Clone returns an independent copy of the colormap.
func (m Colormap) Clone() Colormap {
	out := make(Colormap, len(m))
	copy(out, m)
	return out
}

// Palette converts the colormap to a color.Palette, e.g. for image.Paletted.
func (m Colormap) Palette() color.Palette {
	p := make(color.Palette, len(m))
	for i, c := range m {
		p[i] = c.RGBA()
	}
	return p
}

// CreateLabelColormap creates the label colormap for the specified dataset.
//
// Arguments:
// - ds: The dataset whose palette to build.
//
// Returns:
// - A freshly allocated Colormap with ds.MaxEntries() rows.
// - *UnsupportedDatasetError if the dataset is not supported.
//
// @example
//
//	cmap, err := colormap.CreateLabelColormap(colormap.DatasetCityscapes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	road := cmap[0] // {128, 64, 128}
func CreateLabelColormap(ds Dataset) (Colormap, error) {
	switch ds {
	case DatasetPascal:
		return CreatePascalColormap(), nil
	case DatasetCityscapes:
		return CreateCityscapesColormap(), nil
	case DatasetADE:
		return CreateADEColormap(), nil
	default:
		return nil, &UnsupportedDatasetError{Name: string(ds)}
	}
}

// CreateCityscapesColormap creates the label colormap used in the Cityscapes
// segmentation benchmark.
func CreateCityscapesColormap() Colormap {
	out := make(Colormap, datasetMaxEntries[DatasetCityscapes])
	copy(out, cityscapesColormap[:])
	return out
}

// CreateADEColormap creates the label colormap used in the ADE20K segmentation
// benchmark. Only the first 150 rows carry colors.
func CreateADEColormap() Colormap {
	out := make(Colormap, datasetMaxEntries[DatasetADE])
	copy(out, adeColormap[:])
	return out
}
