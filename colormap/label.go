package colormap

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// integer is the set of element types accepted in a label tensor.
type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// LabelToColorImage adds color defined by the dataset colormap to the label.
//
// The result has shape (H, W, 3) and dtype uint8; the element at (r, c) is the
// colormap row indexed by labels[r, c].
//
// Arguments:
// - labels: A rank-2 tensor of integer class labels.
// - ds: The dataset whose colormap is used.
//
// Returns:
// - The (H, W, 3) color tensor.
// - *UnsupportedDatasetError if ds is not supported.
// - *InvalidRankError if labels is not 2-dimensional.
// - *LabelOutOfRangeError if any label is negative or >= ds.MaxEntries().
//
// @example
//
//	labels := tensor.New(tensor.WithShape(2, 2), tensor.WithBacking([]int{0, 1, 2, 18}))
//	colored, err := colormap.LabelToColorImage(labels, colormap.DatasetCityscapes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(colored.Shape()) // (2, 2, 3)
func LabelToColorImage(labels tensor.Tensor, ds Dataset) (*tensor.Dense, error) {
	cmap, err := CreateLabelColormap(ds)
	if err != nil {
		return nil, err
	}
	return colorize(labels, cmap)
}

// colorize validates labels against cmap and gathers the colors.
func colorize(labels tensor.Tensor, cmap Colormap) (*tensor.Dense, error) {
	values, shape, err := labelValues(labels)
	if err != nil {
		return nil, err
	}
	if err := checkRange(values, len(cmap)); err != nil {
		return nil, err
	}
	return gather(values, shape, cmap), nil
}

// labelValues validates the rank of labels and flattens them in row-major order.
func labelValues(labels tensor.Tensor) ([]int64, tensor.Shape, error) {
	if labels == nil {
		return nil, nil, &InvalidRankError{Rank: 0, Reason: "label tensor is nil"}
	}
	if labels.Dims() != 2 {
		return nil, nil, &InvalidRankError{Rank: labels.Dims()}
	}
	shape := labels.Shape().Clone()
	if shape[0] == 0 || shape[1] == 0 {
		return nil, nil, &InvalidRankError{Rank: 2, Reason: fmt.Sprintf("label grid has zero-sized shape %v", shape)}
	}

	if d, ok := labels.(*tensor.Dense); ok && d.IsMaterializable() {
		labels = d.Materialize()
	}

	var values []int64
	switch data := labels.Data().(type) {
	case []int:
		values = widen(data)
	case []int8:
		values = widen(data)
	case []int16:
		values = widen(data)
	case []int32:
		values = widen(data)
	case []int64:
		values = widen(data)
	case []uint:
		values = widen(data)
	case []uint8:
		values = widen(data)
	case []uint16:
		values = widen(data)
	case []uint32:
		values = widen(data)
	case []uint64:
		values = make([]int64, len(data))
		for i, v := range data {
			// Saturate; anything this large is out of range for every dataset.
			values[i] = int64(min(v, math.MaxInt64))
		}
	default:
		return nil, nil, errors.Errorf("unsupported label dtype %v", labels.Dtype())
	}

	if len(values) != shape.TotalSize() {
		return nil, nil, errors.Errorf("label tensor holds %d values, shape %v needs %d",
			len(values), shape, shape.TotalSize())
	}
	return values, shape, nil
}

// widen converts a slice of integers to int64.
func widen[T integer](data []T) []int64 {
	out := make([]int64, len(data))
	for i, v := range data {
		out[i] = int64(v)
	}
	return out
}

// checkRange reports the first label that cannot index a colormap of maxEntries rows.
func checkRange(values []int64, maxEntries int) error {
	for _, v := range values {
		if v < 0 || v >= int64(maxEntries) {
			return &LabelOutOfRangeError{Label: v, Max: maxEntries}
		}
	}
	return nil
}

// gather builds the (H, W, 3) color tensor for validated label values.
func gather(values []int64, shape tensor.Shape, cmap Colormap) *tensor.Dense {
	backing := make([]uint8, len(values)*3)
	for i, v := range values {
		c := cmap[v]
		backing[i*3] = c[0]
		backing[i*3+1] = c[1]
		backing[i*3+2] = c[2]
	}
	return tensor.New(tensor.WithShape(shape[0], shape[1], 3), tensor.WithBacking(backing))
}

// LabelGridToTensor builds a rank-2 int label tensor from nested slices.
//
// Arguments:
// - grid: Rows of labels; every row must have the same, non-zero length.
//
// Returns:
// - A (len(grid), len(grid[0])) tensor of dtype int.
// - *InvalidRankError if the grid is empty or ragged.
//
// @example
//
//	labels, err := colormap.LabelGridToTensor([][]int{{0, 1}, {2, 18}})
func LabelGridToTensor(grid [][]int) (*tensor.Dense, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, &InvalidRankError{Rank: 2, Reason: "label grid is empty"}
	}
	width := len(grid[0])
	backing := make([]int, 0, len(grid)*width)
	for r, row := range grid {
		if len(row) != width {
			return nil, &InvalidRankError{
				Rank:   2,
				Reason: fmt.Sprintf("row %d has %d labels, expected %d", r, len(row), width),
			}
		}
		backing = append(backing, row...)
	}
	return tensor.New(tensor.WithShape(len(grid), width), tensor.WithBacking(backing)), nil
}

// ColorTensorToGrid converts an (H, W, 3) uint8 color tensor to nested slices.
func ColorTensorToGrid(colors *tensor.Dense) ([][]RGB, error) {
	data, height, width, err := ColorTensorData(colors)
	if err != nil {
		return nil, err
	}
	grid := make([][]RGB, height)
	for r := range grid {
		grid[r] = make([]RGB, width)
		for c := range grid[r] {
			i := (r*width + c) * 3
			grid[r][c] = RGB{data[i], data[i+1], data[i+2]}
		}
	}
	return grid, nil
}

// ColorTensorData validates an (H, W, 3) uint8 color tensor and returns its
// row-major backing data together with its height and width.
func ColorTensorData(colors *tensor.Dense) ([]uint8, int, int, error) {
	if colors == nil {
		return nil, 0, 0, errors.New("color tensor is nil")
	}
	shape := colors.Shape()
	if len(shape) != 3 || shape[2] != 3 {
		return nil, 0, 0, errors.Errorf("expected color tensor of shape (H, W, 3), got %v", shape)
	}
	if colors.IsMaterializable() {
		colors = colors.Materialize().(*tensor.Dense)
	}
	data, ok := colors.Data().([]uint8)
	if !ok {
		return nil, 0, 0, errors.Errorf("expected uint8 color tensor, got %v", colors.Dtype())
	}
	return data, shape[0], shape[1], nil
}
