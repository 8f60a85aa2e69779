package colormap

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	// ErrUnsupportedDataset is reported for dataset identifiers outside the supported set.
	ErrUnsupportedDataset = errors.New("unsupported dataset")
	// ErrInvalidRank is reported for label grids that are not 2-dimensional.
	ErrInvalidRank = errors.New("expect 2-D input label")
	// ErrLabelOutOfRange is reported for labels outside the dataset's colormap.
	ErrLabelOutOfRange = errors.New("label value too large")
)

// UnsupportedDatasetError is returned when a dataset identifier is not recognized.
type UnsupportedDatasetError struct {
	// Name is the rejected identifier.
	Name string
}

func (e *UnsupportedDatasetError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsupportedDataset, e.Name)
}

// Is reports whether target is ErrUnsupportedDataset.
func (e *UnsupportedDatasetError) Is(target error) bool {
	return target == ErrUnsupportedDataset
}

// InvalidRankError is returned when a label grid is not exactly 2-dimensional.
type InvalidRankError struct {
	// Rank is the number of dimensions of the rejected grid. For ragged nested
	// slices it is the rank the caller attempted (2).
	Rank int
	// Reason optionally describes why a nominally 2-D grid was rejected.
	Reason string
}

func (e *InvalidRankError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", ErrInvalidRank, e.Reason)
	}
	return fmt.Sprintf("%s, got rank %d", ErrInvalidRank, e.Rank)
}

// Is reports whether target is ErrInvalidRank.
func (e *InvalidRankError) Is(target error) bool {
	return target == ErrInvalidRank
}

// LabelOutOfRangeError is returned when a label cannot index the dataset's colormap.
type LabelOutOfRangeError struct {
	// Label is the offending value.
	Label int64
	// Max is the dataset's max-entries bound.
	Max int
}

func (e *LabelOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %d not in [0, %d)", ErrLabelOutOfRange, e.Label, e.Max)
}

// Is reports whether target is ErrLabelOutOfRange.
func (e *LabelOutOfRangeError) Is(target error) bool {
	return target == ErrLabelOutOfRange
}
