// Package colormap - Segmentation label colormaps for the Cityscapes, PASCAL VOC and
// ADE20K benchmarks.
package colormap

import (
	"gopkg.in/yaml.v3"
)

// Dataset identifies the benchmark whose palette is used to color a label map.
type Dataset string

const (
	// DatasetCityscapes is the Cityscapes benchmark (19 train ids).
	DatasetCityscapes Dataset = "cityscapes"
	// DatasetPascal is the PASCAL VOC benchmark.
	DatasetPascal Dataset = "pascal"
	// DatasetADE is the ADE20K scene parsing benchmark.
	DatasetADE Dataset = "ade"
)

// DefaultDataset is used when no dataset is specified.
const DefaultDataset = DatasetPascal

// datasetMaxEntries is the number of rows in each dataset's colormap.
var datasetMaxEntries = map[Dataset]int{
	DatasetCityscapes: 19,
	DatasetPascal:     256,
	DatasetADE:        256,
}

// CityscapesName returns the Cityscapes dataset identifier.
func CityscapesName() string {
	return string(DatasetCityscapes)
}

// PascalName returns the PASCAL VOC dataset identifier.
func PascalName() string {
	return string(DatasetPascal)
}

// ADEName returns the ADE20K dataset identifier.
func ADEName() string {
	return string(DatasetADE)
}

// Datasets returns every supported dataset in a stable order.
func Datasets() []Dataset {
	return []Dataset{DatasetCityscapes, DatasetPascal, DatasetADE}
}

// ParseDataset resolves a dataset identifier.
//
// Arguments:
// - name: The dataset identifier, matched exactly ("cityscapes", "pascal" or "ade").
//
// Returns:
// - The matching Dataset.
// - *UnsupportedDatasetError if the name is not recognized.
//
// @example
//
//	ds, err := colormap.ParseDataset("cityscapes")
//	if err != nil {
//	    log.Fatal(err)
//	}
func ParseDataset(name string) (Dataset, error) {
	ds := Dataset(name)
	if _, ok := datasetMaxEntries[ds]; !ok {
		return "", &UnsupportedDatasetError{Name: name}
	}
	return ds, nil
}

// String implements fmt.Stringer.
func (d Dataset) String() string {
	return string(d)
}

// Valid reports whether the dataset is one of the supported identifiers.
func (d Dataset) Valid() bool {
	_, ok := datasetMaxEntries[d]
	return ok
}

// MaxEntries returns the number of entries in the dataset's colormap. Every label
// passed to LabelToColorImage must be strictly below this bound.
func (d Dataset) MaxEntries() (int, error) {
	n, ok := datasetMaxEntries[d]
	if !ok {
		return 0, &UnsupportedDatasetError{Name: string(d)}
	}
	return n, nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Dataset) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, &UnsupportedDatasetError{Name: string(d)}
	}
	return []byte(d), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dataset) UnmarshalText(text []byte) error {
	ds, err := ParseDataset(string(text))
	if err != nil {
		return err
	}
	*d = ds
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Dataset) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(name))
}
