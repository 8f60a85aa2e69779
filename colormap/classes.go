package colormap

import (
	"github.com/pkg/errors"
)

// Class is one segmentation class of a dataset.
type Class struct {
	// The label index produced by the model.
	Index int
	// The human-readable name.
	Name string
	// The colormap entry for the class.
	Color RGB
}

// ClassSet ties a dataset to its named classes.
type ClassSet struct {
	// Dataset identifier.
	Dataset Dataset
	// Classes in label order.
	Classes []Class
	// nameToIdx for fast lookup by name
	nameToIdx map[string]int
}

// ClassManager holds the class sets of every supported dataset.
type ClassManager struct {
	sets map[Dataset]*ClassSet
}

// ClassNames returns a copy of the class names of a dataset in label order.
// Cityscapes has 19 names, PASCAL VOC 21 (background first) and ADE20K 150.
func ClassNames(ds Dataset) ([]string, error) {
	var names []string
	switch ds {
	case DatasetCityscapes:
		names = cityscapesClasses
	case DatasetPascal:
		names = pascalClasses
	case DatasetADE:
		names = adeClasses
	default:
		return nil, &UnsupportedDatasetError{Name: string(ds)}
	}
	return append([]string(nil), names...), nil
}

// NewClassManager builds the class sets of all supported datasets.
//
// Returns:
// - A ClassManager able to resolve names, indices and colors.
//
// @example
//
//	mgr := colormap.NewClassManager()
//	idx, err := mgr.GetIndex(colormap.DatasetCityscapes, "car") // 13
func NewClassManager() *ClassManager {
	mgr := &ClassManager{sets: make(map[Dataset]*ClassSet)}
	for _, ds := range Datasets() {
		names, _ := ClassNames(ds)
		cmap, _ := CreateLabelColormap(ds)
		set := &ClassSet{
			Dataset:   ds,
			Classes:   make([]Class, len(names)),
			nameToIdx: make(map[string]int, len(names)),
		}
		for i, name := range names {
			set.Classes[i] = Class{Index: i, Name: name, Color: cmap[i]}
			set.nameToIdx[name] = i
		}
		mgr.sets[ds] = set
	}
	return mgr
}

// Set returns a copy of the class set of a dataset. Changes to the copy do not
// affect the manager.
func (m *ClassManager) Set(ds Dataset) (*ClassSet, error) {
	set, err := m.set(ds)
	if err != nil {
		return nil, err
	}
	out := &ClassSet{
		Dataset:   set.Dataset,
		Classes:   append([]Class(nil), set.Classes...),
		nameToIdx: make(map[string]int, len(set.nameToIdx)),
	}
	for name, idx := range set.nameToIdx {
		out.nameToIdx[name] = idx
	}
	return out, nil
}

func (m *ClassManager) set(ds Dataset) (*ClassSet, error) {
	set, ok := m.sets[ds]
	if !ok {
		return nil, &UnsupportedDatasetError{Name: string(ds)}
	}
	return set, nil
}

// GetName returns the class name for a given dataset and label.
func (m *ClassManager) GetName(ds Dataset, idx int) (string, error) {
	set, err := m.set(ds)
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(set.Classes) {
		return "", errors.Errorf("index %d out of range for dataset %q", idx, ds)
	}
	return set.Classes[idx].Name, nil
}

// GetIndex returns the label for a given dataset and class name.
func (m *ClassManager) GetIndex(ds Dataset, name string) (int, error) {
	set, err := m.set(ds)
	if err != nil {
		return -1, err
	}
	idx, ok := set.nameToIdx[name]
	if !ok {
		return -1, errors.Errorf("name %q not found in dataset %q", name, ds)
	}
	return idx, nil
}

// ColorOf returns the colormap entry for a named class.
func (m *ClassManager) ColorOf(ds Dataset, name string) (RGB, error) {
	idx, err := m.GetIndex(ds, name)
	if err != nil {
		return RGB{}, err
	}
	return m.sets[ds].Classes[idx].Color, nil
}
