package colormap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorgonia.org/tensor"
)

func newObservedProvider(opts ...Option) (*Provider, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	opts = append([]Option{WithLogger(zap.New(core))}, opts...)
	return NewProvider(opts...), logs
}

func TestNewProviderDefaults(t *testing.T) {
	p := NewProvider()
	assert.Equal(t, DefaultProviderConfig(), p.Config())

	cmap, err := p.ColormapDefault()
	require.NoError(t, err)
	assert.Len(t, cmap, 256, "default dataset is pascal")
}

func TestProviderCachesColormaps(t *testing.T) {
	p, logs := newObservedProvider()

	first, err := p.Colormap(DatasetADE)
	require.NoError(t, err)
	second, err := p.Colormap(DatasetADE)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, 1, logs.FilterMessage("built colormap").Len(), "table should be built once")
	assert.Equal(t, 1, logs.FilterMessage("colormap cache hit").Len())
}

func TestProviderWithoutCache(t *testing.T) {
	p, logs := newObservedProvider(WithCache(false))

	for i := 0; i < 3; i++ {
		_, err := p.Colormap(DatasetCityscapes)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, logs.FilterMessage("built colormap").Len())
	assert.Zero(t, logs.FilterMessage("colormap cache hit").Len())
}

func TestProviderColormapIsolation(t *testing.T) {
	p := NewProvider()

	cmap, err := p.Colormap(DatasetCityscapes)
	require.NoError(t, err)
	cmap[0] = RGB{9, 9, 9}

	labels, err := LabelGridToTensor([][]int{{0}})
	require.NoError(t, err)
	colored, err := p.LabelToColorImage(labels, DatasetCityscapes)
	require.NoError(t, err)
	assert.Equal(t, []uint8{128, 64, 128}, colored.Data(), "cached master copy must stay intact")
}

func TestProviderLabelToColorImageErrors(t *testing.T) {
	p, logs := newObservedProvider()

	vector := tensor.New(tensor.WithShape(2), tensor.WithBacking([]int{0, 1}))
	_, err := p.LabelToColorImage(vector, DatasetPascal)
	var rankErr *InvalidRankError
	require.ErrorAs(t, err, &rankErr)
	assert.Equal(t, 1, rankErr.Rank)
	assert.Contains(t, err.Error(), "coloring pascal labels")

	labels, err := LabelGridToTensor([][]int{{0, 19}})
	require.NoError(t, err)
	_, err = p.LabelToColorImage(labels, DatasetCityscapes)
	assert.ErrorIs(t, err, ErrLabelOutOfRange)

	_, err = p.LabelToColorImage(labels, Dataset("kitti"))
	assert.ErrorIs(t, err, ErrUnsupportedDataset)

	assert.Equal(t, 2, logs.FilterMessage("rejected label map").Len())
	assert.Equal(t, 1, logs.FilterMessage("rejected dataset").Len())
}

func TestProviderDefaultDataset(t *testing.T) {
	p := NewProvider(WithDefaultDataset(DatasetCityscapes))

	labels, err := LabelGridToTensor([][]int{{18}})
	require.NoError(t, err)
	colored, err := p.LabelToColorImageDefault(labels)
	require.NoError(t, err)
	assert.Equal(t, []uint8{119, 11, 32}, colored.Data())
}

func TestProviderConcurrentUse(t *testing.T) {
	p := NewProvider()
	labels, err := LabelGridToTensor([][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 32)
	for i := range errs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ds := Datasets()[idx%3]
			_, errs[idx] = p.LabelToColorImage(labels, ds)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}
