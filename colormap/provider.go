package colormap

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorgonia.org/tensor"
)

// Provider builds colormaps and colors label maps for a fixed set of datasets.
// It is safe for concurrent use.
type Provider struct {
	config ProviderConfig
	logger *zap.Logger

	// Set by options; decide whether NewProvider derives the logger from config.
	hasLogger bool
	hasConfig bool

	mu    sync.RWMutex
	cache map[Dataset]Colormap
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Provider) {
		if logger == nil {
			logger = zap.NewNop()
		}
		p.logger = logger
		p.hasLogger = true
	}
}

// WithCache enables or disables colormap caching.
func WithCache(enabled bool) Option {
	return func(p *Provider) {
		p.config.Cache = enabled
	}
}

// WithDefaultDataset sets the dataset used by the *Default methods.
func WithDefaultDataset(ds Dataset) Option {
	return func(p *Provider) {
		p.config.Dataset = ds
	}
}

// WithConfig replaces the whole configuration. Unless WithLogger is also given,
// the provider logs through NewLogger(cfg.LogLevel).
func WithConfig(cfg ProviderConfig) Option {
	return func(p *Provider) {
		p.config = cfg
		p.hasConfig = true
	}
}

// NewProvider creates a Provider with DefaultProviderConfig and a no-op logger,
// then applies opts in order. A provider configured through WithConfig without
// WithLogger gets a console logger at the configured level.
//
// Arguments:
// - opts: Functional options overriding the defaults.
//
// Returns:
// - A configured Provider.
//
// @example
//
//	provider := colormap.NewProvider(
//	    colormap.WithDefaultDataset(colormap.DatasetCityscapes),
//	    colormap.WithLogger(colormap.NewLogger("debug")),
//	)
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		config: DefaultProviderConfig(),
		logger: zap.NewNop(),
		cache:  make(map[Dataset]Colormap),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.hasConfig && !p.hasLogger {
		p.logger = NewLogger(p.config.LogLevel)
	}
	return p
}

// Config returns the provider's configuration.
func (p *Provider) Config() ProviderConfig {
	return p.config
}

// Colormap returns a copy of the dataset's colormap.
func (p *Provider) Colormap(ds Dataset) (Colormap, error) {
	cmap, err := p.colormap(ds)
	if err != nil {
		return nil, err
	}
	return cmap.Clone(), nil
}

// colormap returns the shared master copy when caching is enabled. Callers must
// not modify the result.
func (p *Provider) colormap(ds Dataset) (Colormap, error) {
	if !p.config.Cache {
		return p.build(ds)
	}

	p.mu.RLock()
	cmap, ok := p.cache[ds]
	p.mu.RUnlock()
	if ok {
		p.logger.Debug("colormap cache hit", zap.Stringer("dataset", ds))
		return cmap, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if cmap, ok := p.cache[ds]; ok {
		return cmap, nil
	}
	cmap, err := p.build(ds)
	if err != nil {
		return nil, err
	}
	p.cache[ds] = cmap
	return cmap, nil
}

func (p *Provider) build(ds Dataset) (Colormap, error) {
	cmap, err := CreateLabelColormap(ds)
	if err != nil {
		p.logger.Warn("rejected dataset", zap.String("dataset", string(ds)), zap.Error(err))
		return nil, err
	}
	p.logger.Debug("built colormap", zap.Stringer("dataset", ds), zap.Int("entries", len(cmap)))
	return cmap, nil
}

// LabelToColorImage colors a rank-2 label tensor with the dataset's colormap.
// See the package-level LabelToColorImage for the error contract.
func (p *Provider) LabelToColorImage(labels tensor.Tensor, ds Dataset) (*tensor.Dense, error) {
	cmap, err := p.colormap(ds)
	if err != nil {
		return nil, err
	}
	out, err := colorize(labels, cmap)
	if err != nil {
		p.logger.Warn("rejected label map", zap.Stringer("dataset", ds), zap.Error(err))
		return nil, errors.Wrapf(err, "coloring %s labels", ds)
	}
	return out, nil
}

// LabelToColorImageDefault colors labels with the provider's default dataset.
func (p *Provider) LabelToColorImageDefault(labels tensor.Tensor) (*tensor.Dense, error) {
	return p.LabelToColorImage(labels, p.config.Dataset)
}

// ColormapDefault returns a copy of the default dataset's colormap.
func (p *Provider) ColormapDefault() (Colormap, error) {
	return p.Colormap(p.config.Dataset)
}
