package colormap

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ProviderConfig holds the settings of a Provider.
type ProviderConfig struct {
	// Dataset is used by the *Default methods.
	Dataset Dataset `json:"dataset" yaml:"dataset"`
	// Cache keeps one master copy of each colormap after first use.
	Cache bool `json:"cache" yaml:"cache"`
	// LogLevel is one of "debug", "info", "warn" or "error".
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultProviderConfig returns the configuration used by NewProvider.
func DefaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		Dataset:  DefaultDataset,
		Cache:    true,
		LogLevel: "info",
	}
}

// ParseProviderConfig decodes a YAML document on top of DefaultProviderConfig.
//
// Arguments:
// - data: The YAML document. Keys that are absent keep their default values.
//
// Returns:
// - The merged configuration.
// - An error if the document is malformed or names an unsupported dataset.
//
// @example
//
//	cfg, err := colormap.ParseProviderConfig([]byte("dataset: ade\ncache: false\n"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	provider := colormap.NewProvider(colormap.WithConfig(cfg))
func ParseProviderConfig(data []byte) (ProviderConfig, error) {
	cfg := DefaultProviderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ProviderConfig{}, errors.Wrap(err, "parsing provider config")
	}
	return cfg, nil
}

// NewLogger builds a console zap logger writing to stderr at the given level.
func NewLogger(level string) *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	})
	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), parseLevel(level))
	return zap.New(core, zap.AddCaller()).Named("colormap")
}

// parseLevel converts a string level to zapcore.Level.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
