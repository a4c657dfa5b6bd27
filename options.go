package aimsmodel

import "log/slog"

// storeConfig holds state collected during model construction.
type storeConfig struct {
	logger *slog.Logger
	name   string
}

// Option configures a model during construction.
//
// Options are accepted by [NewSequenceStore] and [NewMapStore]. Construction
// never fails; invalid option values are ignored.
type Option func(*storeConfig)

// WithLogger sets the [slog.Logger] used to trace change events.
//
// Every emission of [EventDataChanged] is logged at Debug level. If not
// specified, or if logger is nil, [slog.Default] is used.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	users := aimsmodel.NewMapStore[string, User](aimsmodel.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *storeConfig) {
		if logger == nil {
			return
		}
		cfg.logger = logger
	}
}

// WithName labels the model in log output with a "model" attribute.
//
// Useful when an application holds several models of the same type.
func WithName(name string) Option {
	return func(cfg *storeConfig) {
		cfg.name = name
	}
}

func buildConfig(opts []Option) storeConfig {
	var cfg storeConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}
