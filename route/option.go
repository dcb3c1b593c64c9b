package route

import "go.uber.org/zap"

type passConfig struct {
	logger *zap.Logger // default: zap.NewNop()
	name   string      // default: "route"
}

func newPassConfig(opts []Option) passConfig {
	cfg := passConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.name == "" {
		cfg.name = "route"
	}
	return cfg
}

// Option configures a single pass.
type Option func(*passConfig)

// WithLogger makes the pass log bucket openings, discards and aborts at
// debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *passConfig) {
		cfg.logger = logger
	}
}

// WithName names the pass in its log entries.
func WithName(name string) Option {
	return func(cfg *passConfig) {
		cfg.name = name
	}
}
