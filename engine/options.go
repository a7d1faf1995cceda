package engine

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/internal/options"
)

const (
	// DefaultSizeCutoff is the array length above which a monotonic increasing
	// engine answers GetLoc by binary search instead of building a hash index.
	DefaultSizeCutoff = 1_000_000

	// parallelThreshold is the minimum number of targets split across workers.
	parallelThreshold = 65_536
)

// Config holds the engine settings applied by Option values.
type Config struct {
	sizeCutoff  int
	logger      *slog.Logger
	parallelism int
	metrics     bool
}

// Option configures an engine created by New.
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{
		sizeCutoff:  DefaultSizeCutoff,
		logger:      slog.New(slog.DiscardHandler),
		parallelism: 1,
	}
}

// WithSizeCutoff sets the array length above which monotonic increasing engines
// skip the hash index for single key lookups.
//
// Default: DefaultSizeCutoff
func WithSizeCutoff(n int) Option {
	return options.New(func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: size cutoff %d, must be positive", errs.ErrInvalidOption, n)
		}
		c.sizeCutoff = n

		return nil
	})
}

// WithLogger sets the logger for index build events. A nil logger discards them.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		c.logger = logger
	})
}

// WithParallelism sets the number of goroutines GetIndexer and
// GetIndexerNonUnique may use for large target arrays.
//
// Default: 1 (sequential)
func WithParallelism(n int) Option {
	return options.New(func(c *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: parallelism %d, must be positive", errs.ErrInvalidOption, n)
		}
		c.parallelism = n

		return nil
	})
}

// WithMetrics enables the Prometheus collectors in this package for the engine.
// The collectors must be registered by the caller, see Collectors.
func WithMetrics(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.metrics = enabled
	})
}

type alignConfig struct {
	limit int
}

// AlignOption configures GetPadIndexer and GetBackfillIndexer.
type AlignOption = options.Option[*alignConfig]

// WithLimit caps the number of consecutive inexact fills taken from the same
// reference element. Exact matches are not counted.
func WithLimit(n int) AlignOption {
	return options.New(func(c *alignConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: limit %d, must be greater than 0", errs.ErrInvalidOption, n)
		}
		c.limit = n

		return nil
	})
}

func newAlignConfig(opts []AlignOption) (*alignConfig, error) {
	cfg := &alignConfig{limit: -1}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
