// Package registry keeps one lookup engine per key array.
//
// Engines cache their monotonicity, uniqueness and hash index, so repeated
// lookups against the same array should reuse one engine. A Registry maps
// array identity to its engine and evicts the least recently used engines
// once its capacity is reached.
package registry

import (
	"fmt"
	"log/slog"
	"reflect"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/arloliu/keyidx/engine"
	"github.com/arloliu/keyidx/errs"
	"github.com/arloliu/keyidx/internal/options"
	"github.com/arloliu/keyidx/keys"
)

type config struct {
	engineOpts []engine.Option
	logger     *slog.Logger
}

// Option configures a Registry.
type Option = options.Option[*config]

// WithEngineOptions sets the options applied to every engine the registry creates.
func WithEngineOptions(opts ...engine.Option) Option {
	return options.NoError(func(c *config) {
		c.engineOpts = append(c.engineOpts, opts...)
	})
}

// WithLogger sets the logger for eviction events. A nil logger discards them.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		c.logger = logger
	})
}

// Registry is a bounded cache of engines keyed by array identity.
// It is safe for concurrent use.
type Registry struct {
	cache *lru.Cache[keys.Array, engine.Engine]
	cfg   *config
}

// New creates a Registry holding at most size engines.
func New(size int, opts ...Option) (*Registry, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: registry size %d, must be positive", errs.ErrInvalidOption, size)
	}

	cfg := &config{logger: slog.New(slog.DiscardHandler)}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	cache, err := lru.NewWithEvict(size, func(arr keys.Array, e engine.Engine) {
		cfg.logger.Debug("engine evicted",
			slog.String("kind", e.Kind().String()),
			slog.Int("size", e.Len()),
			slog.Bool("mapping_populated", e.IsMappingPopulated()),
		)
	})
	if err != nil {
		return nil, err
	}

	return &Registry{cache: cache, cfg: cfg}, nil
}

// Engine returns the engine for arr, creating it on first use.
//
// Arrays are matched by identity: two equal arrays built separately get
// separate engines.
func (r *Registry) Engine(arr keys.Array) (engine.Engine, error) {
	if err := checkIdentity(arr); err != nil {
		return nil, err
	}

	if e, ok := r.cache.Get(arr); ok {
		return e, nil
	}

	e, err := engine.New(arr, r.cfg.engineOpts...)
	if err != nil {
		return nil, err
	}

	if prev, ok, _ := r.cache.PeekOrAdd(arr, e); ok {
		return prev, nil
	}

	return e, nil
}

// Invalidate drops the engine for arr and reports whether one was cached.
// Call it after replacing the contents an array refers to.
func (r *Registry) Invalidate(arr keys.Array) bool {
	if checkIdentity(arr) != nil {
		return false
	}

	return r.cache.Remove(arr)
}

// Len returns the number of cached engines.
func (r *Registry) Len() int {
	return r.cache.Len()
}

// Purge drops every cached engine.
func (r *Registry) Purge() {
	r.cache.Purge()
}

func checkIdentity(arr keys.Array) error {
	if arr == nil {
		return fmt.Errorf("%w: nil array", errs.ErrUnsupportedKind)
	}
	if t := reflect.TypeOf(arr); !t.Comparable() {
		return fmt.Errorf("%w: %s has no identity", errs.ErrUnsupportedKind, t)
	}

	return nil
}
