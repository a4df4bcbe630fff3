// Package registry holds named, non-null shared instances.
//
// The registry keeps one reference per name. Load hands out a new
// reference that the caller must release; Observe hands out a weak one
// that does not keep the value alive.
package registry

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/shared_instance_go/instance"
	"github.com/on-the-ground/shared_instance_go/ownership"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

var (
	ErrClosed     = errors.New("registry is closed")
	ErrNoSuchName = errors.New("name not registered")
)

type entry[T any] struct {
	inst  instance.Instance[T]
	since time.Time
}

type shard[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
}

// Registry maps names to instances. It is safe for concurrent use.
type Registry[T any] struct {
	id     string
	shards []*shard[T]
	logger *zap.Logger
	closed atomic.Bool
}

type settings struct {
	config Config
	logger *zap.Logger
}

// Option configures New.
type Option func(*settings)

// WithConfig sets the shard layout. The default is NewConfig(0).
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		s.config = NewConfig(cfg.NumShards)
	}
}

// WithLogger sets the logger for lifecycle events. The default discards them.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// New returns an empty registry.
func New[T any](opts ...Option) *Registry[T] {
	s := settings{config: NewConfig(0), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}

	shards := make([]*shard[T], s.config.NumShards)
	for i := range shards {
		shards[i] = &shard[T]{entries: make(map[string]entry[T])}
	}
	r := &Registry[T]{
		id:     uuid.New().String(),
		shards: shards,
		logger: s.logger,
	}
	r.logger.Debug("created instance registry",
		zap.String("registry_id", r.id),
		zap.Int("num_shards", len(shards)),
	)
	return r
}

func (r *Registry[T]) shardOf(name string) *shard[T] {
	return r.shards[shardIndex(name, len(r.shards))]
}

// Store registers a new reference to h's value under name, releasing the
// reference it replaces. The caller keeps h. A dead h is rejected with
// instance.ErrInvariantViolation.
func (r *Registry[T]) Store(name string, h instance.Instance[T]) error {
	if h.UseCount() == 0 {
		return fmt.Errorf("%w: store %q", instance.ErrInvariantViolation, name)
	}
	sh := r.shardOf(name)
	sh.mu.Lock()
	if r.closed.Load() {
		sh.mu.Unlock()
		return fmt.Errorf("%w: store %q", ErrClosed, name)
	}
	old, replaced := sh.entries[name]
	sh.entries[name] = entry[T]{inst: h.Clone(), since: time.Now()}
	sh.mu.Unlock()

	r.logger.Debug("stored instance",
		zap.String("registry_id", r.id),
		zap.String("name", name),
		zap.Object("instance", h),
		zap.Bool("replaced", replaced),
	)
	if replaced {
		r.release(name, old)
	}
	return nil
}

// Load returns a new reference to the instance registered under name.
func (r *Registry[T]) Load(name string) (instance.Instance[T], error) {
	sh := r.shardOf(name)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	e, ok := sh.entries[name]
	if !ok {
		return instance.Instance[T]{}, fmt.Errorf("%w: %q", ErrNoSuchName, name)
	}
	return e.inst.Clone(), nil
}

// Observe returns a weak reference to the instance registered under name.
func (r *Registry[T]) Observe(name string) (ownership.Weak[T], error) {
	sh := r.shardOf(name)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	e, ok := sh.entries[name]
	if !ok {
		return ownership.Weak[T]{}, fmt.Errorf("%w: %q", ErrNoSuchName, name)
	}
	s := e.inst.Shared()
	defer s.Reset()
	return ownership.NewWeak(s), nil
}

// HeldFor returns the span from when name was stored until now.
func (r *Registry[T]) HeldFor(name string) (timespan.TimeSpan, error) {
	sh := r.shardOf(name)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	e, ok := sh.entries[name]
	if !ok {
		return timespan.TimeSpan{}, fmt.Errorf("%w: %q", ErrNoSuchName, name)
	}
	return timespan.BetweenTimes(e.since, time.Now()), nil
}

// Delete releases the registry's reference under name.
func (r *Registry[T]) Delete(name string) bool {
	sh := r.shardOf(name)
	sh.mu.Lock()
	e, ok := sh.entries[name]
	if ok {
		delete(sh.entries, name)
	}
	sh.mu.Unlock()

	if ok {
		r.release(name, e)
	}
	return ok
}

// CompareAndDelete deletes name only while it refers to the same value as p.
func (r *Registry[T]) CompareAndDelete(name string, p ownership.Pointer) bool {
	sh := r.shardOf(name)
	sh.mu.Lock()
	e, ok := sh.entries[name]
	if ok && instance.Equal(e.inst, p) {
		delete(sh.entries, name)
	} else {
		ok = false
	}
	sh.mu.Unlock()

	if ok {
		r.release(name, e)
	}
	return ok
}

// Len counts the registered names.
func (r *Registry[T]) Len() int {
	n := 0
	for _, sh := range r.shards {
		sh.mu.RLock()
		n += len(sh.entries)
		sh.mu.RUnlock()
	}
	return n
}

// Range calls fn for every registered name until fn returns false. The
// handle passed to fn is borrowed; fn must Clone it to keep it.
// fn must not call back into the registry.
func (r *Registry[T]) Range(fn func(name string, h instance.Instance[T]) bool) {
	for _, sh := range r.shards {
		sh.mu.RLock()
		for name, e := range sh.entries {
			if !fn(name, e.inst) {
				sh.mu.RUnlock()
				return
			}
		}
		sh.mu.RUnlock()
	}
}

// Close releases every registered instance. Stores after Close fail with
// ErrClosed; calling Close again is a no-op.
func (r *Registry[T]) Close() {
	if !r.closed.CompareAndSwap(false, true) {
		return
	}
	for _, sh := range r.shards {
		sh.mu.Lock()
		entries := sh.entries
		sh.entries = make(map[string]entry[T])
		sh.mu.Unlock()

		for name, e := range entries {
			r.release(name, e)
		}
	}
	r.logger.Debug("closed instance registry", zap.String("registry_id", r.id))
}

func (r *Registry[T]) release(name string, e entry[T]) {
	held := timespan.BetweenTimes(e.since, time.Now())
	r.logger.Debug("released instance",
		zap.String("registry_id", r.id),
		zap.String("name", name),
		zap.Object("instance", e.inst),
		zap.Duration("held", held.Duration()),
	)
	e.inst.Release()
}
