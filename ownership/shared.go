package ownership

import (
	"fmt"

	"github.com/on-the-ground/shared_instance_go/shared/helper"
	"go.uber.org/zap/zapcore"
)

// Shared is a reference-counted owning reference to a value of type T.
//
// T is normally a pointer or interface type. A Shared is a plain value:
// assigning it with = does not touch the count. Clone takes another
// reference, Move hands the reference over and Reset drops it. The zero
// Shared is empty.
//
// The counts are atomic, so distinct Shared values referring to the same
// object may be cloned and reset from different goroutines. A single
// Shared variable must not be mutated concurrently.
type Shared[T any] struct {
	val T
	cb  *ControlBlock
}

type options[T any] struct {
	deleter Deleter[T]
	alloc   Allocator
}

// Option configures NewShared.
type Option[T any] func(*options[T])

// WithDeleter sets the deleter run when the last strong reference is dropped.
func WithDeleter[T any](d Deleter[T]) Option[T] {
	return func(o *options[T]) {
		o.deleter = d
	}
}

// WithDeleterFunc is WithDeleter for a plain function.
func WithDeleterFunc[T any](fn func(T)) Option[T] {
	return WithDeleter[T](DeleterFunc[T](fn))
}

// WithAllocator sets the allocator used for the control block.
func WithAllocator[T any](alloc Allocator) Option[T] {
	return func(o *options[T]) {
		o.alloc = alloc
	}
}

// NewShared adopts v. A nil v yields an empty Shared; no control block is
// allocated and the deleter is never called.
func NewShared[T any](v T, opts ...Option[T]) Shared[T] {
	if helper.IsNil(v) {
		return Shared[T]{}
	}
	o := options[T]{}
	for _, opt := range opts {
		opt(&o)
	}
	return adopt(v, deleterOrDefault(o.deleter), o.alloc)
}

func adopt[T any](v T, d Deleter[T], alloc Allocator) Shared[T] {
	cb := newControlBlock(alloc, d, func() { d.Delete(v) })
	return Shared[T]{val: v, cb: cb}
}

// NewSharedFromUnique takes over the value and deleter owned by u, leaving
// u empty. An empty u yields an empty Shared.
func NewSharedFromUnique[T any](u *Unique[T]) Shared[T] {
	if u == nil || u.IsNil() {
		return Shared[T]{}
	}
	d := u.Deleter()
	v := u.Release()
	return adopt(v, d, nil)
}

// Get returns the owned value, or the zero T when s is empty.
func (s Shared[T]) Get() T {
	return s.val
}

// IsNil reports whether s refers to nothing.
func (s Shared[T]) IsNil() bool {
	return s.cb == nil || helper.IsNil(s.val)
}

// UseCount returns the number of strong references sharing s's control
// block. It is advisory while other goroutines clone or reset.
func (s Shared[T]) UseCount() int64 {
	return s.cb.useCount()
}

// Unique reports whether s is the only strong reference.
func (s Shared[T]) Unique() bool {
	return s.UseCount() == 1
}

// Clone returns a new strong reference to the same value.
func (s Shared[T]) Clone() Shared[T] {
	if s.cb != nil {
		s.cb.retain()
	}
	return s
}

// Move returns s's reference and leaves s empty.
func (s *Shared[T]) Move() Shared[T] {
	moved := *s
	*s = Shared[T]{}
	return moved
}

// Reset drops s's reference and leaves s empty.
func (s *Shared[T]) Reset() {
	cb := s.cb
	*s = Shared[T]{}
	if cb != nil {
		cb.release()
	}
}

// Swap exchanges the references held by s and other.
func (s *Shared[T]) Swap(other *Shared[T]) {
	*s, *other = *other, *s
}

// Owner identifies s's control block.
func (s Shared[T]) Owner() Owner {
	return s.cb.owner()
}

// OwnerBefore orders s and other by control block, not by value.
func (s Shared[T]) OwnerBefore(other Owned) bool {
	return s.Owner().Before(other.Owner())
}

// Addr identifies the value s refers to.
func (s Shared[T]) Addr() Address {
	return addressOf(s.val, s.cb)
}

func (s Shared[T]) String() string {
	return s.Addr().String()
}

func (s Shared[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("addr", s.Addr().String())
	enc.AddInt64("use_count", s.UseCount())
	enc.AddUint64("owner", s.Owner().id)
	return nil
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
