package instance

import (
	"github.com/on-the-ground/shared_instance_go/ownership"
	"github.com/on-the-ground/shared_instance_go/shared/helper"
)

// Handle is a shared owning reference that never refers to nothing.
//
// Every constructor and assignment checks its source; an absent source is
// handed to the Reporter R and never installed. The zero Handle, a released
// handle and a moved-from handle are dead and must not be used.
type Handle[T any, R Reporter] struct {
	obj ownership.Shared[T]
}

// Instance is a Handle with the default panicking policy.
type Instance[T any] = Handle[T, PanicReporter]

// New adopts v. Options set the deleter and the control block allocator.
func New[R Reporter, T any](v T, opts ...ownership.Option[T]) (Handle[T, R], error) {
	return fromShared[R](ownership.NewShared(v, opts...), "instance.New")
}

// Make allocates a new T initialized to v and wraps it.
func Make[T any](v T) Instance[*T] {
	return MakeWith[PanicReporter](v)
}

// MakeWith is Make under the policy R. The new value is never absent, so R
// is only consulted by later assignments.
func MakeWith[R Reporter, T any](v T) Handle[*T, R] {
	p := new(T)
	*p = v
	return Handle[*T, R]{obj: ownership.NewShared(p)}
}

// FromShared takes a new strong reference to s's value.
func FromShared[R Reporter, T any](s ownership.Shared[T]) (Handle[T, R], error) {
	if s.IsNil() {
		return Handle[T, R]{}, report[R]("instance.FromShared")
	}
	return Handle[T, R]{obj: s.Clone()}, nil
}

// FromSharedMove takes over s's reference and leaves s empty. When s is
// empty it is reported and left as it was.
func FromSharedMove[R Reporter, T any](s *ownership.Shared[T]) (Handle[T, R], error) {
	if s.IsNil() {
		return Handle[T, R]{}, report[R]("instance.FromSharedMove")
	}
	return Handle[T, R]{obj: s.Move()}, nil
}

// FromWeak promotes w once. An expired w is an absent value.
func FromWeak[R Reporter, T any](w ownership.Weak[T]) (Handle[T, R], error) {
	return fromShared[R](w.Lock(), "instance.FromWeak")
}

// FromUnique takes over u's value and deleter, leaving u empty. An empty u
// is reported and left as it was.
func FromUnique[R Reporter, T any](u *ownership.Unique[T]) (Handle[T, R], error) {
	if u == nil || u.IsNil() {
		return Handle[T, R]{}, report[R]("instance.FromUnique")
	}
	return Handle[T, R]{obj: ownership.NewSharedFromUnique(u)}, nil
}

// fromShared wraps s, which already carries its own reference.
func fromShared[R Reporter, T any](s ownership.Shared[T], op string) (Handle[T, R], error) {
	if s.IsNil() {
		s.Reset()
		return Handle[T, R]{}, report[R](op)
	}
	return Handle[T, R]{obj: s}, nil
}

// Convert returns a handle to h's value viewed as To, sharing h's
// ownership. A value that is not a To is reported.
func Convert[To, From any, R Reporter](h Handle[From, R]) (Handle[To, R], error) {
	return fromShared[R](ownership.StaticPointerCast[To](h.obj), "instance.Convert")
}

// ConvertMove hands h's reference over to a handle viewing the value as To
// and leaves h dead. Move sources are trusted to hold a valid value, so no
// check is made; a value that is not a To panics like a failed type
// assertion.
func ConvertMove[To, From any, R Reporter](h *Handle[From, R]) Handle[To, R] {
	helper.MustTypedValueOf[To](any(h.obj.Get()))
	return Handle[To, R]{obj: ownership.MovePointerCast[To](&h.obj)}
}

// WithReporter returns a new reference to h's value under the policy R2.
func WithReporter[R2 Reporter, T any, R Reporter](h Handle[T, R]) Handle[T, R2] {
	return Handle[T, R2]{obj: h.obj.Clone()}
}

// Clone returns a new strong reference to h's value.
func (h Handle[T, R]) Clone() Handle[T, R] {
	return Handle[T, R]{obj: h.obj.Clone()}
}

// Move returns h's reference and leaves h dead.
func (h *Handle[T, R]) Move() Handle[T, R] {
	return Handle[T, R]{obj: h.obj.Move()}
}

// Release drops h's reference and leaves h dead.
func (h *Handle[T, R]) Release() {
	h.obj.Reset()
}

// Assign makes h share other's value. A dead other is reported and h keeps
// its value.
func (h *Handle[T, R]) Assign(other Handle[T, R]) error {
	if other.obj.IsNil() {
		return report[R]("instance.Handle.Assign")
	}
	next := other.obj.Clone()
	h.obj.Swap(&next)
	next.Reset()
	return nil
}

// AssignMove hands other's reference to h and leaves other dead. A dead
// other is reported and h keeps its value. Moving a live handle onto itself
// is a no-op.
func (h *Handle[T, R]) AssignMove(other *Handle[T, R]) error {
	if other.obj.IsNil() {
		return report[R]("instance.Handle.AssignMove")
	}
	if h == other {
		return nil
	}
	next := other.obj.Move()
	h.obj.Swap(&next)
	next.Reset()
	return nil
}

// AssignShared makes h share s's value. An empty s is reported and h keeps
// its value.
func (h *Handle[T, R]) AssignShared(s ownership.Shared[T]) error {
	if s.IsNil() {
		return report[R]("instance.Handle.AssignShared")
	}
	next := s.Clone()
	h.obj.Swap(&next)
	next.Reset()
	return nil
}

// AssignSharedMove hands s's reference to h and leaves s empty. An empty s
// is reported and h keeps its value.
func (h *Handle[T, R]) AssignSharedMove(s *ownership.Shared[T]) error {
	if s.IsNil() {
		return report[R]("instance.Handle.AssignSharedMove")
	}
	next := s.Move()
	h.obj.Swap(&next)
	next.Reset()
	return nil
}

// AssignUnique takes over u's value and deleter. An empty u is reported
// and h keeps its value.
func (h *Handle[T, R]) AssignUnique(u *ownership.Unique[T]) error {
	if u == nil || u.IsNil() {
		return report[R]("instance.Handle.AssignUnique")
	}
	next := ownership.NewSharedFromUnique(u)
	h.obj.Swap(&next)
	next.Reset()
	return nil
}

// Get returns the owned value.
func (h Handle[T, R]) Get() T {
	return h.obj.Get()
}

// Shared returns a new strong reference to h's value as a plain Shared.
func (h Handle[T, R]) Shared() ownership.Shared[T] {
	return h.obj.Clone()
}

// UseCount is advisory while other goroutines clone or release.
func (h Handle[T, R]) UseCount() int64 {
	return h.obj.UseCount()
}

// Unique reports whether h is the only strong reference to its value.
func (h Handle[T, R]) Unique() bool {
	return h.obj.Unique()
}

// Owner identifies the control block h shares.
func (h Handle[T, R]) Owner() ownership.Owner {
	return h.obj.Owner()
}

// OwnerBefore orders h and other by control block, not by value.
func (h Handle[T, R]) OwnerBefore(other ownership.Owned) bool {
	return h.obj.OwnerBefore(other)
}

// Addr identifies the value h refers to. Equal, Less and Compare use it.
func (h Handle[T, R]) Addr() ownership.Address {
	return h.obj.Addr()
}

// Swap exchanges the values of h and other.
func (h *Handle[T, R]) Swap(other *Handle[T, R]) {
	h.obj.Swap(&other.obj)
}

// SwapShared exchanges h's value with s. An empty s is reported and
// nothing is exchanged.
func (h *Handle[T, R]) SwapShared(s *ownership.Shared[T]) error {
	if s.IsNil() {
		return report[R]("instance.Handle.SwapShared")
	}
	h.obj.Swap(s)
	return nil
}

// Swap exchanges the values of a and b.
func Swap[T any, R Reporter](a, b *Handle[T, R]) {
	a.Swap(b)
}
