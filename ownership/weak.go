package ownership

// Weak observes a value owned by Shared references without keeping it
// alive. The zero Weak observes nothing.
type Weak[T any] struct {
	val T
	cb  *ControlBlock
}

// NewWeak returns a weak reference to the value s owns.
func NewWeak[T any](s Shared[T]) Weak[T] {
	if s.cb == nil {
		return Weak[T]{}
	}
	s.cb.retainWeak()
	return Weak[T]{val: s.val, cb: s.cb}
}

// Lock promotes w to a strong reference. Once the last strong reference is
// gone the result is empty; Lock never revives a released value.
func (w Weak[T]) Lock() Shared[T] {
	if w.cb == nil || !w.cb.tryRetain() {
		return Shared[T]{}
	}
	return Shared[T]{val: w.val, cb: w.cb}
}

// Expired reports whether the observed value has been released.
func (w Weak[T]) Expired() bool {
	return w.UseCount() == 0
}

// UseCount is the number of strong references still alive.
func (w Weak[T]) UseCount() int64 {
	return w.cb.useCount()
}

// Clone returns another weak reference to the same control block.
func (w Weak[T]) Clone() Weak[T] {
	if w.cb != nil {
		w.cb.retainWeak()
	}
	return w
}

// Reset drops w's weak reference and leaves w empty.
func (w *Weak[T]) Reset() {
	cb := w.cb
	*w = Weak[T]{}
	if cb != nil {
		cb.releaseWeak()
	}
}

// Owner identifies the observed control block, even once expired.
func (w Weak[T]) Owner() Owner {
	return w.cb.owner()
}

// OwnerBefore orders w and other by control block.
func (w Weak[T]) OwnerBefore(other Owned) bool {
	return w.Owner().Before(other.Owner())
}
