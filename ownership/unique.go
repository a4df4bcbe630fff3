package ownership

import "github.com/on-the-ground/shared_instance_go/shared/helper"

// Unique is the single owner of a value. It is used through a pointer;
// whoever takes the value over (NewSharedFromUnique, Release) leaves it empty.
type Unique[T any] struct {
	val     T
	deleter Deleter[T]
}

// NewUnique takes ownership of v. At most one deleter may be given; the
// default closes io.Closer values.
func NewUnique[T any](v T, d ...Deleter[T]) *Unique[T] {
	var deleter Deleter[T]
	switch len(d) {
	case 0:
	case 1:
		deleter = d[0]
	default:
		panic("NewUnique: only one or zero deleters allowed")
	}
	return &Unique[T]{val: v, deleter: deleterOrDefault(deleter)}
}

// Get returns the owned value without giving it up.
func (u *Unique[T]) Get() T {
	return u.val
}

// IsNil reports whether u owns nothing.
func (u *Unique[T]) IsNil() bool {
	return helper.IsNil(u.val)
}

// Deleter returns the deleter that will dispose of the value.
func (u *Unique[T]) Deleter() Deleter[T] {
	return deleterOrDefault(u.deleter)
}

// Release gives up ownership without deleting and returns the value.
func (u *Unique[T]) Release() T {
	v := u.val
	var zero T
	u.val = zero
	return v
}

// Reset deletes the owned value, if any, and leaves u empty.
func (u *Unique[T]) Reset() {
	if u.IsNil() {
		return
	}
	d := u.Deleter()
	d.Delete(u.Release())
}
