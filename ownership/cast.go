package ownership

import "github.com/on-the-ground/shared_instance_go/shared/helper"

// StaticPointerCast returns a new strong reference to s's value viewed as
// To, sharing s's control block. It is empty when s is empty or its value
// is not a To.
func StaticPointerCast[To, From any](s Shared[From]) Shared[To] {
	to, ok := helper.TypedValueOf[To](any(s.val))
	if !ok || s.cb == nil {
		return Shared[To]{}
	}
	s.cb.retain()
	return Shared[To]{val: to, cb: s.cb}
}

// ConstPointerCast widens a read-only view back to a type that allows
// mutation. Go has no const qualifier; read-only access is expressed with a
// narrower interface, so this is StaticPointerCast named for its intent.
func ConstPointerCast[To, From any](s Shared[From]) Shared[To] {
	return StaticPointerCast[To](s)
}

// MovePointerCast transfers s's reference to a Shared[To] and leaves s
// empty. When s's value is not a To, s is left untouched and the result
// is empty.
func MovePointerCast[To, From any](s *Shared[From]) Shared[To] {
	to, ok := helper.TypedValueOf[To](any(s.val))
	if !ok || s.cb == nil {
		return Shared[To]{}
	}
	moved := s.Move()
	return Shared[To]{val: to, cb: moved.cb}
}
