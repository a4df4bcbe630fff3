package instance

import "github.com/on-the-ground/shared_instance_go/ownership"

// StaticCast returns a handle to h's value viewed as To, sharing its
// ownership. A value that is not a To is reported like any absent value.
//
// There is deliberately no fallible, comma-ok variant: a handle cannot
// represent the absent result such a cast would produce.
func StaticCast[To, From any, R Reporter](h Handle[From, R]) (Handle[To, R], error) {
	return fromShared[R](ownership.StaticPointerCast[To](h.obj), "instance.StaticCast")
}

// ConstCast widens a read-only view of h's value back to To.
func ConstCast[To, From any, R Reporter](h Handle[From, R]) (Handle[To, R], error) {
	return fromShared[R](ownership.ConstPointerCast[To](h.obj), "instance.ConstCast")
}
