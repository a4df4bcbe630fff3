package instance

import (
	"cmp"

	"github.com/on-the-ground/shared_instance_go/ownership"
)

// Equal reports whether a and b refer to the same value. Either side may be
// a Handle of any element type and policy, or a plain ownership.Shared.
// Values are never compared, only identities.
func Equal(a, b ownership.Pointer) bool {
	return a.Addr() == b.Addr()
}

// Less orders a and b by identity.
func Less(a, b ownership.Pointer) bool {
	return a.Addr() < b.Addr()
}

// Compare returns -1, 0 or +1 as a's identity sorts before, equal to or
// after b's.
func Compare(a, b ownership.Pointer) int {
	return cmp.Compare(a.Addr(), b.Addr())
}
