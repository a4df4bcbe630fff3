package ownership

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/shared_instance_go/shared/helper"
)

// Owner identifies a control block. Owners are comparable and can key a
// map; Before gives the strict weak order used by ordered containers.
// The zero Owner belongs to empty references and sorts first.
type Owner struct {
	id uint64
}

func (o Owner) Before(other Owner) bool {
	return o.id < other.id
}

func (o Owner) IsZero() bool {
	return o.id == 0
}

// Owned is implemented by every reference that shares a control block.
type Owned interface {
	Owner() Owner
}

// Address identifies the value a reference points at. Values of
// pointer-like kinds are identified by their own address, anything else by
// the address of its control block. Pointers to zero-size values and empty
// slices count as anything else. Empty references have address 0.
type Address uintptr

func (a Address) String() string {
	return fmt.Sprintf("%#x", uintptr(a))
}

// Pointer is implemented by owning references that can be compared by
// identity: Shared and instance.Handle.
type Pointer interface {
	Owned
	Addr() Address
}

func addressOf(v any, cb *ControlBlock) Address {
	if cb == nil || helper.IsNil(v) {
		return 0
	}
	if addr := helper.AddressOf(v); addr != 0 {
		return Address(addr)
	}
	return Address(reflect.ValueOf(cb).Pointer())
}
