package ownership

import (
	"sync"
	"sync/atomic"
)

var lastControlBlockID atomic.Uint64

// ControlBlock is the bookkeeping shared by every reference to one owned value:
// the strong and weak counts, the deleter and the allocator that produced it.
// Its fields are private; it is exported so that allocators can be supplied.
type ControlBlock struct {
	id     uint64
	strong atomic.Int64
	// weak counts Weak references, plus one while any strong reference exists.
	weak    atomic.Int64
	destroy func()
	deleter any
	alloc   Allocator
}

func newControlBlock(alloc Allocator, deleter any, destroy func()) *ControlBlock {
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	cb := alloc.Allocate()
	cb.id = lastControlBlockID.Add(1)
	cb.strong.Store(1)
	cb.weak.Store(1)
	cb.deleter = deleter
	cb.destroy = destroy
	cb.alloc = alloc
	return cb
}

func (cb *ControlBlock) retain() {
	cb.strong.Add(1)
}

// tryRetain adds a strong reference unless the count already dropped to zero.
func (cb *ControlBlock) tryRetain() bool {
	for {
		n := cb.strong.Load()
		if n == 0 {
			return false
		}
		if cb.strong.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (cb *ControlBlock) release() {
	if cb.strong.Add(-1) != 0 {
		return
	}
	destroy := cb.destroy
	cb.destroy = nil
	if destroy != nil {
		destroy()
	}
	cb.releaseWeak()
}

func (cb *ControlBlock) retainWeak() {
	cb.weak.Add(1)
}

func (cb *ControlBlock) releaseWeak() {
	if cb.weak.Add(-1) != 0 {
		return
	}
	alloc := cb.alloc
	cb.deleter = nil
	cb.alloc = nil
	alloc.Deallocate(cb)
}

func (cb *ControlBlock) useCount() int64 {
	if cb == nil {
		return 0
	}
	return cb.strong.Load()
}

func (cb *ControlBlock) owner() Owner {
	if cb == nil {
		return Owner{}
	}
	return Owner{id: cb.id}
}

// Allocator provides storage for control blocks.
// Deallocate is called exactly once per block, after the last strong and
// weak references are gone.
type Allocator interface {
	Allocate() *ControlBlock
	Deallocate(*ControlBlock)
}

// HeapAllocator allocates every control block on the heap and leaves
// reclamation to the garbage collector. It is the default.
type HeapAllocator struct{}

// Allocate returns a fresh block.
func (HeapAllocator) Allocate() *ControlBlock { return &ControlBlock{} }

// Deallocate does nothing; the garbage collector reclaims the block.
func (HeapAllocator) Deallocate(*ControlBlock) {}

// PoolAllocator recycles control blocks through a sync.Pool.
type PoolAllocator struct {
	pool        sync.Pool
	allocated   atomic.Int64
	deallocated atomic.Int64
}

// NewPoolAllocator returns an empty pool.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{
		pool: sync.Pool{New: func() any { return &ControlBlock{} }},
	}
}

// Allocate takes a block from the pool, or a new one when it is empty.
func (p *PoolAllocator) Allocate() *ControlBlock {
	p.allocated.Add(1)
	return p.pool.Get().(*ControlBlock)
}

// Deallocate returns cb to the pool.
func (p *PoolAllocator) Deallocate(cb *ControlBlock) {
	p.deallocated.Add(1)
	cb.id = 0
	p.pool.Put(cb)
}

// AllocatorStats counts the blocks handed out and returned by a PoolAllocator.
type AllocatorStats struct {
	Allocated   int64
	Deallocated int64
}

// Live is the number of blocks allocated but not yet returned.
func (s AllocatorStats) Live() int64 {
	return s.Allocated - s.Deallocated
}

// Stats is a snapshot of the allocation counters.
func (p *PoolAllocator) Stats() AllocatorStats {
	return AllocatorStats{
		Allocated:   p.allocated.Load(),
		Deallocated: p.deallocated.Load(),
	}
}
