// Package ownership provides the reference-counted primitives that
// package instance builds on.
//
// Shared is an atomically counted owning reference, Weak observes a Shared
// value without keeping it alive, and Unique is a single owner with a
// deleter. Every Shared value created from the same original value shares
// one ControlBlock holding the counts, the deleter and the allocator.
//
// Go has no destructors, so ownership is explicit:
//
//	s := ownership.NewShared(conn)     // count 1
//	t := s.Clone()                     // count 2
//	t.Reset()                          // count 1
//	s.Reset()                          // count 0, conn.Close() runs
//
// The default deleter closes values implementing io.Closer. Memory itself
// is always reclaimed by the garbage collector.
package ownership
