// Package arena implements the densely-packed node allocator the octree
// is built on (§4.3): nodes are addressed only by a compact Handle, never
// by pointer, so the tree has no cyclic references and freed slots are
// reused rather than leaked. This is the Go-idiomatic shape of the
// slab-allocator-plus-non-max-handle pattern the reference implementation
// uses (a free-list-backed slice rather than a pointer graph).
package arena

import (
	"errors"
	"math"
)

// Handle addresses a node within an Arena. The zero Handle is never
// issued by Allocate, so a Handle field defaults to "absent" the way a
// nil pointer would, without needing a separate boolean.
type Handle uint32

// noHandle is the sentinel "absent" value. Handles are issued starting
// at 1 so the zero value can serve as "no handle" without an Option
// wrapper.
const noHandle Handle = 0

// None is a convenience zero-valued Handle meaning "absent".
const None Handle = noHandle

// maxLive is the largest number of simultaneously live nodes an Arena
// will allocate (2^32 - 1, matching §4.3's capacity contract); 1 is
// reserved so Handle 0 can mean "absent".
const maxLive = math.MaxUint32

// ErrExhausted is returned by Allocate when the arena already holds
// maxLive live nodes. Per §7 this is a fatal, non-recoverable condition;
// callers are expected to treat it as unrecoverable rather than retry.
var ErrExhausted = errors.New("arena: exhausted 2^32-1 node capacity")

// slot holds either a live value or, when free, the index of the next
// free slot (or 0 if it is the last free slot), forming a singly linked
// free list threaded through the backing slice.
type slot[T any] struct {
	value T
	free  bool
	next  uint32
}

// Arena is a generic, densely-packed allocator of nodes of type T. The
// zero value is ready to use.
type Arena[T any] struct {
	slots    []slot[T]
	freeHead uint32 // 1-indexed; 0 means the free list is empty
	live     int
}

// Allocate stores value and returns a Handle to it. Freed handles are
// reused before the backing slice grows.
func (a *Arena[T]) Allocate(value T) (Handle, error) {
	if a.freeHead != 0 {
		idx := a.freeHead - 1
		a.freeHead = a.slots[idx].next
		a.slots[idx] = slot[T]{value: value}
		a.live++
		return Handle(idx + 1), nil
	}

	if a.live >= maxLive {
		return None, ErrExhausted
	}

	a.slots = append(a.slots, slot[T]{value: value})
	a.live++
	return Handle(len(a.slots)), nil
}

// Get returns a copy of the value stored at h.
func (a *Arena[T]) Get(h Handle) T {
	return a.slots[h-1].value
}

// GetPtr returns a pointer to the value stored at h, for in-place
// mutation of occupancy counts, child slots and chain heads.
func (a *Arena[T]) GetPtr(h Handle) *T {
	return &a.slots[h-1].value
}

// Set overwrites the value stored at h.
func (a *Arena[T]) Set(h Handle, value T) {
	a.slots[h-1].value = value
}

// Free releases the slot at h for reuse. The caller must have already
// rewritten every reference to h before calling Free (§3 invariant:
// "freeing a node requires all parent references to be rewritten
// first").
func (a *Arena[T]) Free(h Handle) {
	idx := h - 1
	var zero T
	a.slots[idx] = slot[T]{value: zero, free: true, next: a.freeHead}
	a.freeHead = uint32(idx) + 1
	a.live--
}

// Len returns the number of currently live nodes.
func (a *Arena[T]) Len() int {
	return a.live
}
