// Package rawbuf implements the owned slot region underneath a vector.
// A Buffer only allocates and releases memory: it never constructs or
// destroys the values held in its slots, that is left to the owner.
package rawbuf

import "fmt"

// noCopy makes go vet's copylocks check flag Buffer copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer owns a single contiguous region of slots. The zero Buffer holds no
// region and has capacity 0. Buffers must not be copied; ownership moves
// with Take, MoveFrom or Swap.
type Buffer[T any] struct {
	_     noCopy
	slots []T // len(slots) == capacity
}

// New allocates a Buffer with room for capacity slots. All slots start at
// T's zero value. A zero capacity allocates nothing.
func New[T any](capacity int) (*Buffer[T], error) {
	slots, err := allocSlots[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Buffer[T]{slots: slots}, nil
}

// Capacity returns the number of slots in the region.
func (b *Buffer[T]) Capacity() int {
	return len(b.slots)
}

// At returns a pointer to slot i. It panics if i is outside the region.
// Whether the slot holds a live value is the caller's business.
func (b *Buffer[T]) At(i int) *T {
	if i < 0 || i >= len(b.slots) {
		panic(fmt.Sprintf("rawbuf: slot %d out of range [0:%d)", i, len(b.slots)))
	}
	return &b.slots[i]
}

// Span returns slots [from, to) as a slice aliasing the region.
func (b *Buffer[T]) Span(from, to int) []T {
	if from < 0 || to < from || to > len(b.slots) {
		panic(fmt.Sprintf("rawbuf: span [%d:%d) out of range [0:%d)", from, to, len(b.slots)))
	}
	return b.slots[from:to:to]
}

// Swap exchanges regions with other. No slot is touched.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Take moves the region into a new Buffer and leaves b empty.
func (b *Buffer[T]) Take() *Buffer[T] {
	t := &Buffer[T]{slots: b.slots}
	b.slots = nil
	return t
}

// MoveFrom releases b's own region and takes over src's; src is left empty.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	b.slots = src.slots
	src.slots = nil
}

// Release drops the region. Values still held in slots are abandoned to
// the garbage collector without any hook running.
func (b *Buffer[T]) Release() {
	b.slots = nil
}
