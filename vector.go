package vector

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/pavanmanishd/vector/internal/rawbuf"
)

// noCopy makes go vet's copylocks check flag Vector copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Vector is a growable sequence stored in one contiguous buffer.
// Elements [0, Size()) are live; the remaining slots up to Capacity() hold
// the zero value. The zero Vector is empty and uses ValueTraits.
// Not goroutine-safe.
type Vector[T any] struct {
	_      noCopy
	buf    rawbuf.Buffer[T]
	size   int
	elems  *lifecycle[T]
	logger log.Logger

	reallocations int
	relocated     int
}

// New creates an empty Vector. No storage is allocated until the first
// element is added.
func New[T any](opts ...Option) *Vector[T] {
	v := &Vector[T]{}
	v.configure(opts)
	return v
}

// NewSized creates a Vector holding n value-constructed elements in a buffer
// of exactly n slots.
func NewSized[T any](n int, opts ...Option) (*Vector[T], error) {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative size %d", n))
	}
	v := New[T](opts...)
	if n == 0 {
		return v, nil
	}
	buf, err := rawbuf.New[T](n)
	if err != nil {
		return nil, err
	}
	if err := v.life().constructN(buf.Span(0, n)); err != nil {
		return nil, withMessage(err, "construct element")
	}
	v.buf.Swap(buf)
	v.size = n
	return v, nil
}

func (v *Vector[T]) life() *lifecycle[T] {
	if v.elems == nil {
		v.elems = newLifecycle[T](ValueTraits[T]{})
	}
	return v.elems
}

func (v *Vector[T]) log() log.Logger {
	if v.logger == nil {
		return log.NewNopLogger()
	}
	return v.logger
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of elements the vector can hold without
// reallocating.
func (v *Vector[T]) Capacity() int {
	return v.buf.Capacity()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns a pointer to element i. The pointer is invalidated by any
// reallocation. It panics if i is out of range.
func (v *Vector[T]) At(i int) *T {
	v.checkIndex(i)
	return v.buf.At(i)
}

// Get returns a copy of element i.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Set copy-assigns val to element i.
func (v *Vector[T]) Set(i int, val T) error {
	p := v.At(i)
	if err := v.life().traits.CopyAssign(p, &val); err != nil {
		return withMessage(err, "assign element")
	}
	return nil
}

// Slice returns the live elements as a slice aliasing the vector's buffer.
// It is invalidated by any reallocation.
func (v *Vector[T]) Slice() []T {
	return v.buf.Span(0, v.size)
}

func (v *Vector[T]) checkIndex(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: index %d out of range [0:%d)", i, v.size))
	}
}

// Clone returns a deep copy of v sized to exactly v.Size() slots. The clone
// shares v's traits and logger.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	l := v.life()
	c := &Vector[T]{elems: l, logger: v.logger}
	if v.size == 0 {
		return c, nil
	}
	if l.caps.NoCopy {
		return nil, ErrNotCopyable
	}
	buf, err := rawbuf.New[T](v.size)
	if err != nil {
		return nil, err
	}
	if err := l.copyN(buf.Span(0, v.size), v.Slice()); err != nil {
		return nil, withMessage(err, "copy element")
	}
	c.buf.Swap(buf)
	c.size = v.size
	return c, nil
}

// CopyFrom replaces v's elements with copies of rhs's.
//
// When rhs does not fit in v's capacity a full copy is built first and then
// swapped in, so a failure leaves v unchanged. Otherwise v's storage is
// reused: the common prefix is copy-assigned, then the excess is destroyed
// or the missing tail copy-constructed. A failure on that path leaves v
// valid with its old size.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if v.elems == nil {
		v.elems = rhs.elems
	}
	l := v.life()
	if l.caps.NoCopy {
		return ErrNotCopyable
	}

	if rhs.size > v.Capacity() {
		c, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(c)
		c.Release()
		return nil
	}

	dst := v.buf.Span(0, max(v.size, rhs.size))
	src := rhs.Slice()
	common := min(v.size, rhs.size)
	for i := 0; i < common; i++ {
		if err := l.traits.CopyAssign(&dst[i], &src[i]); err != nil {
			return withMessage(err, "assign element")
		}
	}
	if rhs.size < v.size {
		l.destroyN(dst[rhs.size:v.size])
	} else if err := l.copyN(dst[v.size:rhs.size], src[v.size:]); err != nil {
		return withMessage(err, "copy element")
	}
	v.size = rhs.size
	return nil
}

// Take moves v's buffer and elements into a new Vector and leaves v empty.
// No element is copied.
func (v *Vector[T]) Take() *Vector[T] {
	t := &Vector[T]{elems: v.elems, logger: v.logger}
	t.buf.MoveFrom(&v.buf)
	t.size, v.size = v.size, 0
	return t
}

// MoveFrom destroys v's elements and takes over src's buffer, elements and
// traits. src is left empty. No element is copied.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Release()
	v.buf.MoveFrom(&src.buf)
	v.size, src.size = src.size, 0
	if src.elems != nil {
		v.elems = src.elems
	}
}

// Swap exchanges contents with other in O(1). The element traits travel
// with the elements.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.elems, other.elems = other.elems, v.elems
}

// Reserve grows the capacity to at least n. It is a no-op when n fits.
// The elements are relocated into the new buffer; on failure v is left as
// it was.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Capacity() {
		return nil
	}
	return v.reallocate(n, v.size, nil)
}

// Resize sets the size to n. Shrinking destroys the trailing elements and
// keeps the capacity. Growing reserves n slots and value-constructs the new
// tail; if a construction fails the size is unchanged.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative size %d", n))
	}
	l := v.life()
	if n < v.size {
		l.destroyN(v.buf.Span(n, v.size))
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	if err := l.constructN(v.buf.Span(v.size, n)); err != nil {
		return withMessage(err, "construct element")
	}
	v.size = n
	return nil
}

// Release destroys every element and drops the buffer. The vector is
// empty and reusable afterwards.
func (v *Vector[T]) Release() {
	if v.size > 0 {
		v.life().destroyN(v.Slice())
	}
	v.size = 0
	v.buf.Release()
}

// reallocate moves the live elements into a fresh buffer of the given
// capacity. With a non-nil init the new element is constructed first, at
// offset gap of the fresh buffer, and the elements from gap onwards land
// one slot to the right of it. Nothing in v changes until every element is
// in place, so a failure leaves v as it was.
func (v *Vector[T]) reallocate(capacity, gap int, init func(*T) error) error {
	old := v.buf.Capacity()
	buf, err := rawbuf.New[T](capacity)
	if err != nil {
		level.Warn(v.log()).Log("msg", "vector allocation failed", "capacity", capacity, "err", err)
		return err
	}

	l := v.life()
	live := v.Slice()
	if init == nil {
		if err := l.relocate(buf.Span(0, v.size), live); err != nil {
			return withMessage(err, "relocate element")
		}
	} else {
		fresh := buf.Span(0, v.size+1)
		if err := l.emplace(&fresh[gap], init); err != nil {
			return err
		}
		if err := l.relocate(fresh[:gap], live[:gap]); err != nil {
			l.destroy(&fresh[gap])
			return withMessage(err, "relocate element")
		}
		if err := l.relocate(fresh[gap+1:], live[gap:]); err != nil {
			l.destroyN(fresh[:gap+1])
			return withMessage(err, "relocate element")
		}
	}

	l.destroyN(live)
	v.buf.Swap(buf)
	buf.Release()

	v.reallocations++
	v.relocated += v.size
	level.Debug(v.log()).Log(
		"msg", "vector reallocated",
		"old_capacity", old,
		"new_capacity", capacity,
		"relocated", v.size,
		"strategy", l.strategy,
	)
	return nil
}
