package vector

import (
	"math"

	"github.com/pkg/errors"
)

// EmplaceBack constructs a new element at the end of the vector by running
// init on its zeroed slot, and returns a pointer to it.
//
// When the vector is full the element is constructed directly into a new
// buffer of twice the size (one slot when empty) before any existing element
// is relocated, so a failing init leaves the vector untouched.
func (v *Vector[T]) EmplaceBack(init func(*T) error) (*T, error) {
	if v.size == v.Capacity() {
		capacity, err := v.grownCapacity()
		if err != nil {
			return nil, err
		}
		if err := v.reallocate(capacity, v.size, init); err != nil {
			return nil, err
		}
	} else if err := v.life().emplace(v.buf.At(v.size), init); err != nil {
		return nil, err
	}
	v.size++
	return v.buf.At(v.size - 1), nil
}

// PushBack appends a copy of val.
func (v *Vector[T]) PushBack(val T) error {
	tr := v.life().traits
	_, err := v.EmplaceBack(func(p *T) error {
		return tr.CopyConstruct(p, &val)
	})
	return err
}

// PushBackMove appends val by moving it. *val is left valid but its value
// is up to the element traits.
func (v *Vector[T]) PushBackMove(val *T) error {
	tr := v.life().traits
	_, err := v.EmplaceBack(func(p *T) error {
		return tr.MoveConstruct(p, val)
	})
	return err
}

// PopBack destroys the last element. It is a no-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.life().destroy(v.buf.At(v.size - 1))
	v.size--
}

// grownCapacity returns the capacity for the next growth step.
func (v *Vector[T]) grownCapacity() (int, error) {
	switch {
	case v.size == 0:
		return 1, nil
	case v.size > math.MaxInt/2:
		return 0, errors.Wrapf(ErrAllocation, "cannot grow beyond %d elements", v.size)
	}
	return 2 * v.size, nil
}
