package vector

import "fmt"

// Emplace constructs a new element at position pos by running init on a
// zeroed value, shifting the elements at or after pos one slot right.
// pos may range over [0, Size()]. It returns a pointer to the new element.
//
// On the growth path the new element is constructed in the new buffer
// first, then the elements before and after it are relocated around it;
// a failure leaves the vector unchanged.
//
// Without growth, the new value is first constructed in a temporary and
// the last element is moved into the free end slot; failures up to here
// leave the vector unchanged. The elements in [pos, Size()-1) are then
// shifted right by move assignment and the temporary is moved into pos.
// If one of those assignments fails the shifted elements are moved back and
// the end slot is destroyed: the vector is restored when the moves back
// succeed, and otherwise keeps its size with every element live exactly once.
func (v *Vector[T]) Emplace(pos int, init func(*T) error) (*T, error) {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: insert position %d out of range [0:%d]", pos, v.size))
	}

	switch {
	case v.size == v.Capacity():
		capacity, err := v.grownCapacity()
		if err != nil {
			return nil, err
		}
		if err := v.reallocate(capacity, pos, init); err != nil {
			return nil, err
		}
	case pos == v.size:
		if err := v.life().emplace(v.buf.At(pos), init); err != nil {
			return nil, err
		}
	default:
		if err := v.shiftInsert(pos, init); err != nil {
			return nil, err
		}
	}
	v.size++
	return v.buf.At(pos), nil
}

// Insert copies val into position pos.
func (v *Vector[T]) Insert(pos int, val T) (*T, error) {
	tr := v.life().traits
	return v.Emplace(pos, func(p *T) error {
		return tr.CopyConstruct(p, &val)
	})
}

// InsertMove moves *val into position pos.
func (v *Vector[T]) InsertMove(pos int, val *T) (*T, error) {
	tr := v.life().traits
	return v.Emplace(pos, func(p *T) error {
		return tr.MoveConstruct(p, val)
	})
}

// shiftInsert makes room at pos < size inside the current buffer.
func (v *Vector[T]) shiftInsert(pos int, init func(*T) error) error {
	l := v.life()

	var tmp T
	if err := l.emplace(&tmp, init); err != nil {
		return err
	}
	defer l.destroy(&tmp)

	last := v.size
	s := v.buf.Span(0, last+1)
	if err := l.traits.MoveConstruct(&s[last], &s[last-1]); err != nil {
		var zero T
		s[last] = zero
		return withMessage(err, "move element")
	}
	for i := last - 1; i > pos; i-- {
		if err := l.traits.MoveAssign(&s[i], &s[i-1]); err != nil {
			l.unshift(s, i, last)
			return withMessage(err, "shift element")
		}
	}
	if err := l.traits.MoveAssign(&s[pos], &tmp); err != nil {
		l.unshift(s, pos, last)
		return withMessage(err, "assign element")
	}
	return nil
}

// Erase removes the element at pos, shifting the following elements one
// slot left by move assignment and destroying the vacated last slot.
// If an assignment fails the vector keeps its size and every slot stays
// live.
func (v *Vector[T]) Erase(pos int) error {
	v.checkIndex(pos)
	l := v.life()
	s := v.Slice()
	for i := pos + 1; i < len(s); i++ {
		if err := l.traits.MoveAssign(&s[i-1], &s[i]); err != nil {
			return withMessage(err, "shift element")
		}
	}
	v.PopBack()
	return nil
}
