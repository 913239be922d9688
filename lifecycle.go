package vector

// lifecycle applies an element type's Traits to ranges of slots. The
// relocation strategy is picked once, when the traits are bound.
type lifecycle[T any] struct {
	traits   Traits[T]
	caps     Capabilities
	relocate func(dst, src []T) error
	strategy string
}

func newLifecycle[T any](tr Traits[T]) *lifecycle[T] {
	l := &lifecycle[T]{traits: tr, caps: capabilitiesOf(tr)}
	if l.caps.NoFailMove || l.caps.NoCopy {
		l.relocate, l.strategy = l.moveN, "move"
	} else {
		l.relocate, l.strategy = l.copyN, "copy"
	}
	return l
}

// emplace runs init on the zeroed slot p. On failure p is zeroed again and
// holds no live value.
func (l *lifecycle[T]) emplace(p *T, init func(*T) error) error {
	if err := init(p); err != nil {
		var zero T
		*p = zero
		return err
	}
	return nil
}

// constructN value-constructs every slot of dst. On failure the constructed
// prefix is destroyed and dst is all zero again.
func (l *lifecycle[T]) constructN(dst []T) error {
	for i := range dst {
		if err := l.traits.Construct(&dst[i]); err != nil {
			l.unwind(dst, i)
			return err
		}
	}
	return nil
}

// copyN copy-constructs src into the zeroed slots of dst. The source is
// never modified, so a failure leaves it exactly as it was.
func (l *lifecycle[T]) copyN(dst, src []T) error {
	for i := range src {
		if err := l.traits.CopyConstruct(&dst[i], &src[i]); err != nil {
			l.unwind(dst, i)
			return err
		}
	}
	return nil
}

// moveN move-constructs src into the zeroed slots of dst.
func (l *lifecycle[T]) moveN(dst, src []T) error {
	for i := range src {
		if err := l.traits.MoveConstruct(&dst[i], &src[i]); err != nil {
			l.unwind(dst, i)
			return err
		}
	}
	return nil
}

// unwind destroys dst[:n] and zeroes dst[:n+1]; slot n is the one whose
// construction failed.
func (l *lifecycle[T]) unwind(dst []T, n int) {
	l.destroyN(dst[:n])
	var zero T
	dst[n] = zero
}

func (l *lifecycle[T]) destroy(p *T) {
	l.traits.Destroy(p)
	var zero T
	*p = zero
}

func (l *lifecycle[T]) destroyN(s []T) {
	for i := range s {
		l.traits.Destroy(&s[i])
	}
	clear(s)
}

// unshift reverts a partial right shift of s: the slots (from, last] hold
// values that used to sit one slot to their left. They are moved back and
// the slot at last is destroyed. A failing move stops the walk; every slot
// below last stays live either way.
func (l *lifecycle[T]) unshift(s []T, from, last int) {
	for j := from + 1; j <= last; j++ {
		if err := l.traits.MoveAssign(&s[j-1], &s[j]); err != nil {
			break
		}
	}
	l.destroy(&s[last])
}
