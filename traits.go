package vector

// Traits describes the lifetime of the elements stored in a vector.
//
// Construction hooks receive a zeroed slot. Assignment hooks receive a live
// destination. Moves must leave src valid, because the vector still destroys
// moved-from values. Destroy ends a value's lifetime; the vector zeroes the
// slot afterwards.
type Traits[T any] interface {
	Construct(dst *T) error
	CopyConstruct(dst, src *T) error
	MoveConstruct(dst, src *T) error
	CopyAssign(dst, src *T) error
	MoveAssign(dst, src *T) error
	Destroy(p *T)
}

// Capabilities select how elements are relocated when a vector grows.
type Capabilities struct {
	// NoFailMove promises MoveConstruct never returns an error.
	NoFailMove bool
	// NoCopy marks elements that cannot be copied at all.
	NoCopy bool
}

// Traits may implement this to report their Capabilities. Traits that do not
// are assumed to have fallible moves, so relocation copies.
type capable interface {
	Capabilities() Capabilities
}

func capabilitiesOf(tr any) Capabilities {
	if c, ok := tr.(capable); ok {
		return c.Capabilities()
	}
	return Capabilities{}
}

// ValueTraits gives plain Go value semantics: construction yields the zero
// value, copies and moves are assignments that never fail, and Destroy has
// nothing to release. It is the default for every vector.
type ValueTraits[T any] struct{}

func (ValueTraits[T]) Construct(*T) error { return nil }

func (ValueTraits[T]) CopyConstruct(dst, src *T) error {
	*dst = *src
	return nil
}

func (ValueTraits[T]) MoveConstruct(dst, src *T) error {
	*dst = *src
	return nil
}

func (ValueTraits[T]) CopyAssign(dst, src *T) error {
	*dst = *src
	return nil
}

func (ValueTraits[T]) MoveAssign(dst, src *T) error {
	*dst = *src
	return nil
}

func (ValueTraits[T]) Destroy(*T) {}

func (ValueTraits[T]) Capabilities() Capabilities {
	return Capabilities{NoFailMove: true}
}

// Funcs builds Traits from optional hooks. A nil hook falls back to value
// semantics. Assignments are built as construct-into-temporary, destroy the
// old value, then store, so a failed assignment leaves dst untouched.
type Funcs[T any] struct {
	New  func(dst *T) error
	Copy func(dst, src *T) error
	Move func(dst, src *T) error
	Free func(p *T)

	NoFailMove bool
	NoCopy     bool
}

func (f Funcs[T]) Construct(dst *T) error {
	if f.New == nil {
		return nil
	}
	return f.New(dst)
}

func (f Funcs[T]) CopyConstruct(dst, src *T) error {
	switch {
	case f.NoCopy:
		return ErrNotCopyable
	case f.Copy == nil:
		*dst = *src
		return nil
	}
	return f.Copy(dst, src)
}

func (f Funcs[T]) MoveConstruct(dst, src *T) error {
	if f.Move == nil {
		*dst = *src
		return nil
	}
	return f.Move(dst, src)
}

func (f Funcs[T]) CopyAssign(dst, src *T) error {
	var tmp T
	if err := f.CopyConstruct(&tmp, src); err != nil {
		return err
	}
	f.Destroy(dst)
	*dst = tmp
	return nil
}

func (f Funcs[T]) MoveAssign(dst, src *T) error {
	var tmp T
	if err := f.MoveConstruct(&tmp, src); err != nil {
		return err
	}
	f.Destroy(dst)
	*dst = tmp
	return nil
}

func (f Funcs[T]) Destroy(p *T) {
	if f.Free != nil {
		f.Free(p)
	}
}

func (f Funcs[T]) Capabilities() Capabilities {
	return Capabilities{NoFailMove: f.NoFailMove || f.Move == nil, NoCopy: f.NoCopy}
}
