package vector

import (
	"fmt"

	"github.com/pkg/errors"
)

var errBoom = errors.New("boom")

// obj is an element whose lifetime is checked by tracker.
type obj struct {
	V    int
	live bool
}

type op int

const (
	opConstruct op = iota
	opCopy
	opMove
	opCopyAssign
	opMoveAssign
	numOps
)

// tracker is a Traits implementation that counts lifetimes, records
// lifetime violations and fails a chosen operation on demand.
type tracker struct {
	live       int
	calls      [numOps]int
	violations []string

	failOp    op
	failAfter int // calls of failOp that still succeed; -1 disables
	noFailMv  bool
	noCopy    bool
}

func newTracker() *tracker {
	return &tracker{failAfter: -1}
}

// failOn makes the (n+1)-th next call of o fail.
func (t *tracker) failOn(o op, n int) {
	t.failOp, t.failAfter = o, n
}

func (t *tracker) step(o op) error {
	t.calls[o]++
	if o != t.failOp || t.failAfter < 0 {
		return nil
	}
	if t.failAfter == 0 {
		t.failAfter = -1
		return errBoom
	}
	t.failAfter--
	return nil
}

func (t *tracker) violate(format string, args ...any) {
	t.violations = append(t.violations, fmt.Sprintf(format, args...))
}

func (t *tracker) checkEmpty(what string, p *obj) {
	if p.live {
		t.violate("%s into live slot holding %d", what, p.V)
	}
}

func (t *tracker) checkLive(what string, p *obj) {
	if !p.live {
		t.violate("%s on dead value %d", what, p.V)
	}
}

func (t *tracker) Construct(dst *obj) error {
	t.checkEmpty("construct", dst)
	if err := t.step(opConstruct); err != nil {
		return err
	}
	*dst = obj{live: true}
	t.live++
	return nil
}

func (t *tracker) CopyConstruct(dst, src *obj) error {
	t.checkEmpty("copy construct", dst)
	t.checkLive("copy construct", src)
	if t.noCopy {
		return ErrNotCopyable
	}
	if err := t.step(opCopy); err != nil {
		return err
	}
	*dst = obj{V: src.V, live: true}
	t.live++
	return nil
}

func (t *tracker) MoveConstruct(dst, src *obj) error {
	t.checkEmpty("move construct", dst)
	t.checkLive("move construct", src)
	if err := t.step(opMove); err != nil {
		return err
	}
	*dst = obj{V: src.V, live: true}
	t.live++
	return nil
}

func (t *tracker) CopyAssign(dst, src *obj) error {
	t.checkLive("copy assign to", dst)
	t.checkLive("copy assign from", src)
	if t.noCopy {
		return ErrNotCopyable
	}
	if err := t.step(opCopyAssign); err != nil {
		return err
	}
	dst.V = src.V
	return nil
}

func (t *tracker) MoveAssign(dst, src *obj) error {
	t.checkLive("move assign to", dst)
	t.checkLive("move assign from", src)
	if err := t.step(opMoveAssign); err != nil {
		return err
	}
	dst.V = src.V
	return nil
}

func (t *tracker) Destroy(p *obj) {
	t.checkLive("destroy", p)
	p.live = false
	t.live--
}

func (t *tracker) Capabilities() Capabilities {
	return Capabilities{NoFailMove: t.noFailMv, NoCopy: t.noCopy}
}

// make returns an init func constructing an element holding val.
func (t *tracker) make(val int) func(*obj) error {
	return func(p *obj) error {
		if err := t.Construct(p); err != nil {
			return err
		}
		p.V = val
		return nil
	}
}

// value returns a live obj owned by the test, not counted by the tracker.
func value(val int) obj {
	return obj{V: val, live: true}
}

func trackedVector(tr *tracker, vals ...int) *Vector[obj] {
	v := New[obj](WithTraits[obj](tr))
	for _, val := range vals {
		if _, err := v.EmplaceBack(tr.make(val)); err != nil {
			panic(err)
		}
	}
	return v
}

func objValues(v *Vector[obj]) []int {
	out := make([]int, 0, v.Size())
	for o := range v.Values() {
		out = append(out, o.V)
	}
	return out
}

func ints(v *Vector[int]) []int {
	return append([]int{}, v.Slice()...)
}
