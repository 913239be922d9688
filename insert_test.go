package vector

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sized returns a vector holding vals with capacity exactly len(vals).
func sized(t *testing.T, vals ...int) *Vector[int] {
	t.Helper()
	v, err := NewSized[int](len(vals))
	require.NoError(t, err)
	copy(v.Slice(), vals)
	return v
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		want []int
	}{
		{"front", 0, []int{99, 10, 20, 30}},
		{"middle", 1, []int{10, 99, 20, 30}},
		{"before last", 2, []int{10, 20, 99, 30}},
		{"end", 3, []int{10, 20, 30, 99}},
	}

	for _, tt := range tests {
		t.Run(tt.name+" with spare capacity", func(t *testing.T) {
			v := sized(t, 10, 20, 30)
			require.NoError(t, v.Reserve(8))

			p, err := v.Insert(tt.pos, 99)
			require.NoError(t, err)
			assert.Equal(t, 99, *p)
			assert.Equal(t, tt.want, ints(v))
			assert.Equal(t, 8, v.Capacity())
		})

		t.Run(tt.name+" when full", func(t *testing.T) {
			v := sized(t, 10, 20, 30)

			p, err := v.Insert(tt.pos, 99)
			require.NoError(t, err)
			assert.Equal(t, 99, *p)
			assert.Equal(t, tt.want, ints(v))
			assert.Equal(t, 6, v.Capacity())
		})
	}
}

func TestInsertIntoEmpty(t *testing.T) {
	v := New[int]()
	p, err := v.Insert(0, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, *p)
	assert.Equal(t, []int{5}, ints(v))
	assert.Equal(t, 1, v.Capacity())
}

func TestInsertPositionOutOfRange(t *testing.T) {
	v := sized(t, 1, 2)
	assert.Panics(t, func() { _, _ = v.Insert(3, 0) })
	assert.Panics(t, func() { _, _ = v.Insert(-1, 0) })
	assert.Equal(t, []int{1, 2}, ints(v))
}

func TestInsertMove(t *testing.T) {
	tr := newTracker()
	v := trackedVector(tr, 1, 2, 3)
	src := value(9)
	copies := tr.calls[opCopy]

	p, err := v.InsertMove(1, &src)
	require.NoError(t, err)
	assert.Equal(t, 9, p.V)
	assert.Equal(t, []int{1, 9, 2, 3}, objValues(v))
	assert.Equal(t, copies, tr.calls[opCopy])
	assert.Equal(t, 4, tr.live)
	assert.Empty(t, tr.violations)
}

func TestEmplace(t *testing.T) {
	tr := newTracker()
	v := trackedVector(tr, 1, 2, 3)

	p, err := v.Emplace(0, tr.make(0))
	require.NoError(t, err)
	assert.Equal(t, 0, p.V)
	assert.Equal(t, []int{0, 1, 2, 3}, objValues(v))

	p, err = v.Emplace(2, tr.make(7))
	require.NoError(t, err)
	assert.Equal(t, 7, p.V)
	assert.Equal(t, []int{0, 1, 7, 2, 3}, objValues(v))
	assert.Equal(t, 8, v.Capacity())

	assert.Equal(t, 5, tr.live)
	assert.Empty(t, tr.violations)
}

func TestInsertFailureWithSpareCapacity(t *testing.T) {
	tests := []struct {
		name   string
		pos    int
		failOp op
		after  int
	}{
		{"temporary construction", 1, opCopy, 0},
		{"move into end slot", 1, opMove, 0},
		{"shift", 0, opMoveAssign, 1},
		{"first shift", 1, opMoveAssign, 0},
		{"assign into position", 1, opMoveAssign, 1},
		{"assign into position before last", 2, opMoveAssign, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTracker()
			v := trackedVector(tr, 10, 20, 30)
			require.Equal(t, 4, v.Capacity())

			tr.failOn(tt.failOp, tt.after)
			p, err := v.Insert(tt.pos, value(99))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errBoom))
			assert.Nil(t, p)

			assert.Equal(t, []int{10, 20, 30}, objValues(v))
			assert.Equal(t, 4, v.Capacity())
			assert.Equal(t, obj{}, v.buf.Span(0, 4)[3], "end slot must be empty again")
			assert.Equal(t, 3, tr.live, "temporary and end slot must be destroyed")
			assert.Empty(t, tr.violations)
		})
	}
}

func TestInsertFailureWhenFull(t *testing.T) {
	tests := []struct {
		name  string
		pos   int
		after int
	}{
		{"new element", 1, 0},
		{"prefix relocation", 1, 1},
		{"suffix relocation", 1, 2},
		{"suffix relocation at front", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTracker()
			v := trackedVector(tr, 10, 20)
			require.Equal(t, 2, v.Capacity())

			tr.failOn(opCopy, tt.after)
			_, err := v.Insert(tt.pos, value(99))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errBoom))

			assert.Equal(t, []int{10, 20}, objValues(v))
			assert.Equal(t, 2, v.Capacity())
			assert.Equal(t, 2, tr.live)
			assert.Empty(t, tr.violations)
		})
	}
}

func TestInsertRollbackFailureKeepsElementsLive(t *testing.T) {
	tr := newTracker()
	v := trackedVector(tr, 10, 20, 30, 40)
	require.NoError(t, v.Reserve(8))

	// The second shift fails, then so does the first move back.
	tr.failOn(opMoveAssign, 1)
	v.elems = newLifecycle[obj](&flakyTracker{tracker: tr})

	_, err := v.Insert(0, value(99))
	require.Error(t, err)

	assert.Equal(t, 4, v.Size())
	assert.Equal(t, 4, tr.live)
	assert.Equal(t, obj{}, v.buf.Span(0, 8)[4])
	for i, p := range v.All() {
		assert.True(t, p.live, "slot %d", i)
	}
	assert.Empty(t, tr.violations)
}

// flakyTracker fails the first move assignment made after the tracker's own
// injected failure fired.
type flakyTracker struct {
	*tracker
	failNext bool
}

func (f *flakyTracker) MoveAssign(dst, src *obj) error {
	if f.failNext {
		f.failNext = false
		return errBoom
	}
	err := f.tracker.MoveAssign(dst, src)
	f.failNext = err != nil
	return err
}

func TestErase(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		want []int
	}{
		{"front", 0, []int{20, 30}},
		{"middle", 1, []int{10, 30}},
		{"back", 2, []int{10, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTracker()
			v := trackedVector(tr, 10, 20, 30)

			require.NoError(t, v.Erase(tt.pos))
			assert.Equal(t, tt.want, objValues(v))
			assert.Equal(t, 4, v.Capacity())
			assert.Equal(t, 2, tr.live)
			assert.Equal(t, obj{}, v.buf.Span(0, 4)[2])
			assert.Empty(t, tr.violations)
		})
	}
}

func TestEraseOutOfRange(t *testing.T) {
	v := sized(t, 1)
	assert.Panics(t, func() { _ = v.Erase(1) })

	var empty Vector[int]
	assert.Panics(t, func() { _ = empty.Erase(0) })
}

func TestEraseFailure(t *testing.T) {
	tr := newTracker()
	v := trackedVector(tr, 10, 20, 30)
	tr.failOn(opMoveAssign, 1)

	err := v.Erase(0)
	assert.True(t, errors.Is(err, errBoom))
	assert.Equal(t, 3, v.Size())
	assert.Equal(t, 3, tr.live)
	assert.Empty(t, tr.violations)
}

func TestInsertThenEraseRestores(t *testing.T) {
	base := []int{1, 2, 3, 4, 5}
	for pos := 0; pos <= len(base); pos++ {
		v := sized(t, base...)
		_, err := v.Insert(pos, 42)
		require.NoError(t, err)
		require.NoError(t, v.Erase(pos))
		assert.Equal(t, base, ints(v), "pos %d", pos)
	}
}
