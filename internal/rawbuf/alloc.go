package rawbuf

import (
	"math"
	"runtime"
	"unsafe"

	"github.com/pkg/errors"
)

// ErrAllocation is returned when a region for the requested number of
// slots cannot be obtained.
var ErrAllocation = errors.New("rawbuf: allocation failed")

// maxRegionBytes bounds the byte size of a single region.
const maxRegionBytes = uintptr(math.MaxInt)

// SlotSize returns the size in bytes of one slot of type T.
func SlotSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// allocSlots returns n zeroed slots of type T. Returns nil if n == 0.
func allocSlots[T any](n int) (slots []T, err error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrAllocation, "negative capacity %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	if size := uintptr(SlotSize[T]()); size > 0 && uintptr(n) > maxRegionBytes/size {
		return nil, errors.Wrapf(ErrAllocation, "%d slots of %d bytes overflow the address space", n, size)
	}

	// make reports oversized requests with a runtime panic.
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			slots, err = nil, errors.Wrapf(ErrAllocation, "%d slots: %v", n, re)
		}
	}()
	return make([]T, n), nil
}

