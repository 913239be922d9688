package vector

import (
	"github.com/pkg/errors"

	"github.com/pavanmanishd/vector/internal/rawbuf"
)

var (
	// ErrAllocation is returned when storage for a larger capacity cannot
	// be obtained. The vector is left unchanged.
	ErrAllocation = rawbuf.ErrAllocation

	// ErrNotCopyable is returned by copy operations on vectors whose
	// element traits declare NoCopy.
	ErrNotCopyable = errors.New("vector: element type is not copyable")
)

func withMessage(err error, op string) error {
	return errors.WithMessage(err, "vector: "+op)
}
