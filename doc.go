// Package vector implements a growable sequence container over a single
// contiguous buffer, with explicit control over element lifetimes.
//
// # Overview
//
// A Vector separates capacity from liveness: its buffer has Capacity()
// slots, of which the first Size() hold live elements. Growing the buffer
// never touches unused slots, and every element is constructed and
// destroyed exactly once through the vector's element Traits. This is
// useful for:
//
//   - Elements that own resources (handles, pooled buffers, reference counts)
//   - Element types whose construction or copying can fail
//   - Code that needs to observe or bound reallocation behaviour
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	v.PushBack(10)
//	v.PushBack(30)
//	v.Insert(1, 20) // [10 20 30]
//	v.Erase(0)      // [20 30]
//
//	for i, p := range v.All() {
//		*p += i
//	}
//
// # Element Traits
//
// Traits describe how elements are constructed, copied, moved and
// destroyed. ValueTraits, the default, gives plain Go value semantics.
// Funcs builds traits from optional hooks:
//
//	tr := vector.Funcs[*os.File]{
//		NoCopy: true,
//		Free:   func(f **os.File) { (*f).Close() },
//	}
//	files := vector.New[*os.File](vector.WithTraits[*os.File](tr))
//
// # Growth and Relocation
//
// A full vector doubles its capacity, starting from one slot. Elements are
// relocated by move when the traits promise moves never fail or forbid
// copies, and by copy otherwise. The strategy is chosen once, when the
// traits are bound.
//
// # Failure Safety
//
//   - Allocation failures return ErrAllocation and leave the vector unchanged
//   - A new element is always constructed before existing ones are disturbed,
//     so a failing construction leaves the vector unchanged
//   - Copy relocation never modifies the old buffer until it succeeds
//   - Out-of-range indexes and positions panic
//
// # Thread Safety
//
// Vectors are not goroutine-safe. A vector has exactly one owner; callers
// sharing one across goroutines must synchronize access themselves.
// Ownership moves with Take, MoveFrom and Swap; copies are made with Clone
// and CopyFrom. Vectors must not be copied by value.
//
// # Metrics and Monitoring
//
// Metrics returns a snapshot of size, capacity and reallocation counters;
// the vectorprom package exports it to Prometheus.
package vector
