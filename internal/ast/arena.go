package ast

// Arena is a compact slice-backed store; handles are 1-based indices so the
// zero value of every ID type means "none". Declarations live here for the
// lifetime of one compilation unit, which makes cleanup trivial: drop the
// builder and everything goes with it.
type Arena[T any] struct {
	data []T
}

// NewArena creates an *Arena[T] with capacity capHint (zero is allowed).
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate stores value and returns its 1-based handle.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	return uint32(len(a.data))
}

// Get returns a pointer to the element, or nil for handle 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return &a.data[index-1]
}

// Append bulk-copies every element of other onto the end of a and returns
// the offset that maps other's handles into a (new handle = old + offset).
func (a *Arena[T]) Append(other *Arena[T]) uint32 {
	offset := uint32(len(a.data))
	a.data = append(a.data, other.data...)
	return offset
}

func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data))
}
