package rds

/*------------------------------------------------------------------
 *
 * Purpose:	Fixed-capacity collection for the AF list, ODA table,
 *		and TMC optional-field buffer.
 *
 * Description:	spec.md §9 models these as "{len, items: [T; N]}" with
 *		explicit insert-or-fail semantics and no dynamic
 *		allocation on the hot path, the same shape used
 *		throughout for receive buffers elsewhere in this style of
 *		codec (a fixed backing array plus a length counter). A Go
 *		slice pre-allocated to its final capacity gives the same
 *		guarantee: Append never grows the backing array once Cap
 *		is reached.
 *
 *------------------------------------------------------------------*/

// FixedSlice is a slice bounded at construction to cap entries.
type FixedSlice[T any] struct {
	items []T
}

// NewFixedSlice returns an empty FixedSlice with room for cap items.
func NewFixedSlice[T any](cap int) FixedSlice[T] {
	return FixedSlice[T]{items: make([]T, 0, cap)}
}

// Len returns the number of stored items.
func (f *FixedSlice[T]) Len() int { return len(f.items) }

// Cap returns the collection's fixed capacity.
func (f *FixedSlice[T]) Cap() int { return cap(f.items) }

// Full reports whether the collection has no room for further inserts.
func (f *FixedSlice[T]) Full() bool { return len(f.items) >= cap(f.items) }

// Items returns the stored items in insertion order. The returned slice
// aliases the collection's backing array and must not be retained past
// the next mutating call.
func (f *FixedSlice[T]) Items() []T { return f.items }

// Append inserts x and reports true, or reports false without modifying
// the collection if it is already full.
func (f *FixedSlice[T]) Append(x T) bool {
	if f.Full() {
		return false
	}
	f.items = append(f.items, x)
	return true
}

// Reset empties the collection without releasing its backing array.
func (f *FixedSlice[T]) Reset() {
	f.items = f.items[:0]
}
