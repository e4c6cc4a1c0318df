package rds

/*------------------------------------------------------------------
 *
 * Purpose:	Generic "accept on second identical reception" buffer.
 *
 * Description:	Several fields (PI, PTY, ECC, LC, MJD, the TMC group-
 *		and system-group dedup slots) all use the same defense
 *		against a single corrupted block: a new value is only
 *		adopted once it has arrived twice in a row, and it is
 *		only adopted at all if it differs from the value already
 *		public. spec.md §9 calls this out by name as the one
 *		pattern in the source worth factoring into a reusable
 *		abstraction rather than reimplementing per field.
 *
 *------------------------------------------------------------------*/

// Staged buffers a candidate value of type T until it has been observed
// twice in a row, at which point Observe reports it as accepted.
type Staged[T comparable] struct {
	pending T
	have    bool
}

// Observe records x as the newest candidate reading.
//
//   - If currentValid is true and x equals current, x is already the
//     public value: the staged candidate is discarded (a stray repeat of
//     the current value should not leave a half-matched stage lying
//     around to falsely confirm unrelated noise) and Observe reports no
//     change.
//   - Otherwise, if x matches the value staged by the previous call,
//     x has now been seen twice in a row: Observe reports it accepted
//     and clears the stage.
//   - Otherwise x becomes the new staged candidate and Observe reports
//     no change.
func (s *Staged[T]) Observe(x T, current T, currentValid bool) (T, bool) {
	if currentValid && x == current {
		s.have = false
		return current, false
	}

	if s.have && s.pending == x {
		s.have = false
		return x, true
	}

	s.pending = x
	s.have = true

	return current, false
}

// Reset discards any staged candidate.
func (s *Staged[T]) Reset() {
	var zero T
	s.pending = zero
	s.have = false
}
