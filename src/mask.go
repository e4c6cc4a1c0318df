package rds

/*------------------------------------------------------------------
 *
 * Purpose:	Stable field identifiers shared by the update mask
 *		returned from Add and the ValidFields bitmask on Decoder.
 *
 *------------------------------------------------------------------*/

// FieldMask is a set of RDS/RBDS field identifiers. Add returns one to
// report exactly which public fields changed (spec.md §6, "Update-mask
// bits"); Decoder.ValidFields accumulates one across the lifetime of a
// decoder (spec.md §3, invariant 2).
type FieldMask uint32

const (
	FieldPI FieldMask = 1 << iota
	FieldPTY
	FieldPS
	FieldRT
	FieldTP
	FieldTA
	FieldMS
	FieldDI
	FieldAF
	FieldECC
	FieldLC
	FieldTime
	FieldTMCSG
	FieldTMCMG
	FieldTMCSys
	FieldPTYN
	FieldODA
)

// Has reports whether every bit in want is set in m.
func (m FieldMask) Has(want FieldMask) bool {
	return m&want == want
}

// Set returns m with every bit in add set.
func (m FieldMask) Set(add FieldMask) FieldMask {
	return m | add
}

// Clear returns m with every bit in remove cleared.
func (m FieldMask) Clear(remove FieldMask) FieldMask {
	return m &^ remove
}
