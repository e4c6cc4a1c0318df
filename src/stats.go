package rds

/*------------------------------------------------------------------
 *
 * Purpose:	Decoder statistics and decode-capability bits.
 *
 *------------------------------------------------------------------*/

// RdsStatistics accumulates per-group-type counters plus the block- and
// group-error counters named in spec.md §3/§7. GroupVersionACount and
// GroupVersionBCount supplement spec.md's flat GroupTypeCount with a
// version breakdown (SPEC_FULL.md §C.2): broadcasters mixing, say, 2A
// and 2B RadioText groups is a real diagnostic signal worth keeping
// separate from the combined count.
type RdsStatistics struct {
	BlockCount          uint64
	BlockErrorCount     uint64
	BlockCorrectedCount uint64

	GroupCount      uint64
	GroupErrorCount uint64

	GroupTypeCount     [16]uint64
	GroupVersionACount [16]uint64
	GroupVersionBCount [16]uint64
}

// DecodeInfoMask records which decoder capabilities have ever been
// observed on the air (spec.md §3 decode_information), supplemented per
// SPEC_FULL.md §C.3 to cover AF/TMC/PTYN in addition to ODA.
type DecodeInfoMask uint16

const (
	DecodeODA DecodeInfoMask = 1 << iota
	DecodeAF
	DecodeTMC
	DecodePTYN
)

// Has reports whether every bit in want is set in m.
func (m DecodeInfoMask) Has(want DecodeInfoMask) bool {
	return m&want == want
}

// Set returns m with every bit in add set.
func (m DecodeInfoMask) Set(add DecodeInfoMask) DecodeInfoMask {
	return m | add
}
