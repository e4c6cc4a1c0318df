package rds

/*------------------------------------------------------------------
 *
 * Purpose:	RawBlock/Group data model and the common block-A/B
 *		field extractors (spec.md §3, §4.2).
 *
 *------------------------------------------------------------------*/

// BlockLabel identifies which block within a group a RawBlock carries.
// The numeric values match the V4L2 RDS block field encoding named in
// spec.md §6: MSK masks off the error/corrected flag bits carried
// alongside the label in that ABI, and {0,1,2,3,4} decode to
// {A,B,C,D,C'}.
type BlockLabel byte

const (
	BlockA  BlockLabel = 0
	BlockB  BlockLabel = 1
	BlockC  BlockLabel = 2
	BlockD  BlockLabel = 3
	BlockCp BlockLabel = 4 // C', block C of a version-B group
)

// BlockLabelMSK masks a V4L2-style combined label+flags byte down to
// the label bits.
const BlockLabelMSK BlockLabel = 0x07

// RawBlock is one received 16-bit payload plus the metadata spec.md §3
// requires: which block position it claims to be, and whether the
// upstream demodulator corrected or gave up on it.
type RawBlock struct {
	Data          uint16
	Label         BlockLabel
	Corrected     bool
	Uncorrectable bool
}

// GroupVersion is the A/B flag carried in bit 11 of block B.
type GroupVersion byte

const (
	VersionA GroupVersion = 0
	VersionB GroupVersion = 1
)

func (v GroupVersion) String() string {
	if v == VersionB {
		return "B"
	}
	return "A"
}

// Group is a fully reassembled 104-bit RDS group (spec.md §3): the PI
// repeated in block A, the common fields of block B, and the raw
// payload halves of blocks C and D that the group-type decoders
// interpret according to GroupID/Version.
type Group struct {
	PI uint16

	GroupID  uint8
	Version  GroupVersion
	TP       bool
	PTY      uint8
	DataBLsb uint8 // low 5 bits of block B

	BlockC uint16
	BlockD uint16

	DataCMsb uint8
	DataCLsb uint8
	DataDMsb uint8
	DataDLsb uint8
}

// decodeCommonB fills in the GroupID/Version/TP/PTY/DataBLsb fields of
// g from the raw 16-bit value of block B, per spec.md §4.2.
func decodeCommonB(g *Group, blockB uint16) {
	g.GroupID = uint8(blockB >> 12)
	if blockB&(1<<11) != 0 {
		g.Version = VersionB
	} else {
		g.Version = VersionA
	}
	g.TP = blockB&(1<<10) != 0
	g.PTY = uint8((blockB >> 5) & 0x1F)
	g.DataBLsb = uint8(blockB & 0x1F)
}

// decodeCD fills in the block C/D fields of g from their raw 16-bit
// values.
func decodeCD(g *Group, blockC, blockD uint16) {
	g.BlockC = blockC
	g.BlockD = blockD
	g.DataCMsb = uint8(blockC >> 8)
	g.DataCLsb = uint8(blockC & 0xFF)
	g.DataDMsb = uint8(blockD >> 8)
	g.DataDLsb = uint8(blockD & 0xFF)
}
