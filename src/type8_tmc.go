package rds

/*------------------------------------------------------------------
 *
 * Purpose:	Group 8A — TMC user messages: single-group, multi-group
 *		reassembly with continuity/sequence tracking, and the
 *		28-bit optional-field unpacker (spec.md §4.8).
 *
 *------------------------------------------------------------------*/

// maxTMCOptionalFields bounds the additional-information record list
// unpacked from a completed multi-group message (spec.md §5).
const maxTMCOptionalFields = 16

// tmcOptionalFieldLength is the fixed label→bit-length table of
// spec.md §4.8. Label 14 carries no data; label 15 is reserved.
var tmcOptionalFieldLength = [16]int{3, 3, 5, 5, 5, 8, 8, 8, 8, 11, 16, 16, 16, 16, 0, 0}

// TmcOptionalField is one unpacked (label, data) record from a
// multi-group message's additional-information stream.
type TmcOptionalField struct {
	Label uint8
	Data  uint32
}

// TmcMessage is a fully decoded TMC user message, whether it arrived as
// a single group or was reassembled from a multi-group sequence.
type TmcMessage struct {
	DP              uint8
	FollowDiversion bool
	NegDirection    bool
	Extent          uint8
	Event           uint16
	Location        uint16
	Fields          FixedSlice[TmcOptionalField]
}

// RdsTMC is the decoder's Traffic Message Channel state: the system
// parameters decoded in type3.go plus the most recently validated
// user message.
type RdsTMC struct {
	LTN          uint8
	AFI          bool
	EnhancedMode bool
	MGS          uint8
	GAP          uint8
	SID          uint8
	TA           uint8
	TW           uint8
	TD           uint8
	Msg          TmcMessage
}

// tmcGroupKey is the dedup key for the "same group twice in a row"
// staging slot gating every 8A group (spec.md §4.8), kept distinct from
// the type3.go TMC-system slot.
type tmcGroupKey struct {
	dataBLsb uint8
	blockC   uint16
	blockD   uint16
}

// tmcPendingMG tracks an in-progress multi-group reassembly.
type tmcPendingMG struct {
	active       bool
	continuityID uint8
	msg          TmcMessage
	nextSeqID    uint8
	optional     [4]uint32
	optLen       int
}

func (d *Decoder) decodeType8(g *Group) FieldMask {
	if g.Version != VersionA {
		return 0
	}

	key := tmcGroupKey{dataBLsb: g.DataBLsb, blockC: g.BlockC, blockD: g.BlockD}

	v, ok := d.tmcGroupStage.Observe(key, d.tmcGroupCurrent, d.tmcGroupHasCurrent)
	if !ok {
		return 0
	}
	d.tmcGroupCurrent = v
	d.tmcGroupHasCurrent = true

	singleGroup := v.dataBLsb&(1<<4) != 0
	tuningInfo := v.dataBLsb&(1<<3) != 0

	switch {
	case singleGroup && !tuningInfo:
		return d.decodeTMCSingleGroup(v)
	case !singleGroup && !tuningInfo:
		return d.decodeTMCMultiGroup(v)
	default:
		// TuningInfo (TI=1): variants 4..9 are acknowledged only
		// (spec.md §9 Open Question 6); no decode is performed.
		d.DecodeInfo = d.DecodeInfo.Set(DecodeTMC)
		return 0
	}
}

// tmcPrimaryFromCD extracts the primary event fields shared by
// single-group messages and a multi-group sequence's first group
// (spec.md §4.8). Location uses the full 16 bits of block D, resolving
// Open Question 2's block-C/D mixing bug.
func tmcPrimaryFromCD(dataBLsb uint8, blockC, blockD uint16) TmcMessage {
	return TmcMessage{
		DP:              dataBLsb & 0x07,
		FollowDiversion: blockC&(1<<15) != 0,
		NegDirection:    blockC&(1<<14) != 0,
		Extent:          uint8((blockC >> 11) & 0x07),
		Event:           blockC & 0x07FF,
		Location:        blockD,
	}
}

func (d *Decoder) decodeTMCSingleGroup(key tmcGroupKey) FieldMask {
	d.TMC.Msg = tmcPrimaryFromCD(key.dataBLsb, key.blockC, key.blockD)
	d.ValidFields = d.ValidFields.Set(FieldTMCSG)
	d.ValidFields = d.ValidFields.Clear(FieldTMCMG)
	d.DecodeInfo = d.DecodeInfo.Set(DecodeTMC)
	return FieldTMCSG
}

// packTMCOptionalWord packs the 12 remaining bits of block C and the 16
// bits of block D into a 28-bit payload, left-aligned in a 32-bit word
// with the low 4 bits zeroed, matching bitCursor's window definition.
func packTMCOptionalWord(blockC, blockD uint16) uint32 {
	return (uint32(blockC&0x0FFF) << 20) | (uint32(blockD) << 4)
}

func (d *Decoder) decodeTMCMultiGroup(key tmcGroupKey) FieldMask {
	fgi := key.blockC&(1<<15) != 0
	sgi := key.blockC&(1<<14) != 0

	switch {
	case fgi:
		d.tmcMG = tmcPendingMG{
			active:       true,
			continuityID: key.dataBLsb & 0x07,
			msg:          tmcPrimaryFromCD(key.dataBLsb, key.blockC, key.blockD),
		}
		return 0

	case sgi:
		if !d.tmcMG.active || (key.dataBLsb&0x07) != d.tmcMG.continuityID {
			return 0
		}
		seq := uint8((key.blockC >> 12) & 0x03)
		d.tmcMG.optional[0] = packTMCOptionalWord(key.blockC, key.blockD)
		d.tmcMG.optLen = 1
		d.tmcMG.nextSeqID = seq
		if seq == 0 {
			return d.completeTMCMultiGroup()
		}
		return 0

	default:
		if !d.tmcMG.active || d.tmcMG.optLen == 0 {
			return 0
		}
		if (key.dataBLsb & 0x07) != d.tmcMG.continuityID {
			return 0
		}
		if d.tmcMG.nextSeqID == 0 {
			return 0
		}
		seq := uint8((key.blockC >> 12) & 0x03)
		if seq != d.tmcMG.nextSeqID-1 {
			return 0
		}
		if d.tmcMG.optLen >= len(d.tmcMG.optional) {
			return 0
		}
		d.tmcMG.optional[d.tmcMG.optLen] = packTMCOptionalWord(key.blockC, key.blockD)
		d.tmcMG.optLen++
		d.tmcMG.nextSeqID = seq
		if seq == 0 {
			return d.completeTMCMultiGroup()
		}
		return 0
	}
}

// completeTMCMultiGroup unpacks the accumulated optional-field stream
// and publishes the assembled message (spec.md §4.8).
func (d *Decoder) completeTMCMultiGroup() FieldMask {
	msg := d.tmcMG.msg
	msg.Fields = NewFixedSlice[TmcOptionalField](maxTMCOptionalFields)

	cursor := newBitCursor(d.tmcMG.optional[:d.tmcMG.optLen])
	for cursor.remaining() >= 4 {
		label := uint8(cursor.read(4))
		length := tmcOptionalFieldLength[label]

		if cursor.remaining() < length {
			break
		}

		var data uint32
		if length > 0 {
			data = cursor.read(length)
		}

		if label == 15 {
			continue
		}

		msg.Fields.Append(TmcOptionalField{Label: label, Data: data})
	}

	d.TMC.Msg = msg
	d.tmcMG = tmcPendingMG{}
	d.ValidFields = d.ValidFields.Set(FieldTMCMG)
	d.ValidFields = d.ValidFields.Clear(FieldTMCSG)
	d.DecodeInfo = d.DecodeInfo.Set(DecodeTMC)
	return FieldTMCMG
}
