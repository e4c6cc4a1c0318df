package rds

/*------------------------------------------------------------------
 *
 * Purpose:	Block-reassembly state machine (spec.md §4.1).
 *
 *------------------------------------------------------------------*/

// blockState is the assembler's position in the A→B→C(or C′)→D cycle.
type blockState int

const (
	stateEmpty blockState = iota
	stateAReceived
	stateBReceived
	stateCReceived
)

// blockLabelInvalid is a sentinel used in place of a RawBlock's real
// label when the block is flagged uncorrectable: spec.md §4.1 treats
// an uncorrectable block's label as invalid regardless of its claimed
// value, which this decoder implements by routing it through the same
// "other" transition every state uses for an unexpected label.
const blockLabelInvalid BlockLabel = 0xFF

// Add feeds one received block into the assembler. It returns the union
// of update-mask bits produced by completing a group, if this call
// completed one; otherwise it returns 0.
func (d *Decoder) Add(raw RawBlock) FieldMask {
	d.Stats.BlockCount++

	if raw.Corrected {
		d.Stats.BlockCorrectedCount++
	}

	label := raw.Label & BlockLabelMSK
	if raw.Uncorrectable {
		d.Stats.BlockErrorCount++
		label = blockLabelInvalid
		logger().Warn("uncorrectable block", "label", raw.Label, "state", d.state)
	}

	switch d.state {
	case stateEmpty:
		if label == BlockA {
			d.rawA = raw.Data
			d.state = stateAReceived
		} else {
			d.groupError()
		}

	case stateAReceived:
		if label == BlockB {
			d.rawB = raw.Data
			d.state = stateBReceived
		} else {
			d.groupError()
		}

	case stateBReceived:
		if label == BlockC || label == BlockCp {
			d.rawC = raw.Data
			d.state = stateCReceived
		} else {
			d.groupError()
		}

	case stateCReceived:
		if label == BlockD {
			d.rawD = raw.Data
			d.Stats.GroupCount++
			d.state = stateEmpty
			return d.assembleGroup()
		}
		d.groupError()
	}

	return 0
}

// groupError records a mis-sequenced block and drops back to Empty,
// discarding whatever partial group was in progress (spec.md §4.1,
// §7 "Group error").
func (d *Decoder) groupError() {
	d.Stats.GroupErrorCount++
	logger().Warn("group error", "state", d.state)
	d.state = stateEmpty
}
