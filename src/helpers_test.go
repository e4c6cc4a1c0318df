package rds

// mkBlockB packs the common block-B fields (spec.md §4.2) for test
// fixtures: group id, version, TP, PTY, and the group-type-specific
// low 5 bits.
func mkBlockB(groupID uint8, version GroupVersion, tp bool, pty uint8, dataBLsb uint8) uint16 {
	var b uint16
	b = uint16(groupID&0x0F) << 12
	if version == VersionB {
		b |= 1 << 11
	}
	if tp {
		b |= 1 << 10
	}
	b |= uint16(pty&0x1F) << 5
	b |= uint16(dataBLsb & 0x1F)
	return b
}

func mkBlockC(msb, lsb uint8) uint16 {
	return uint16(msb)<<8 | uint16(lsb)
}

func mkBlockD(msb, lsb uint8) uint16 {
	return uint16(msb)<<8 | uint16(lsb)
}

// feedGroup drives one complete A/B/C/D sequence through a Decoder and
// returns the update mask produced by the final (D) block.
func feedGroup(d *Decoder, pi, blockB, blockC, blockD uint16) FieldMask {
	d.Add(RawBlock{Data: pi, Label: BlockA})
	d.Add(RawBlock{Data: blockB, Label: BlockB})
	d.Add(RawBlock{Data: blockC, Label: BlockC})
	return d.Add(RawBlock{Data: blockD, Label: BlockD})
}
