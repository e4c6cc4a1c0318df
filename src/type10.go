package rds

/*------------------------------------------------------------------
 *
 * Purpose:	Group 10A — PTYN (Program-Type Name) (spec.md §4.9).
 *
 *------------------------------------------------------------------*/

// ptynHalf is one 4-character half of an 8-character PTYN, staged
// under the "received identically twice" rule like PI/PTY/ECC/LC.
type ptynHalf [4]byte

func (d *Decoder) decodeType10(g *Group) FieldMask {
	if g.Version != VersionA {
		return 0
	}

	var mask FieldMask

	abFlag := g.DataBLsb&(1<<4) != 0
	segment := int(g.DataBLsb & 0x01)

	if !d.ptynABKnown || abFlag != d.PTYNABFlag {
		d.PTYNABFlag = abFlag
		d.ptynABKnown = true
		d.ptynStage[0].Reset()
		d.ptynStage[1].Reset()
		d.ptynValid[0] = false
		d.ptynValid[1] = false

		if d.PTYN != "" || d.ValidFields.Has(FieldPTYN) {
			d.PTYN = ""
			d.ValidFields = d.ValidFields.Clear(FieldPTYN)
			mask |= FieldPTYN
		}
	}

	half := ptynHalf{g.DataCMsb, g.DataCLsb, g.DataDMsb, g.DataDLsb}

	if v, ok := d.ptynStage[segment].Observe(half, d.ptynChars[segment], d.ptynValid[segment]); ok {
		d.ptynChars[segment] = v
		d.ptynValid[segment] = true
	}

	if d.ptynValid[0] && d.ptynValid[1] {
		var full [8]byte
		copy(full[0:4], d.ptynChars[0][:])
		copy(full[4:8], d.ptynChars[1][:])
		candidate := string(full[:])

		if candidate != d.PTYN || !d.ValidFields.Has(FieldPTYN) {
			d.PTYN = candidate
			d.ValidFields = d.ValidFields.Set(FieldPTYN)
			d.DecodeInfo = d.DecodeInfo.Set(DecodePTYN)
			mask |= FieldPTYN
		}
	}

	return mask
}
