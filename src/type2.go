package rds

/*------------------------------------------------------------------
 *
 * Purpose:	Group 2 — Radio Text (spec.md §4.5).
 *
 *------------------------------------------------------------------*/

func (d *Decoder) decodeType2(g *Group) FieldMask {
	var mask FieldMask

	abFlag := g.DataBLsb&(1<<4) != 0
	segment := int(g.DataBLsb & 0x0F)

	if !d.rtABKnown || abFlag != d.RTABFlag {
		d.RTABFlag = abFlag
		d.rtABKnown = true
		d.newRT = [64]byte{}
		d.nextRTSegment = 0

		if d.RT != "" || d.ValidFields.Has(FieldRT) {
			d.RT = ""
			d.RTLength = 0
			d.ValidFields = d.ValidFields.Clear(FieldRT)
			mask |= FieldRT
		}
	}

	if segment != 0 && segment != d.nextRTSegment {
		return mask
	}

	if g.Version == VersionA {
		pos := 4 * segment
		d.newRT[pos] = g.DataCMsb
		d.newRT[pos+1] = g.DataCLsb
		d.newRT[pos+2] = g.DataDMsb
		d.newRT[pos+3] = g.DataDLsb
	} else {
		pos := 2 * segment
		d.newRT[pos] = g.DataDMsb
		d.newRT[pos+1] = g.DataDLsb
	}

	d.nextRTSegment = segment + 1

	length := 64
	if g.Version == VersionB {
		length = 32
	}

	// A 0x0D anywhere in the staged buffer terminates and publishes the
	// text immediately (spec.md §4.5), independent of whether segment 15
	// has arrived yet — a broadcaster can stop short of the full buffer.
	termPos := -1
	for i := 0; i < length; i++ {
		if d.newRT[i] == 0x0D {
			termPos = i
			break
		}
	}

	complete := segment == 15
	if complete {
		d.nextRTSegment = 0
	}

	if termPos < 0 {
		if !complete {
			return mask
		}
		termPos = length
	}

	candidate := string(d.newRT[:termPos])

	if candidate != d.RT || d.RTLength != termPos || !d.ValidFields.Has(FieldRT) {
		d.RT = candidate
		d.RTLength = termPos
		d.ValidFields = d.ValidFields.Set(FieldRT)
		mask |= FieldRT
	}

	return mask
}
