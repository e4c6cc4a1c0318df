package rds

/*------------------------------------------------------------------
 *
 * Purpose:	Group 1A — Slow Labeling: ECC and LC (spec.md §4.4).
 *
 *------------------------------------------------------------------*/

func (d *Decoder) decodeType1(g *Group) FieldMask {
	if g.Version != VersionA {
		return 0
	}

	variant := uint8((g.BlockC >> 12) & 0x07)

	switch variant {
	case 0:
		if v, ok := d.eccStage.Observe(g.DataCLsb, d.ECC, d.ValidFields.Has(FieldECC)); ok {
			if v != d.ECC || !d.ValidFields.Has(FieldECC) {
				d.ECC = v
				d.ValidFields = d.ValidFields.Set(FieldECC)
				return FieldECC
			}
			d.ValidFields = d.ValidFields.Set(FieldECC)
		}
	case 3:
		if v, ok := d.lcStage.Observe(g.DataCLsb, d.LC, d.ValidFields.Has(FieldLC)); ok {
			if v != d.LC || !d.ValidFields.Has(FieldLC) {
				d.LC = v
				d.ValidFields = d.ValidFields.Set(FieldLC)
				return FieldLC
			}
			d.ValidFields = d.ValidFields.Set(FieldLC)
		}
	}

	return 0
}
