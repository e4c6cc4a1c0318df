package rds

/*------------------------------------------------------------------
 *
 * Purpose:	Group 3A — ODA announcement table and the TMC system
 *		decoder it gates into (spec.md §4.6).
 *
 *------------------------------------------------------------------*/

// MaxODA bounds the open-data-application table (spec.md §5).
const MaxODA = 16

// tmcAIDLocation and tmcAIDLocationEnhanced are the two AIDs IEC 62106
// reserves for the Traffic Message Channel.
const (
	tmcAIDLocation         = 0xCD46
	tmcAIDLocationEnhanced = 0xCD47
)

// OdaEntry is one row of the Open Data Application table: an announced
// group identity and the application it carries.
type OdaEntry struct {
	GroupID uint8
	Version GroupVersion
	AID     uint16
}

// RdsODA is the decoder's open-data-application state.
type RdsODA struct {
	Entries FixedSlice[OdaEntry]
}

// MGSInterRoad, MGSNational, MGSRegional, and MGSUrban split the raw
// 4-bit Message Geographic Scope nibble (ISO 14819-1) carried in TMC
// system variant 0 into the four named flags client code expects
// (SPEC_FULL.md §C.4), rather than leaving callers to mask d.TMC.MGS
// themselves.
func (t RdsTMC) MGSInterRoad() bool { return t.MGS&0x08 != 0 }
func (t RdsTMC) MGSNational() bool  { return t.MGS&0x04 != 0 }
func (t RdsTMC) MGSRegional() bool  { return t.MGS&0x02 != 0 }
func (t RdsTMC) MGSUrban() bool     { return t.MGS&0x01 != 0 }

// tmcSysKey is the dedup key for the TMC system decoder's own "same
// group twice in a row" staging slot, distinct from the user-message
// slot in type8_tmc.go (spec.md §4.6).
type tmcSysKey struct {
	variant  uint8
	dataCMsb uint8
	dataCLsb uint8
}

func (d *Decoder) decodeType3(g *Group) FieldMask {
	if g.Version != VersionA {
		return 0
	}

	var mask FieldMask

	announcedVersion := VersionA
	if g.DataBLsb&0x01 != 0 {
		announcedVersion = VersionB
	}
	announcedGroupID := (g.DataBLsb >> 1) & 0x0F
	aid := g.BlockD

	mask |= d.recordODA(announcedGroupID, announcedVersion, aid)

	if aid == tmcAIDLocation || aid == tmcAIDLocationEnhanced {
		mask |= d.decodeTMCSystem(g)
	}

	return mask
}

func (d *Decoder) recordODA(groupID uint8, version GroupVersion, aid uint16) FieldMask {
	items := d.ODA.Entries.Items()
	for i := range items {
		if items[i].GroupID == groupID && items[i].Version == version {
			if items[i].AID == aid {
				return 0
			}
			items[i].AID = aid
			d.ValidFields = d.ValidFields.Set(FieldODA)
			d.DecodeInfo = d.DecodeInfo.Set(DecodeODA)
			return FieldODA
		}
	}

	if !d.ODA.Entries.Append(OdaEntry{GroupID: groupID, Version: version, AID: aid}) {
		return 0
	}

	d.ValidFields = d.ValidFields.Set(FieldODA)
	d.DecodeInfo = d.DecodeInfo.Set(DecodeODA)
	return FieldODA
}

// decodeTMCSystem extracts the TMC system-information variants of
// spec.md §4.6, gated by its own "received twice" staging slot.
func (d *Decoder) decodeTMCSystem(g *Group) FieldMask {
	key := tmcSysKey{
		variant:  uint8((g.BlockC >> 14) & 0x03),
		dataCMsb: g.DataCMsb,
		dataCLsb: g.DataCLsb,
	}

	v, ok := d.tmcSysGroupStage.Observe(key, d.tmcSysCurrent, d.ValidFields.Has(FieldTMCSys))
	if !ok {
		return 0
	}
	d.tmcSysCurrent = v

	switch v.variant {
	case 0:
		d.TMC.LTN = v.dataCMsb & 0x3F
		d.TMC.AFI = v.dataCLsb&(1<<5) != 0
		d.TMC.EnhancedMode = v.dataCLsb&(1<<4) != 0
		d.TMC.MGS = v.dataCLsb & 0x0F
	case 1:
		d.TMC.GAP = (v.dataCMsb >> 4) & 0x03
		d.TMC.SID = ((v.dataCMsb & 0x0F) << 2) | ((v.dataCLsb >> 6) & 0x03)
		if d.TMC.EnhancedMode {
			d.TMC.TA = (v.dataCLsb >> 4) & 0x03
			d.TMC.TW = (v.dataCLsb >> 2) & 0x03
			d.TMC.TD = v.dataCLsb & 0x03
		}
	default:
		return 0
	}

	d.ValidFields = d.ValidFields.Set(FieldTMCSys)
	d.DecodeInfo = d.DecodeInfo.Set(DecodeTMC)
	return FieldTMCSys
}
