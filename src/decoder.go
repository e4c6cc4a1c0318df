package rds

import "time"

/*------------------------------------------------------------------
 *
 * Purpose:	Decoder lifecycle, the public observable state, and
 *		group dispatch (spec.md §4.1 last paragraph, §4.2, §6).
 *
 *------------------------------------------------------------------*/

// Decoder holds all state for one RDS/RBDS decode session: the public
// fields an observer reads after each Add, and the private staging
// buffers each group-type decoder uses between calls. spec.md §5 is
// explicit that a Decoder is a plain single-threaded state machine with
// no internal concurrency; callers needing multiple readers must
// externally serialize.
type Decoder struct {
	IsRBDS bool

	// Public RDS state (spec.md §3).
	PI         uint16
	PTY        uint8
	TP         bool
	TA         bool
	MS         bool
	DI         uint8
	LC         uint8
	ECC        uint8
	RTABFlag   bool
	PTYNABFlag bool
	PS         string
	RT         string
	RTLength   int
	PTYN       string
	AF         RdsAF
	ODA        RdsODA
	Time       time.Time
	TMC        RdsTMC

	Stats       RdsStatistics
	ValidFields FieldMask
	DecodeInfo  DecodeInfoMask

	lastGroup Group

	// Block assembler staging (block.go).
	state            blockState
	rawA, rawB, rawC uint16
	rawD             uint16

	// Common extractor staging (§4.2).
	piStage  Staged[uint16]
	ptyStage Staged[uint8]

	// Group 0 staging (type0.go).
	psStaged      [8]byte
	psHasStaged   [8]bool
	psValid       [8]bool
	newDI         uint8
	nextDISegment int
	afLFMFNext    bool

	// Group 1 staging (type1.go).
	eccStage Staged[uint8]
	lcStage  Staged[uint8]

	// Group 2 staging (type2.go).
	newRT         [64]byte
	nextRTSegment int
	rtABKnown     bool

	// Group 3 staging (type3.go).
	tmcSysGroupStage Staged[tmcSysKey]
	tmcSysCurrent    tmcSysKey

	// Group 4 staging (type4.go).
	mjdStage Staged[uint32]
	lastMJD  uint32

	// Group 8A staging (type8_tmc.go).
	tmcGroupStage      Staged[tmcGroupKey]
	tmcGroupCurrent    tmcGroupKey
	tmcGroupHasCurrent bool
	tmcMG              tmcPendingMG

	// Group 10A staging (type10.go).
	ptynStage   [2]Staged[ptynHalf]
	ptynValid   [2]bool
	ptynChars   [2]ptynHalf
	ptynABKnown bool
}

// NewDecoder creates an empty decoder. isRBDS selects the RBDS (North
// American, NRSC-4) PTY name table over the default RDS table for
// GetPTYStr (spec.md §6 "create(is_rbds)").
func NewDecoder(isRBDS bool) *Decoder {
	d := &Decoder{IsRBDS: isRBDS}
	d.AF.Freqs = NewFixedSlice[uint32](MaxAF)
	d.ODA.Entries = NewFixedSlice[OdaEntry](MaxODA)
	return d
}

// Reset clears all staging and public state. When preserveStatistics is
// true, Stats survives the reset byte-for-byte; the is_rbds selector
// always survives (spec.md §5).
func (d *Decoder) Reset(preserveStatistics bool) {
	isRBDS := d.IsRBDS

	var stats RdsStatistics
	if preserveStatistics {
		stats = d.Stats
	}

	*d = Decoder{IsRBDS: isRBDS, Stats: stats}
	d.AF.Freqs = NewFixedSlice[uint32](MaxAF)
	d.ODA.Entries = NewFixedSlice[OdaEntry](MaxODA)
}

// GetGroup returns the most recently completed group (spec.md §6). The
// returned value is a copy; it is not invalidated by subsequent calls.
func (d *Decoder) GetGroup() Group {
	return d.lastGroup
}

// assembleGroup runs once all four blocks of a group have arrived in
// order (spec.md §4.1's "dispatch" step): it decodes the common block
// A/B fields, applies the PI/PTY "second reception" rule, routes the
// group to its type-specific decoder, and returns the union of every
// field that changed.
func (d *Decoder) assembleGroup() FieldMask {
	var g Group
	g.PI = d.rawA
	decodeCommonB(&g, d.rawB)
	decodeCD(&g, d.rawC, d.rawD)

	var mask FieldMask

	if v, ok := d.piStage.Observe(g.PI, d.PI, d.ValidFields.Has(FieldPI)); ok {
		if v != d.PI || !d.ValidFields.Has(FieldPI) {
			d.PI = v
			mask |= FieldPI
		}
		d.ValidFields = d.ValidFields.Set(FieldPI)
	}

	if g.TP != d.TP || !d.ValidFields.Has(FieldTP) {
		d.TP = g.TP
		mask |= FieldTP
	}
	d.ValidFields = d.ValidFields.Set(FieldTP)

	if v, ok := d.ptyStage.Observe(g.PTY, d.PTY, d.ValidFields.Has(FieldPTY)); ok {
		if v != d.PTY || !d.ValidFields.Has(FieldPTY) {
			d.PTY = v
			mask |= FieldPTY
		}
		d.ValidFields = d.ValidFields.Set(FieldPTY)
	}

	switch g.GroupID {
	case 0:
		mask |= d.decodeType0(&g)
	case 1:
		mask |= d.decodeType1(&g)
	case 2:
		mask |= d.decodeType2(&g)
	case 3:
		mask |= d.decodeType3(&g)
	case 4:
		mask |= d.decodeType4(&g)
	case 8:
		mask |= d.decodeType8(&g)
	case 10:
		mask |= d.decodeType10(&g)
	default:
		logger().Debug("no decoder for group type", "group_id", g.GroupID, "version", g.Version)
	}

	d.Stats.GroupTypeCount[g.GroupID]++
	if g.Version == VersionA {
		d.Stats.GroupVersionACount[g.GroupID]++
	} else {
		d.Stats.GroupVersionBCount[g.GroupID]++
	}

	d.lastGroup = g
	return mask
}
