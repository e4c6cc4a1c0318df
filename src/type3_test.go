package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestODATableRecordsNewGroupIdentity(t *testing.T) {
	d := NewDecoder(false)

	// version='A'(0), group_id=5 -> data_b_lsb = 5<<1 | 0
	b := mkBlockB(3, VersionA, false, 0, 5<<1)
	mask := feedGroup(d, 0x1234, b, 0, 0x1234)

	assert.True(t, mask.Has(FieldODA))
	entries := d.ODA.Entries.Items()
	assert.Len(t, entries, 1)
	assert.Equal(t, uint8(5), entries[0].GroupID)
	assert.Equal(t, VersionA, entries[0].Version)
	assert.Equal(t, uint16(0x1234), entries[0].AID)
}

func TestODATableUpdatesAIDForExistingIdentity(t *testing.T) {
	d := NewDecoder(false)
	b := mkBlockB(3, VersionA, false, 0, 5<<1)

	feedGroup(d, 0x1234, b, 0, 0x1234)
	mask := feedGroup(d, 0x1234, b, 0, 0x5678)

	assert.True(t, mask.Has(FieldODA))
	entries := d.ODA.Entries.Items()
	assert.Len(t, entries, 1)
	assert.Equal(t, uint16(0x5678), entries[0].AID)
}

func TestODATableIgnoresRepeatOfSameAID(t *testing.T) {
	d := NewDecoder(false)
	b := mkBlockB(3, VersionA, false, 0, 5<<1)

	feedGroup(d, 0x1234, b, 0, 0x1234)
	mask := feedGroup(d, 0x1234, b, 0, 0x1234)

	assert.False(t, mask.Has(FieldODA))
	assert.Len(t, d.ODA.Entries.Items(), 1)
}

func TestODAAIDTriggersTMCSystemDecode(t *testing.T) {
	d := NewDecoder(false)

	// variant=0: ltn=12, afi=true, enhanced_mode=false, mgs=0x0A.
	b := mkBlockB(3, VersionA, false, 0, 5<<1)
	c := mkBlockC(12, 0x2A) // afi bit5 set, mgs low nibble = 0xA
	mask1 := feedGroup(d, 0x1234, b, c, tmcAIDLocation)
	assert.False(t, mask1.Has(FieldTMCSys))

	mask2 := feedGroup(d, 0x1234, b, c, tmcAIDLocation)
	assert.True(t, mask2.Has(FieldTMCSys))
	assert.Equal(t, uint8(12), d.TMC.LTN)
	assert.True(t, d.TMC.AFI)
	assert.False(t, d.TMC.EnhancedMode)
	assert.Equal(t, uint8(0x0A), d.TMC.MGS)
	assert.True(t, d.TMC.MGSInterRoad())
	assert.False(t, d.TMC.MGSNational())
	assert.True(t, d.TMC.MGSRegional())
	assert.False(t, d.TMC.MGSUrban())

	mask3 := feedGroup(d, 0x1234, b, c, tmcAIDLocation)
	assert.False(t, mask3.Has(FieldTMCSys))
}

func TestTMCSystemVariant1GAPAndSID(t *testing.T) {
	d := NewDecoder(false)

	b := mkBlockB(3, VersionA, false, 0, 5<<1)
	// variant=1 in the top 2 bits of C-MSB (0b01______), gap=2 in bits
	// 4-5 (0b__10____), sid high nibble=0x7 in bits 0-3; sid low 2 bits
	// =0b10 in the top 2 bits of C-LSB.
	c := mkBlockC(0x67, 0x80)
	feedGroup(d, 0x1234, b, c, tmcAIDLocation)
	feedGroup(d, 0x1234, b, c, tmcAIDLocation)

	assert.Equal(t, uint8(2), d.TMC.GAP)
	assert.Equal(t, uint8(0x1E), d.TMC.SID)
}

func TestTMCSystemEnhancedModeExposesTATWTD(t *testing.T) {
	d := NewDecoder(false)
	b := mkBlockB(3, VersionA, false, 0, 5<<1)

	enhC := mkBlockC(0x10, 0x10) // variant=0, enhanced_mode bit set
	feedGroup(d, 0x1234, b, enhC, tmcAIDLocation)
	feedGroup(d, 0x1234, b, enhC, tmcAIDLocation)
	assert.True(t, d.TMC.EnhancedMode)

	// variant=1 (top 2 bits of C-MSB); C-LSB packs ta=2 (bits4-5),
	// tw=3 (bits2-3), td=2 (bits0-1).
	v1C := mkBlockC(0x40, 0x2E)
	feedGroup(d, 0x1234, b, v1C, tmcAIDLocation)
	feedGroup(d, 0x1234, b, v1C, tmcAIDLocation)

	assert.Equal(t, uint8(2), d.TMC.TA)
	assert.Equal(t, uint8(3), d.TMC.TW)
	assert.Equal(t, uint8(2), d.TMC.TD)
}
