package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPTYNAssemblesBothSegmentsOnSecondReception(t *testing.T) {
	d := NewDecoder(false)

	seg0B := mkBlockB(10, VersionA, false, 0, 0) // ab=0, segment=0
	seg0C := mkBlockC('A', 'B')
	seg0D := mkBlockD('C', 'D')

	mask1 := feedGroup(d, 0x1234, seg0B, seg0C, seg0D)
	assert.False(t, mask1.Has(FieldPTYN))

	mask2 := feedGroup(d, 0x1234, seg0B, seg0C, seg0D)
	assert.False(t, mask2.Has(FieldPTYN)) // segment 0 valid, segment 1 still unknown

	seg1B := mkBlockB(10, VersionA, false, 0, 1) // ab=0, segment=1
	seg1C := mkBlockC('E', 'F')
	seg1D := mkBlockD('G', 'H')

	mask3 := feedGroup(d, 0x1234, seg1B, seg1C, seg1D)
	assert.False(t, mask3.Has(FieldPTYN))

	mask4 := feedGroup(d, 0x1234, seg1B, seg1C, seg1D)
	assert.True(t, mask4.Has(FieldPTYN))
	assert.Equal(t, "ABCDEFGH", d.PTYN)
}

func TestPTYNABToggleClearsBothHalves(t *testing.T) {
	d := NewDecoder(false)

	seg0B := mkBlockB(10, VersionA, false, 0, 0)
	seg0C := mkBlockC('A', 'B')
	seg0D := mkBlockD('C', 'D')
	feedGroup(d, 0x1234, seg0B, seg0C, seg0D)
	feedGroup(d, 0x1234, seg0B, seg0C, seg0D)

	seg1B := mkBlockB(10, VersionA, false, 0, 1)
	seg1C := mkBlockC('E', 'F')
	seg1D := mkBlockD('G', 'H')
	feedGroup(d, 0x1234, seg1B, seg1C, seg1D)
	feedGroup(d, 0x1234, seg1B, seg1C, seg1D)

	assert.Equal(t, "ABCDEFGH", d.PTYN)

	// A flipped AB flag invalidates both halves immediately, even
	// though this is the first group received with the new flag.
	toggledB := mkBlockB(10, VersionA, false, 0, 1<<4)
	toggledC := mkBlockC('Q', 'R')
	toggledD := mkBlockD('S', 'T')

	mask := feedGroup(d, 0x1234, toggledB, toggledC, toggledD)
	assert.True(t, mask.Has(FieldPTYN))
	assert.Equal(t, "", d.PTYN)
	assert.False(t, d.ValidFields.Has(FieldPTYN))
}

func TestPTYNIgnoredOnVersionB(t *testing.T) {
	d := NewDecoder(false)

	b := mkBlockB(10, VersionB, false, 0, 0)
	c := mkBlockC('A', 'B')
	dd := mkBlockD('C', 'D')

	mask1 := feedGroup(d, 0x1234, b, c, dd)
	mask2 := feedGroup(d, 0x1234, b, c, dd)

	assert.False(t, mask1.Has(FieldPTYN))
	assert.False(t, mask2.Has(FieldPTYN))
}
