package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroup1DecodesECCOnVariant0(t *testing.T) {
	d := NewDecoder(false)

	b := mkBlockB(1, VersionA, false, 0, 0)
	c := mkBlockC(0x00, 0xA5) // variant=0, ecc=0xA5

	mask1 := feedGroup(d, 0x1234, b, c, 0)
	assert.False(t, mask1.Has(FieldECC))

	mask2 := feedGroup(d, 0x1234, b, c, 0)
	assert.True(t, mask2.Has(FieldECC))
	assert.Equal(t, uint8(0xA5), d.ECC)

	mask3 := feedGroup(d, 0x1234, b, c, 0)
	assert.False(t, mask3.Has(FieldECC))
}

func TestGroup1DecodesLCOnVariant3(t *testing.T) {
	d := NewDecoder(false)

	b := mkBlockB(1, VersionA, false, 0, 0)
	c := mkBlockC(0x30, 0x07) // variant=3, lc=0x07

	mask1 := feedGroup(d, 0x1234, b, c, 0)
	assert.False(t, mask1.Has(FieldLC))

	mask2 := feedGroup(d, 0x1234, b, c, 0)
	assert.True(t, mask2.Has(FieldLC))
	assert.Equal(t, uint8(0x07), d.LC)
}

func TestGroup1IgnoresOtherVariants(t *testing.T) {
	d := NewDecoder(false)

	b := mkBlockB(1, VersionA, false, 0, 0)
	c := mkBlockC(0x10, 0x42) // variant=1, unhandled

	mask1 := feedGroup(d, 0x1234, b, c, 0)
	mask2 := feedGroup(d, 0x1234, b, c, 0)

	assert.False(t, mask1.Has(FieldECC))
	assert.False(t, mask1.Has(FieldLC))
	assert.False(t, mask2.Has(FieldECC))
	assert.False(t, mask2.Has(FieldLC))
}

func TestGroup1IgnoredOnVersionB(t *testing.T) {
	d := NewDecoder(false)

	b := mkBlockB(1, VersionB, false, 0, 0)
	c := mkBlockC(0x00, 0xA5)

	mask1 := feedGroup(d, 0x1234, b, c, 0)
	mask2 := feedGroup(d, 0x1234, b, c, 0)

	assert.False(t, mask1.Has(FieldECC))
	assert.False(t, mask2.Has(FieldECC))
}
