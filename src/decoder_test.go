package rds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPIAcceptsOnSecondIdenticalReception(t *testing.T) {
	d := NewDecoder(false)

	mask1 := feedGroup(d, 0x1234, 0, 0, 0)
	assert.False(t, mask1.Has(FieldPI))

	mask2 := feedGroup(d, 0x1234, 0, 0, 0)
	assert.True(t, mask2.Has(FieldPI))
	assert.Equal(t, uint16(0x1234), d.PI)
}

func TestPIRejectsNoisyAlternation(t *testing.T) {
	d := NewDecoder(false)

	feedGroup(d, 0x1234, 0, 0, 0)
	feedGroup(d, 0x5678, 0, 0, 0)
	feedGroup(d, 0x1234, 0, 0, 0)

	assert.False(t, d.ValidFields.Has(FieldPI))
	assert.Equal(t, uint16(0), d.PI)
}

func TestTPAcceptsImmediately(t *testing.T) {
	d := NewDecoder(false)

	b := mkBlockB(0, VersionA, true, 0, 0)
	mask := feedGroup(d, 0x1234, b, 0, 0)

	assert.True(t, mask.Has(FieldTP))
	assert.True(t, d.TP)
}

func TestResetPreservesStatisticsWhenAsked(t *testing.T) {
	d := NewDecoder(true)
	feedGroup(d, 0x1234, 0, 0, 0)
	feedGroup(d, 0x1234, 0, 0, 0)

	statsBefore := d.Stats
	d.Reset(true)
	assert.Equal(t, statsBefore, d.Stats)
	assert.True(t, d.IsRBDS)
	assert.Equal(t, uint16(0), d.PI)
}

func TestResetZeroesStatisticsWhenNotPreserved(t *testing.T) {
	d := NewDecoder(false)
	feedGroup(d, 0x1234, 0, 0, 0)

	d.Reset(false)
	assert.Equal(t, RdsStatistics{}, d.Stats)
}

func TestGetGroupReturnsLastAssembled(t *testing.T) {
	d := NewDecoder(false)
	b := mkBlockB(7, VersionA, false, 4, 0)
	feedGroup(d, 0xABCD, b, 0, 0)

	g := d.GetGroup()
	assert.Equal(t, uint16(0xABCD), g.PI)
	assert.Equal(t, uint8(7), g.GroupID)
	assert.Equal(t, uint8(4), g.PTY)
}
