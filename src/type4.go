package rds

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

/*------------------------------------------------------------------
 *
 * Purpose:	Group 4A — Clock-Time (spec.md §4.7).
 *
 *------------------------------------------------------------------*/

// ctStrftime is the one place this decoder renders a timestamp back to
// text, formatted via github.com/lestrrat-go/strftime rather than a
// hand-rolled time.Format layout string.
var ctStrftime = strftime.MustNew("%Y-%m-%d %H:%M:%S %z")

// FormatCT renders t using the package's standard clock-time layout.
func FormatCT(t time.Time) string {
	out := new(fmtWriter)
	_ = ctStrftime.Format(out, t)
	return string(out.buf)
}

type fmtWriter struct {
	buf []byte
}

func (w *fmtWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func (d *Decoder) decodeType4(g *Group) FieldMask {
	if g.Version != VersionA {
		return 0
	}

	mjd := (uint32(g.DataBLsb&0x03) << 15) | uint32(g.BlockC&0x7FFF)

	v, ok := d.mjdStage.Observe(mjd, d.lastMJD, d.ValidFields.Has(FieldTime))
	if !ok {
		return 0
	}
	d.lastMJD = v

	hourHigh := (g.BlockC >> 15) & 0x01
	hourLow := (g.BlockD >> 12) & 0x0F
	utcHour := uint32(hourHigh)<<4 | uint32(hourLow)
	utcMinute := uint32(g.BlockD>>6) & 0x3F

	offsetRaw := uint32(g.BlockD) & 0x3F
	offsetHalfHours := int(offsetRaw & 0x1F)
	if offsetRaw&0x20 != 0 {
		offsetHalfHours = -offsetHalfHours
	}

	civil := mjdToCivilDate(v)
	offsetSeconds := offsetHalfHours * 1800

	// Build the absolute instant from the broadcast UTC hour/minute alone,
	// then redisplay it in a fixed zone carrying the broadcast offset —
	// the zone conversion alone produces the local civil hour/minute
	// (local = UTC + offset); adding the offset to the instant as well
	// would apply it twice.
	t := time.Date(civil.year, time.Month(civil.month), civil.day,
		int(utcHour), int(utcMinute), 0, 0, time.UTC)
	t = t.In(time.FixedZone(fmt.Sprintf("UTC%+d:%02d", offsetSeconds/3600, abs(offsetSeconds/60)%60), offsetSeconds))

	d.Time = t
	d.ValidFields = d.ValidFields.Set(FieldTime)
	return FieldTime
}

type civilDate struct {
	year, month, day int
}

// mjdToCivilDate implements the IEC 62106 Annex G algorithm of
// spec.md §4.7.
func mjdToCivilDate(mjd uint32) civilDate {
	m := float64(mjd)

	y := int((m - 15078.2) / 365.25)
	mo := int((m - 14956.1 - float64(int(float64(y)*365.25))) / 30.6001)
	day := int(m) - 14956 - int(float64(y)*365.25) - int(float64(mo)*30.6001)

	k := 0
	if mo == 14 || mo == 15 {
		k = 1
	}

	year := 1900 + y + k
	month := mo - 1 - 12*k

	return civilDate{year: year, month: month, day: day}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
