// Package dsconfig assembles the byte-exact 16-word SHA-1 message (spec.md
// §4.4) from a DsConfig hardware descriptor, startup condition, and
// datetime, and derives date/time codes from a Datetime.
package dsconfig

import (
	"github.com/nazotools/gen5search/lcg64"
	"github.com/nazotools/gen5search/rngtime"
	"github.com/nazotools/gen5search/seedtypes"
	"github.com/nazotools/gen5search/shaengine"
)

func byteSwap32(v uint32) uint32 {
	return (v>>24)&0xFF | (v>>8)&0xFF00 | (v<<8)&0xFF0000 | (v << 24)
}

// DateCode packs a Datetime's date portion into the 32-bit code consumed by
// SHA-1 message word 8: BCD(year-2000)<<24 | BCD(month)<<16 | BCD(day)<<8 |
// weekday.
func DateCode(d seedtypes.Datetime) uint32 {
	yearBcd := rngtime.BCD(uint8(d.Year - 2000))
	monthBcd := rngtime.BCD(d.Month)
	dayBcd := rngtime.BCD(d.Day)
	weekday := rngtime.Weekday(d)
	return uint32(yearBcd)<<24 | uint32(monthBcd)<<16 | uint32(dayBcd)<<8 | uint32(weekday)
}

// TimeCode packs a Datetime's time portion into the 32-bit code consumed by
// SHA-1 message word 9: pm_flag<<30 | BCD(hour)<<24 | BCD(minute)<<16 |
// BCD(second)<<8. pm_flag is 1 only for DS/DS Lite hardware at hour >= 12.
func TimeCode(d seedtypes.Datetime, hw seedtypes.Hardware) uint32 {
	hour := d.Hour
	var pmFlag uint32
	if (hw == seedtypes.HardwareDs || hw == seedtypes.HardwareDsLite) && hour >= 12 {
		pmFlag = 1
	}
	hourBcd := rngtime.BCD(hour)
	minuteBcd := rngtime.BCD(d.Minute)
	secondBcd := rngtime.BCD(d.Second)
	return pmFlag<<30 | uint32(hourBcd)<<24 | uint32(minuteBcd)<<16 | uint32(secondBcd)<<8
}

// BuildMessage assembles the 16-word SHA-1 input block for a given
// DsConfig, StartupCondition, and Datetime, following spec.md §4.4's layout
// exactly.
func BuildMessage(ds seedtypes.DsConfig, cond seedtypes.StartupCondition, dt seedtypes.Datetime) shaengine.Block {
	var b shaengine.Block

	nazo := Nazo(ds.Version, ds.Region)
	for i := 0; i < 5; i++ {
		b[i] = byteSwap32(nazo[i])
	}

	b[5] = byteSwap32(uint32(cond.VCount)<<16 | uint32(cond.Timer0))
	b[6] = uint32(ds.Mac[4])<<8 | uint32(ds.Mac[5])

	macLow := uint32(ds.Mac[0]) | uint32(ds.Mac[1])<<8 | uint32(ds.Mac[2])<<16 | uint32(ds.Mac[3])<<24
	b[7] = byteSwap32(macLow ^ 0x06000000 ^ ds.Hardware.Frame())

	b[8] = DateCode(dt)
	b[9] = TimeCode(dt, ds.Hardware)

	b[10] = 0
	b[11] = 0
	b[12] = byteSwap32(cond.KeyCode)
	b[13] = 0x80000000
	b[14] = 0
	b[15] = 0x000001A0

	return b
}

// DeriveSeed hashes an assembled message and returns the resulting 64-bit
// LCG seed and the MT seed derived from it (one LCG step past the SHA-1
// result, per spec.md §4.3).
func DeriveSeed(ds seedtypes.DsConfig, cond seedtypes.StartupCondition, dt seedtypes.Datetime) (lcgSeed uint64, mtSeed uint32) {
	block := BuildMessage(ds, cond, dt)
	digest := shaengine.Hash(block)
	seed := lcg64.New(digest.LcgSeed())
	return seed.Raw(), seed.ToMtSeed()
}
