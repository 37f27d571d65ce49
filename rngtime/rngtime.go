// Package rngtime implements the enumeration utilities of spec.md §4.4/§4.5/
// §4.9: date-second arithmetic over the proleptic Gregorian calendar, BCD
// encoding, Zeller's-congruence weekday, and key-mask combinatorics.
package rngtime

import "github.com/nazotools/gen5search/seedtypes"

// BCD packs a two-digit decimal value (0..99) into one byte as binary-coded
// decimal.
func BCD(v uint8) uint8 {
	return (v/10)<<4 | (v % 10)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysInMonthOf(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// Weekday returns the day-of-week (0 = Sunday) for a Datetime's date part
// via Zeller's congruence, independent of time.Time to keep the calendar
// logic self-contained and auditable against spec.md.
func Weekday(d seedtypes.Datetime) uint8 {
	y := int(d.Year)
	m := int(d.Month)
	q := int(d.Day)
	if m < 3 {
		m += 12
		y--
	}
	k := y % 100
	j := y / 100
	h := (q + (13*(m+1))/5 + k + k/4 + j/4 + 5*j) % 7
	// Zeller's congruence yields 0=Saturday; rotate so 0=Sunday.
	return uint8((h + 6) % 7)
}

// daysBeforeYear returns the number of days from 2000-01-01 to the start
// of the given year.
func daysBeforeYear(year int) int64 {
	days := int64(0)
	if year >= 2000 {
		for y := 2000; y < year; y++ {
			days += int64(365)
			if isLeapYear(y) {
				days++
			}
		}
	} else {
		for y := year; y < 2000; y++ {
			days -= int64(365)
			if isLeapYear(y) {
				days--
			}
		}
	}
	return days
}

// SecondsSinceEpoch converts a Datetime into a signed second offset from
// 2000-01-01 00:00:00, the enumeration engine's epoch.
func SecondsSinceEpoch(d seedtypes.Datetime) int64 {
	days := daysBeforeYear(int(d.Year))
	for m := 1; m < int(d.Month); m++ {
		days += int64(daysInMonthOf(int(d.Year), m))
	}
	days += int64(d.Day) - 1
	seconds := days*86400 + int64(d.Hour)*3600 + int64(d.Minute)*60 + int64(d.Second)
	return seconds
}

// DatetimeFromSeconds is the inverse of SecondsSinceEpoch: it reconstructs a
// Datetime from a second offset relative to the 2000-01-01 00:00:00 epoch.
func DatetimeFromSeconds(seconds int64) seedtypes.Datetime {
	secOfDay := seconds % 86400
	days := seconds / 86400
	if secOfDay < 0 {
		secOfDay += 86400
		days--
	}

	year := 2000
	for {
		yearDays := int64(365)
		if isLeapYear(year) {
			yearDays = 366
		}
		if days >= yearDays {
			days -= yearDays
			year++
		} else if days < 0 {
			year--
			yearDays = int64(365)
			if isLeapYear(year) {
				yearDays = 366
			}
			days += yearDays
		} else {
			break
		}
	}

	month := 1
	for {
		dim := int64(daysInMonthOf(year, month))
		if days >= dim {
			days -= dim
			month++
		} else {
			break
		}
	}

	return seedtypes.Datetime{
		Year:   uint16(year),
		Month:  uint8(month),
		Day:    uint8(days + 1),
		Hour:   uint8(secOfDay / 3600),
		Minute: uint8((secOfDay % 3600) / 60),
		Second: uint8(secOfDay % 60),
	}
}

// AddSecond returns the Datetime one second after d, advancing via the
// second-offset representation so calendar rollovers (month/year ends) are
// handled uniformly.
func AddSecond(d seedtypes.Datetime) seedtypes.Datetime {
	return DatetimeFromSeconds(SecondsSinceEpoch(d) + 1)
}

// EnumerateRange walks every second from start to end inclusive, returning
// one Datetime per second. Callers that only want seconds inside a daily
// time window should additionally consult a TimeOfDayTable; this function
// enumerates the full calendar span.
func EnumerateRange(start, end seedtypes.Datetime) []seedtypes.Datetime {
	startSec := SecondsSinceEpoch(start)
	endSec := SecondsSinceEpoch(end)
	if endSec < startSec {
		return nil
	}
	out := make([]seedtypes.Datetime, 0, endSec-startSec+1)
	d := start
	for sec := startSec; sec <= endSec; sec++ {
		out = append(out, d)
		d = AddSecond(d)
	}
	return out
}
