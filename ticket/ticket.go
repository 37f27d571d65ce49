// Package ticket implements a base58check codec for sharing a resolved
// seed's origin between an engine invocation that found it and a later one
// that wants to generate from it directly (spec.md §6 SeedInput.Seeds;
// SPEC_FULL.md §3 ticket.Ticket, C16), grounded in the teacher's WIF
// codec (exccutil/wif.go, dcrutil/wif.go): a version byte, a fixed-width
// payload, and a checksum suffix, all base58-encoded.
package ticket

import (
	"crypto/sha256"
	"errors"

	"github.com/EXCCoin/base58"
	"github.com/nazotools/gen5search/lcg64"
	"github.com/nazotools/gen5search/seedtypes"
)

// ErrMalformedTicket signals a ticket string that does not decode to the
// expected byte layout — wrong length, unrecognized version byte, or
// unrecognized origin-kind byte.
var ErrMalformedTicket = errors.New("ticket: malformed ticket string")

// ErrChecksumMismatch signals a ticket whose trailing four bytes do not
// match the double-SHA256 checksum of the payload that precedes them —
// the same corruption guard the teacher's WIF codec applies.
var ErrChecksumMismatch = errors.New("ticket: checksum mismatch")

const (
	ticketVersion byte = 1
	cksumLen           = 4

	payloadLenSeed    = 1 + 6 + 1 + 1 + 1 + 1 + 8 + 4       // version+mac+hw+ver+region+kind+lcg+mt
	payloadLenStartup = payloadLenSeed + 7 + 2 + 1 + 4      // +datetime(7)+timer0(2)+vcount(1)+keycode(4)
)

func doubleSha256(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

func putU16(b []byte, v uint16) { b[0] = byte(v >> 8); b[1] = byte(v) }
func getU16(b []byte) uint16    { return uint16(b[0])<<8 | uint16(b[1]) }

func putU32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
func getU32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func putU64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> uint(56-8*i))
	}
}
func getU64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// Ticket pairs the hardware descriptor used to derive a seed with that
// seed's full provenance, the minimal glue spec.md §6 implies but never
// specifies a mechanism for (SPEC_FULL.md §6).
type Ticket struct {
	Ds     seedtypes.DsConfig
	Origin seedtypes.SeedOrigin
}

// Encode renders a Ticket as a base58check string.
func Encode(t Ticket) string {
	payloadLen := payloadLenSeed
	if t.Origin.Kind == seedtypes.OriginStartup {
		payloadLen = payloadLenStartup
	}

	buf := make([]byte, 0, payloadLen+cksumLen)
	buf = append(buf, ticketVersion)
	buf = append(buf, t.Ds.Mac[:]...)
	buf = append(buf, byte(t.Ds.Hardware), byte(t.Ds.Version), byte(t.Ds.Region))
	buf = append(buf, byte(t.Origin.Kind))

	lcgBytes := make([]byte, 8)
	putU64(lcgBytes, t.Origin.Lcg.Raw())
	buf = append(buf, lcgBytes...)

	mtBytes := make([]byte, 4)
	putU32(mtBytes, t.Origin.Mt)
	buf = append(buf, mtBytes...)

	if t.Origin.Kind == seedtypes.OriginStartup {
		yearBytes := make([]byte, 2)
		putU16(yearBytes, t.Origin.Datetime.Year)
		buf = append(buf, yearBytes...)
		buf = append(buf, t.Origin.Datetime.Month, t.Origin.Datetime.Day,
			t.Origin.Datetime.Hour, t.Origin.Datetime.Minute, t.Origin.Datetime.Second)

		timer0Bytes := make([]byte, 2)
		putU16(timer0Bytes, t.Origin.Cond.Timer0)
		buf = append(buf, timer0Bytes...)
		buf = append(buf, t.Origin.Cond.VCount)

		keyCodeBytes := make([]byte, 4)
		putU32(keyCodeBytes, t.Origin.Cond.KeyCode)
		buf = append(buf, keyCodeBytes...)
	}

	cksum := doubleSha256(buf)
	buf = append(buf, cksum[:cksumLen]...)
	return base58.Encode(buf)
}

// Decode parses a base58check ticket string, rejecting a corrupted or
// malformed one rather than attempting to repair it.
func Decode(s string) (Ticket, error) {
	decoded := base58.Decode(s)
	n := len(decoded)
	if n != payloadLenSeed+cksumLen && n != payloadLenStartup+cksumLen {
		return Ticket{}, ErrMalformedTicket
	}

	payload := decoded[:n-cksumLen]
	wantCksum := decoded[n-cksumLen:]
	gotCksum := doubleSha256(payload)
	for i := 0; i < cksumLen; i++ {
		if gotCksum[i] != wantCksum[i] {
			return Ticket{}, ErrChecksumMismatch
		}
	}

	if payload[0] != ticketVersion {
		return Ticket{}, ErrMalformedTicket
	}

	var t Ticket
	copy(t.Ds.Mac[:], payload[1:7])
	t.Ds.Hardware = seedtypes.Hardware(payload[7])
	t.Ds.Version = seedtypes.Version(payload[8])
	t.Ds.Region = seedtypes.Region(payload[9])

	kind := seedtypes.OriginKind(payload[10])
	if kind != seedtypes.OriginSeed && kind != seedtypes.OriginStartup {
		return Ticket{}, ErrMalformedTicket
	}
	t.Origin.Kind = kind
	t.Origin.Lcg = lcg64.New(getU64(payload[11:19]))
	t.Origin.Mt = getU32(payload[19:23])

	if kind == seedtypes.OriginStartup {
		if n != payloadLenStartup+cksumLen {
			return Ticket{}, ErrMalformedTicket
		}
		t.Origin.Datetime.Year = getU16(payload[23:25])
		t.Origin.Datetime.Month = payload[25]
		t.Origin.Datetime.Day = payload[26]
		t.Origin.Datetime.Hour = payload[27]
		t.Origin.Datetime.Minute = payload[28]
		t.Origin.Datetime.Second = payload[29]
		t.Origin.Cond.Timer0 = getU16(payload[30:32])
		t.Origin.Cond.VCount = payload[32]
		t.Origin.Cond.KeyCode = getU32(payload[33:37])
	} else if n != payloadLenSeed+cksumLen {
		return Ticket{}, ErrMalformedTicket
	}

	return t, nil
}
