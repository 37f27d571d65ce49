package ticket

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/nazotools/gen5search/lcg64"
	"github.com/nazotools/gen5search/seedtypes"
)

func TestEncodeDecodeRoundTripsSeedOrigin(t *testing.T) {
	want := Ticket{
		Ds: seedtypes.DsConfig{
			Mac:      [6]byte{0x00, 0x1A, 0x2B, 0x3C, 0x4D, 0x5E},
			Hardware: seedtypes.HardwareDsLite,
			Version:  seedtypes.VersionBlack2,
			Region:   seedtypes.RegionUsa,
		},
		Origin: seedtypes.SeedOrigin{
			Kind: seedtypes.OriginSeed,
			Lcg:  lcg64.New(0x1C40524D87E80030),
			Mt:   0xDEADBEEF,
		},
	}

	encoded := Encode(want)
	got, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got.Ds != want.Ds {
		t.Errorf("Ds mismatch - got %v, want %v", spew.Sdump(got.Ds), spew.Sdump(want.Ds))
	}
	if got.Origin.Kind != want.Origin.Kind || got.Origin.Lcg != want.Origin.Lcg || got.Origin.Mt != want.Origin.Mt {
		t.Errorf("Origin mismatch - got %v, want %v", spew.Sdump(got.Origin), spew.Sdump(want.Origin))
	}
}

func TestEncodeDecodeRoundTripsStartupOrigin(t *testing.T) {
	want := Ticket{
		Ds: seedtypes.DsConfig{
			Hardware: seedtypes.HardwareDs,
			Version:  seedtypes.VersionWhite,
			Region:   seedtypes.RegionJpn,
		},
		Origin: seedtypes.SeedOrigin{
			Kind:     seedtypes.OriginStartup,
			Lcg:      lcg64.New(0x77777),
			Mt:       12345,
			Datetime: seedtypes.Datetime{Year: 2011, Month: 3, Day: 6, Hour: 9, Minute: 41, Second: 0},
			Cond:     seedtypes.StartupCondition{Timer0: 0x0C79, VCount: 0x60, KeyCode: seedtypes.KeyCode(0)},
		},
	}

	encoded := Encode(want)
	got, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got.Origin.Kind != seedtypes.OriginStartup {
		t.Fatalf("Origin.Kind = %v, want OriginStartup", got.Origin.Kind)
	}
	if got.Origin.Datetime != want.Origin.Datetime {
		t.Errorf("Datetime = %+v, want %+v", got.Origin.Datetime, want.Origin.Datetime)
	}
	if got.Origin.Cond != want.Origin.Cond {
		t.Errorf("Cond = %+v, want %+v", got.Origin.Cond, want.Origin.Cond)
	}
}

func TestDecodeRejectsCorruptedTicket(t *testing.T) {
	ticket := Ticket{Origin: seedtypes.SeedOrigin{Kind: seedtypes.OriginSeed, Lcg: lcg64.New(1), Mt: 2}}
	encoded := Encode(ticket)

	runes := []rune(encoded)
	mid := len(runes) / 2
	if runes[mid] == 'a' {
		runes[mid] = 'b'
	} else {
		runes[mid] = 'a'
	}
	corrupted := string(runes)

	if _, err := Decode(corrupted); err == nil {
		t.Errorf("Decode(corrupted) = nil error, want ErrChecksumMismatch or ErrMalformedTicket")
	}
}

func TestDecodeRejectsTruncatedTicket(t *testing.T) {
	ticket := Ticket{Origin: seedtypes.SeedOrigin{Kind: seedtypes.OriginSeed, Lcg: lcg64.New(1), Mt: 2}}
	encoded := Encode(ticket)

	if _, err := Decode(encoded[:len(encoded)-4]); err != ErrMalformedTicket && err != ErrChecksumMismatch {
		t.Errorf("Decode(truncated) err = %v, want ErrMalformedTicket or ErrChecksumMismatch", err)
	}
}
