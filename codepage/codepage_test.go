package codepage

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"github.com/unkn0wn-root/hexview/internal/errdef"
)

func TestBuiltinTables(t *testing.T) {
	cases := []struct {
		name string
		cp   *Codepage
		in   byte
		want rune
	}{
		{"cp850 letter", CP850(), 0x41, 'A'},
		{"cp850 accent", CP850(), 0x82, 'é'},
		{"cp850 nul", CP850(), 0x00, Placeholder},
		{"cp850 del", CP850(), 0x7F, Placeholder},
		{"cp850 nbsp", CP850(), 0xFF, Placeholder},
		{"cp437 shade", CP437(), 0xB0, '░'},
		{"latin1 accent", Latin1(), 0xE9, 'é'},
		{"latin1 c1 control", Latin1(), 0x85, Placeholder},
		{"latin1 soft hyphen", Latin1(), 0xAD, Placeholder},
		{"windows-1252 euro", Windows1252(), 0x80, '€'},
		{"ascii tilde", ASCII(), 0x7E, '~'},
		{"ascii high", ASCII(), 0x80, Placeholder},
		{"space", CP850(), 0x20, ' '},
		{"tab", CP850(), 0x09, Placeholder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AsChar(tc.in, tc.cp); got != tc.want {
				t.Fatalf("expected %q for 0x%02X, got %q", tc.want, tc.in, got)
			}
		})
	}
}

func TestNilCodepageUsesDefault(t *testing.T) {
	var cp *Codepage
	if got := cp.Char('@'); got != '@' {
		t.Fatalf("expected '@', got %q", got)
	}
	if cp.Name() != "cp850" {
		t.Fatalf("expected cp850 default, got %q", cp.Name())
	}
}

func TestEveryEntryIsOneCell(t *testing.T) {
	for _, cp := range []*Codepage{CP850(), CP437(), Latin1(), Windows1252(), ASCII()} {
		for i := 0; i < tableSize; i++ {
			r := cp.Char(byte(i))
			if w := narrow.RuneWidth(r); w != 1 {
				t.Fatalf("%s: byte 0x%02X maps to %q with width %d", cp.Name(), i, r, w)
			}
		}
	}
}

func TestNewNormalizesTable(t *testing.T) {
	var table [tableSize]rune
	for i := range table {
		table[i] = rune(i)
	}
	table[0x41] = '\u4e2d'
	table[0x42] = '\u0301'
	cp := New("custom", table)
	if cp.Char(0x41) != Placeholder {
		t.Fatalf("expected wide rune to be replaced, got %q", cp.Char(0x41))
	}
	if cp.Char(0x42) != Placeholder {
		t.Fatalf("expected combining mark to be replaced, got %q", cp.Char(0x42))
	}
	if cp.Char(0x43) != 'C' {
		t.Fatalf("expected 'C', got %q", cp.Char(0x43))
	}
	if cp.Printable(0x41) {
		t.Fatalf("expected 0x41 to be non-printable")
	}
	if !cp.Printable('.') {
		t.Fatalf("expected '.' itself to be printable")
	}
}

func TestFromCharmap(t *testing.T) {
	cp := FromCharmap("koi8-r", charmap.KOI8R)
	if got := cp.Char(0xC1); got != 'а' {
		t.Fatalf("expected cyrillic a, got %q", got)
	}
}

func TestLookup(t *testing.T) {
	cases := []struct {
		name     string
		wantName string
		in       byte
		want     rune
	}{
		{"CP850", "cp850", 0x82, 'é'},
		{" ibm437 ", "cp437", 0xB0, '░'},
		{"latin1", "iso-8859-1", 0xE9, 'é'},
		{"koi8-r", "koi8-r", 0xC1, 'а'},
		{"ibm866", "ibm866", 0x80, 'А'},
		{"cp1251", "windows-1251", 0xC0, '\u0410'},
		{"ISO-8859-2", "iso-8859-2", 0xA1, '\u0104'},
		{"x-user-defined", "x-user-defined", 0x41, 'A'},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cp, err := Lookup(tc.name)
			if err != nil {
				t.Fatalf("lookup %q: %v", tc.name, err)
			}
			if cp.Name() != tc.wantName {
				t.Fatalf("expected name %q, got %q", tc.wantName, cp.Name())
			}
			if got := cp.Char(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLookupRejects(t *testing.T) {
	for _, name := range []string{"", "utf-8", "shift_jis", "no-such-codepage"} {
		_, err := Lookup(name)
		if err == nil {
			t.Fatalf("expected error for %q", name)
		}
		if !errors.Is(err, errdef.Kind(errdef.CodeCodepage)) {
			t.Fatalf("expected codepage error for %q, got %v", name, err)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
