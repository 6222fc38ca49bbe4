// Package codepage maps raw byte values to the characters shown in the
// character column of a hex dump.
//
// A Codepage is a fixed 256-entry table. Entries that would not occupy exactly
// one terminal cell (controls, combining marks, wide runes, undefined slots)
// are replaced by Placeholder when the table is built, so lookups are a plain
// index and every byte renders as one column.
package codepage

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding/charmap"
)

// Placeholder is shown for bytes the table marks as non-printable.
const Placeholder = '.'

const tableSize = 256

// narrow ignores the East Asian ambiguous width so the result does not depend
// on the caller's locale.
var narrow = &runewidth.Condition{EastAsianWidth: false}

type Codepage struct {
	name  string
	chars [tableSize]rune
}

// New builds a codepage from an explicit table.
func New(name string, table [tableSize]rune) *Codepage {
	cp := &Codepage{name: name}
	for i, r := range table {
		cp.chars[i] = normalize(r)
	}
	return cp
}

// FromCharmap builds a codepage from a single-byte character map.
func FromCharmap(name string, cm *charmap.Charmap) *Codepage {
	var table [tableSize]rune
	for i := range table {
		table[i] = cm.DecodeByte(byte(i))
	}
	return New(name, table)
}

func (cp *Codepage) Name() string {
	if cp == nil {
		return CP850().name
	}
	return cp.name
}

// Char returns the display character for b.
func (cp *Codepage) Char(b byte) rune {
	if cp == nil {
		return CP850().chars[b]
	}
	return cp.chars[b]
}

// Printable reports whether b has its own character in the table.
func (cp *Codepage) Printable(b byte) bool {
	return cp.Char(b) != Placeholder || b == Placeholder
}

// AsChar maps b through cp. A nil codepage uses CP850.
func AsChar(b byte, cp *Codepage) rune {
	return cp.Char(b)
}

func normalize(r rune) rune {
	if isPrintable(r) {
		return r
	}
	return Placeholder
}

func isPrintable(r rune) bool {
	if r == ' ' {
		return true
	}
	if r == utf8.RuneError || !utf8.ValidRune(r) {
		return false
	}
	if unicode.IsControl(r) || unicode.IsSpace(r) || !unicode.IsGraphic(r) {
		return false
	}
	return narrow.RuneWidth(r) == 1
}

// CP850 is the DOS "Multilingual Latin 1" table and the default codepage.
var CP850 = sync.OnceValue(func() *Codepage {
	return FromCharmap("cp850", charmap.CodePage850)
})

// CP437 is the original IBM PC table.
var CP437 = sync.OnceValue(func() *Codepage {
	return FromCharmap("cp437", charmap.CodePage437)
})

var Latin1 = sync.OnceValue(func() *Codepage {
	return FromCharmap("iso-8859-1", charmap.ISO8859_1)
})

var Windows1252 = sync.OnceValue(func() *Codepage {
	return FromCharmap("windows-1252", charmap.Windows1252)
})

// ASCII shows printable 7-bit characters only.
var ASCII = sync.OnceValue(func() *Codepage {
	var table [tableSize]rune
	for i := range table {
		if i < utf8.RuneSelf {
			table[i] = rune(i)
		} else {
			table[i] = Placeholder
		}
	}
	return New("ascii", table)
})
