package codepage

import (
	"slices"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/unkn0wn-root/hexview/internal/errdef"
)

var builtins = map[string]func() *Codepage{
	"cp850":        CP850,
	"ibm850":       CP850,
	"850":          CP850,
	"cp437":        CP437,
	"ibm437":       CP437,
	"437":          CP437,
	"ascii":        ASCII,
	"us-ascii":     ASCII,
	"latin1":       Latin1,
	"latin-1":      Latin1,
	"iso-8859-1":   Latin1,
	"iso8859-1":    Latin1,
	"windows-1252": Windows1252,
	"cp1252":       Windows1252,
}

// Lookup resolves a codepage by name. Built-in aliases win, then WHATWG
// labels, then IANA names (for IBM852 and other
// names WHATWG does not know). Only single-byte encodings can back a codepage.
//
// "latin1" resolves to ISO-8859-1 here even though WHATWG maps the label to
// windows-1252.
func Lookup(name string) (*Codepage, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, errdef.New(errdef.CodeCodepage, "empty codepage name")
	}
	if build, ok := builtins[key]; ok {
		return build(), nil
	}

	// charset.Lookup wraps what it finds, so it only maps the label to its
	// canonical name; htmlindex hands back the bare charmap.
	if _, canonical := charset.Lookup(key); canonical != "" {
		if enc, err := htmlindex.Get(canonical); err == nil {
			return fromEncoding(name, canonical, enc)
		}
	}

	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeCodepage, err, "unknown codepage %q", name)
	}
	if enc == nil {
		return nil, errdef.New(errdef.CodeCodepage, "codepage %q is not supported", name)
	}
	canonical, _ := ianaindex.IANA.Name(enc)
	return fromEncoding(name, canonical, enc)
}

func fromEncoding(name, canonical string, enc encoding.Encoding) (*Codepage, error) {
	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return nil, errdef.New(errdef.CodeCodepage, "codepage %q is not a single-byte encoding", name)
	}
	if canonical == "" {
		canonical = strings.ToLower(strings.TrimSpace(name))
	}
	return FromCharmap(strings.ToLower(canonical), cm), nil
}

// Names lists the built-in aliases accepted by Lookup.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for k := range builtins {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
