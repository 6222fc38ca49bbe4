package hexview

import (
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/hexview/codepage"
)

const (
	hexDigitsUpper = "0123456789ABCDEF"
	addressDigits  = 8
	columnGap      = "  "
	hexSlotBlank   = "  "
	charSlotBlank  = ' '
	charOpen       = "| "
	charClose      = " |"

	// printed by String when the view cannot be rendered.
	invalidMarker = "Invalid hexview row width"
)

// Render renders the whole dump. Rows are separated by '\n' and the last
// row has no trailing newline.
func (v View) Render() (string, error) {
	out, err := v.AppendRender(nil)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// String implements fmt.Stringer. An invalid row width renders as a fixed
// marker; use Render to get the error.
func (v View) String() string {
	out, err := v.Render()
	if err != nil {
		return invalidMarker
	}
	return out
}

// Lines returns the number of rows Render would emit.
func (v View) Lines() (int, error) {
	if err := v.check(); err != nil {
		return 0, err
	}
	total := BeginPadding(v.addressOffset, v.rowWidth) + len(v.data)
	n := (total + v.rowWidth - 1) / v.rowWidth
	if n == 0 {
		return 1, nil
	}
	return n, nil
}

// AppendRender appends the rendered dump to dst. On error dst is returned
// unchanged.
func (v View) AppendRender(dst []byte) ([]byte, error) {
	if err := v.check(); err != nil {
		return dst, err
	}

	width := v.rowWidth
	cp := v.Codepage()
	data := v.data

	begin := BeginPadding(v.addressOffset, width)
	end := EndPadding(begin+len(data), width)
	if len(data) == 0 && begin == 0 {
		// an empty aligned dump is still one full row of placeholders
		end = width
	}
	address := v.addressOffset - uint64(begin)

	if begin+len(data)+end <= width {
		dst = growFor(dst, 1, width)
		return appendLine(dst, address, cp, data, padding{left: begin, right: end}), nil
	}

	dst = growFor(dst, (begin+len(data)+end)/width, width)

	offset := 0
	sep := false
	if begin != 0 {
		next := width - begin
		dst = appendLine(dst, address, cp, data[:next], padding{left: begin})
		offset += next
		address += uint64(width)
		sep = true
	}

	for offset+width <= len(data) {
		if sep {
			dst = append(dst, '\n')
		}
		dst = appendLine(dst, address, cp, data[offset:offset+width], padding{})
		offset += width
		address += uint64(width)
		sep = true
	}

	if end != 0 {
		if sep {
			dst = append(dst, '\n')
		}
		dst = appendLine(dst, address, cp, data[offset:], padding{right: end})
	}
	return dst, nil
}

func (v View) check() error {
	if v.rowWidth > 0 {
		return nil
	}
	log().WithFields(logrus.Fields{
		"row_width":      v.rowWidth,
		"address_offset": v.addressOffset,
		"data_len":       len(v.data),
	}).Debug("hexview: refusing to render with invalid row width")
	return ErrInvalidRowWidth
}

// growFor reserves room for rows of the given width. Character slots are
// sized for one byte each; wider runes grow the buffer as needed.
func growFor(dst []byte, rows, width int) []byte {
	perRow := addressDigits + len(columnGap) + 3*width - 1 + len(columnGap) +
		len(charOpen) + width + len(charClose) + 1
	need := rows * perRow
	if cap(dst)-len(dst) >= need {
		return dst
	}
	grown := make([]byte, len(dst), len(dst)+need)
	copy(grown, dst)
	return grown
}

// appendLine renders one row: ADDRESS  HEX  | CHARS |
func appendLine(dst []byte, address uint64, cp *codepage.Codepage, row []byte, pad padding) []byte {
	dst = appendAddress(dst, address)
	dst = append(dst, columnGap...)
	dst = appendHexCells(dst, row, pad)
	dst = append(dst, columnGap...)
	dst = append(dst, charOpen...)
	dst = appendCharCells(dst, cp, row, pad)
	dst = append(dst, charClose...)
	return dst
}

// appendAddress writes at least addressDigits uppercase hex digits.
func appendAddress(dst []byte, address uint64) []byte {
	var buf [16]byte
	i := len(buf)
	for address > 0 || i > len(buf)-addressDigits {
		i--
		buf[i] = hexDigitsUpper[address&0x0F]
		address >>= 4
	}
	return append(dst, buf[i:]...)
}

func appendHexCells(dst []byte, row []byte, pad padding) []byte {
	first := true
	slot := func() {
		if !first {
			dst = append(dst, ' ')
		}
		first = false
	}
	for i := 0; i < pad.left; i++ {
		slot()
		dst = append(dst, hexSlotBlank...)
	}
	for _, b := range row {
		slot()
		dst = append(dst, hexDigitsUpper[b>>4], hexDigitsUpper[b&0x0F])
	}
	for i := 0; i < pad.right; i++ {
		slot()
		dst = append(dst, hexSlotBlank...)
	}
	return dst
}

func appendCharCells(dst []byte, cp *codepage.Codepage, row []byte, pad padding) []byte {
	for i := 0; i < pad.left; i++ {
		dst = append(dst, charSlotBlank)
	}
	for _, b := range row {
		dst = utf8.AppendRune(dst, codepage.AsChar(b, cp))
	}
	for i := 0; i < pad.right; i++ {
		dst = append(dst, charSlotBlank)
	}
	return dst
}
