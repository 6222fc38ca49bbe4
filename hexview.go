// Package hexview renders byte buffers as classic hex dumps: an address
// column, a grid of hex bytes and a column of display characters, one row
// per RowWidth bytes.
//
//	view := hexview.NewBuilder(data).
//		AddressOffset(0x1005).
//		RowWidth(16).
//		Finish()
//	out, err := view.Render()
//
// Rows are aligned to multiples of the row width in address space, so a
// dump that starts at an unaligned address gets placeholder columns in front
// of its first byte, and a dump that ends mid-row gets placeholder columns
// after its last byte.
//
// A View borrows its data and codepage. Neither is copied, so the caller
// must not modify the buffer while a render is running.
package hexview

import (
	"github.com/unkn0wn-root/hexview/codepage"
)

// DefaultRowWidth is the number of bytes per row when none is set.
const DefaultRowWidth = 16

// View is a frozen rendering configuration for one buffer.
type View struct {
	data          []byte
	addressOffset uint64
	rowWidth      int
	codepage      *codepage.Codepage
}

// New returns a view over data with the default settings.
func New(data []byte) View {
	return NewBuilder(data).Finish()
}

func (v View) Data() []byte { return v.data }
func (v View) AddressOffset() uint64 { return v.addressOffset }
func (v View) RowWidth() int { return v.rowWidth }

func (v View) Codepage() *codepage.Codepage {
	if v.codepage == nil {
		return codepage.CP850()
	}
	return v.codepage
}

// Builder accumulates a View. Every setter returns an updated copy, so a
// partially configured builder can be reused as a template.
//
// Nothing is validated here. A row width of zero builds fine and makes
// Render fail.
type Builder struct {
	view View
}

func NewBuilder(data []byte) Builder {
	return Builder{view: View{
		data:     data,
		rowWidth: DefaultRowWidth,
		codepage: codepage.CP850(),
	}}
}

// AddressOffset sets the address displayed for data[0]. Addresses are for
// display only; rows past the top of the 64-bit address space wrap to zero.
func (b Builder) AddressOffset(offset uint64) Builder {
	b.view.addressOffset = offset
	return b
}

// Codepage sets the table used for the character column. nil selects the
// default CP850 table. The table must outlive the view.
func (b Builder) Codepage(cp *codepage.Codepage) Builder {
	if cp == nil {
		cp = codepage.CP850()
	}
	b.view.codepage = cp
	return b
}

func (b Builder) RowWidth(width int) Builder {
	b.view.rowWidth = width
	return b
}

func (b Builder) Finish() View {
	return b.view
}
