package hexview

// padding counts the placeholder columns drawn before and after the real
// bytes of a row.
type padding struct {
	left  int
	right int
}

// BeginPadding is the number of placeholder columns in front of the first
// byte so that every later row starts at a multiple of rowWidth.
// It panics if rowWidth is not positive.
func BeginPadding(addressOffset uint64, rowWidth int) int {
	mustPositiveWidth(rowWidth)
	return int(addressOffset % uint64(rowWidth))
}

// EndPadding is the number of placeholder columns needed to fill the last
// row. effectiveLength is the begin padding plus the data length.
// It panics if rowWidth is not positive.
func EndPadding(effectiveLength, rowWidth int) int {
	mustPositiveWidth(rowWidth)
	return (rowWidth - effectiveLength%rowWidth) % rowWidth
}

func mustPositiveWidth(rowWidth int) {
	if rowWidth <= 0 {
		panic("hexview: padding needs a positive row width")
	}
}
