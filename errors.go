package hexview

import (
	"errors"

	"github.com/unkn0wn-root/hexview/internal/errdef"
)

// ErrInvalidRowWidth is returned when rendering a view whose row width is not
// positive. No output is produced.
var ErrInvalidRowWidth = errdef.New(errdef.CodeLayout, "row width must be greater than zero")

// IsLayoutError reports whether err is an invalid layout configuration.
func IsLayoutError(err error) bool {
	return errors.Is(err, errdef.Kind(errdef.CodeLayout))
}

// IsCodepageError reports whether err came from resolving a codepage name.
func IsCodepageError(err error) bool {
	return errors.Is(err, errdef.Kind(errdef.CodeCodepage))
}

// IsConfigError reports whether err came from decoding options or settings.
func IsConfigError(err error) bool {
	return errors.Is(err, errdef.Kind(errdef.CodeConfig))
}
