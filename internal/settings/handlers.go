package settings

import (
	"strconv"

	"github.com/unkn0wn-root/hexview/internal/errdef"
)

// IntHandler parses a decimal integer for any of keys.
func IntHandler(set func(int), keys ...string) Handler {
	return Handler{
		Match: ExactMatcher(keys...),
		Apply: func(key, val string) error {
			n, err := strconv.Atoi(val)
			if err != nil {
				return errdef.Wrap(errdef.CodeConfig, err, "setting %s", key)
			}
			set(n)
			return nil
		},
	}
}

// UintHandler accepts decimal, 0x hex, 0o octal or 0b binary values.
func UintHandler(set func(uint64), keys ...string) Handler {
	return Handler{
		Match: ExactMatcher(keys...),
		Apply: func(key, val string) error {
			n, err := strconv.ParseUint(val, 0, 64)
			if err != nil {
				return errdef.Wrap(errdef.CodeConfig, err, "setting %s", key)
			}
			set(n)
			return nil
		},
	}
}

// StringHandler passes the raw value through; set may reject it.
func StringHandler(set func(string) error, keys ...string) Handler {
	return Handler{
		Match: ExactMatcher(keys...),
		Apply: func(key, val string) error {
			if err := set(val); err != nil {
				if errdef.CodeOf(err) != errdef.CodeUnknown {
					return err
				}
				return errdef.Wrap(errdef.CodeConfig, err, "setting %s", key)
			}
			return nil
		},
	}
}
