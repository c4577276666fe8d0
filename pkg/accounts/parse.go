package accounts

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseAccountID converts an account id taken from a route or query parameter
// into its numeric form. It reads the longest run of digits after optional
// leading whitespace and sign and ignores whatever follows, so "42abc"
// parses to 42. An input with no digit prefix, or a prefix that does not fit
// in int64, fails with ErrInvalidAccountID.
func ParseAccountID(raw string) (int64, error) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsFrom := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsFrom {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAccountID, raw)
	}
	id, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAccountID, raw)
	}
	return id, nil
}
