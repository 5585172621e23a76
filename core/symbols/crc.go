package symbols

import (
	"fmt"
	"strconv"
	"strings"
)

// CRC is a normalized symbol version checksum.
type CRC uint32

// Normalize parses a 0x-prefixed CRC of 1 to 8 hex digits, ignoring case and
// surrounding whitespace.
func Normalize(raw string) (CRC, error) {
	s := strings.TrimSpace(raw)
	if len(s) < 3 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return 0, fmt.Errorf("%w: %q", ErrMalformedCRC, raw)
	}
	digits := s[2:]
	if len(digits) > 8 || !isHex(digits) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedCRC, raw)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedCRC, raw)
	}
	return CRC(v), nil
}

// ParseCRC is Normalize for ingestion: a bare hex field gets the 0x prefix
// it is missing in some Module.symvers generations.
func ParseCRC(raw string) (CRC, error) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	c, err := Normalize(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedCRC, raw)
	}
	return c, nil
}

// String returns the canonical form, 0x and 8 lowercase hex digits.
func (c CRC) String() string {
	return fmt.Sprintf("0x%08x", uint32(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c CRC) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CRC) UnmarshalText(b []byte) error {
	v, err := Normalize(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9', ch >= 'a' && ch <= 'f', ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}
