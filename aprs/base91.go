package aprs

// Base-91 integer codec used by compressed positions and their extension
// slots. Values are encoded as w printable ASCII characters in the range
// '!'..'{' (33-123), most significant digit first.
//
// Ported from original_source/aprs/base91.py (to_decimal/from_decimal).

const (
	base91Min = 33  // '!'
	base91Max = 123 // '{'
)

// EncodeBase91 encodes n as a fixed-width w base-91 string.
func EncodeBase91(n int, w int) (string, error) {
	if n < 0 {
		return "", &EncodingError{Reason: "base91: value must be non-negative"}
	}
	if w < 1 {
		return "", &EncodingError{Reason: "base91: width must be >= 1"}
	}

	digits := make([]byte, w)
	for i := w - 1; i >= 0; i-- {
		digits[i] = byte(base91Min + n%91)
		n /= 91
	}
	if n != 0 {
		return "", &EncodingError{Reason: "base91: value does not fit in requested width"}
	}
	return string(digits), nil
}

// DecodeBase91 decodes a base-91 string into an integer.
func DecodeBase91(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < base91Min || c > base91Max {
			return 0, &EncodingError{Reason: "base91: character out of range"}
		}
		n = n*91 + int(c) - base91Min
	}
	return n, nil
}
