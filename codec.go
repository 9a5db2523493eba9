package padlock

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// TextToBytes maps each character of text to its ordinal value as a single
// byte. Characters above 0xFF are rejected rather than truncated, so the
// conversion is lossless for everything it accepts.
func TextToBytes(text string) ([]byte, error) {
	b := make([]byte, 0, len(text))
	for i, r := range text {
		if r > 0xFF {
			return nil, fmt.Errorf("%w: %q at index %d", ErrEncoding, r, i)
		}
		b = append(b, byte(r))
	}
	return b, nil
}

// BytesToText is the inverse of TextToBytes; each byte becomes one character.
func BytesToText(b []byte) string {
	var sb strings.Builder
	for _, v := range b {
		sb.WriteRune(rune(v))
	}
	return sb.String()
}

// BytesToHex encodes b as uppercase hex, two digits per byte, no separator.
func BytesToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// HexToBytes parses hex text two digits at a time. Upper and lower case are
// both accepted. Odd-length input or a non-hex digit returns ErrDecoding.
func HexToBytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	return b, nil
}
