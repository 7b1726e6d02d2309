package encryption

import (
	"encoding/hex"
	"fmt"
)

// Ciphertext crosses the tool boundary as lowercase hex, two digits per
// byte, no separators. The parser is forgiving about whitespace and common
// grouping characters so ciphertext can be pasted from wrapped terminal
// output or hexdump-style listings, but anything else is rejected rather
// than skipped - dropping arbitrary junk would mask corruption that unpad
// would later misreport as a padding error.

// EncodeCiphertext renders ciphertext as a lowercase hex string.
func EncodeCiphertext(ciphertext []byte) string {
	return hex.EncodeToString(ciphertext)
}

// DecodeCiphertext parses a hex ciphertext string, ignoring ASCII
// whitespace and the separators ':' and '-'. It returns ErrMalformedHex on
// any other non-hex character or an odd number of digits.
func DecodeCiphertext(input string) ([]byte, error) {
	digits := make([]byte, 0, len(input))

	for i := 0; i < len(input); i++ {
		switch ch := input[i]; {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == ':' || ch == '-':
		case isHexDigit(ch):
			digits = append(digits, ch)
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrMalformedHex, ch, i)
		}
	}

	if len(digits)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of hex digits (%d)", ErrMalformedHex, len(digits))
	}

	out := make([]byte, len(digits)/2)
	if _, err := hex.Decode(out, digits); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}

	return out, nil
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
