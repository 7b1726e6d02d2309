package encryption

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ahmedkhursheed2006/goaes/internal/aes"
)

// DeriveKey turns a passphrase into a 32-byte key by hashing its UTF-8
// bytes with SHA-256. The cipher core treats this as an opaque source of
// key material; it only requires that it completes before the first block.
func DeriveKey(passphrase string) []byte {
	sum := sha256.Sum256([]byte(passphrase))

	return sum[:]
}

// ParseKey decodes a hex-encoded key and enforces the 32-byte length.
// Surrounding whitespace is trimmed so keys read from files may carry a
// trailing newline.
func ParseKey(hexKey string) ([]byte, error) {
	key, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil {
		return nil, fmt.Errorf("decoding key: %w", err)
	}

	if len(key) != aes.KeySize {
		return nil, fmt.Errorf("%w: got %d", aes.ErrInvalidKeyLength, len(key))
	}

	return key, nil
}
