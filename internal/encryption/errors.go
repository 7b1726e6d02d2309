package encryption

import "errors"

var (
	// ErrEmptyData is returned when attempting to process empty input data.
	ErrEmptyData = errors.New("empty data")

	// ErrInvalidPadding is returned when PKCS7 padding is malformed. It most
	// commonly means a wrong key or corrupted ciphertext, so it is always
	// surfaced, never repaired.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrInvalidBlockSize is returned when encrypted data length is not a
	// positive multiple of the AES block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of block size")

	// ErrMalformedHex is returned when ciphertext input cannot be decoded as
	// hexadecimal after separator stripping.
	ErrMalformedHex = errors.New("malformed hex input")
)
