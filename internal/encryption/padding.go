package encryption

import (
	"bytes"
	"fmt"

	"github.com/ahmedkhursheed2006/goaes/internal/aes"
)

// pkcs7Pad appends n bytes of value n so the result is block-aligned, with
// n in [1,16]. An already-aligned input gains a full block of padding - the
// padding length is never zero, which is what makes unpad unambiguous.
func pkcs7Pad(data []byte) []byte {
	padding := aes.BlockSize - len(data)%aes.BlockSize
	padText := bytes.Repeat([]byte{byte(padding)}, padding)

	return append(data, padText...)
}

// pkcs7Unpad strips the padding added by pkcs7Pad.
// It returns ErrInvalidPadding if the final byte is zero or exceeds the
// block size, the buffer is shorter than the claimed padding, or any of the
// trailing bytes disagrees with the marker.
func pkcs7Unpad(data []byte) ([]byte, error) {
	length := len(data)
	if length == 0 {
		return nil, ErrEmptyData
	}

	padding := int(data[length-1])
	if padding == 0 || padding > aes.BlockSize || padding > length {
		return nil, fmt.Errorf("%w: padding length %d", ErrInvalidPadding, padding)
	}

	for i := length - padding; i < length; i++ {
		if data[i] != byte(padding) {
			return nil, ErrInvalidPadding
		}
	}

	return data[:length-padding], nil
}
