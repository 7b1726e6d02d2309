package encryption

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedkhursheed2006/goaes/internal/aes"
)

func TestPadRoundTrip(t *testing.T) {
	for length := 0; length <= 3*aes.BlockSize; length++ {
		data := bytes.Repeat([]byte{0xa5}, length)

		padded := pkcs7Pad(data)
		require.Zero(t, len(padded)%aes.BlockSize, "length %d not block-aligned after padding", length)

		out, err := pkcs7Unpad(padded)
		require.NoError(t, err, "length %d", length)
		assert.Equal(t, data, out)
	}
}

func TestPadAlignedInputGainsFullBlock(t *testing.T) {
	data := make([]byte, 2*aes.BlockSize)

	padded := pkcs7Pad(data)

	require.Len(t, padded, 3*aes.BlockSize)

	for _, b := range padded[2*aes.BlockSize:] {
		assert.Equal(t, byte(aes.BlockSize), b)
	}
}

func TestPadMarkerValues(t *testing.T) {
	// n = 16 - len%16 bytes, each of value n.
	padded := pkcs7Pad([]byte{1, 2, 3})

	require.Len(t, padded, aes.BlockSize)
	assert.Equal(t, byte(13), padded[len(padded)-1])

	for _, b := range padded[3:] {
		assert.Equal(t, byte(13), b)
	}
}

func TestUnpadRejectsMalformedPadding(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrEmptyData},
		{"zero marker", append(bytes.Repeat([]byte{0x11}, 15), 0), ErrInvalidPadding},
		{"marker above block size", append(bytes.Repeat([]byte{0x11}, 15), 17), ErrInvalidPadding},
		{"marker longer than data", []byte{9, 9, 9}, ErrInvalidPadding},
		{"trailing bytes disagree", []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 3, 2, 3}, ErrInvalidPadding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pkcs7Unpad(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
