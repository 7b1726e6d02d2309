package encryption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCiphertextLowercaseNoSeparators(t *testing.T) {
	assert.Equal(t, "00ff10ab", EncodeCiphertext([]byte{0x00, 0xff, 0x10, 0xab}))
}

func TestDecodeCiphertext(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
		fails bool
	}{
		{"plain", "00ff10ab", []byte{0x00, 0xff, 0x10, 0xab}, false},
		{"uppercase accepted", "00FF10AB", []byte{0x00, 0xff, 0x10, 0xab}, false},
		{"spaces stripped", "00 ff 10 ab", []byte{0x00, 0xff, 0x10, 0xab}, false},
		{"newlines and tabs stripped", "00ff\n10\tab\r\n", []byte{0x00, 0xff, 0x10, 0xab}, false},
		{"colon separators stripped", "00:ff:10:ab", []byte{0x00, 0xff, 0x10, 0xab}, false},
		{"dash separators stripped", "00-ff-10-ab", []byte{0x00, 0xff, 0x10, 0xab}, false},
		{"empty", "", []byte{}, false},
		{"odd digit count", "00ff1", nil, true},
		{"non-hex letter", "00gg", nil, true},
		{"unicode junk", "00ff£10", nil, true},
		{"comma separator rejected", "00,ff", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCiphertext(tt.input)

			if tt.fails {
				assert.ErrorIs(t, err, ErrMalformedHex)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	data := make([]byte, 48)
	for i := range data {
		data[i] = byte(i * 5)
	}

	decoded, err := DecodeCiphertext(EncodeCiphertext(data))
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestWrapHexReadsBack(t *testing.T) {
	// 100 digits wrap into 64 + 36 with trailing newline; the decoder
	// strips the breaks transparently.
	s := EncodeCiphertext(make([]byte, 50))

	wrapped := wrapHex(s)
	assert.Equal(t, 2, len(wrapped)-len(s), "one mid-line break plus the terminator")

	decoded, err := DecodeCiphertext(string(wrapped))
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 50), decoded)
}

func TestWrapHexEmpty(t *testing.T) {
	assert.Empty(t, wrapHex(""))
}
