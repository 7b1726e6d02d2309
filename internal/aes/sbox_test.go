package aes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSboxIsPermutation(t *testing.T) {
	seen := make(map[byte]bool, 256)

	for _, v := range sbox {
		assert.False(t, seen[v], "duplicate S-box value %#02x", v)
		seen[v] = true
	}

	require.Len(t, seen, 256)
}

func TestInvSboxInvertsSbox(t *testing.T) {
	for x := 0; x < 256; x++ {
		assert.Equal(t, byte(x), invSbox[sbox[x]], "invSbox[sbox[%#02x]]", x)
		assert.Equal(t, byte(x), sbox[invSbox[x]], "sbox[invSbox[%#02x]]", x)
	}
}

func TestSboxSpotValues(t *testing.T) {
	// FIPS-197 figure 7 corners plus the §5.1.1 example S(0x53) = 0xed.
	assert.Equal(t, byte(0x63), sbox[0x00])
	assert.Equal(t, byte(0x16), sbox[0xff])
	assert.Equal(t, byte(0xed), sbox[0x53])
	assert.Equal(t, byte(0x7c), sbox[0x01])
}

func TestRconValues(t *testing.T) {
	// Successive GF(2^8) doublings of 0x01, wrapping through the reduction
	// polynomial at 0x80 -> 0x1b.
	want := []byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36, 0x6c, 0xd8, 0xab, 0x4d}

	for i, v := range want {
		assert.Equal(t, v, rcon[i+1], "rcon[%d]", i+1)
	}

	for i := 2; i < len(rcon); i++ {
		assert.Equal(t, mul2(rcon[i-1]), rcon[i], "rcon[%d] is not a doubling of rcon[%d]", i, i-1)
	}
}
