package aes

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomState(rng *rand.Rand) State {
	var s State

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = byte(rng.Intn(256))
		}
	}

	return s
}

func TestStateRoundTrip(t *testing.T) {
	block := make([]byte, BlockSize)
	for i := range block {
		block[i] = byte(i * 7)
	}

	s := newState(block)
	out := s.Bytes()

	assert.Equal(t, block, out[:])

	// Column-major layout: byte i lands in row i%4, column i/4.
	assert.Equal(t, block[0], s[0][0])
	assert.Equal(t, block[1], s[1][0])
	assert.Equal(t, block[4], s[0][1])
	assert.Equal(t, block[15], s[3][3])
}

func TestShiftRows(t *testing.T) {
	var s State
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = byte(4*r + c)
		}
	}

	out := shiftRows(s)

	// Row 0 untouched, row r rotated left by r.
	assert.Equal(t, [4]byte{0, 1, 2, 3}, out[0])
	assert.Equal(t, [4]byte{5, 6, 7, 4}, out[1])
	assert.Equal(t, [4]byte{10, 11, 8, 9}, out[2])
	assert.Equal(t, [4]byte{15, 12, 13, 14}, out[3])
}

func TestRoundTransformationInverses(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name    string
		forward func(State) State
		inverse func(State) State
	}{
		{"SubBytes", subBytes, invSubBytes},
		{"ShiftRows", shiftRows, invShiftRows},
		{"MixColumns", mixColumns, invMixColumns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				s := randomState(rng)
				assert.Equal(t, s, tt.inverse(tt.forward(s)))
				assert.Equal(t, s, tt.forward(tt.inverse(s)))
			}
		})
	}
}

func TestMixColumnsKnownColumn(t *testing.T) {
	// FIPS-197 §5.1.3 example column: (d4,bf,5d,30) -> (04,66,81,e5).
	var s State
	s[0][0], s[1][0], s[2][0], s[3][0] = 0xd4, 0xbf, 0x5d, 0x30

	out := mixColumns(s)

	assert.Equal(t, byte(0x04), out[0][0])
	assert.Equal(t, byte(0x66), out[1][0])
	assert.Equal(t, byte(0x81), out[2][0])
	assert.Equal(t, byte(0xe5), out[3][0])
}

func TestAddRoundKeySelfInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 100; i++ {
		s := randomState(rng)
		rk := randomState(rng)

		assert.Equal(t, s, addRoundKey(addRoundKey(s, rk), rk))
	}
}

func TestTransformationsDoNotAliasInput(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := randomState(rng)
	before := s

	_ = subBytes(s)
	_ = shiftRows(s)
	_ = mixColumns(s)
	_ = invMixColumns(s)
	_ = addRoundKey(s, randomState(rng))

	require.Equal(t, before, s, "transformations must not mutate their input")
}
