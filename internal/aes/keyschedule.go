package aes

import (
	"errors"
	"fmt"
)

// ErrInvalidKeyLength is returned when the key is not exactly 32 bytes.
// Shorter or longer keys are rejected outright, never truncated or extended.
var ErrInvalidKeyLength = errors.New("key must be exactly 32 bytes")

// word is a 4-byte unit of the key schedule (FIPS-197 §5.2).
type word [4]byte

// rotWord cyclically rotates the word left by one byte.
func rotWord(w word) word {
	return word{w[1], w[2], w[3], w[0]}
}

// subWord applies the S-box to each byte independently.
func subWord(w word) word {
	return word{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}

// expandKey expands a 256-bit key into the 15 round keys.
//
// It generates 60 words: the first 8 come straight from the key; word i for
// i >= 8 is words[i-8] xor a transform of words[i-1]. At i%8 == 0 the
// previous word is rotated, substituted and xored with rcon[i/8]; at
// i%8 == 4 it is substituted without rotation. That second substitution is
// specific to the 256-bit variant - dropping it yields a schedule that
// silently diverges from the standard after round 6, which is why the
// expansion is pinned to the FIPS-197 appendix A.3 values in tests.
// Each group of 4 consecutive words forms one round key, column-wise.
func expandKey(key []byte) ([numRoundKeys]State, error) {
	var roundKeys [numRoundKeys]State

	if len(key) != KeySize {
		return roundKeys, fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(key))
	}

	var words [4 * numRoundKeys]word

	for i := 0; i < KeySize/4; i++ {
		copy(words[i][:], key[4*i:4*i+4])
	}

	for i := KeySize / 4; i < len(words); i++ {
		prev := words[i-1]

		switch {
		case i%8 == 0:
			prev = subWord(rotWord(prev))
			prev[0] ^= rcon[i/8]
		case i%8 == 4:
			prev = subWord(prev)
		}

		for j := 0; j < 4; j++ {
			words[i][j] = words[i-8][j] ^ prev[j]
		}
	}

	for k := 0; k < numRoundKeys; k++ {
		for c := 0; c < 4; c++ {
			for r := 0; r < 4; r++ {
				roundKeys[k][r][c] = words[4*k+c][r]
			}
		}
	}

	return roundKeys, nil
}
