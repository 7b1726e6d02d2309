package aes

import (
	"fmt"
	"strings"
)

// State is the 4×4 byte matrix a block passes through during the round
// pipeline. Byte i of a block maps to row i%4, column i/4 (column-major,
// FIPS-197 §3.4). State is a value type: every transformation takes and
// returns it by value, so no two pipeline steps ever alias the same matrix.
type State [4][4]byte

// newState loads the first BlockSize bytes of block into a fresh State.
func newState(block []byte) State {
	var s State

	for i := 0; i < BlockSize; i++ {
		s[i%4][i/4] = block[i]
	}

	return s
}

// Bytes flattens the State back into block order. Inverse of newState.
func (s State) Bytes() [BlockSize]byte {
	var block [BlockSize]byte

	for i := 0; i < BlockSize; i++ {
		block[i] = s[i%4][i/4]
	}

	return block
}

// String renders the matrix as four hex rows for trace output.
func (s State) String() string {
	var sb strings.Builder

	for r := 0; r < 4; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}

		fmt.Fprintf(&sb, "%02x %02x %02x %02x", s[r][0], s[r][1], s[r][2], s[r][3])
	}

	return sb.String()
}
