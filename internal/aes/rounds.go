package aes

// The four round transformations and their inverses (FIPS-197 §5). Each is a
// pure function from State to State; AddRoundKey additionally takes the round
// key. Inputs are received by value and results built into a fresh matrix, so
// a caller's State is never written through.

// subBytes replaces every cell with its S-box substitution.
func subBytes(s State) State {
	var out State

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = sbox[s[r][c]]
		}
	}

	return out
}

// invSubBytes replaces every cell with its inverse S-box substitution.
func invSubBytes(s State) State {
	var out State

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = invSbox[s[r][c]]
		}
	}

	return out
}

// shiftRows rotates row r left by r positions. Row 0 is unchanged.
func shiftRows(s State) State {
	var out State

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = s[r][(c+r)%4]
		}
	}

	return out
}

// invShiftRows rotates row r right by r positions, undoing shiftRows.
func invShiftRows(s State) State {
	var out State

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][(c+r)%4] = s[r][c]
		}
	}

	return out
}

// mixColumns multiplies each column by the fixed MDS matrix
// {{2,3,1,1},{1,2,3,1},{1,1,2,3},{3,1,1,2}} over GF(2^8).
func mixColumns(s State) State {
	var out State

	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[0][c], s[1][c], s[2][c], s[3][c]

		out[0][c] = mul2(a0) ^ mul3(a1) ^ a2 ^ a3
		out[1][c] = a0 ^ mul2(a1) ^ mul3(a2) ^ a3
		out[2][c] = a0 ^ a1 ^ mul2(a2) ^ mul3(a3)
		out[3][c] = mul3(a0) ^ a1 ^ a2 ^ mul2(a3)
	}

	return out
}

// invMixColumns multiplies each column by the inverse matrix with
// coefficients {14,11,13,9} cyclically rotated per row.
func invMixColumns(s State) State {
	var out State

	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[0][c], s[1][c], s[2][c], s[3][c]

		out[0][c] = mul14(a0) ^ mul11(a1) ^ mul13(a2) ^ mul9(a3)
		out[1][c] = mul9(a0) ^ mul14(a1) ^ mul11(a2) ^ mul13(a3)
		out[2][c] = mul13(a0) ^ mul9(a1) ^ mul14(a2) ^ mul11(a3)
		out[3][c] = mul11(a0) ^ mul13(a1) ^ mul9(a2) ^ mul14(a3)
	}

	return out
}

// addRoundKey xors the round key into the state. Self-inverse, and the only
// transformation through which key material enters the pipeline.
func addRoundKey(s, rk State) State {
	var out State

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = s[r][c] ^ rk[r][c]
		}
	}

	return out
}
