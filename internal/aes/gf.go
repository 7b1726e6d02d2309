package aes

// Multiplication in GF(2^8) modulo the AES polynomial x^8 + x^4 + x^3 + x + 1.
// The x^8 term is implicit: whenever a left shift carries out of the top bit,
// the low eight bits of the polynomial (0x1b) are xored back in.

// polyReduce is the reduction constant applied on overflow of the top bit.
const polyReduce = 0x1b

// gfMul multiplies a and b as GF(2) polynomials modulo the AES polynomial,
// using peasant multiplication. Total over the byte range, never overflows.
func gfMul(a, b byte) byte {
	var product byte

	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			product ^= a
		}

		carry := a & 0x80
		a <<= 1

		if carry != 0 {
			a ^= polyReduce
		}

		b >>= 1
	}

	return product
}

// mul2 doubles b in GF(2^8): a left shift with conditional reduction.
func mul2(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ polyReduce
	}

	return b << 1
}

// mul3 is 3·b = 2·b ⊕ b, the second MixColumns coefficient.
func mul3(b byte) byte {
	return mul2(b) ^ b
}

// The InvMixColumns coefficients 9, 11, 13 and 14 decompose into sums of
// powers of two, so each is a composition of doublings and xors.

func mul9(b byte) byte {
	return mul2(mul2(mul2(b))) ^ b
}

func mul11(b byte) byte {
	return mul2(mul2(mul2(b))) ^ mul2(b) ^ b
}

func mul13(b byte) byte {
	return mul2(mul2(mul2(b))) ^ mul2(mul2(b)) ^ b
}

func mul14(b byte) byte {
	return mul2(mul2(mul2(b))) ^ mul2(mul2(b)) ^ mul2(b)
}
