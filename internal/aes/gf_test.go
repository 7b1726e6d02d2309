package aes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGfMulKnownProducts(t *testing.T) {
	tests := []struct {
		name    string
		a, b    byte
		product byte
	}{
		{"FIPS-197 §4.2 example", 0x57, 0x83, 0xc1},
		{"FIPS-197 §4.2.1 example", 0x57, 0x13, 0xfe},
		{"doubling", 0x57, 0x02, 0xae},
		{"quadrupling", 0x57, 0x04, 0x47},
		{"identity", 0xab, 0x01, 0xab},
		{"zero absorbs", 0xff, 0x00, 0x00},
		{"reduction fires", 0x80, 0x02, 0x1b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.product, gfMul(tt.a, tt.b))
			assert.Equal(t, tt.product, gfMul(tt.b, tt.a), "multiplication must commute")
		})
	}
}

func TestConstantMultipliersMatchGfMul(t *testing.T) {
	// The composed multipliers must agree with the general routine over the
	// whole byte range; they exist only to spell out the InvMixColumns
	// coefficients as doublings.
	muls := []struct {
		coeff byte
		fn    func(byte) byte
	}{
		{2, mul2},
		{3, mul3},
		{9, mul9},
		{11, mul11},
		{13, mul13},
		{14, mul14},
	}

	for b := 0; b < 256; b++ {
		for _, m := range muls {
			assert.Equal(t, gfMul(byte(b), m.coeff), m.fn(byte(b)), "coefficient %d at %#02x", m.coeff, b)
		}
	}
}

func TestGfMulDistributesOverXor(t *testing.T) {
	// a·(b⊕c) == a·b ⊕ a·c, spot-checked on a spread of values.
	values := []byte{0x00, 0x01, 0x02, 0x1b, 0x53, 0x80, 0xaa, 0xff}

	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				assert.Equal(t, gfMul(a, b^c), gfMul(a, b)^gfMul(a, c))
			}
		}
	}
}
