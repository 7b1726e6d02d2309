package aes

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// KeySize is the AES-256 key size in bytes.
	KeySize = 32

	// numRounds is the round count for 256-bit keys.
	numRounds = 14

	// numRoundKeys is one round key per round plus the initial whitening key.
	numRoundKeys = numRounds + 1
)

// Cipher is an AES-256 block cipher instance. It holds the expanded round
// keys, which are computed once and read-only thereafter, so a single Cipher
// is safe for concurrent use across blocks.
type Cipher struct {
	roundKeys [numRoundKeys]State
}

// New expands key into round keys and returns a ready cipher.
// The key must be exactly 32 bytes; anything else is ErrInvalidKeyLength.
func New(key []byte) (*Cipher, error) {
	roundKeys, err := expandKey(key)
	if err != nil {
		return nil, err
	}

	return &Cipher{roundKeys: roundKeys}, nil
}

// BlockSize returns the cipher's block size, satisfying crypto/cipher.Block.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block of src into dst (crypto/cipher.Block
// contract: panics if either slice is shorter than a block).
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("goaes: input not full block")
	}

	if len(dst) < BlockSize {
		panic("goaes: output not full block")
	}

	state := addRoundKey(newState(src), c.roundKeys[0])

	for round := 1; round < numRounds; round++ {
		state = addRoundKey(mixColumns(shiftRows(subBytes(state))), c.roundKeys[round])
	}

	// Final round skips MixColumns.
	state = addRoundKey(shiftRows(subBytes(state)), c.roundKeys[numRounds])

	block := state.Bytes()
	copy(dst, block[:])
}

// Decrypt decrypts the first block of src into dst, mirroring Encrypt with
// the inverse transformations and the round keys in reverse order.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("goaes: input not full block")
	}

	if len(dst) < BlockSize {
		panic("goaes: output not full block")
	}

	state := addRoundKey(newState(src), c.roundKeys[numRounds])

	for round := numRounds - 1; round > 0; round-- {
		state = invMixColumns(addRoundKey(invSubBytes(invShiftRows(state)), c.roundKeys[round]))
	}

	// Final round skips InvMixColumns.
	state = addRoundKey(invSubBytes(invShiftRows(state)), c.roundKeys[0])

	block := state.Bytes()
	copy(dst, block[:])
}
