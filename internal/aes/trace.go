package aes

// Observation hooks for consumers that want to watch a block move through the
// round pipeline (the trace command renders these). Traces are built only
// when explicitly requested; Encrypt and Decrypt never record anything.

// TraceStep captures the state after one transformation of a traced block.
type TraceStep struct {
	// Round is the round the step belongs to; 0 covers the initial
	// whitening AddRoundKey and the input itself.
	Round int

	// Step names the transformation that produced State.
	Step string

	// State is the 4×4 matrix after the step.
	State State
}

// RoundKeys returns copies of the 15 expanded round keys in application
// order. Mutating the result does not affect the cipher.
func (c *Cipher) RoundKeys() []State {
	keys := make([]State, numRoundKeys)
	copy(keys, c.roundKeys[:])

	return keys
}

// TraceEncryptBlock encrypts one block like Encrypt while recording the
// state after every transformation. The final step's state flattens to the
// ciphertext block. Same length contract as Encrypt.
func (c *Cipher) TraceEncryptBlock(src []byte) []TraceStep {
	if len(src) < BlockSize {
		panic("goaes: input not full block")
	}

	steps := make([]TraceStep, 0, 4+4*numRounds)

	state := newState(src)
	steps = append(steps, TraceStep{Round: 0, Step: "Input", State: state})

	state = addRoundKey(state, c.roundKeys[0])
	steps = append(steps, TraceStep{Round: 0, Step: "AddRoundKey", State: state})

	record := func(round int, step string, s State) {
		steps = append(steps, TraceStep{Round: round, Step: step, State: s})
	}

	for round := 1; round < numRounds; round++ {
		state = subBytes(state)
		record(round, "SubBytes", state)

		state = shiftRows(state)
		record(round, "ShiftRows", state)

		state = mixColumns(state)
		record(round, "MixColumns", state)

		state = addRoundKey(state, c.roundKeys[round])
		record(round, "AddRoundKey", state)
	}

	state = subBytes(state)
	record(numRounds, "SubBytes", state)

	state = shiftRows(state)
	record(numRounds, "ShiftRows", state)

	state = addRoundKey(state, c.roundKeys[numRounds])
	record(numRounds, "AddRoundKey", state)

	return steps
}

// TraceDecryptBlock is the decryption counterpart of TraceEncryptBlock.
func (c *Cipher) TraceDecryptBlock(src []byte) []TraceStep {
	if len(src) < BlockSize {
		panic("goaes: input not full block")
	}

	steps := make([]TraceStep, 0, 4+4*numRounds)

	state := newState(src)
	steps = append(steps, TraceStep{Round: numRounds, Step: "Input", State: state})

	state = addRoundKey(state, c.roundKeys[numRounds])
	steps = append(steps, TraceStep{Round: numRounds, Step: "AddRoundKey", State: state})

	record := func(round int, step string, s State) {
		steps = append(steps, TraceStep{Round: round, Step: step, State: s})
	}

	for round := numRounds - 1; round > 0; round-- {
		state = invShiftRows(state)
		record(round, "InvShiftRows", state)

		state = invSubBytes(state)
		record(round, "InvSubBytes", state)

		state = addRoundKey(state, c.roundKeys[round])
		record(round, "AddRoundKey", state)

		state = invMixColumns(state)
		record(round, "InvMixColumns", state)
	}

	state = invShiftRows(state)
	record(0, "InvShiftRows", state)

	state = invSubBytes(state)
	record(0, "InvSubBytes", state)

	state = addRoundKey(state, c.roundKeys[0])
	record(0, "AddRoundKey", state)

	return steps
}
