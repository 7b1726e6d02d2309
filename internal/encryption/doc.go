// Package encryption applies the from-scratch AES-256 cipher to
// arbitrary-length data: PKCS#7 padding, independent per-block processing
// (optionally parallel across worker goroutines), the hex ciphertext codec,
// key parsing and passphrase derivation, and the concurrent file processor.
//
// Blocks are processed independently with the same round keys - there is no
// chaining mode, IV or authentication tag. Identical plaintext blocks yield
// identical ciphertext blocks; the format is deterministic by construction.
package encryption
