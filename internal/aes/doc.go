// Package aes implements the AES-256 block cipher (FIPS-197) from first
// principles: GF(2^8) arithmetic, the S-box driven key schedule, the four
// round transformations and their inverses, and the 14-round block pipeline.
// The Cipher type satisfies crypto/cipher.Block so callers can consume it
// exactly like the standard library implementation.
package aes
