package encryption

import (
	"golang.org/x/sync/errgroup"

	"github.com/ahmedkhursheed2006/goaes/internal/aes"
)

// minParallelBlocks is the block count below which fan-out costs more than
// the cipher work itself and processing stays sequential.
const minParallelBlocks = 32

// EncryptBytes pads data with PKCS#7 and encrypts every 16-byte block
// independently with the same round keys. workers bounds the number of
// goroutines; the output is byte-identical for any worker count.
func EncryptBytes(cipher *aes.Cipher, data []byte, workers int) []byte {
	padded := pkcs7Pad(data)
	out := make([]byte, len(padded))

	cryptBlocks(cipher.Encrypt, out, padded, workers)

	return out
}

// DecryptBytes decrypts every block of data independently and strips the
// padding. The input must be a positive multiple of the block size.
func DecryptBytes(cipher *aes.Cipher, data []byte, workers int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	if len(data)%aes.BlockSize != 0 {
		return nil, ErrInvalidBlockSize
	}

	out := make([]byte, len(data))

	cryptBlocks(cipher.Decrypt, out, data, workers)

	return pkcs7Unpad(out)
}

// cryptBlocks applies the block operation to every block of src, writing to
// the matching offsets of dst. Blocks carry no inter-block state, so spans
// of them are handed to worker goroutines: each writes a disjoint slice of
// dst and reads only the shared round keys, no locking needed.
func cryptBlocks(op func(dst, src []byte), dst, src []byte, workers int) {
	blocks := len(src) / aes.BlockSize

	if workers <= 1 || blocks < minParallelBlocks {
		for off := 0; off < len(src); off += aes.BlockSize {
			op(dst[off:off+aes.BlockSize], src[off:off+aes.BlockSize])
		}

		return
	}

	span := (blocks + workers - 1) / workers

	var group errgroup.Group

	for start := 0; start < blocks; start += span {
		end := start + span
		if end > blocks {
			end = blocks
		}

		first, last := start*aes.BlockSize, end*aes.BlockSize

		group.Go(func() error {
			for off := first; off < last; off += aes.BlockSize {
				op(dst[off:off+aes.BlockSize], src[off:off+aes.BlockSize])
			}

			return nil
		})
	}

	// Workers never return errors; Wait is only a join point.
	_ = group.Wait()
}
