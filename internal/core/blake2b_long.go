package core

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// blake2bLong is H', the variable-length hash of the Argon2
// specification (section 3.3). BLAKE2b caps out at 64 bytes, so longer
// outputs are produced by chaining:
//
//	outlen <= 64:  H'(x) = BLAKE2b(LE32(outlen) ‖ x, outlen)
//	outlen  > 64:  V1 = BLAKE2b(LE32(outlen) ‖ x, 64)
//	               Vi = BLAKE2b(Vi-1, 64)
//	               each Vi contributes its first 32 bytes; the final
//	               block is sized to the remainder and used whole.
//
// The engine calls this in two places with very different sizes: 1024
// bytes when seeding lane blocks from H0, and tagLength bytes in the
// finalizer.
func blake2bLong(input []byte, outlen uint32) []byte {
	prefixed := make([]byte, 4+len(input))
	binary.LittleEndian.PutUint32(prefixed[:4], outlen)
	copy(prefixed[4:], input)

	if outlen <= blake2b.Size {
		h, err := blake2b.New(int(outlen), nil)
		if err != nil {
			// Only reachable for outlen == 0, which validation excludes.
			panic("argon2: blake2bLong: " + err.Error())
		}
		h.Write(prefixed)
		return h.Sum(nil)
	}

	output := make([]byte, outlen)

	h, _ := blake2b.New512(nil)
	h.Write(prefixed)
	v := h.Sum(nil)

	copied := copy(output, v[:32])
	for copied < int(outlen) {
		remaining := int(outlen) - copied

		if remaining > blake2b.Size {
			h, _ = blake2b.New512(nil)
			h.Write(v)
			v = h.Sum(nil)
			copied += copy(output[copied:], v[:32])
			continue
		}

		// Final block: sized exactly to what is left, used in full.
		h, _ = blake2b.New(remaining, nil)
		h.Write(v)
		v = h.Sum(nil)
		copied += copy(output[copied:], v)
	}

	return output
}
