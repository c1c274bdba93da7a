package core

import (
	"encoding/binary"
)

// Block size constants from the Argon2 specification.
const (
	// BlockSize is the size of an Argon2 memory block in bytes.
	BlockSize = 1024

	// QWordsInBlock is the number of 64-bit words in a block (1024 / 8).
	QWordsInBlock = 128
)

// Block is a 1024-byte Argon2 memory block held as 128 uint64 words.
// It is the atomic unit of the memory matrix: the filler produces one
// Block per step and the compression function consumes two.
//
// The algorithm operates on 64-bit words, so the in-memory representation
// is a word array; the byte view (little-endian, per the specification)
// only appears at the boundaries, when blocks are seeded from the initial
// hash and when the final block is fed to the variable-length hash.
type Block [QWordsInBlock]uint64

// XOR folds another block into this one in place: b[i] ^= other[i].
//
// This is the hot mixing primitive, used when combining reference blocks
// during compression and when collapsing lane tails in the finalizer.
func (b *Block) XOR(other *Block) {
	for i := range b {
		b[i] ^= other[i]
	}
}

// Zero clears the block. Used to wipe key-derived material once the
// digest has been extracted; Go gives no hard guarantee the write
// survives optimization, but overwriting is still done on every path
// that drops a block carrying secret-dependent state.
func (b *Block) Zero() {
	for i := range b {
		b[i] = 0
	}
}

// FromBytes loads the block from a 1024-byte little-endian encoding.
// data must be exactly BlockSize bytes; the engine only ever calls this
// with output of the variable-length hash, which has a fixed size.
func (b *Block) FromBytes(data []byte) {
	_ = data[BlockSize-1]
	for i := 0; i < QWordsInBlock; i++ {
		b[i] = binary.LittleEndian.Uint64(data[i*8 : (i+1)*8])
	}
}

// ToBytes returns the 1024-byte little-endian encoding of the block.
func (b *Block) ToBytes() []byte {
	data := make([]byte, BlockSize)
	for i := 0; i < QWordsInBlock; i++ {
		binary.LittleEndian.PutUint64(data[i*8:(i+1)*8], b[i])
	}
	return data
}
