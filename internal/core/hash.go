// Package core implements the Argon2 memory-hard function itself: the
// compression function, the block-filling schedule with its two
// addressing policies, lane parallelism, and the finalizer. It is a
// pure engine — parameter validation, encoding, and verification live
// in the public package, and by the time Key is called every parameter
// is assumed to be in range and the memory size already rounded.
//
// The memory matrix is allocated per call and owned by that call; there
// is no package-level state, and two concurrent calls share nothing.
package core

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Version is the Argon2 version implemented here (0x13, decimal 19).
const Version = 0x13

// MinSyncBlocks is the smallest legal number of blocks per lane:
// 2 blocks per segment times SyncPoints segments.
const MinSyncBlocks = 2 * SyncPoints

// initialHash computes H0, the 64-byte seed from which the first two
// blocks of every lane are derived.
//
//	H0 = BLAKE2b-512( lanes ‖ tagLength ‖ memory ‖ passes ‖ version ‖
//	                  variant ‖ len(password) ‖ password ‖
//	                  len(salt) ‖ salt ‖ len(secret) ‖ secret ‖
//	                  len(data) ‖ data )
//
// with every integer encoded as little-endian uint32. H0 binds all cost
// parameters as well as the inputs, so two hashes can only collide if
// every parameter matches.
func initialHash(variant, lanes, tagLength, memory, passes uint32,
	password, salt, secret, data []byte) [64]byte {

	input := make([]byte, 0, 10*4+len(password)+len(salt)+len(secret)+len(data))
	var n [4]byte

	putUint32 := func(v uint32) {
		binary.LittleEndian.PutUint32(n[:], v)
		input = append(input, n[:]...)
	}

	putUint32(lanes)
	putUint32(tagLength)
	putUint32(memory)
	putUint32(passes)
	putUint32(Version)
	putUint32(variant)

	putUint32(uint32(len(password)))
	input = append(input, password...)
	putUint32(uint32(len(salt)))
	input = append(input, salt...)
	putUint32(uint32(len(secret)))
	input = append(input, secret...)
	putUint32(uint32(len(data)))
	input = append(input, data...)

	return blake2b.Sum512(input)
}

// initBlocks seeds the first two blocks of each lane from H0:
//
//	B[lane][0] = H'(H0 ‖ 0 ‖ lane, 1024)
//	B[lane][1] = H'(H0 ‖ 1 ‖ lane, 1024)
//
// where the two counters are little-endian uint32 and H' is the
// variable-length hash.
func initBlocks(memory []Block, lanes uint32, h0 [64]byte) {
	laneLength := uint32(len(memory)) / lanes

	input := make([]byte, 72) // H0 ‖ block index ‖ lane index
	copy(input[:64], h0[:])

	for lane := uint32(0); lane < lanes; lane++ {
		binary.LittleEndian.PutUint32(input[68:72], lane)

		binary.LittleEndian.PutUint32(input[64:68], 0)
		memory[lane*laneLength].FromBytes(blake2bLong(input, BlockSize))

		binary.LittleEndian.PutUint32(input[64:68], 1)
		memory[lane*laneLength+1].FromBytes(blake2bLong(input, BlockSize))
	}
}

// extractKey finalizes: XOR the last block of every lane together and
// run the result through the variable-length hash to produce exactly
// tagLength bytes. Only the lane tails participate — the rest of the
// matrix influences them through the filling schedule.
func extractKey(memory []Block, lanes, tagLength uint32) []byte {
	laneLength := uint32(len(memory)) / lanes

	var final Block
	for lane := uint32(0); lane < lanes; lane++ {
		final.XOR(&memory[lane*laneLength+laneLength-1])
	}

	tag := blake2bLong(final.ToBytes(), tagLength)
	final.Zero()
	return tag
}

// Key computes an Argon2 digest. It is the engine's single entry point.
//
// The caller must have validated the parameters: passes >= 1, lanes in
// range, memoryBlocks a multiple of SyncPoints*lanes with at least
// MinSyncBlocks blocks per lane, tagLength >= 4. memoryBlocks equals
// the memory cost in KiB, since one block is 1 KiB.
//
// Identical inputs always produce identical output; the lane goroutines
// inside fillMemory are fenced so that the schedule is deterministic.
func Key(variant uint32, password, salt, secret, data []byte,
	passes, memoryBlocks, lanes, tagLength uint32) []byte {

	h0 := initialHash(variant, lanes, tagLength, memoryBlocks, passes,
		password, salt, secret, data)

	// The matrix: memoryBlocks KiB, live for this call only.
	memory := make([]Block, memoryBlocks)

	initBlocks(memory, lanes, h0)
	fillMemory(memory, variant, passes, lanes)

	return extractKey(memory, lanes, tagLength)
}
