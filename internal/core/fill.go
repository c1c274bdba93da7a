package core

import "sync"

// Argon2 variant identifiers. The values are fixed by the specification:
// they are hashed into H0 and seeded into the address stream, so they
// are part of the wire format, not an implementation detail.
const (
	VariantD  = 0 // data-dependent addressing throughout
	VariantI  = 1 // data-independent addressing throughout
	VariantID = 2 // independent for the first half of pass 0, dependent after
)

// fillMemory drives the filling of the whole matrix: passes passes over
// the memory, each pass split into SyncPoints slices, each slice filled
// by one goroutine per lane.
//
// The WaitGroup barrier at every slice boundary is the engine's only
// synchronization and its only blocking point. It is required because a
// block in slice k+1 may reference slice-k blocks of any lane; within
// one slice a lane only writes its own blocks and only reads blocks of
// slices that have already crossed the barrier, so no further locking
// is needed.
func fillMemory(memory []Block, variant, passes, lanes uint32) {
	laneLength := uint32(len(memory)) / lanes
	segmentLength := laneLength / SyncPoints

	for pass := uint32(0); pass < passes; pass++ {
		for slice := uint32(0); slice < SyncPoints; slice++ {
			var wg sync.WaitGroup
			for lane := uint32(0); lane < lanes; lane++ {
				wg.Add(1)
				go func(lane uint32) {
					defer wg.Done()
					fillSegment(memory, variant, passes, pass, lane, slice, segmentLength, laneLength, lanes)
				}(lane)
			}
			wg.Wait()
		}
	}
}

// fillSegment fills one segment of one lane: for each block, pick a
// reference block via the variant's addressing policy and compress the
// previous block with it into the current slot.
func fillSegment(memory []Block, variant, passes, pass, lane, slice, segmentLength, laneLength, lanes uint32) {
	// Argon2id switches policy halfway through the first pass: slices 0
	// and 1 use the side-channel-resistant independent stream, everything
	// after runs in the faster data-dependent mode.
	dataIndependent := variant == VariantI ||
		(variant == VariantID && pass == 0 && slice < SyncPoints/2)

	pos := Position{Pass: pass, Lane: lane, Slice: slice}

	var addresses *addressGenerator
	if dataIndependent {
		addresses = newAddressGenerator(&pos, uint32(len(memory)), passes, variant)
	}

	index := uint32(0)
	if pass == 0 && slice == 0 {
		// Blocks 0 and 1 of every lane are seeded from H0.
		index = 2
	}

	for ; index < segmentLength; index++ {
		curOffset := lane*laneLength + slice*segmentLength + index

		// The previous block wraps to the end of the lane at the start
		// of a pass (only reachable for pass > 0).
		prevOffset := curOffset - 1
		if slice == 0 && index == 0 {
			prevOffset = curOffset + laneLength - 1
		}

		var pseudoRand uint64
		if dataIndependent {
			pseudoRand = addresses.next(index)
		} else {
			pseudoRand = memory[prevOffset][0]
		}

		pos.Index = index
		refLane, refIndex := indexAlpha(&pos, pseudoRand, lanes, segmentLength, laneLength)

		fillBlock(&memory[prevOffset], &memory[refLane*laneLength+refIndex],
			&memory[curOffset], pass > 0)
	}
}
