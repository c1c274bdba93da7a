package core

const (
	// SyncPoints is the number of segments per pass. Argon2 divides each
	// lane into 4 segments; lanes synchronize at every segment boundary.
	SyncPoints = 4
)

// Position locates one block-filling step in the memory matrix:
// which pass, which lane, which segment (slice) of that lane, and the
// index within the segment.
type Position struct {
	Pass  uint32 // current pass (0 to timeCost-1)
	Lane  uint32 // current lane (0 to lanes-1)
	Slice uint32 // current segment within the pass (0 to SyncPoints-1)
	Index uint32 // current block within the segment
}

// indexAlpha maps a pseudo-random word to the reference block that the
// compression function will combine with the previous block. It returns
// the lane and the in-lane index of the reference.
//
// The high 32 bits of pseudoRand select the reference lane; the low 32
// bits select the block within the window of blocks that are legal to
// reference from this position. How the word was produced is the only
// difference between the variants: Argon2d reads it from the previous
// block's first word (data-dependent), Argon2i from a counter-seeded
// stream (data-independent). The mapping itself is shared.
//
// The window, per RFC 9106 section 3.4:
//   - pass 0, slice 0: only earlier blocks of the same segment, and the
//     reference stays in the caller's own lane;
//   - pass 0, later slices: all blocks of finished segments, plus (in the
//     caller's own lane only) the blocks already written in this segment;
//   - later passes: the three finished segments of the previous window
//     plus, in the caller's own lane, this segment's progress.
//
// The block immediately preceding the current one is always excluded, as
// is the in-progress block of another lane (the Index == 0 adjustment).
//
// Within the window, the low word x is skewed quadratically toward the
// most recent blocks: relative = size - 1 - size*(x^2 >> 32) >> 32. The
// formula must match the reference bit-for-bit; stored hashes are only
// verifiable if every implementation picks identical references.
func indexAlpha(pos *Position, pseudoRand uint64, lanes, segmentLength, laneLength uint32) (refLane, refIndex uint32) {
	refLane = uint32(pseudoRand>>32) % lanes
	if pos.Pass == 0 && pos.Slice == 0 {
		// No other lane has written anything yet.
		refLane = pos.Lane
	}
	sameLane := refLane == pos.Lane

	var referenceAreaSize uint32
	if pos.Pass == 0 {
		if pos.Slice == 0 {
			// Blocks 0 and 1 are seeded before filling starts, so
			// Index >= 2 here and the window is never empty.
			referenceAreaSize = pos.Index - 1
		} else if sameLane {
			referenceAreaSize = pos.Slice*segmentLength + pos.Index - 1
		} else {
			referenceAreaSize = pos.Slice * segmentLength
			if pos.Index == 0 {
				referenceAreaSize--
			}
		}
	} else {
		if sameLane {
			referenceAreaSize = laneLength - segmentLength + pos.Index - 1
		} else {
			referenceAreaSize = laneLength - segmentLength
			if pos.Index == 0 {
				referenceAreaSize--
			}
		}
	}

	// Quadratic skew toward recent blocks, then inversion so that large
	// pseudo-random values land on old blocks and small ones on new.
	relativePosition := pseudoRand & 0xFFFFFFFF
	relativePosition = (relativePosition * relativePosition) >> 32
	relativePosition = uint64(referenceAreaSize) - 1 -
		(uint64(referenceAreaSize)*relativePosition)>>32

	// On later passes the window starts just after the current segment
	// (the lane wraps), except when filling the last segment.
	var startPosition uint32
	if pos.Pass != 0 && pos.Slice != SyncPoints-1 {
		startPosition = (pos.Slice + 1) * segmentLength
	}

	refIndex = (startPosition + uint32(relativePosition)) % laneLength
	return refLane, refIndex
}
