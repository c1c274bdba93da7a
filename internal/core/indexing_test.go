package core

import "testing"

// probeWords is a spread of pseudo-random values covering the edges of
// both the lane-selection (high) and position-selection (low) words.
var probeWords = []uint64{
	0,
	1,
	0x7FFFFFFF,
	0x80000000,
	0xFFFFFFFF,
	0x00000001_00000000,
	0xDEADBEEF_CAFEF00D,
	0xFFFFFFFF_FFFFFFFF,
}

// TestIndexAlpha_FirstPassFirstSlice verifies the tightest window: only
// earlier blocks of the same segment, always in the caller's own lane.
func TestIndexAlpha_FirstPassFirstSlice(t *testing.T) {
	const (
		lanes         = 4
		segmentLength = 16
		laneLength    = 64
	)

	for index := uint32(2); index < segmentLength; index++ {
		pos := Position{Pass: 0, Lane: 2, Slice: 0, Index: index}
		for _, rand := range probeWords {
			refLane, refIndex := indexAlpha(&pos, rand, lanes, segmentLength, laneLength)

			if refLane != pos.Lane {
				t.Fatalf("index %d rand %#x: refLane = %d, want own lane %d",
					index, rand, refLane, pos.Lane)
			}
			if refIndex >= index {
				t.Fatalf("index %d rand %#x: refIndex = %d, must precede current block",
					index, rand, refIndex)
			}
		}
	}
}

// TestIndexAlpha_FirstPassLaterSlices verifies cross-lane references
// stay within completed segments and same-lane references may extend
// into the current segment's progress.
func TestIndexAlpha_FirstPassLaterSlices(t *testing.T) {
	const (
		lanes         = 4
		segmentLength = 16
		laneLength    = 64
	)

	for slice := uint32(1); slice < SyncPoints; slice++ {
		for _, index := range []uint32{0, 1, 7, segmentLength - 1} {
			pos := Position{Pass: 0, Lane: 1, Slice: slice, Index: index}
			for _, rand := range probeWords {
				refLane, refIndex := indexAlpha(&pos, rand, lanes, segmentLength, laneLength)

				if refLane >= lanes {
					t.Fatalf("refLane = %d out of range", refLane)
				}
				if refLane == pos.Lane {
					// Own lane: anything before the current block.
					if refIndex >= slice*segmentLength+index && index > 0 {
						t.Fatalf("slice %d index %d rand %#x: same-lane refIndex = %d too new",
							slice, index, rand, refIndex)
					}
				} else {
					// Other lane: only finished segments.
					if refIndex >= slice*segmentLength {
						t.Fatalf("slice %d index %d rand %#x: cross-lane refIndex = %d in unfinished segment",
							slice, index, rand, refIndex)
					}
				}
			}
		}
	}
}

// TestIndexAlpha_LaterPasses verifies that on passes after the first,
// cross-lane references never land in the segment currently being
// rewritten, and no reference selects the block being written.
func TestIndexAlpha_LaterPasses(t *testing.T) {
	const (
		lanes         = 2
		segmentLength = 16
		laneLength    = 64
	)

	for slice := uint32(0); slice < SyncPoints; slice++ {
		for _, index := range []uint32{0, 1, segmentLength - 1} {
			pos := Position{Pass: 3, Lane: 0, Slice: slice, Index: index}
			for _, rand := range probeWords {
				refLane, refIndex := indexAlpha(&pos, rand, lanes, segmentLength, laneLength)

				if refIndex >= laneLength {
					t.Fatalf("refIndex = %d exceeds lane length", refIndex)
				}

				current := slice*segmentLength + index
				if refLane == pos.Lane && refIndex == current {
					t.Fatalf("slice %d index %d rand %#x: reference selects the block being written",
						slice, index, rand)
				}
				if refLane != pos.Lane &&
					refIndex >= slice*segmentLength && refIndex < (slice+1)*segmentLength {
					t.Fatalf("slice %d index %d rand %#x: cross-lane refIndex = %d inside active segment",
						slice, index, rand, refIndex)
				}
			}
		}
	}
}

// TestIndexAlpha_BiasTowardRecent verifies the quadratic skew: a small
// low word must map near the newest end of the window and a large one
// near the oldest.
func TestIndexAlpha_BiasTowardRecent(t *testing.T) {
	const (
		lanes         = 1
		segmentLength = 256
		laneLength    = 1024
	)
	pos := Position{Pass: 0, Lane: 0, Slice: 3, Index: 200}

	_, newest := indexAlpha(&pos, 0, lanes, segmentLength, laneLength)
	_, oldest := indexAlpha(&pos, 0xFFFFFFFF, lanes, segmentLength, laneLength)

	// Window is [0, 3*256+200-1); rand=0 keeps x^2 term zero, landing on
	// the last window slot; rand=max drives it toward slot 0.
	if want := pos.Slice*segmentLength + pos.Index - 2; newest != want {
		t.Errorf("rand=0 mapped to %d, want newest slot %d", newest, want)
	}
	if oldest > 8 {
		t.Errorf("rand=max mapped to %d, want near the oldest slot", oldest)
	}
	if newest <= oldest {
		t.Errorf("bias inverted: newest=%d oldest=%d", newest, oldest)
	}
}

// TestIndexAlpha_Deterministic verifies the mapping is a pure function.
func TestIndexAlpha_Deterministic(t *testing.T) {
	pos := Position{Pass: 1, Lane: 1, Slice: 2, Index: 5}
	for _, rand := range probeWords {
		l1, i1 := indexAlpha(&pos, rand, 4, 16, 64)
		l2, i2 := indexAlpha(&pos, rand, 4, 16, 64)
		if l1 != l2 || i1 != i2 {
			t.Fatalf("rand %#x: (%d,%d) then (%d,%d)", rand, l1, i1, l2, i2)
		}
	}
}
