package core

// addressGenerator produces the pseudo-random words for data-independent
// addressing (Argon2i, and the first half of Argon2id's first pass).
//
// The stream is seeded entirely by public position counters, never by
// memory contents, so the access pattern is fixed for a given parameter
// set. That is the property that defeats cache-timing recovery of the
// password: an attacker observing which blocks were touched learns
// nothing they could not compute themselves.
//
// Address words are generated a block at a time: an input block holding
// {pass, lane, slice, total blocks, total passes, variant, counter} is
// run through the compression function twice against the zero block,
// yielding 128 addresses. The counter increments on every refill.
//
// Reference: RFC 9106 section 3.4.1.2.
type addressGenerator struct {
	in        Block
	addresses Block
	filled    bool
}

func newAddressGenerator(pos *Position, memoryBlocks, passes, variant uint32) *addressGenerator {
	gen := &addressGenerator{}
	gen.in[0] = uint64(pos.Pass)
	gen.in[1] = uint64(pos.Lane)
	gen.in[2] = uint64(pos.Slice)
	gen.in[3] = uint64(memoryBlocks)
	gen.in[4] = uint64(passes)
	gen.in[5] = uint64(variant)
	return gen
}

// next returns the address word for the block at the given index within
// the current segment. Words are consumed by absolute segment index, so
// the first two blocks of pass 0, slice 0 — seeded from H0, never
// filled — still use up their slots.
func (gen *addressGenerator) next(index uint32) uint64 {
	if index%QWordsInBlock == 0 || !gen.filled {
		gen.refill()
	}
	return gen.addresses[index%QWordsInBlock]
}

func (gen *addressGenerator) refill() {
	var zero Block
	gen.in[6]++
	fillBlock(&gen.in, &zero, &gen.addresses, false)
	fillBlock(&gen.addresses, &zero, &gen.addresses, false)
	gen.filled = true
}
