package core

// fBlaMka is the multiplicative addition used by Argon2's permutation:
//
//	fBlaMka(x, y) = x + y + 2 * lo32(x) * lo32(y)
//
// This replaces the plain modular addition of the BLAKE2b G function.
// The 32x32->64 multiplication forces a latency chain that is hard to
// shortcut in hardware, which is what gives Argon2 its compute-hardness
// on top of the memory-hardness of the filling schedule.
//
// Reference: RFC 9106 section 3.5.
func fBlaMka(x, y uint64) uint64 {
	m := uint64(uint32(x)) * uint64(uint32(y))
	return x + y + 2*m
}

// g is the Argon2 variant of the BLAKE2b G mixing function. It takes
// four 64-bit words and applies two add-rotate rounds, with fBlaMka in
// place of BLAKE2b's plain addition.
//
// Reference: BLAKE2b specification section 3.2, RFC 9106 section 3.5.
func g(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = fBlaMka(a, b)
	d = rotr64(d^a, 32)
	c = fBlaMka(c, d)
	b = rotr64(b^c, 24)

	a = fBlaMka(a, b)
	d = rotr64(d^a, 16)
	c = fBlaMka(c, d)
	b = rotr64(b^c, 63)

	return a, b, c, d
}

// rotr64 rotates x right by n bits.
func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// permute applies the Argon2 round function P to 16 words in place.
//
// P is one round of the BLAKE2b compression pattern: g over the four
// columns of the 4x4 word matrix, then g over the four diagonals. The
// block compression applies P first to the rows and then to the columns
// of the 8x8 register matrix that makes up a 1024-byte block.
func permute(v *[16]uint64) {
	// Column step.
	v[0], v[4], v[8], v[12] = g(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = g(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = g(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = g(v[3], v[7], v[11], v[15])

	// Diagonal step.
	v[0], v[5], v[10], v[15] = g(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = g(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = g(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = g(v[3], v[4], v[9], v[14])
}
