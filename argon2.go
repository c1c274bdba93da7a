// Package argon2 provides a pure-Go implementation of the Argon2
// password-hashing family — Argon2d, Argon2i, and Argon2id — as
// specified by RFC 9106, including the PHC string encoding used to
// store hashes alongside their parameters.
//
// Example usage:
//
//	encoded, err := argon2.HashEncoded([]byte("s3cret"), salt, argon2.Params{
//	    Variant:     argon2.VariantID,
//	    TimeCost:    3,
//	    MemoryKiB:   64 * 1024,
//	    Parallelism: 2,
//	    KeyLength:   32,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := argon2.Verify(encoded, []byte("s3cret"))
//
// Hash and HashEncoded are deterministic: the caller supplies the salt,
// and identical inputs always produce identical output. Use a fresh
// random salt of at least 8 bytes (16 recommended) per password.
package argon2

import (
	"crypto/subtle"
	"math"

	"github.com/opd-ai/go-argon2/internal/core"
)

// Version is the Argon2 version number produced and accepted by this
// package (0x13, decimal 19, the current and final version).
const Version = core.Version

// Variant selects the block-addressing policy. All three variants share
// the same filling and finalization; they differ only in how reference
// blocks are chosen.
type Variant int

const (
	// VariantD is Argon2d: data-dependent addressing throughout.
	// Fastest and strongest against time-memory trade-offs, but the
	// memory access pattern depends on the secret input, so it leaks
	// under cache-timing observation. Suited to proof-of-work and
	// server-side keys, not to shared hardware.
	VariantD Variant = 0

	// VariantI is Argon2i: data-independent addressing throughout.
	// The access pattern is a public function of the parameters, which
	// defeats side-channel recovery at some cost in trade-off
	// resistance.
	VariantI Variant = 1

	// VariantID is Argon2id, the hybrid recommended by RFC 9106 for
	// password hashing: data-independent for the first half of the
	// first pass, data-dependent afterwards.
	VariantID Variant = 2
)

// String returns the lowercase identifier used in encoded hashes.
func (v Variant) String() string {
	switch v {
	case VariantD:
		return "argon2d"
	case VariantI:
		return "argon2i"
	case VariantID:
		return "argon2id"
	default:
		return "argon2(invalid)"
	}
}

// ParseVariant maps an identifier ("argon2d", "argon2i", "argon2id")
// back to its Variant. The second return value is false for anything
// else.
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "argon2d":
		return VariantD, true
	case "argon2i":
		return VariantI, true
	case "argon2id":
		return VariantID, true
	default:
		return 0, false
	}
}

// Hash computes a raw Argon2 digest of p.KeyLength bytes.
//
// The parameters are validated before any memory is allocated; the
// returned error is one of the ErrorCode values. The memory cost may be
// rounded down to a multiple of 4*Parallelism — use HashEncoded when
// the effective parameters need to be stored for later verification.
func Hash(password, salt []byte, p Params) ([]byte, error) {
	p, err := p.normalized()
	if err != nil {
		return nil, err
	}
	if err := checkInputs(password, salt); err != nil {
		return nil, err
	}

	key := core.Key(uint32(p.Variant), password, salt, p.Secret, p.AssociatedData,
		p.TimeCost, p.MemoryKiB, p.Parallelism, p.KeyLength)
	return key, nil
}

// HashEncoded computes a digest and returns it serialized in the PHC
// string form together with the variant, version, effective cost
// parameters, and salt:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<base64 salt>$<base64 digest>
//
// Base64 is the standard alphabet without padding. The encoded string
// is self-contained: Verify needs nothing but it and a candidate
// password.
func HashEncoded(password, salt []byte, p Params) (string, error) {
	p, err := p.normalized()
	if err != nil {
		return "", err
	}
	if err := checkInputs(password, salt); err != nil {
		return "", err
	}

	key := core.Key(uint32(p.Variant), password, salt, p.Secret, p.AssociatedData,
		p.TimeCost, p.MemoryKiB, p.Parallelism, p.KeyLength)
	return encodeHash(p.Variant, p.MemoryKiB, p.TimeCost, p.Parallelism, salt, key), nil
}

// Verify decodes an encoded hash, recomputes the digest with the stored
// parameters and the candidate password, and compares in constant time.
//
// It returns (true, nil) on a match and (false, nil) on any well-formed
// non-match — wrong password and wrong variant are indistinguishable by
// design. An error is returned only for input that does not parse as an
// encoded Argon2 hash, and it is always ErrDecodingFail, regardless of
// which field was malformed.
func Verify(encoded string, password []byte) (bool, error) {
	d, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	computed, err := Hash(password, d.salt, Params{
		Variant:     d.variant,
		TimeCost:    d.timeCost,
		MemoryKiB:   d.memoryKiB,
		Parallelism: d.parallelism,
		KeyLength:   uint32(len(d.digest)),
	})
	if err != nil {
		// Parameters that decode but cannot hash (digest shorter than
		// the minimum, memory below the floor for the stored lane
		// count) mean the record is not a valid hash. Collapse the
		// detail so nothing about the stored record leaks.
		return false, ErrDecodingFail
	}

	return subtle.ConstantTimeCompare(computed, d.digest) == 1, nil
}

// checkInputs validates the per-call byte inputs that Params does not
// carry.
func checkInputs(password, salt []byte) error {
	if uint64(len(password)) > math.MaxUint32 {
		return ErrPwdTooLong
	}
	if len(salt) < MinSaltLength {
		return ErrSaltTooShort
	}
	if uint64(len(salt)) > math.MaxUint32 {
		return ErrSaltTooLong
	}
	return nil
}
