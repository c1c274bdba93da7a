package argon2

import (
	"math"

	"github.com/opd-ai/go-argon2/internal/core"
)

// Parameter bounds. These follow the reference implementation's limits;
// anything outside them is rejected before memory is allocated.
const (
	// MinKeyLength is the smallest allowed digest length in bytes.
	MinKeyLength = 4

	// MinSaltLength is the smallest allowed salt in bytes.
	MinSaltLength = 8

	// MaxParallelism is the largest allowed lane count (2^24 - 1).
	MaxParallelism = 1<<24 - 1

	// MinMemoryPerLane is the smallest memory cost in KiB per lane:
	// 4 segments of at least 2 blocks each.
	MinMemoryPerLane = core.MinSyncBlocks
)

// Params holds the cost parameters and optional keyed inputs for one
// hashing call. The zero value is not usable; fill in at least Variant,
// TimeCost, MemoryKiB, Parallelism, and KeyLength, or start from
// DefaultParams.
type Params struct {
	// Variant selects Argon2d, Argon2i, or Argon2id.
	Variant Variant

	// TimeCost is the number of passes over the memory. Minimum 1.
	TimeCost uint32

	// MemoryKiB is the memory cost in KiB (one internal block per KiB).
	// Must be at least 8*Parallelism; it is rounded down to a multiple
	// of 4*Parallelism, never up.
	MemoryKiB uint32

	// Parallelism is the number of independent lanes, each filled by
	// its own goroutine. Changing it changes the digest.
	Parallelism uint32

	// KeyLength is the digest length in bytes. Minimum 4.
	KeyLength uint32

	// Secret is an optional key ("pepper") mixed into the initial
	// hash. Unlike the salt it is not stored in the encoded form.
	Secret []byte

	// AssociatedData is optional public data bound into the hash.
	AssociatedData []byte
}

// DefaultParams returns the defaults of the reference distribution this
// engine descends from: 32 passes over 128 KiB on a single lane with a
// 64-byte digest. These trade memory for iterations; for interactive
// logins RFC 9106 favors fewer passes over much more memory (for
// example t=1, m=2 GiB, or t=3, m=64 MiB as in the package example).
func DefaultParams(variant Variant) Params {
	return Params{
		Variant:     variant,
		TimeCost:    32,
		MemoryKiB:   128,
		Parallelism: 1,
		KeyLength:   64,
	}
}

// normalized validates the parameters and returns a copy with the
// memory cost rounded to its effective value. It performs no allocation
// and has no side effects; every failure is one of the ErrorCode
// values.
func (p Params) normalized() (Params, error) {
	switch p.Variant {
	case VariantD, VariantI, VariantID:
	default:
		return p, ErrIncorrectType
	}

	if p.TimeCost < 1 {
		return p, ErrTimeTooSmall
	}
	if p.Parallelism < 1 {
		return p, ErrLanesTooFew
	}
	if p.Parallelism > MaxParallelism {
		return p, ErrLanesTooMany
	}
	if p.KeyLength < MinKeyLength {
		return p, ErrOutputTooShort
	}
	if uint64(len(p.Secret)) > math.MaxUint32 {
		return p, ErrSecretTooLong
	}
	if uint64(len(p.AssociatedData)) > math.MaxUint32 {
		return p, ErrAdTooLong
	}

	// The matrix must hold at least 2 blocks per segment per lane.
	// Too little memory is an error, never a silent clamp upward.
	if p.MemoryKiB < uint32(MinMemoryPerLane)*p.Parallelism {
		return p, ErrMemoryTooLittle
	}

	// Round down to a whole number of blocks per segment: a multiple
	// of SyncPoints * lanes. Rounding never exceeds the caller's value.
	p.MemoryKiB = p.MemoryKiB / (core.SyncPoints * p.Parallelism) *
		(core.SyncPoints * p.Parallelism)

	return p, nil
}
