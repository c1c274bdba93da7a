package argon2

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// b64 is the encoding used for salt and digest in PHC strings: standard
// alphabet, no padding, and strict decoding so that non-canonical
// trailing bits are rejected rather than silently normalized.
var b64 = base64.RawStdEncoding.Strict()

// encodeHash serializes a computed hash into the PHC string form:
//
//	$<variant>$v=<version>$m=<memory>,t=<time>,p=<lanes>$<salt>$<digest>
//
// Field order is fixed; memory must already be the effective (rounded)
// cost so that decoding reproduces the exact computation.
func encodeHash(variant Variant, memoryKiB, timeCost, parallelism uint32, salt, digest []byte) string {
	var b strings.Builder
	b.Grow(32 + b64.EncodedLen(len(salt)) + b64.EncodedLen(len(digest)))

	b.WriteByte('$')
	b.WriteString(variant.String())
	b.WriteString("$v=")
	b.WriteString(strconv.FormatUint(Version, 10))
	b.WriteString("$m=")
	b.WriteString(strconv.FormatUint(uint64(memoryKiB), 10))
	b.WriteString(",t=")
	b.WriteString(strconv.FormatUint(uint64(timeCost), 10))
	b.WriteString(",p=")
	b.WriteString(strconv.FormatUint(uint64(parallelism), 10))
	b.WriteByte('$')
	b.WriteString(b64.EncodeToString(salt))
	b.WriteByte('$')
	b.WriteString(b64.EncodeToString(digest))

	return b.String()
}

// decodedHash is the structured form of a parsed PHC string.
type decodedHash struct {
	variant     Variant
	memoryKiB   uint32
	timeCost    uint32
	parallelism uint32
	salt        []byte
	digest      []byte
}

// decodeHash parses a PHC string back into its components. Any
// malformation — wrong field count, missing or trailing separators,
// unknown variant, unsupported version, out-of-order or non-numeric
// cost fields, invalid base64 — yields ErrDecodingFail with no further
// detail.
func decodeHash(encoded string) (decodedHash, error) {
	var d decodedHash

	// Exactly "$a$b$c$d$e": six fields, the leading one empty. A
	// trailing '$' produces a seventh field and fails here.
	fields := strings.Split(encoded, "$")
	if len(fields) != 6 || fields[0] != "" {
		return d, ErrDecodingFail
	}

	variant, ok := ParseVariant(fields[1])
	if !ok {
		return d, ErrDecodingFail
	}
	d.variant = variant

	version, err := cutNum(fields[2], "v=")
	if err != nil {
		return d, ErrDecodingFail
	}
	if version != Version {
		return d, ErrDecodingFail
	}

	costs := strings.Split(fields[3], ",")
	if len(costs) != 3 {
		return d, ErrDecodingFail
	}
	if d.memoryKiB, err = cutNum(costs[0], "m="); err != nil {
		return d, ErrDecodingFail
	}
	if d.timeCost, err = cutNum(costs[1], "t="); err != nil {
		return d, ErrDecodingFail
	}
	if d.parallelism, err = cutNum(costs[2], "p="); err != nil {
		return d, ErrDecodingFail
	}

	if d.salt, err = b64.DecodeString(fields[4]); err != nil {
		return d, ErrDecodingFail
	}
	if d.digest, err = b64.DecodeString(fields[5]); err != nil {
		return d, ErrDecodingFail
	}
	if len(d.digest) == 0 {
		return d, ErrDecodingFail
	}

	return d, nil
}

// cutNum parses "<prefix><decimal uint32>", rejecting signs, blanks,
// and anything after the digits.
func cutNum(field, prefix string) (uint32, error) {
	s, ok := strings.CutPrefix(field, prefix)
	if !ok {
		return 0, ErrDecodingFail
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, ErrDecodingFail
	}
	return uint32(n), nil
}
