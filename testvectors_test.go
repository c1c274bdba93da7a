package argon2

import (
	"encoding/hex"
	"fmt"
	"testing"
)

// hashTest is one published reference vector: password "password",
// salt "somesalt", version 19, 32-byte digest, from the reference
// implementation's test suite. The encoded field is set where the
// reference publishes the full PHC string.
type hashTest struct {
	variant     Variant
	timeCost    uint32
	memoryKiB   uint32
	parallelism uint32
	hexDigest   string
	encoded     string
}

var referenceVectors = []hashTest{
	{
		variant:     VariantI,
		timeCost:    2,
		memoryKiB:   65536,
		parallelism: 1,
		hexDigest:   "c1628832147d9720c5bd1cfd61367078729f6dfb6f8fea9ff98158e0d7816ed0",
		encoded:     "$argon2i$v=19$m=65536,t=2,p=1$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA",
	},
	{
		variant:     VariantI,
		timeCost:    2,
		memoryKiB:   256,
		parallelism: 1,
		hexDigest:   "89e9029f4637b295beb027056a7336c414fadd43f6b208645281cb214a56452f",
	},
	{
		variant:     VariantI,
		timeCost:    2,
		memoryKiB:   256,
		parallelism: 2,
		hexDigest:   "4ff5ce2769a1d7f4c8a491df09d41a9fbe90e5eb02155a13e4c01e20cd4eab61",
	},
	{
		variant:     VariantI,
		timeCost:    1,
		memoryKiB:   65536,
		parallelism: 1,
		hexDigest:   "d168075c4d985e13ebeae560cf8b94c3b5d8a16c51916b6f4ac2da3ac11bbecf",
	},
	{
		variant:     VariantI,
		timeCost:    4,
		memoryKiB:   65536,
		parallelism: 1,
		hexDigest:   "aaa953d58af3706ce3df1aefd4a64a84e31d7f54175231f1285259f88174ce5b",
	},
	{
		variant:     VariantI,
		timeCost:    2,
		memoryKiB:   65536,
		parallelism: 2,
		hexDigest:   "6ddc8266648206d8b32a798f1f381d4a0b74574c0ec810547e99e3ad9593bb15",
	},
	{
		variant:     VariantID,
		timeCost:    2,
		memoryKiB:   65536,
		parallelism: 1,
		hexDigest:   "09316115d5cf24ed5a15a31a3ba326e5cf32edc24702987c02b6566f61913cf7",
		encoded:     "$argon2id$v=19$m=65536,t=2,p=1$c29tZXNhbHQ$CTFhFdXPJO1aFaMaO6Mm5c8y7cJHAph8ArZWb2GRPPc",
	},
}

// TestHash_ReferenceVectors reproduces the documented digests of the
// reference implementation for Argon2i and Argon2id, raw and encoded.
// Argon2d coverage at published parameters lives with the RFC 9106
// known-answer tests in internal/core, which also exercise the secret
// and associated-data inputs.
func TestHash_ReferenceVectors(t *testing.T) {
	password := []byte("password")
	salt := []byte("somesalt")

	for _, tv := range referenceVectors {
		name := fmt.Sprintf("%s/t=%d,m=%d,p=%d", tv.variant, tv.timeCost, tv.memoryKiB, tv.parallelism)

		t.Run(name, func(t *testing.T) {
			params := Params{
				Variant:     tv.variant,
				TimeCost:    tv.timeCost,
				MemoryKiB:   tv.memoryKiB,
				Parallelism: tv.parallelism,
				KeyLength:   32,
			}

			digest, err := Hash(password, salt, params)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}

			if got := hex.EncodeToString(digest); got != tv.hexDigest {
				t.Errorf("digest = %s, want %s", got, tv.hexDigest)
			}

			if tv.encoded != "" {
				encoded, err := HashEncoded(password, salt, params)
				if err != nil {
					t.Fatalf("HashEncoded() error = %v", err)
				}
				if encoded != tv.encoded {
					t.Errorf("encoded = %s, want %s", encoded, tv.encoded)
				}
			}
		})
	}
}

// TestVerify_ReferenceEncodedForms verifies stored hashes as the
// reference implementation would have written them — the
// interoperability the encoded format exists for.
func TestVerify_ReferenceEncodedForms(t *testing.T) {
	for _, tv := range referenceVectors {
		if tv.encoded == "" {
			continue
		}

		ok, err := Verify(tv.encoded, []byte("password"))
		if err != nil {
			t.Fatalf("Verify(%s) error = %v", tv.encoded, err)
		}
		if !ok {
			t.Errorf("Verify(%s) = false with the correct password", tv.encoded)
		}

		ok, err = Verify(tv.encoded, []byte("passw0rd"))
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		if ok {
			t.Errorf("Verify(%s) = true with the wrong password", tv.encoded)
		}
	}
}
