package argon2

// ErrorCode identifies an Argon2 failure. The numeric values and
// message strings follow the reference implementation's error table, so
// codes can be stored, compared, or mapped across language boundaries.
//
// Every ErrorCode is itself an error; the functions in this package
// return these values directly, so callers can match with errors.Is:
//
//	if errors.Is(err, argon2.ErrMemoryTooLittle) { ... }
type ErrorCode int

const (
	// ErrCodeOK is the success code. It is never returned as an error.
	ErrCodeOK ErrorCode = 0

	// ErrOutputTooShort: requested digest shorter than 4 bytes.
	ErrOutputTooShort ErrorCode = -2
	// ErrOutputTooLong: requested digest exceeds the format limit.
	ErrOutputTooLong ErrorCode = -3

	// ErrPwdTooShort / ErrPwdTooLong bound the password length.
	ErrPwdTooShort ErrorCode = -4
	ErrPwdTooLong  ErrorCode = -5

	// ErrSaltTooShort / ErrSaltTooLong bound the salt length.
	ErrSaltTooShort ErrorCode = -6
	ErrSaltTooLong  ErrorCode = -7

	// ErrAdTooLong: associated data exceeds the format limit.
	ErrAdTooLong ErrorCode = -9
	// ErrSecretTooLong: secret exceeds the format limit.
	ErrSecretTooLong ErrorCode = -11

	// ErrTimeTooSmall / ErrTimeTooLarge bound the pass count.
	ErrTimeTooSmall ErrorCode = -12
	ErrTimeTooLarge ErrorCode = -13

	// ErrMemoryTooLittle / ErrMemoryTooMuch bound the memory cost.
	ErrMemoryTooLittle ErrorCode = -14
	ErrMemoryTooMuch   ErrorCode = -15

	// ErrLanesTooFew / ErrLanesTooMany bound the parallelism.
	ErrLanesTooFew  ErrorCode = -16
	ErrLanesTooMany ErrorCode = -17

	// ErrMemoryAllocation: the matrix could not be allocated. Retained
	// for table compatibility; the Go runtime aborts on exhaustion
	// rather than reporting it, so this code is not produced here.
	ErrMemoryAllocation ErrorCode = -22

	// ErrIncorrectType: the variant tag is not d, i, or id.
	ErrIncorrectType ErrorCode = -26

	// ErrThreadsTooFew / ErrThreadsTooMany bound the worker count.
	ErrThreadsTooFew  ErrorCode = -28
	ErrThreadsTooMany ErrorCode = -29

	// ErrEncodingFail: the encoded form could not be produced.
	ErrEncodingFail ErrorCode = -31
	// ErrDecodingFail: the encoded form is malformed. Deliberately
	// carries no detail about which field failed.
	ErrDecodingFail ErrorCode = -32
	// ErrThreadFail: a lane worker could not be started.
	ErrThreadFail ErrorCode = -33
	// ErrDecodingLengthFail: a decoded field has an impossible length.
	ErrDecodingLengthFail ErrorCode = -34
	// ErrVerifyMismatch: the recomputed digest differs from the stored
	// one. Verify reports this as (false, nil), not as an error; the
	// code exists for the message table.
	ErrVerifyMismatch ErrorCode = -35
)

var errorMessages = map[ErrorCode]string{
	ErrCodeOK:             "OK",
	ErrOutputTooShort:     "Output is too short",
	ErrOutputTooLong:      "Output is too long",
	ErrPwdTooShort:        "Password is too short",
	ErrPwdTooLong:         "Password is too long",
	ErrSaltTooShort:       "Salt is too short",
	ErrSaltTooLong:        "Salt is too long",
	ErrAdTooLong:          "Associated data is too long",
	ErrSecretTooLong:      "Secret is too long",
	ErrTimeTooSmall:       "Time cost is too small",
	ErrTimeTooLarge:       "Time cost is too large",
	ErrMemoryTooLittle:    "Memory cost is too small",
	ErrMemoryTooMuch:      "Memory cost is too large",
	ErrLanesTooFew:        "Too few lanes",
	ErrLanesTooMany:       "Too many lanes",
	ErrMemoryAllocation:   "Memory allocation error",
	ErrIncorrectType:      "There is no such type of Argon2",
	ErrThreadsTooFew:      "Too few threads",
	ErrThreadsTooMany:     "Too many threads",
	ErrEncodingFail:       "Encoding failed",
	ErrDecodingFail:       "Decoding failed",
	ErrThreadFail:         "Threading failure",
	ErrDecodingLengthFail: "Some of encoded parameters are too long or too short",
	ErrVerifyMismatch:     "The password does not match the supplied hash",
}

// Error implements the error interface with the code's stable message.
func (c ErrorCode) Error() string {
	return "argon2: " + ErrorMessage(c)
}

// ErrorMessage returns the human-readable message for a code. It is a
// pure lookup with no failure mode: unknown codes get a fixed fallback.
func ErrorMessage(c ErrorCode) string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return "Unknown error code"
}
