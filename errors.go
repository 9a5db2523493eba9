package padlock

import "errors"

// Stable error values for the cipher engine and bundle store. Callers should
// match against these with errors.Is since most are returned wrapped with
// call-site context.
var (
	// ErrEncoding is returned when a message contains a character that
	// does not fit in a single byte.
	ErrEncoding = errors.New("character out of single-byte range")
	// ErrDecoding is returned for malformed hexadecimal text.
	ErrDecoding = errors.New("malformed hex")
	// ErrEmptyKey is returned when a zero-length key reaches the cipher.
	ErrEmptyKey = errors.New("empty key")
	// ErrShortKey is returned in strict mode when the key is shorter than
	// the data it is asked to transform.
	ErrShortKey = errors.New("key shorter than data")
	// ErrKeyLength is returned for non-positive key generation requests.
	ErrKeyLength = errors.New("invalid key length")
	// ErrRandomness is returned when the entropy source cannot be read.
	ErrRandomness = errors.New("randomness unavailable")
	// ErrNotFound is returned when no bundle exists at the requested path.
	ErrNotFound = errors.New("bundle not found")
	// ErrParse is returned when stored bundle content is not well formed.
	ErrParse = errors.New("invalid bundle content")
)
