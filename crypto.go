package padlock

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Cipher is an interface used for encrypting and decrypting byte slices.
type Cipher interface {
	Encrypt(data []byte, key []byte) ([]byte, error)
	Decrypt(data []byte, key []byte) ([]byte, error)
}

// XORCipher is a struct and method set that conforms to the Cipher interface.
// It applies a byte-wise XOR of data against key, cycling the key when it is
// shorter than the data. XOR is its own inverse, so Encrypt and Decrypt are
// the same transform.
//
// Key cycling keeps the transform total for any non-empty key, but a cycled
// key is not a one-time pad: information-theoretic security requires a key at
// least as long as the data, used once. Strict makes the cipher enforce that
// length requirement instead of cycling.
type XORCipher struct {
	Strict bool
}

// NewXORCipher returns the default key-cycling XORCipher.
func NewXORCipher() XORCipher {
	return XORCipher{}
}

// NewStrictXORCipher returns an XORCipher that rejects keys shorter than the
// data rather than cycling them.
func NewStrictXORCipher() XORCipher {
	return XORCipher{Strict: true}
}

// Encrypt takes byte slices for data and a key and returns the XOR transform
// of the two.
func (x XORCipher) Encrypt(data []byte, key []byte) ([]byte, error) {
	return x.transform(data, key)
}

// Decrypt takes byte slices for data and key and returns the XOR transform of
// the two. Decrypting a ciphertext with the key that produced it recovers the
// original data.
func (x XORCipher) Decrypt(data []byte, key []byte) ([]byte, error) {
	return x.transform(data, key)
}

func (x XORCipher) transform(data []byte, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if x.Strict && len(key) < len(data) {
		return nil, fmt.Errorf("%w: key %d bytes, data %d bytes", ErrShortKey, len(key), len(data))
	}
	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ key[i%len(key)]
	}
	return out, nil
}

// KeyGenerator produces single-use pad keys. Rand is the entropy source and
// defaults to crypto/rand; tests inject a deterministic reader. The generator
// holds no state between calls.
type KeyGenerator struct {
	Rand io.Reader
}

// NewKeyGenerator returns a KeyGenerator backed by crypto/rand.
func NewKeyGenerator() KeyGenerator {
	return KeyGenerator{Rand: rand.Reader}
}

// Generate returns length bytes drawn uniformly from the full byte range.
// Requests for zero or negative lengths are rejected with ErrKeyLength; a pad
// with no bytes cannot encrypt anything.
func (g KeyGenerator) Generate(length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrKeyLength, length)
	}
	r := g.Rand
	if r == nil {
		r = rand.Reader
	}
	key := make([]byte, length)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomness, err)
	}
	return key, nil
}
