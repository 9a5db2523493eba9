package padlock

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// fingerprintLength is the number of digest bytes used for the short key
// fingerprint.
const fingerprintLength = 8

// Bundle is the durable record pairing a ciphertext with the pad key that
// produced it, both hex encoded, plus optional metadata. It is created once at
// encryption time and read back once per decryption session.
//
// PlaintextHint stores the original message next to its ciphertext and exists
// only for demos; persisting it defeats the encryption entirely, so sessions
// leave it empty unless explicitly told otherwise.
type Bundle struct {
	CipherHex     string `json:"cipher_hex"`
	KeyHex        string `json:"key_hex"`
	PlaintextHint string `json:"plaintext_hint,omitempty"`
	Checksum      string `json:"checksum,omitempty"`
}

// NewBundle hex-encodes cipher and key into a Bundle and stamps it with an
// integrity checksum.
func NewBundle(cipher, key []byte, hint string) Bundle {
	return Bundle{
		CipherHex:     BytesToHex(cipher),
		KeyHex:        BytesToHex(key),
		PlaintextHint: hint,
		Checksum:      checksum(cipher, key),
	}
}

// ToJSON is a helper method to make it easier to convert a Bundle to JSON
func (b Bundle) ToJSON() []byte {
	d, _ := json.MarshalIndent(b, "", "  ")
	return d
}

// NewBundleFromJSON parses serialized bundle bytes and validates the result.
func NewBundleFromJSON(data []byte) (Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return Bundle{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := b.Validate(); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

// Validate checks that the required fields are present and hold well-formed
// hex, and that the checksum, when present, matches. It does not require
// cipher and key to be the same length; that is only checked when the cipher
// engine is actually invoked.
func (b Bundle) Validate() error {
	if b.CipherHex == "" {
		return fmt.Errorf("%w: missing cipher_hex", ErrParse)
	}
	if b.KeyHex == "" {
		return fmt.Errorf("%w: missing key_hex", ErrParse)
	}
	cipher, err := HexToBytes(b.CipherHex)
	if err != nil {
		return fmt.Errorf("%w: cipher_hex: %v", ErrParse, err)
	}
	key, err := HexToBytes(b.KeyHex)
	if err != nil {
		return fmt.Errorf("%w: key_hex: %v", ErrParse, err)
	}
	if b.Checksum != "" && !strings.EqualFold(b.Checksum, checksum(cipher, key)) {
		return fmt.Errorf("%w: checksum mismatch", ErrParse)
	}
	return nil
}

// CipherBytes decodes the ciphertext field.
func (b Bundle) CipherBytes() ([]byte, error) {
	return HexToBytes(b.CipherHex)
}

// KeyBytes decodes the key field.
func (b Bundle) KeyBytes() ([]byte, error) {
	return HexToBytes(b.KeyHex)
}

// Fingerprint returns a short base58 identifier derived from the pad key,
// usable as a human-readable reference to the bundle without exposing the key
// itself.
func (b Bundle) Fingerprint() (string, error) {
	key, err := b.KeyBytes()
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(key)
	return base58.Encode(sum[:fingerprintLength]), nil
}

// checksum hashes cipher and key together so a corrupted or truncated bundle
// file fails loudly at load time instead of decrypting to garbage.
func checksum(cipher, key []byte) string {
	sum := blake2b.Sum256(append(append([]byte{}, cipher...), key...))
	return BytesToHex(sum[:])
}
