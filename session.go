package padlock

import (
	"fmt"
	"io"
)

// Session wires the codec, key generator, cipher, and bundle storage together
// for a single user. Sessions hold no mutable state between requests; two
// sessions writing to distinct paths never interfere.
type Session struct {
	storage   Storage
	cipher    Cipher
	keygen    KeyGenerator
	storeHint bool
}

// SessionOptions holds session options for initialization
type SessionOptions struct {
	StorageEngine StorageEngine
	FilePath      string
	NodeURL       string
	// Rand overrides the key generator's entropy source. Leave nil for
	// crypto/rand.
	Rand io.Reader
	// Strict makes the cipher reject keys shorter than the message instead
	// of cycling them.
	Strict bool
	// StoreHint persists the plaintext next to its ciphertext in the saved
	// bundle. Demo use only.
	StoreHint bool
}

// EncryptRequest asks a session to encrypt Message and persist the resulting
// bundle at Path.
type EncryptRequest struct {
	Message string
	Path    string
}

// EncryptResult reports where the bundle was stored and the hex outputs of
// the encryption.
type EncryptResult struct {
	Location    string
	CipherHex   string
	KeyHex      string
	Fingerprint string
}

// DecryptRequest asks a session to load the bundle at Path and recover its
// message.
type DecryptRequest struct {
	Path string
}

// DecryptResult holds the recovered message and the stored hint, if any.
type DecryptResult struct {
	Message string
	Hint    string
}

// NewSession takes opts and returns a pointer to Session and an error
func NewSession(opts SessionOptions) (*Session, error) {
	storage, err := NewStorage(StorageOptions{
		Engine:   opts.StorageEngine,
		FilePath: opts.FilePath,
		NodeURL:  opts.NodeURL,
	})
	if err != nil {
		return nil, err
	}
	keygen := NewKeyGenerator()
	if opts.Rand != nil {
		keygen.Rand = opts.Rand
	}
	return &Session{
		storage:   storage,
		cipher:    XORCipher{Strict: opts.Strict},
		keygen:    keygen,
		storeHint: opts.StoreHint,
	}, nil
}

// NewDefaultSession is a wrapper around NewSession and applies simple
// defaults. This is intended to be used by the reference apps.
func NewDefaultSession() (*Session, error) {
	return NewSession(SessionOptions{StorageEngine: DefaultStorageEngine})
}

// Close gracefully closes the session
func (s *Session) Close() error {
	return s.storage.Close()
}

// Encrypt encodes the request message, generates a fresh pad key of matching
// length, encrypts, and saves the bundle. The key is stored in the bundle so
// the message can be recovered in a later run; callers who want real secrecy
// must move the bundle and key through separate channels themselves.
func (s *Session) Encrypt(req EncryptRequest) (EncryptResult, error) {
	msg, err := TextToBytes(req.Message)
	if err != nil {
		return EncryptResult{}, err
	}
	key, err := s.keygen.Generate(len(msg))
	if err != nil {
		return EncryptResult{}, err
	}
	ciphertext, err := s.cipher.Encrypt(msg, key)
	if err != nil {
		return EncryptResult{}, err
	}
	hint := ""
	if s.storeHint {
		hint = req.Message
	}
	bundle := NewBundle(ciphertext, key, hint)
	location, err := s.storage.Save(req.Path, bundle)
	if err != nil {
		return EncryptResult{}, err
	}
	fp, err := bundle.Fingerprint()
	if err != nil {
		return EncryptResult{}, err
	}
	return EncryptResult{
		Location:    location,
		CipherHex:   bundle.CipherHex,
		KeyHex:      bundle.KeyHex,
		Fingerprint: fp,
	}, nil
}

// Decrypt loads the bundle at the request path and recovers the original
// message with the stored key.
func (s *Session) Decrypt(req DecryptRequest) (DecryptResult, error) {
	bundle, err := s.storage.Load(req.Path)
	if err != nil {
		return DecryptResult{}, err
	}
	ciphertext, err := bundle.CipherBytes()
	if err != nil {
		return DecryptResult{}, err
	}
	key, err := bundle.KeyBytes()
	if err != nil {
		return DecryptResult{}, err
	}
	msg, err := s.cipher.Decrypt(ciphertext, key)
	if err != nil {
		return DecryptResult{}, fmt.Errorf("decrypting bundle %s: %w", req.Path, err)
	}
	return DecryptResult{
		Message: BytesToText(msg),
		Hint:    bundle.PlaintextHint,
	}, nil
}
