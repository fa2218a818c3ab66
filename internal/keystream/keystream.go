package keystream

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// Stream produces the same ChaCha20 keystream on every call. Encrypting
// several messages with one Stream reuses the pad, which is exactly the
// condition the pad package breaks.
type Stream struct {
	key   [chacha20.KeySize]byte
	nonce [chacha20.NonceSize]byte
}

// New creates a stream from a fixed key and nonce.
func New(key [chacha20.KeySize]byte, nonce [chacha20.NonceSize]byte) *Stream {
	return &Stream{key: key, nonce: nonce}
}

// Generate creates a stream with a random key and nonce.
func Generate() (*Stream, error) {
	var s Stream
	if _, err := rand.Read(s.key[:]); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	if _, err := rand.Read(s.nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return &s, nil
}

// Pad returns the first n bytes of the keystream.
func (s *Stream) Pad(n int) []byte {
	return s.Encrypt(make([]byte, n))
}

// Encrypt XORs plaintext with the keystream from its start.
func (s *Stream) Encrypt(plaintext []byte) []byte {
	c, err := chacha20.NewUnauthenticatedCipher(s.key[:], s.nonce[:])
	if err != nil {
		// Key and nonce sizes are fixed by the array types.
		panic(fmt.Sprintf("keystream: %v", err))
	}
	out := make([]byte, len(plaintext))
	c.XORKeyStream(out, plaintext)
	return out
}

// EncryptAll encrypts every plaintext under the same pad.
func (s *Stream) EncryptAll(plaintexts [][]byte) [][]byte {
	out := make([][]byte, len(plaintexts))
	for i, p := range plaintexts {
		out[i] = s.Encrypt(p)
	}
	return out
}
