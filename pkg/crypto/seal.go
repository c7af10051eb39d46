package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed is returned by Open when a value was not produced by Seal with
// the same key.
var ErrMalformed = errors.New("sealed value is malformed")

// Sealer seals small values with AES-GCM so they can travel through the
// browser (cookies) without being read or altered. Output is URL-safe base64.
type Sealer struct {
	gcm cipher.AEAD
}

// NewSealer creates a Sealer with the given 32-byte key.
func NewSealer(key string) (*Sealer, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("seal key must be exactly 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Sealer{gcm: gcm}, nil
}

// Seal encrypts plaintext. The name is bound as additional data, so a value
// sealed for one cookie does not open under another.
func (s *Sealer) Seal(name string, plaintext []byte) (string, error) {
	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := s.gcm.Seal(nonce, nonce, plaintext, []byte(name))
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open reverses Seal.
func (s *Sealer) Open(name, encoded string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrMalformed
	}

	nonceSize := s.gcm.NonceSize()
	if len(raw) < nonceSize {
		return nil, ErrMalformed
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := s.gcm.Open(nil, nonce, ciphertext, []byte(name))
	if err != nil {
		return nil, ErrMalformed
	}
	return plaintext, nil
}
