package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
)

var (
	ErrKeyTooShort        = errors.New("encryption key must be at least 32 characters")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)

const MinKeyLength = 32

// Sealer encrypts short secrets with AES-256-GCM. The key is derived from
// the configured passphrase with SHA-256; output is base64(nonce|sealed).
type Sealer struct {
	aead cipher.AEAD
}

func NewSealer(key string) (*Sealer, error) {
	if len(key) < MinKeyLength {
		return nil, ErrKeyTooShort
	}
	sum := sha256.Sum256([]byte(key))

	block, err := aes.NewCipher(sum[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Sealer{aead: gcm}, nil
}

// Seal binds the ciphertext to label (the storage key), so a value copied
// under another key fails to open.
func (s *Sealer) Seal(plaintext, label string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := s.aead.Seal(nonce, nonce, []byte(plaintext), []byte(label))
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *Sealer) Open(ciphertext, label string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}

	nonceSize := s.aead.NonceSize()
	if len(data) < nonceSize {
		return "", ErrCiphertextTooShort
	}

	nonce, body := data[:nonceSize], data[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, body, []byte(label))
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
