package encrypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KeySize is the AES-256 key size NewDerived produces.
const KeySize = 32

var (
	ErrEmptySecret        = errors.New("encrypter: empty secret")
	ErrCiphertextTooShort = errors.New("encrypter: ciphertext is too short")
	ErrDecryptionFailed   = errors.New("encrypter: invalid ciphertext, key or label")
)

// Encrypter seals values with AES-GCM. A label is bound to each ciphertext as
// additional data, so a value only opens under the label it was sealed with.
// Implementations are safe for concurrent use.
type Encrypter interface {
	Seal(data []byte, label string) (string, error)
	Open(sealed, label string) ([]byte, error)
}

type implEncrypter struct {
	aead cipher.AEAD
}

// NewDerived derives an AES-256 key from secret with HKDF-SHA256.
// Different info values yield independent keys from the same secret.
func NewDerived(secret, info string) (Encrypter, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("encrypter: derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("encrypter: create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("encrypter: create GCM: %w", err)
	}
	return &implEncrypter{aead: aead}, nil
}
