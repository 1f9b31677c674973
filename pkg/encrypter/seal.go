package encrypter

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Seal returns base64(nonce | ciphertext).
func (e *implEncrypter) Seal(data []byte, label string) (string, error) {
	nonce := make([]byte, e.aead.NonceSize(), e.aead.NonceSize()+len(data)+e.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("encrypter: generate nonce: %w", err)
	}
	sealed := e.aead.Seal(nonce, nonce, data, []byte(label))
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (e *implEncrypter) Open(sealed, label string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("encrypter: decode base64: %w", err)
	}
	n := e.aead.NonceSize()
	if len(raw) < n {
		return nil, ErrCiphertextTooShort
	}
	plain, err := e.aead.Open(nil, raw[:n], raw[n:], []byte(label))
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plain, nil
}
