// Package cryptox provides encryption at rest and the one-way hashes used for
// tokens and backup codes.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

// KeySize is the AES-256 key length returned by DeriveKey.
const KeySize = 32

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// DeriveKey stretches an operator passphrase into a 32 byte key with argon2id.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, KeySize)
}

// Sealer encrypts small records with AES-256-GCM. The random nonce is prefixed
// to the output. The additional data binds a ciphertext to the row it belongs
// to, so a sealed credential copied to another user fails to open.
type Sealer struct {
	aead cipher.AEAD
}

func NewSealer(key []byte) (*Sealer, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Sealer{aead: aead}, nil
}

func (s *Sealer) Seal(plaintext, aad []byte) ([]byte, error) {
	nonce := common.GenerateRandByteArray(s.aead.NonceSize())
	return s.aead.Seal(nonce, nonce, plaintext, aad), nil
}

func (s *Sealer) Open(sealed, aad []byte) ([]byte, error) {
	n := s.aead.NonceSize()
	if len(sealed) < n+s.aead.Overhead() {
		return nil, ErrCiphertextTooShort
	}
	return s.aead.Open(nil, sealed[:n], sealed[n:], aad)
}

// HashToken returns the hex SHA-256 of a presented token. Only this value is
// ever persisted.
func HashToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// HashScoped hashes plaintext under scope (scope || 0x00 || plaintext), so the
// same backup code for two users yields different digests.
func HashScoped(scope, plaintext string) string {
	h := sha256.New()
	h.Write([]byte(scope))
	h.Write([]byte{0})
	h.Write([]byte(plaintext))
	return hex.EncodeToString(h.Sum(nil))
}

// Equal compares two digests in constant time.
func Equal(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}

// Keyed returns HMAC-SHA256(key, msg).
func Keyed(key []byte, msg string) []byte {
	m := hmac.New(sha256.New, key)
	m.Write([]byte(msg))
	return m.Sum(nil)
}
