package cryptox

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	assert.Len(t, key1, KeySize)

	expectedHex := "9290403300158e19f27e48e7087f7383b03065bf5b25ef23ebc40229616cd8b3"
	if hex.EncodeToString(key1) != expectedHex {
		t.Errorf("expected %s, got %s", expectedHex, hex.EncodeToString(key1))
	}
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"))
	key2 := DeriveKey(password, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func newSealer(t *testing.T) *Sealer {
	t.Helper()
	s, err := NewSealer(bytes.Repeat([]byte{7}, KeySize))
	require.NoError(t, err)
	return s
}

func TestSealer_RoundTrip(t *testing.T) {
	s := newSealer(t)

	sealed, err := s.Seal([]byte("bob@example.com"), []byte("contact:u1"))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "bob@example.com")

	plain, err := s.Open(sealed, []byte("contact:u1"))
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", string(plain))
}

func TestSealer_NonceIsFresh(t *testing.T) {
	s := newSealer(t)

	a, err := s.Seal([]byte("x"), nil)
	require.NoError(t, err)
	b, err := s.Seal([]byte("x"), nil)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSealer_WrongAADFails(t *testing.T) {
	s := newSealer(t)

	sealed, err := s.Seal([]byte("secret"), []byte("credential:u1"))
	require.NoError(t, err)

	_, err = s.Open(sealed, []byte("credential:u2"))
	assert.Error(t, err)
}

func TestSealer_Tampered(t *testing.T) {
	s := newSealer(t)

	sealed, err := s.Seal([]byte("secret"), nil)
	require.NoError(t, err)
	sealed[len(sealed)-1] ^= 0xff

	_, err = s.Open(sealed, nil)
	assert.Error(t, err)

	_, err = s.Open([]byte{1, 2, 3}, nil)
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestNewSealer_BadKey(t *testing.T) {
	_, err := NewSealer([]byte("short"))
	assert.Error(t, err)
}

func TestHashToken(t *testing.T) {
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
}

func TestHashScoped(t *testing.T) {
	a := HashScoped("user-1", "ABCD2345EFGH6789")
	b := HashScoped("user-2", "ABCD2345EFGH6789")

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, HashScoped("user-1", "ABCD2345EFGH6789"))
	assert.NotEqual(t, HashToken("ABCD2345EFGH6789"), a)
	assert.True(t, Equal(a, HashScoped("user-1", "ABCD2345EFGH6789")))
	assert.False(t, Equal(a, b))
}

func TestKeyed(t *testing.T) {
	k := []byte("k")
	assert.Equal(t, Keyed(k, "alice"), Keyed(k, "alice"))
	assert.NotEqual(t, Keyed(k, "alice"), Keyed(k, "bob12"))
	assert.Len(t, Keyed(k, "x"), 32)
}
