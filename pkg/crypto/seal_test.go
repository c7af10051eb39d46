package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestSealer_RoundTrip(t *testing.T) {
	s, err := NewSealer(testKey)
	require.NoError(t, err)

	sealed, err := s.Seal("user", []byte(`{"id":7,"email":"a@b.c"}`))
	require.NoError(t, err)
	assert.NotContains(t, sealed, "email")

	plain, err := s.Open("user", sealed)
	require.NoError(t, err)
	assert.Equal(t, `{"id":7,"email":"a@b.c"}`, string(plain))
}

func TestSealer_NonceVaries(t *testing.T) {
	s, err := NewSealer(testKey)
	require.NoError(t, err)

	a, err := s.Seal("user", []byte("x"))
	require.NoError(t, err)
	b, err := s.Seal("user", []byte("x"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSealer_Rejects(t *testing.T) {
	s, err := NewSealer(testKey)
	require.NoError(t, err)
	sealed, err := s.Seal("user", []byte("payload"))
	require.NoError(t, err)

	_, err = s.Open("other", sealed)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = s.Open("user", "%%%not-base64")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = s.Open("user", "YWI")
	assert.ErrorIs(t, err, ErrMalformed)

	tampered := []byte(sealed)
	tampered[len(tampered)-2] ^= 0x01
	_, err = s.Open("user", string(tampered))
	assert.Error(t, err)

	otherKey, err := NewSealer("fedcba9876543210fedcba9876543210")
	require.NoError(t, err)
	_, err = otherKey.Open("user", sealed)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNewSealer_KeyLength(t *testing.T) {
	_, err := NewSealer("short")
	assert.Error(t, err)
}
