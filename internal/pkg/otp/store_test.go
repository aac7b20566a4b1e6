package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	store := NewStore(time.Minute, 3)

	code, err := store.Generate("+919876543210")
	require.NoError(t, err)
	assert.Len(t, code, 6)

	require.NoError(t, store.Verify("+919876543210", code))

	// Codes are single use.
	assert.ErrorIs(t, store.Verify("+919876543210", code), ErrNotFound)
}

func TestVerifyUnknownPhone(t *testing.T) {
	store := NewStore(time.Minute, 3)
	assert.ErrorIs(t, store.Verify("+910000000000", "123456"), ErrNotFound)
}

func TestVerifyWrongCodeBurnsAfterMaxAttempts(t *testing.T) {
	store := NewStore(time.Minute, 3)
	code, err := store.Generate("+919876543210")
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	assert.ErrorIs(t, store.Verify("+919876543210", wrong), ErrInvalidCode)
	assert.ErrorIs(t, store.Verify("+919876543210", wrong), ErrInvalidCode)
	assert.ErrorIs(t, store.Verify("+919876543210", wrong), ErrTooManyAttempts)

	// The burned code no longer verifies.
	assert.ErrorIs(t, store.Verify("+919876543210", code), ErrNotFound)
}

func TestVerifyExpired(t *testing.T) {
	store := NewStore(-time.Second, 3)
	code, err := store.Generate("+919876543210")
	require.NoError(t, err)

	assert.ErrorIs(t, store.Verify("+919876543210", code), ErrExpired)
}

func TestRegenerateReplacesPendingCode(t *testing.T) {
	store := NewStore(time.Minute, 3)
	first, err := store.Generate("+919876543210")
	require.NoError(t, err)
	second, err := store.Generate("+919876543210")
	require.NoError(t, err)

	if first != second {
		assert.ErrorIs(t, store.Verify("+919876543210", first), ErrInvalidCode)
	}
	require.NoError(t, store.Verify("+919876543210", second))
}
