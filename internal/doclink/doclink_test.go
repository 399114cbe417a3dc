package doclink

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	signer := NewSigner("secret", time.Hour)
	id := uuid.New()

	token, err := signer.Token(id)
	require.NoError(t, err)
	assert.NoError(t, signer.Verify(token, id))
}

func TestTokenBoundToInvoice(t *testing.T) {
	signer := NewSigner("secret", time.Hour)

	token, err := signer.Token(uuid.New())
	require.NoError(t, err)
	assert.ErrorIs(t, signer.Verify(token, uuid.New()), ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	signer := NewSigner("secret", -time.Minute)
	id := uuid.New()

	token, err := signer.Token(id)
	require.NoError(t, err)
	assert.ErrorIs(t, signer.Verify(token, id), ErrInvalidToken)
}

func TestForeignSignatureRejected(t *testing.T) {
	id := uuid.New()
	token, err := NewSigner("other-secret", time.Hour).Token(id)
	require.NoError(t, err)

	assert.ErrorIs(t, NewSigner("secret", time.Hour).Verify(token, id), ErrInvalidToken)
}
