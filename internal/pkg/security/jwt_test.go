package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignerRoundTrip(t *testing.T) {
	signer := NewSigner("secret", "Sheetcast")

	token, err := signer.GenerateToken(UserClaims{
		Email:            "ada@example.com",
		Name:             "Ada Lovelace",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	})
	require.NoError(t, err)

	claims, err := signer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Sheetcast", claims.Issuer)
}

func TestSignerRejectsForeignSecret(t *testing.T) {
	token, err := NewSigner("other", "x").GenerateToken(UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	})
	require.NoError(t, err)

	_, err = NewSigner("secret", "x").ValidateToken(token)
	assert.Error(t, err)
}

func TestSignerRejectsExpiredAndSubjectless(t *testing.T) {
	signer := NewSigner("secret", "x")

	expired, err := signer.GenerateToken(UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	require.NoError(t, err)
	_, err = signer.ValidateToken(expired)
	assert.Error(t, err)

	anonymous, err := signer.GenerateToken(UserClaims{})
	require.NoError(t, err)
	_, err = signer.ValidateToken(anonymous)
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	sig, err := ExtractSignature("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "c", sig)

	_, err = ExtractSignature("a.b")
	assert.Error(t, err)
}
