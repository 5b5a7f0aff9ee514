// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package sec_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetour/api/internal/platform/sec"
)

const testIssuer = "safetour.app"

/*
TestTokenService_RoundTrip verifies that a generated token can be verified
and carries the original claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	svc := sec.NewTokenService("test-secret", testIssuer)

	token, err := svc.GenerateToken("user-1", "mina@safetour.app", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "mina@safetour.app", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
}

/*
TestTokenService_EmptyRole verifies that registration-style tokens carry no
role claim but still verify.
*/
func TestTokenService_EmptyRole(t *testing.T) {
	svc := sec.NewTokenService("test-secret", testIssuer)

	token, err := svc.GenerateToken("user-1", "mina@safetour.app", "")
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
}

/*
TestTokenService_Expiry verifies the seven-day lifetime and that an already
expired token is rejected.
*/
func TestTokenService_Expiry(t *testing.T) {
	svc := sec.NewTokenService("test-secret", testIssuer)

	token, err := svc.GenerateToken("user-1", "mina@safetour.app", "user")
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)

	// Lifetime should be TokenTTL, within a small clock skew allowance.
	lifetime := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	assert.Equal(t, sec.TokenTTL, lifetime)

	// Craft an already-expired token signed with the same secret.
	expiredClaims := sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    testIssuer,
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
		UserID: "user-1",
	}
	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.VerifyToken(expiredToken)
	assert.Error(t, err)
}

/*
TestTokenService_WrongSecret verifies that a token signed with one secret is
rejected by a service holding another.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	issuing := sec.NewTokenService("secret-a", testIssuer)
	verifying := sec.NewTokenService("secret-b", testIssuer)

	token, err := issuing.GenerateToken("user-1", "mina@safetour.app", "user")
	require.NoError(t, err)

	_, err = verifying.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_Garbage verifies that non-JWT strings are rejected.
*/
func TestTokenService_Garbage(t *testing.T) {
	svc := sec.NewTokenService("test-secret", testIssuer)

	for _, tokenString := range []string{"", "garbage", "a.b.c", "ey.ey.ey"} {
		_, err := svc.VerifyToken(tokenString)
		assert.Error(t, err, "token %q should be rejected", tokenString)
	}
}

/*
TestTokenService_InsecureSecretDetection verifies the fallback secret check
used by startup wiring.
*/
func TestTokenService_InsecureSecretDetection(t *testing.T) {
	insecure := sec.NewTokenService(sec.InsecureDefaultSecret, testIssuer)
	assert.True(t, insecure.UsesInsecureSecret())

	secure := sec.NewTokenService("a-real-secret", testIssuer)
	assert.False(t, secure.UsesInsecureSecret())
}
