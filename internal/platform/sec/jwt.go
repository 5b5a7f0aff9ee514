// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the TokenProvider interface defined by consumers.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// InsecureDefaultSecret is the well-known fallback signing secret used when
// JWT_SECRET is unset. It exists only for parity with legacy deployments and
// MUST trigger a startup warning whenever it is selected. Any token signed
// with it is forgeable by anyone who reads this file.
const InsecureDefaultSecret = "verysecret"

// TokenTTL is the fixed lifetime of every issued bearer token. Tokens are
// stateless: there is no server-side revocation, so a token stays valid for
// the full seven days regardless of later account changes.
const TokenTTL = 7 * 24 * time.Hour

// AuthClaims represents the payload embedded inside a JWT bearer token.
//
// # Why custom claims?
//
// By embedding the UserID, Email, and Role directly inside the JWT, the
// access-policy middleware can reconstruct the caller's identity WITHOUT
// querying the database on every single API request.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID string `json:"uid"`
	Email  string `json:"eml"`
	Role   string `json:"rol,omitempty"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// The signing secret is injected exactly once at construction. Nothing in the
// request path reads the process environment.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService with the given signing secret.
func NewTokenService(secret, issuer string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// UsesInsecureSecret reports whether the service was constructed with the
// well-known fallback secret. Used by startup wiring to log a warning.
func (service *TokenService) UsesInsecureSecret() bool {
	return string(service.secret) == InsecureDefaultSecret
}

// GenerateToken creates a signed bearer token for a user.
//
// role may be empty: registration tokens carry only subject and email, while
// login tokens also carry the account role.
func (service *TokenService) GenerateToken(userID, email, role string) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(TokenTTL)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
//
// It is side-effect-free. A token is valid if and only if the signature
// verifies against the configured secret AND the current time is before the
// embedded expiry; both checks are enforced by the jwt library during parse.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
